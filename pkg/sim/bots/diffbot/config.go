package diffbot

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/edgebot/pkg/sim"
	"github.com/robotalks/edgebot/pkg/sim/physics/diffdrive"
)

// Config defines the simulated robot and its table, all in mm.
type Config struct {
	Name        string  `yaml:"name"`
	TableWidth  float64 `yaml:"tableWidth"`
	TableHeight float64 `yaml:"tableHeight"`
	Length      float64 `yaml:"length"`
	Width       float64 `yaml:"width"`
	// WheelSpeed is in mm/s.
	WheelSpeed float64 `yaml:"wheelSpeed"`
	TrackWidth float64 `yaml:"trackWidth"`
	// SensorAhead is the distance of the sensors in front of the center.
	SensorAhead float64 `yaml:"sensorAhead"`
	// SensorSpread is the distance of each sensor from the center line.
	SensorSpread float64 `yaml:"sensorSpread"`
	Start        Start   `yaml:"start"`
	// Seed overrides the controller seed when not zero.
	Seed int64 `yaml:"seed"`

	// Scenario is a YAML file overriding the fields above.
	Scenario string `yaml:"-"`
}

// Start is the initial pose.
type Start struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Heading float64 `yaml:"heading"` // degrees
}

var defaultConfig = Config{
	Name:         "edgebot",
	TableWidth:   1200,
	TableHeight:  800,
	Length:       120,
	Width:        100,
	WheelSpeed:   300,
	TrackWidth:   90,
	SensorAhead:  60,
	SensorSpread: 50,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Name, "bot-name", defaultConfig.Name, "Name of the simulated robot.")
	flag.Float64Var(&defaultConfig.TableWidth, "table-w", defaultConfig.TableWidth, "Width (mm) of the table.")
	flag.Float64Var(&defaultConfig.TableHeight, "table-h", defaultConfig.TableHeight, "Height (mm) of the table.")
	flag.Float64Var(&defaultConfig.WheelSpeed, "wheel-speed", defaultConfig.WheelSpeed, "Wheel speed (mm/s) at full power.")
	flag.Float64Var(&defaultConfig.TrackWidth, "track-width", defaultConfig.TrackWidth, "Distance (mm) between wheels.")
	flag.StringVar(&defaultConfig.Scenario, "scenario", defaultConfig.Scenario, "YAML scenario file.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadScenario merges the scenario file, if any, into the config.
func (c *Config) LoadScenario() error {
	if c.Scenario == "" {
		return nil
	}
	data, err := os.ReadFile(c.Scenario)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	return c.ParseScenario(data)
}

// ParseScenario merges YAML into the config.
func (c *Config) ParseScenario(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse scenario %s: %w", c.Scenario, err)
	}
	return c.Validate()
}

// Validate checks the geometry.
func (c *Config) Validate() error {
	switch {
	case c.TableWidth <= 0 || c.TableHeight <= 0:
		return fmt.Errorf("invalid table size %vx%v", c.TableWidth, c.TableHeight)
	case c.WheelSpeed <= 0:
		return fmt.Errorf("invalid wheel speed %v", c.WheelSpeed)
	case c.TrackWidth <= 0:
		return fmt.Errorf("invalid track width %v", c.TrackWidth)
	}
	table := sim.Centered(sim.Size2D{CX: c.TableWidth, CY: c.TableHeight})
	if !table.Contains(sim.Pos2D{X: c.Start.X, Y: c.Start.Y}) {
		return fmt.Errorf("start (%v, %v): %w", c.Start.X, c.Start.Y, sim.ErrOffTable)
	}
	return nil
}

// StartPose returns the initial pose.
func (c *Config) StartPose() sim.Pose2D {
	return sim.Pose2D{
		Pos2D:       sim.Pos2D{X: c.Start.X, Y: c.Start.Y},
		Orientation: sim.AngleFromDegrees(c.Start.Heading),
	}
}

// NewBot creates the Bot placed at the start pose.
func (c *Config) NewBot(clock sim.Clock) *Bot {
	b := New(c.Name, clock, diffdrive.Caps{WheelSpeed: c.WheelSpeed, TrackWidth: c.TrackWidth})
	b.Table = sim.Centered(sim.Size2D{CX: c.TableWidth, CY: c.TableHeight})
	b.Outline = sim.Centered(sim.Size2D{CX: c.Length, CY: c.Width})
	b.SensorOffset = sim.Pos2D{X: c.SensorAhead, Y: c.SensorSpread}
	b.SetPose2D(c.StartPose())
	return b
}
