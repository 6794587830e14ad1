package telemetry

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robotalks/edgebot/pkg/edgebot"
)

// Config configures telemetry publishing.
type Config struct {
	Ref  RobotRef
	Meta Meta

	// URLs is a comma separated list of sink URLs.
	URLs string
	// StatusInterval is the period of Status events, 0 disables them.
	StatusInterval time.Duration
	// QueueSize bounds the events waiting to be sent.
	QueueSize int
}

var defaultConfig = Config{
	Ref:            RobotRef{Type: "edgebot"},
	Meta:           Meta{Description: "edge avoiding robot"},
	StatusInterval: time.Second,
	QueueSize:      64,
}

func init() {
	if val := os.Getenv("EDGEBOT_TELEMETRY_URL"); val != "" {
		defaultConfig.URLs = val
	}
	defaultConfig.Ref.ID = MachineID()
	for _, state := range edgebot.States {
		defaultConfig.Meta.States = append(defaultConfig.Meta.States, state.String())
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "type", defaultConfig.Ref.Type, "Robot type")
	flag.StringVar(&defaultConfig.Ref.ID, "id", defaultConfig.Ref.ID, "Robot ID")
	flag.StringVar(&defaultConfig.URLs, "telemetry", defaultConfig.URLs, "Comma separated telemetry sink URLs (mqtt://, ws://, wss://, tcp://)")
	flag.DurationVar(&defaultConfig.StatusInterval, "status-interval", defaultConfig.StatusInterval, "Interval of status events, 0 to disable")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// SinkURLs splits URLs.
func (c *Config) SinkURLs() (urls []string) {
	for _, u := range strings.Split(c.URLs, ",") {
		if u = strings.TrimSpace(u); u != "" {
			urls = append(urls, u)
		}
	}
	return
}

// NewPublisher creates a Publisher reporting src to all sinks.
func (c *Config) NewPublisher(src StatusSource) (*Publisher, error) {
	if !c.Ref.IsValid() {
		return nil, fmt.Errorf("robot type and id must be specified")
	}
	var sinks []Sink
	for _, u := range c.SinkURLs() {
		sink, err := OpenSink(u, c.Ref, c.Meta)
		if err != nil {
			return nil, fmt.Errorf("telemetry sink %s: %w", u, err)
		}
		sinks = append(sinks, sink)
	}
	p := NewPublisher(c.Ref.Name(), src, c.QueueSize, sinks...)
	p.StatusInterval = c.StatusInterval
	return p, nil
}

// MustNewPublisher creates Publisher and fails on error.
func (c *Config) MustNewPublisher(src StatusSource) *Publisher {
	p, err := c.NewPublisher(src)
	if err != nil {
		log.Fatalln(err)
	}
	return p
}
