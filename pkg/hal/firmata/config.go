package firmata

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/tarm/serial"
	gobotfirmata "gobot.io/x/gobot/platforms/firmata"
)

// Pins maps the robot onto board pins, indexed by hal.Side.
type Pins struct {
	Direction [2]int
	Sensor    [2]int
	Motor     [2]int
	Brake     [2]int
}

// DefaultPins is the wiring of the reference robot.
var DefaultPins = Pins{
	Direction: [2]int{12, 13},
	Sensor:    [2]int{6, 5},
	Motor:     [2]int{11, 3},
	Brake:     [2]int{8, 9},
}

// Config defines how to reach the board.
type Config struct {
	Port string
	Baud int
	// InvertRight flips the direction level of the right wheel
	// whose motor is mounted mirrored.
	InvertRight bool
	Pins        Pins
}

var defaultConfig = Config{
	Port:        "/dev/ttyACM0",
	Baud:        57600,
	InvertRight: true,
	Pins:        DefaultPins,
}

func init() {
	if val := os.Getenv("EDGEBOT_SERIAL"); val != "" {
		defaultConfig.Port = val
	}
	if val := os.Getenv("EDGEBOT_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Port, "serial", defaultConfig.Port, "Serial port of the Firmata board.")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Baud rate of the serial port.")
	flag.BoolVar(&defaultConfig.InvertRight, "invert-right", defaultConfig.InvertRight, "Invert direction level of the right wheel.")
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

// Open opens the serial port, connects the Firmata board and
// initializes all pins.
func (c *Config) Open() (*HAL, error) {
	port, err := serial.OpenPort(&serial.Config{Name: c.Port, Baud: c.Baud})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", c.Port, err)
	}
	adaptor := gobotfirmata.NewAdaptor(port)
	adaptor.SetName("edgebot")
	if err = adaptor.Connect(); err != nil {
		port.Close()
		return nil, fmt.Errorf("connect firmata on %s: %w", c.Port, err)
	}
	h := New(adaptor, c)
	if err = h.init(); err != nil {
		adaptor.Finalize()
		return nil, err
	}
	return h, nil
}

// MustOpen opens the board and fails on error.
func (c *Config) MustOpen() *HAL {
	h, err := c.Open()
	if err != nil {
		log.Fatalln(err)
	}
	return h
}
