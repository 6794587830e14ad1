package see

import (
	"flag"
	"io"
	"os"
)

// Config represents configuration for see.
type Config struct {
	// W and H are the table size in mm.
	W float64
	H float64

	Out io.Writer
}

var defaultConfig = Config{
	W:   1200,
	H:   800,
	Out: os.Stdout,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Float64Var(&defaultConfig.W, "see-w", defaultConfig.W, "Width (mm) of visualized table")
	flag.Float64Var(&defaultConfig.H, "see-h", defaultConfig.H, "Height (mm) of visualized table")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a default config.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewAdapter creates adapter from config.
func (c *Config) NewAdapter() *Adapter {
	return NewAdapter(c)
}
