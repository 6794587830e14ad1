package metrics

import (
	"flag"
	"os"
)

// Config configures the metrics endpoint.
type Config struct {
	// Addr is the listen address of /metrics, empty disables it.
	Addr string
}

var defaultConfig Config

func init() {
	if val := os.Getenv("EDGEBOT_METRICS_ADDR"); val != "" {
		defaultConfig.Addr = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Addr, "metrics-addr", defaultConfig.Addr, "Listen address for Prometheus metrics, e.g. :9100")
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

// Enabled indicates the endpoint is configured.
func (c *Config) Enabled() bool {
	return c.Addr != ""
}

// NewServer creates the Server exporting src.
func (c *Config) NewServer(src StateSource) *Server {
	return &Server{Addr: c.Addr, Metrics: New(src)}
}
