package edgebot

import (
	"flag"
	"time"

	fx "github.com/robotalks/edgebot/pkg/framework"
	"github.com/robotalks/edgebot/pkg/hal"
)

// Config defines how a Bot is hosted.
type Config struct {
	// TickInterval is the loop interval, 0 runs back-to-back.
	TickInterval time.Duration
	// Seed seeds the random source, 0 derives one from the wall clock.
	Seed int64
}

var defaultConfig = Config{
	TickInterval: fx.DefaultInterval,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.DurationVar(&defaultConfig.TickInterval, "tick-interval", defaultConfig.TickInterval, "Control loop interval, 0 for back-to-back ticks.")
	flag.Int64Var(&defaultConfig.Seed, "seed", defaultConfig.Seed, "Random seed for pivot sampling, 0 for time based.")
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

// RandomSeed returns the configured seed, or one derived from
// the wall clock when unset.
func (c *Config) RandomSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewBot creates a Bot.
func (c *Config) NewBot(name string, h hal.HAL) *Bot {
	return NewBot(name, h, c.RandomSeed())
}

// NewLoop creates a loop ticking at the configured interval.
func (c *Config) NewLoop() *fx.Loop {
	l := fx.NewLoop()
	l.Interval = c.TickInterval
	return l
}
