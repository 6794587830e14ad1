package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/robotalks/edgebot/pkg/edgebot"
	"github.com/robotalks/edgebot/pkg/hal/firmata"
	"github.com/robotalks/edgebot/pkg/metrics"
	"github.com/robotalks/edgebot/pkg/telemetry"
)

func init() {
	edgebot.SetupFlags()
	firmata.SetupFlags()
	telemetry.SetupFlags()
	metrics.SetupFlags()
}

func main() {
	flag.Parse()

	h := firmata.NewConfig().MustOpen()

	botConf := edgebot.NewConfig()
	telConf := telemetry.NewConfig()
	bot := botConf.NewBot(telConf.Ref.Name(), h)
	loop := botConf.NewLoop().Add(h, bot)
	if len(telConf.SinkURLs()) > 0 {
		loop.Add(telConf.MustNewPublisher(bot))
	}
	if conf := metrics.NewConfig(); conf.Enabled() {
		loop.Add(conf.NewServer(bot))
	}
	loop.RunOrFail()
}
