package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/robotalks/edgebot/pkg/edgebot"
	"github.com/robotalks/edgebot/pkg/metrics"
	"github.com/robotalks/edgebot/pkg/sim"
	"github.com/robotalks/edgebot/pkg/sim/bots/diffbot"
	"github.com/robotalks/edgebot/pkg/sim/visualization/see"
	"github.com/robotalks/edgebot/pkg/telemetry"
)

func init() {
	edgebot.SetupFlags()
	diffbot.SetupFlags()
	see.SetupFlags()
	telemetry.SetupFlags()
	metrics.SetupFlags()
}

func main() {
	flag.Parse()

	simConf := diffbot.NewConfig()
	if err := simConf.LoadScenario(); err != nil {
		log.Fatalln(err)
	}
	botConf := edgebot.NewConfig()
	if simConf.Seed != 0 {
		botConf.Seed = simConf.Seed
	}

	robot := simConf.NewBot(sim.WallClock{})
	bot := botConf.NewBot(robot.Name(), robot)

	visConf := see.NewConfig()
	visConf.W, visConf.H = simConf.TableWidth, simConf.TableHeight
	vis := visConf.NewAdapter().Subscribe(robot)

	loop := botConf.NewLoop().Add(bot, robot, vis)
	telConf := telemetry.NewConfig()
	if len(telConf.SinkURLs()) > 0 {
		telConf.Meta.Description = "simulated edge avoiding robot"
		loop.Add(telConf.MustNewPublisher(bot))
	}
	if conf := metrics.NewConfig(); conf.Enabled() {
		loop.Add(conf.NewServer(bot))
	}
	loop.RunOrFail()
}
