package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"

	"github.com/robotalks/edgebot/pkg/cli/bench"
	"github.com/robotalks/edgebot/pkg/edgebot"
	"github.com/robotalks/edgebot/pkg/sim/bots/diffbot"
)

func init() {
	edgebot.SetupFlags()
	diffbot.SetupFlags()
	bench.SetupFlags()
}

func main() {
	flag.Parse()

	simConf := diffbot.NewConfig()
	if err := simConf.LoadScenario(); err != nil {
		log.Fatalln(err)
	}
	b := bench.New(simConf, edgebot.NewConfig())
	bench.NewShell(b).Run(flag.Args()...)
}
