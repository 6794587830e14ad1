package bench

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/edgebot/pkg/edgebot"
	"github.com/robotalks/edgebot/pkg/hal"
	"github.com/robotalks/edgebot/pkg/sim/bots/diffbot"
)

// Shell provides ishell backed interactive bench console.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell *ishell.Shell
	Bench *Bench
}

const shellKey = "$bench"

var (
	// flags

	evalOnly   bool
	outputJSON bool

	commands = []*ishell.Cmd{
		&TickCmd,
		&RunCmd,
		&EdgeCmd,
		&PlaceCmd,
		&StatusCmd,
	}
)

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// NewShell creates a new shell on a Bench.
func NewShell(b *Bench) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Shell:       ishell.New(),
		Bench:       b,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(b.Sim.Name() + " > ")
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// Run runs the shell. With args, it runs commands separated
// by "--" and exits.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		for _, cmd := range SplitCommands(args) {
			if err := s.Shell.Process(cmd...); err != nil {
				log.Fatalln(err)
			}
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// SplitCommands splits args into commands at "--".
func SplitCommands(args []string) (cmds [][]string) {
	var cur []string
	for _, arg := range args {
		if arg == "--" {
			if len(cur) > 0 {
				cmds = append(cmds, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, arg)
	}
	if len(cur) > 0 {
		cmds = append(cmds, cur)
	}
	return
}

func (s *Shell) printTransitions(c *ishell.Context, transitions []edgebot.Transition) {
	if s.OutputJSON {
		s.printJSON(c, transitions)
		return
	}
	for _, t := range transitions {
		c.Println(FormatTransition(t))
	}
	c.Println(FormatStatus(s.Bench.Status()))
}

func (s *Shell) printJSON(c *ishell.Context, v interface{}) {
	out, err := json.Marshal(v)
	if err != nil {
		c.Err(err)
		return
	}
	c.Println(string(out))
}

// ParseEdgeMode parses on|off|auto.
func ParseEdgeMode(str string) (diffbot.EdgeMode, error) {
	for _, mode := range []diffbot.EdgeMode{diffbot.EdgeAuto, diffbot.EdgeOn, diffbot.EdgeOff} {
		if mode.String() == str {
			return mode, nil
		}
	}
	return diffbot.EdgeAuto, fmt.Errorf("invalid edge mode %q", str)
}

// ParseSide parses left|right.
func ParseSide(str string) (hal.Side, error) {
	for _, side := range hal.Sides {
		if side.String() == str {
			return side, nil
		}
	}
	return hal.Left, fmt.Errorf("invalid side %q", str)
}

var (
	// TickCmd runs ticks.
	TickCmd = ishell.Cmd{
		Name:    "tick",
		Aliases: []string{"t"},
		Help:    "[N]",
		Func: func(c *ishell.Context) {
			n := 1
			if len(c.Args) > 0 {
				val, err := strconv.Atoi(c.Args[0])
				if err != nil || val < 0 {
					c.Err(fmt.Errorf("Invalid N: %s", c.Args[0]))
					return
				}
				n = val
			}
			s := ShellFrom(c)
			s.printTransitions(c, s.Bench.Tick(n))
		},
	}

	// RunCmd runs for simulated time.
	RunCmd = ishell.Cmd{
		Name:    "run",
		Aliases: []string{"r"},
		Help:    "MS",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("MS required"))
				return
			}
			ms, err := strconv.Atoi(c.Args[0])
			if err != nil || ms < 0 {
				c.Err(fmt.Errorf("Invalid MS: %s", c.Args[0]))
				return
			}
			s := ShellFrom(c)
			s.printTransitions(c, s.Bench.RunFor(time.Duration(ms)*time.Millisecond))
		},
	}

	// EdgeCmd overrides a sensor.
	EdgeCmd = ishell.Cmd{
		Name:    "edge",
		Aliases: []string{"e"},
		Help:    "left|right on|off|auto",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("SIDE and MODE required"))
				return
			}
			side, err := ParseSide(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			mode, err := ParseEdgeMode(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			ShellFrom(c).Bench.Sim.ForceEdge(side, mode)
			c.Println("OK")
		},
	}

	// PlaceCmd moves the robot.
	PlaceCmd = ishell.Cmd{
		Name:    "place",
		Aliases: []string{"p"},
		Help:    "X(mm) Y(mm) HEADING(degrees)",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("X Y HEADING required"))
				return
			}
			var vals [3]float64
			for n := range vals {
				val, err := strconv.ParseFloat(c.Args[n], 64)
				if err != nil {
					c.Err(fmt.Errorf("Invalid value %s: %v", c.Args[n], err))
					return
				}
				vals[n] = val
			}
			if err := ShellFrom(c).Bench.Place(vals[0], vals[1], vals[2]); err != nil {
				c.Err(err)
				return
			}
			c.Println("OK")
		},
	}

	// StatusCmd prints the status.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"s"},
		Help:    "",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			st := s.Bench.Status()
			if s.OutputJSON {
				s.printJSON(c, st)
				return
			}
			c.Println(FormatStatus(st))
		},
	}
)
