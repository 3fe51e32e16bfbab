package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"gridlife/src/grid"
	"gridlife/src/universe"
	"gridlife/src/view"
)

type EnvOptions struct {
	interactive bool
	gui         bool
	randomData  bool
	seed        int64
	template    string
}

const DefMaxSteps = 1000

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive && !eo.gui {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
		uo.StopWhenStable = true
	} else {
		//the step limit is for the headless mode only
		uo.MaxSteps = 0
	}

	u, err := universe.NewBaseUniverse(uo, stateCh)
	if err != nil {
		log.Fatal(err)
	}
	defer u.Close()

	seed(u, eo)

	switch {
	case eo.gui:
		v, err := view.NewCanvas()
		if err != nil {
			log.Fatal(err)
		}
		u.RegisterViewer(v)
		v.Start()
	case eo.interactive:
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
	default:
		fmt.Printf("\"The Life\" game simulation started...\n")
		runHeadless(u, view.NewConsoleOut(nil))
	}
}

//seed settles the universe with the template or random data
func seed(u universe.Universe, eo *EnvOptions) {
	if eo.randomData {
		u.SettleRandom(eo.seed)
		return
	}
	if tmpl, ok := grid.Templates[eo.template]; ok {
		u.Settle(tmpl)
	}
}

//runHeadless runs the universe until the running cycle stops itself
//the universe has to be created with MaxSteps or StopWhenStable
func runHeadless(u universe.Universe, out *view.ConsoleOut) {
	stateCh := u.StateCh()
	u.RegisterViewer(out)
	out.Start()
	u.Run()
	for {
		st := <-stateCh
		if st.RunningMode != universe.RunningStateIdle || st.Generation == 0 {
			continue
		}
		reason := "nothing changed"
		if o := u.Options(); o.MaxSteps > 0 && st.Generation >= o.MaxSteps {
			reason = "generation limit"
		}
		out.Finish(reason)
		return
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	uo.MaxSteps = DefMaxSteps
	eo = &EnvOptions{template: "sample", seed: time.Now().UnixNano()}
	templateNames := make([]string, 0, len(grid.Templates))
	for k := range grid.Templates {
		templateNames = append(templateNames, k)
	}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Rows, "y", "rows", "Number of rows of a simulation field")
	flaggy.Int(&uo.Cols, "x", "cols", "Number of columns of a simulation field")
	flaggy.Int(&uo.Interval, "i", "interval", fmt.Sprintf("Simulation speed (interval between the steps) in milliseconds, a multiple of %v from %v to %v", universe.IntervalStep, universe.MinInterval, universe.MaxInterval))
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the headless simulation to maxSteps, 0 is unlimited")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive terminal mode")
	flaggy.Bool(&eo.gui, "g", "gui", "Start the graphical canvas")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Int64(&eo.seed, "", "seed", "Random data seed")
	flaggy.String(&eo.template, "t", "template", "Template to settle ["+strings.Join(templateNames, "|")+"]")
	flaggy.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(grid.Engines(), "|")+"]")

	flaggy.Parse()

	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if _, ok := grid.Templates[eo.template]; !ok && !eo.randomData {
		flaggy.ShowHelpAndExit("unknown template")
	}

	return
}
