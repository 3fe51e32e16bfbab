package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gridlife/src/grid"
	"gridlife/src/universe"
	"gridlife/src/view"
)

func newHeadlessUniverse(t *testing.T, tmpl string, maxSteps int) universe.Universe {
	t.Helper()
	o := universe.DefaultUniverseOptions
	o.Rows, o.Cols = 8, 8
	o.MaxSteps = maxSteps
	o.StopWhenStable = true
	u, err := universe.NewBaseUniverse(&o, make(chan universe.Status, 10))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(u.Close)
	seed(u, &EnvOptions{template: tmpl})
	return u
}

func TestRunHeadlessStopsOnStillLife(t *testing.T) {
	u := newHeadlessUniverse(t, "block", DefMaxSteps)
	var b bytes.Buffer
	runHeadless(u, view.NewConsoleOut(&b))

	if !strings.Contains(b.String(), "Finished (nothing changed)") {
		t.Fatalf("unexpected output:\n%v", b.String())
	}
	st := u.Status()
	if st.RunningMode != universe.RunningStateIdle || st.Generation != 1 {
		t.Fatalf("unexpected status %+v", st)
	}
	if !u.Grid().Equal(grid.Templates["block"].Apply(grid.New(8, 8))) {
		t.Fatal("the block was changed")
	}
}

func TestRunHeadlessStopsOnGenerationLimit(t *testing.T) {
	u := newHeadlessUniverse(t, "blinker", 2)
	var b bytes.Buffer
	runHeadless(u, view.NewConsoleOut(&b))

	if !strings.Contains(b.String(), "Finished (generation limit)") {
		t.Fatalf("unexpected output:\n%v", b.String())
	}
	//the limit is checked by the running cycle itself, no tick can overrun it
	time.Sleep(2 * universe.MinInterval * time.Millisecond)
	if st := u.Status(); st.Generation != 2 || st.RunningMode != universe.RunningStateIdle {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestSeedRandom(t *testing.T) {
	u := newHeadlessUniverse(t, "", 0)
	seed(u, &EnvOptions{randomData: true, seed: 3})
	if u.Grid().LiveCells() == 0 {
		t.Fatal("no cells were settled")
	}
}
