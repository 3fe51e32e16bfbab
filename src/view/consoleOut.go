package view

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gridlife/src/universe"
)

//ConsoleOut is the headless viewer, it prints the simulation progress
type ConsoleOut struct {
	u         universe.Universe
	out       io.Writer
	startTime time.Time
	lastGen   int
	mu        sync.Mutex
}

func NewConsoleOut(out io.Writer) *ConsoleOut {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleOut{out: out}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	//refreshes come from the ticking goroutine and from the callers of Stop
	c.mu.Lock()
	defer c.mu.Unlock()
	if st.Generation != c.lastGen && st.Generation%10 == 0 {
		_, _ = fmt.Fprintf(c.out, "  Generations done: %v\n", st.Generation)
	}
	c.lastGen = st.Generation
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.out, "Running configuration:")
	_, _ = fmt.Fprintf(c.out, "  Dimension: %v x %v\n", o.Rows, o.Cols)
	_, _ = fmt.Fprintf(c.out, "  Interval: %vms\n", o.Interval)
	_, _ = fmt.Fprintf(c.out, "  Engine: %v\n", o.Engine)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.out, "\nSimulation started...")
}

//Finish prints the summary
func (c *ConsoleOut) Finish(reason string) {
	st := c.u.Status()
	c.mu.Lock()
	defer c.mu.Unlock()
	totalTime := time.Since(c.startTime).Round(time.Millisecond)
	_, _ = fmt.Fprintf(c.out, "\nFinished (%v):\n", reason)
	_, _ = fmt.Fprintf(c.out, "  Last generation: %v\n", st.Generation)
	_, _ = fmt.Fprintf(c.out, "  Live cells: %v\n", st.LiveCells)
	_, _ = fmt.Fprintf(c.out, "  Total time: %v\n", totalTime)
}
