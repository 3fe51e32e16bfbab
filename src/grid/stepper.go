package grid

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

//ErrUnknownEngine is returned by NewStepper for unregistered engine names
var ErrUnknownEngine = errors.New("unknown engine")

//Stepper produces the next generation of the grid
//implementations must read only the input grid and return the new one
type Stepper interface {
	Advance(g *Grid) *Grid
}

//StepperFunc adapts a plain function to Stepper
type StepperFunc func(g *Grid) *Grid

func (f StepperFunc) Advance(g *Grid) *Grid { return f(g) }

//DefMinRowsPerWorker is the minimum band height for the parallel engine
const DefMinRowsPerWorker = 3

var engines = map[string]func() Stepper{
	"base":     func() Stepper { return StepperFunc(Advance) },
	"parallel": func() Stepper { return NewParallelStepper(runtime.NumCPU()) },
}

//Engines returns the sorted names of the available engines
func Engines() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//NewStepper creates the engine by name
func NewStepper(name string) (Stepper, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return f(), nil
}

//Advance does one generation on a freshly allocated grid
func Advance(g *Grid) *Grid {
	next := createGrid(g.rows, g.cols)
	advanceRows(g, next, 0, g.rows)
	return next
}

//advanceRows calculates rows [from, to) of next from the cur snapshot
func advanceRows(cur *Grid, next *Grid, from int, to int) {
	for r := from; r < to; r++ {
		for c := range cur.entities[r] {
			next.entities[r][c] = NextState(cur.entities[r][c], CountLiveNeighbors(cur, r, c))
		}
	}
}

//ParallelStepper splits the grid into row bands, each band is calculated by its own goroutine
type ParallelStepper struct {
	workers int
}

func NewParallelStepper(workers int) *ParallelStepper {
	if workers < 1 {
		workers = 1
	}
	return &ParallelStepper{workers: workers}
}

func (p *ParallelStepper) Advance(g *Grid) *Grid {
	next, err := p.AdvanceContext(context.Background(), g)
	if err != nil {
		//only the cancellation fails the workers, the background context is never canceled
		panic(err)
	}
	return next
}

//AdvanceContext does one generation, the workers give up when ctx is canceled
func (p *ParallelStepper) AdvanceContext(ctx context.Context, g *Grid) (*Grid, error) {
	next := createGrid(g.rows, g.cols)
	rowsPerWorker := (g.rows + p.workers - 1) / p.workers
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	}
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)
	for from := 0; from < g.rows; from += rowsPerWorker {
		from, to := from, from+rowsPerWorker
		if to > g.rows {
			to = g.rows
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			advanceRows(g, next, from, to)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}
