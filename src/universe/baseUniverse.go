package universe

import (
	"context"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"gridlife/src/grid"
)

//Status represents the status of the Universe at concrete moment
type Status struct {
	Generation    int
	RunningMode   RunningState
	LiveCells     int
	Changed       bool //the last generation differs from the previous one
	IterationTime time.Duration
	Interval      int
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
//Refresh is called after every grid replacement or running state switch, outside of the engine's main loop
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//The universe running status at the concrete moment
type RunningState int

const (
	RunningStateIdle RunningState = iota
	RunningStateRunning
)

func (s RunningState) String() string {
	if s == RunningStateRunning {
		return "running"
	}
	return "idle"
}

//cycle is the handle of the running auto-advance loop
type cycle struct {
	interval time.Duration
	cancel   context.CancelFunc
}

//BaseUniverse is the universe's engine
//implements Universe interface
//all the changes are executed one by one by the main loop goroutine
type BaseUniverse struct {
	state struct {
		Status
		options Options
		sync.Mutex
	}
	views struct {
		list []Viewer
		sync.Mutex
	}
	area      atomic.Pointer[grid.Grid]
	stepper   grid.Stepper
	cycle     *cycle //owned by the main loop
	stateCh   chan Status
	controlCh chan func()
	closeCh   chan struct{}
	closedCh  chan struct{}
	closeOnce sync.Once
}

//NewBaseUniverse creates the BaseUniverse instance with the all-dead grid
//stateCh is optional, the Status is written to it on every change
func NewBaseUniverse(o *Options, stateCh chan Status) (*BaseUniverse, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	stepper, err := grid.NewStepper(o.Engine)
	if err != nil {
		return nil, err
	}

	u := BaseUniverse{
		stepper:   stepper,
		stateCh:   stateCh,
		controlCh: make(chan func()),
		closeCh:   make(chan struct{}),
		closedCh:  make(chan struct{}),
	}
	u.state.options = *o
	u.state.Interval = o.Interval
	u.area.Store(grid.New(o.Rows, o.Cols))
	go u.mainLoop()
	return &u, nil
}

//Grid returns the current generation, the returned grid is never changed
func (u *BaseUniverse) Grid() *grid.Grid {
	return u.area.Load()
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.options
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
//the viewer gets refreshes only after its Register returns
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	v.Register(u)
	u.views.Lock()
	u.views.list = append(u.views.list, v)
	u.views.Unlock()
}

//Settle populates the universe with the seeding template
func (u *BaseUniverse) Settle(tmpl grid.Template) {
	u.replace(func(g *grid.Grid) *grid.Grid {
		return tmpl.Apply(g)
	})
}

//SettleRandom populates the universe with random data
func (u *BaseUniverse) SettleRandom(seed int64) {
	rnd := rand.New(rand.NewSource(seed))
	u.replace(func(g *grid.Grid) *grid.Grid {
		return grid.Random(g, rnd, g.Rows()*g.Cols()/3)
	})
}

//ToggleCell makes the cell at row, col alive
func (u *BaseUniverse) ToggleCell(row int, col int) (err error) {
	u.replace(func(g *grid.Grid) *grid.Grid {
		var n *grid.Grid
		n, err = g.WithCellSet(row, col, grid.Alive)
		return n
	})
	return
}

//SetInterval changes the interval between the steps
//the change is ignored while the universe is running
func (u *BaseUniverse) SetInterval(ms int) error {
	if err := ValidateInterval(ms); err != nil {
		return err
	}
	var st Status
	changed := false
	u.do(func() {
		if u.cycle != nil {
			return
		}
		u.state.Lock()
		u.state.options.Interval = ms
		u.state.Interval = ms
		st = u.state.Status
		u.state.Unlock()
		changed = true
	})
	if changed {
		u.notify(st)
	}
	return nil
}

//Start starts the universe simulation with the given interval, returns immediately
//does nothing if the universe is running already
func (u *BaseUniverse) Start(intervalMs int) (err error) {
	var st Status
	started := false
	u.do(func() {
		if u.cycle != nil {
			return
		}
		if err = ValidateInterval(intervalMs); err != nil {
			return
		}
		u.state.Lock()
		u.state.options.Interval = intervalMs
		u.state.Interval = intervalMs
		u.state.Unlock()
		u.run(time.Duration(intervalMs) * time.Millisecond)
		st = u.switchRunningState(RunningStateRunning)
		started = true
	})
	if started {
		u.notify(st)
	}
	return
}

//Run starts the universe simulation with the configured interval
func (u *BaseUniverse) Run() {
	_ = u.Start(u.Options().Interval)
}

//Stop stops the universe simulation
//no step is done by the stopped cycle after Stop returns
func (u *BaseUniverse) Stop() {
	var st Status
	stopped := false
	u.do(func() {
		stopped = u.stop()
		st = u.Status()
	})
	if stopped {
		u.notify(st)
	}
}

//Step does one simulation step and waits for it
func (u *BaseUniverse) Step() {
	var st Status
	if u.do(func() { st = u.step() }) {
		u.notify(st)
	}
}

//Close stops the simulation and the main loop
func (u *BaseUniverse) Close() {
	u.closeOnce.Do(func() { close(u.closeCh) })
	<-u.closedCh
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	defer close(u.closedCh)
	for {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case <-u.closeCh:
			u.stop()
			return
		}
	}
}

//do passes the command to the main loop and waits for the execution
//returns false if the universe is closed
func (u *BaseUniverse) do(cmd func()) bool {
	done := make(chan struct{})
	select {
	case u.controlCh <- func() { cmd(); close(done) }:
	case <-u.closedCh:
		return false
	}
	<-done
	return true
}

//replace replaces the grid with the result of f, nil result keeps the grid
func (u *BaseUniverse) replace(f func(g *grid.Grid) *grid.Grid) {
	var st Status
	replaced := false
	u.do(func() {
		n := f(u.area.Load())
		if n == nil {
			return
		}
		u.area.Store(n)
		u.state.Lock()
		u.state.LiveCells = n.LiveCells()
		st = u.state.Status
		u.state.Unlock()
		replaced = true
	})
	if replaced {
		u.notify(st)
	}
}

//run starts the ticking goroutine, main loop only
func (u *BaseUniverse) run(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	c := &cycle{interval: interval, cancel: cancel}
	u.cycle = c
	go u.tick(ctx, c)
}

//tick asks the main loop for the step on every tick until the cycle is canceled
//a tick is skipped if the previous one is still calculating
func (u *BaseUniverse) tick(ctx context.Context, c *cycle) {
	t := time.NewTicker(c.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		var st Status
		stepped := false
		ok := u.do(func() {
			//the cycle could be stopped while this tick was waiting for the loop
			if u.cycle != c {
				return
			}
			st = u.step()
			stepped = true
			if u.finished(st) {
				u.stop()
				st = u.Status()
			}
		})
		if !ok {
			return
		}
		if stepped {
			u.notify(st)
		}
	}
}

//finished reports whether the running cycle reached its boundary conditions
func (u *BaseUniverse) finished(st Status) bool {
	o := u.Options()
	if o.MaxSteps > 0 && st.Generation >= o.MaxSteps {
		return true
	}
	return o.StopWhenStable && !st.Changed
}

//stop cancels the running cycle, main loop only
func (u *BaseUniverse) stop() bool {
	if u.cycle == nil {
		return false
	}
	u.cycle.cancel()
	u.cycle = nil
	u.switchRunningState(RunningStateIdle)
	return true
}

//step does the new one state calculation for entire universe, main loop only
//the new grid is calculated from the current one and then replaces it
func (u *BaseUniverse) step() Status {
	start := time.Now()
	cur := u.area.Load()
	next := u.stepper.Advance(cur)
	u.area.Store(next)

	u.state.Lock()
	defer u.state.Unlock()
	u.state.Generation++
	u.state.LiveCells = next.LiveCells()
	u.state.Changed = !next.Equal(cur)
	u.state.IterationTime = time.Since(start)
	return u.state.Status
}

//switchRunningState switch the state of the universe to RunningState
func (u *BaseUniverse) switchRunningState(to RunningState) Status {
	u.state.Lock()
	defer u.state.Unlock()
	u.state.RunningMode = to
	return u.state.Status
}

//notify calls Refresh event for all registered views and writes the status to the stateCh
func (u *BaseUniverse) notify(st Status) {
	u.views.Lock()
	views := append([]Viewer(nil), u.views.list...)
	u.views.Unlock()
	for _, v := range views {
		v.Refresh()
	}
	if u.stateCh != nil {
		select {
		case u.stateCh <- st:
		case <-u.closeCh:
		}
	}
}
