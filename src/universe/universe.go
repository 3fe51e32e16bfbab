package universe

import "gridlife/src/grid"

//Universe is the engine contract consumed by viewers and the command line
type Universe interface {
	Grid() *grid.Grid
	Status() Status
	Options() Options
	StateCh() chan Status
	Settle(tmpl grid.Template)
	SettleRandom(seed int64)
	ToggleCell(row int, col int) error
	SetInterval(ms int) error
	RegisterViewer(v Viewer)
	Start(intervalMs int) error
	Run()
	Stop()
	Step()
	Close()
}
