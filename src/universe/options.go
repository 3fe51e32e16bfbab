package universe

import (
	"errors"
	"fmt"

	"gridlife/src/grid"
)

//ErrInvalidConfig is returned for options outside of the permitted range
var ErrInvalidConfig = errors.New("invalid configuration")

//Options represents the Universe's configurable options
type Options struct {
	Rows           int
	Cols           int
	Interval       int    //interval between the steps, milliseconds
	Engine         string //generation engine, one of grid.Engines()
	MaxSteps       int    //the running cycle stops on this generation, 0 is unlimited
	StopWhenStable bool   //the running cycle stops when a tick changes nothing
}

//default options
const (
	DefRows     = 30
	DefCols     = 30
	DefInterval = 200
	DefEngine   = "base"
)

//the interval is a multiple of IntervalStep in [MinInterval, MaxInterval]
const (
	MinInterval  = 200
	MaxInterval  = 2000
	IntervalStep = 200
)

var DefaultUniverseOptions = Options{
	Rows:     DefRows,
	Cols:     DefCols,
	Interval: DefInterval,
	Engine:   DefEngine,
}

//ValidateInterval checks the interval against the permitted range
func ValidateInterval(ms int) error {
	if ms < MinInterval || ms > MaxInterval || ms%IntervalStep != 0 {
		return fmt.Errorf("%w: interval %vms, expected a multiple of %v in [%v, %v]",
			ErrInvalidConfig, ms, IntervalStep, MinInterval, MaxInterval)
	}
	return nil
}

//Validate checks all options
func (o Options) Validate() error {
	if o.Rows <= 0 || o.Cols <= 0 {
		return fmt.Errorf("%w: dimension %v x %v", ErrInvalidConfig, o.Rows, o.Cols)
	}
	if o.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps %v", ErrInvalidConfig, o.MaxSteps)
	}
	if err := ValidateInterval(o.Interval); err != nil {
		return err
	}
	if _, err := grid.NewStepper(o.Engine); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
