package view

import "gridlife/src/universe"

//Controls maps the user input of the interactive viewers to the universe commands
type Controls struct {
	u universe.Universe
}

func NewControls(u universe.Universe) *Controls {
	return &Controls{u: u}
}

//ShiftInterval moves the interval by delta, the result is clamped to the permitted range
//ignored while the universe is running
func (c *Controls) ShiftInterval(delta int) {
	ms := c.u.Options().Interval + delta
	if ms < universe.MinInterval {
		ms = universe.MinInterval
	} else if ms > universe.MaxInterval {
		ms = universe.MaxInterval
	}
	_ = c.u.SetInterval(ms)
}

//Click makes the cell under the pointer alive
//returns false for clicks outside of the field
func (c *Controls) Click(x int, y int, cellW int, cellH int) bool {
	if x < 0 || y < 0 {
		return false
	}
	a := c.u.Grid()
	row, col := CellAt(x, y, cellW, cellH, a.Rows(), a.Cols())
	return c.u.ToggleCell(row, col) == nil
}
