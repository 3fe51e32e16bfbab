//go:build ebiten

package view

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"gridlife/src/grid"
	"gridlife/src/universe"
)

//cell size in pixels, grid lines included
const (
	CellW = 16
	CellH = 16

	statusHeight = 24
)

var (
	bgColor   = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	cellColor = color.RGBA{0xa7, 0xc9, 0x57, 0xff}
	lineColor = color.Black
)

//Canvas draws the universe as the pixel grid and adapts it to the ebiten.Game interface
type Canvas struct {
	u     universe.Universe
	c     *Controls
	frame atomic.Pointer[grid.Grid]
}

//NewCanvas creates the canvas viewer
func NewCanvas() (universe.Viewer, error) {
	return &Canvas{}, nil
}

func (c *Canvas) Register(u universe.Universe) {
	c.u = u
	c.c = NewControls(u)
	c.frame.Store(u.Grid())
}

//Refresh takes the new generation, it is painted on the next frame
func (c *Canvas) Refresh() {
	c.frame.Store(c.u.Grid())
}

//Start runs the window until it is closed
func (c *Canvas) Start() {
	w, h := c.size()
	ebiten.SetWindowTitle("gridlife")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Panicln(err)
	}
}

//Update handles the input
func (c *Canvas) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		c.u.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		c.u.Run()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		c.u.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		c.c.ShiftInterval(universe.IntervalStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		c.c.ShiftInterval(-universe.IntervalStep)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		//clicks on the status line are ignored
		c.c.Click(x, y, CellW, CellH)
	}
	return nil
}

//Draw paints the cells, the grid lines and the status line
func (c *Canvas) Draw(screen *ebiten.Image) {
	a := c.frame.Load()
	w, h := a.Cols()*CellW+1, a.Rows()*CellH+1
	screen.Fill(bgColor)

	a.Walk(func(r int, col int, e grid.Cell) {
		if e == grid.Alive {
			vector.DrawFilledRect(screen, float32(col*CellW+1), float32(r*CellH+1), CellW-1, CellH-1, cellColor, false)
		}
	})
	for col := 0; col <= a.Cols(); col++ {
		vector.DrawFilledRect(screen, float32(col*CellW), 0, 1, float32(h), lineColor, false)
	}
	for r := 0; r <= a.Rows(); r++ {
		vector.DrawFilledRect(screen, 0, float32(r*CellH), float32(w), 1, lineColor, false)
	}

	st := c.u.Status()
	hint := "Enter: start"
	if st.RunningMode == universe.RunningStateRunning {
		hint = "S: stop"
	}
	line := fmt.Sprintf("Step: %vms  generation %v  %v  N: step", st.Interval, st.Generation, hint)
	text.Draw(screen, line, basicfont.Face7x13, 4, h+statusHeight/2+4, color.Black)
}

//Layout returns the logical screen size
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.size()
}

func (c *Canvas) size() (int, int) {
	a := c.frame.Load()
	return a.Cols()*CellW + 1, a.Rows()*CellH + 1 + statusHeight
}
