package grid

import (
	"errors"
	"testing"
)

//fromRows builds the grid from the picture, '#' is alive
func fromRows(rows ...string) *Grid {
	g := New(len(rows), len(rows[0]))
	for r, l := range rows {
		for c, ch := range l {
			if ch == '#' {
				g.entities[r][c] = Alive
			}
		}
	}
	return g
}

func TestNewIsAllDead(t *testing.T) {
	g := New(4, 7)
	if g.Rows() != 4 || g.Cols() != 7 {
		t.Fatalf("dimension %v x %v, expected 4 x 7", g.Rows(), g.Cols())
	}
	if len(g.entities) != 4 {
		t.Fatalf("rows %v, expected 4", len(g.entities))
	}
	for r := range g.entities {
		if len(g.entities[r]) != 7 {
			t.Fatalf("row %v has %v cells, expected 7", r, len(g.entities[r]))
		}
	}
	if g.LiveCells() != 0 {
		t.Fatalf("live cells %v, expected 0", g.LiveCells())
	}
}

func TestNewPanicsOnInvalidDimension(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(0, 3)
}

func TestGetOutOfBounds(t *testing.T) {
	g := New(3, 3)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {5, 5}} {
		if _, err := g.Get(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v, %v) err = %v, expected ErrOutOfBounds", p[0], p[1], err)
		}
	}
	if c, err := g.Get(2, 2); err != nil || c != Dead {
		t.Errorf("Get(2, 2) = %v, %v", c, err)
	}
}

func TestWithCellSetKeepsReceiver(t *testing.T) {
	g := New(3, 3)
	n, err := g.WithCellSet(1, 2, Alive)
	if err != nil {
		t.Fatal(err)
	}
	if c, _ := g.Get(1, 2); c != Dead {
		t.Fatal("receiver was changed")
	}
	if c, _ := n.Get(1, 2); c != Alive {
		t.Fatal("cell was not set")
	}
	if n.LiveCells() != 1 {
		t.Fatalf("live cells %v, expected 1", n.LiveCells())
	}
	if _, err := g.WithCellSet(3, 0, Alive); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, expected ErrOutOfBounds", err)
	}
}

func TestEqual(t *testing.T) {
	a := fromRows("#..", "...")
	b := fromRows("#..", "...")
	if !a.Equal(b) {
		t.Error("equal grids reported as different")
	}
	if a.Equal(fromRows("...", "...")) {
		t.Error("different grids reported as equal")
	}
	if a.Equal(fromRows("#..", "...", "...")) {
		t.Error("grids with different dimensions reported as equal")
	}
	if a.Equal(nil) {
		t.Error("grid equal to nil")
	}
}

func TestWalkOrder(t *testing.T) {
	g := New(2, 3)
	var visited [][2]int
	g.Walk(func(r int, c int, _ Cell) {
		visited = append(visited, [2]int{r, c})
	})
	if len(visited) != 6 || visited[0] != [2]int{0, 0} || visited[5] != [2]int{1, 2} {
		t.Fatalf("unexpected walk order %v", visited)
	}
}
