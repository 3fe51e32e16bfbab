package view

//CellAt translates the pointer position in pixels to the cell coordinates
//cells are cellW x cellH pixels, a hit on the last grid line is clamped into the grid
func CellAt(x int, y int, cellW int, cellH int, rows int, cols int) (row int, col int) {
	row = y / cellH
	col = x / cellW
	if row == rows {
		row = rows - 1
	}
	if col == cols {
		col = cols - 1
	}
	return
}
