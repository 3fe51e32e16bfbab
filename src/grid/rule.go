package grid

//CountLiveNeighbors counts live cells among the 8 cells around row, col
//the edges are bounded: positions outside the grid count as dead
func CountLiveNeighbors(g *Grid, row int, col int) int {
	live := 0
	for i := -1; i < 2; i++ {
		for j := -1; j < 2; j++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if g.at(row+i, col+j) == Alive {
				live++
			}
		}
	}
	return live
}

//NextState is the B3/S23 rule
func NextState(current Cell, liveNeighbors int) Cell {
	if current == Alive {
		return Cell(liveNeighbors == 2 || liveNeighbors == 3)
	}
	return Cell(liveNeighbors == 3)
}
