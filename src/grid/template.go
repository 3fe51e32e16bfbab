package grid

import "math/rand"

//Template represents the seeding pattern which can be used to settle the grid with predefined data
type Template struct {
	Name        string   //template name
	Descr       string   //template descr
	Coordinates [][2]int //array of [row, col] coordinates
}

//sampleCoordinates holds three stable patterns
var sampleCoordinates = [][2]int{
	{1, 1}, {2, 1},
	{1, 2}, {2, 2},
	{3, 3},
	{2, 4},
	{3, 4},
	{3, 5},
}

//Templates are the built-in seeding patterns
var Templates = map[string]Template{
	"block":   {"block", "2x2 still life", [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}},
	"blinker": {"blinker", "period 2 oscillator", [][2]int{{2, 1}, {2, 2}, {2, 3}}},
	"glider":  {"glider", "the smallest spaceship", [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}},
	"sample":  {"sample", "the test sample with 3 stable patterns", sampleCoordinates},
}

//Apply returns the grid with all template cells alive
//the cells outside the grid are cropped
func (t Template) Apply(g *Grid) *Grid {
	n := g.clone()
	for _, v := range t.Coordinates {
		if n.contains(v[0], v[1]) {
			n.entities[v[0]][v[1]] = Alive
		}
	}
	return n
}

//Random returns the grid with up to n random cells made alive
func Random(g *Grid, rnd *rand.Rand, n int) *Grid {
	ng := g.clone()
	for i := 0; i < n; i++ {
		ng.entities[rnd.Intn(g.rows)][rnd.Intn(g.cols)] = Alive
	}
	return ng
}
