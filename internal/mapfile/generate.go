package mapfile

import (
	"math/rand"
)

// GenerateSpec describes a random map of clustered walls.
type GenerateSpec struct {
	Rows     int
	Cols     int
	Clusters int
	Steps    int
	Density  float64
	Seed     int64
	Keep     [][2]int // cells that must stay passable, as [row, col]
}

// DefaultGenerateSpec matches the visualiser's default board.
func DefaultGenerateSpec() GenerateSpec {
	return GenerateSpec{Rows: 24, Cols: 40, Clusters: 8, Steps: 200, Density: 0.25, Seed: 1}
}

// Generate lays walls along random walks: each cluster starts at a random
// cell and takes Steps orthogonal steps, walling each visited cell with
// probability Density.
func Generate(spec GenerateSpec) [][]int {
	values := make([][]int, spec.Rows)
	for i := range values {
		values[i] = make([]int, spec.Cols)
	}
	if spec.Rows == 0 || spec.Cols == 0 {
		return values
	}

	keep := make(map[[2]int]bool, len(spec.Keep))
	for _, cell := range spec.Keep {
		keep[cell] = true
	}

	random := rand.New(rand.NewSource(spec.Seed))
	moves := [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for c := 0; c < spec.Clusters; c++ {
		position := [2]int{random.Intn(spec.Rows), random.Intn(spec.Cols)}
		for s := 0; s < spec.Steps; s++ {
			if random.Float64() < spec.Density && !keep[position] {
				values[position[0]][position[1]] = 1
			}
			move := moves[random.Intn(len(moves))]
			next := [2]int{position[0] + move[0], position[1] + move[1]}
			if next[0] >= 0 && next[0] < spec.Rows && next[1] >= 0 && next[1] < spec.Cols {
				position = next
			}
		}
	}
	return values
}
