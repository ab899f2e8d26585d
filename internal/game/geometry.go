package game

// BoardLength is the side of the square index space bounding the star.
const BoardLength = 17

const (
	center     = BoardLength / 2 // 8
	hexRadius  = 4               // central hexagon radius
	HomeSize   = 10              // cells per home triangle
	ValidCells = 121             // 61-cell hexagon + 6 triangles of 10
)

// Coord is a (row, col) cell index. Row/col follow the skewed axial layout:
// moving along a row is one hex axis, moving along a column is another, and
// (+1,-1) / (-1,+1) is the third.
type Coord struct {
	Row, Col int
}

// Directions lists the six hex-grid steps as (dRow, dCol).
var Directions = [6]Coord{
	{0, 1},  // right
	{0, -1}, // left
	{1, 0},  // down-right
	{-1, 0}, // up-left
	{1, -1}, // down-left
	{-1, 1}, // up-right
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord { return Coord{c.Row + d.Row, c.Col + d.Col} }

// InRange reports whether c lies inside the 17×17 index space.
func (c Coord) InRange() bool {
	return c.Row >= 0 && c.Row < BoardLength && c.Col >= 0 && c.Col < BoardLength
}

// cube returns the cube coordinates of c relative to the board centre.
func (c Coord) cube() (x, y, z int) {
	x = c.Col - center
	y = c.Row - center
	return x, y, -x - y
}

var (
	mask       [BoardLength][BoardLength]bool
	validList  []Coord
	homeCells  [2][]Coord
	homeLookup [2][BoardLength][BoardLength]bool
)

func init() {
	initGeometry()
}

// initGeometry builds the star mask and the two home triangles.
// The star is the union of two side-13 triangles pointing opposite ways.
func initGeometry() {
	for r := 0; r < BoardLength; r++ {
		for col := 0; col < BoardLength; col++ {
			c := Coord{r, col}
			x, y, z := c.cube()
			up := x >= -hexRadius && y >= -hexRadius && z >= -hexRadius
			down := x <= hexRadius && y <= hexRadius && z <= hexRadius
			if !up && !down {
				continue
			}
			mask[r][col] = true
			validList = append(validList, c)

			// Player1 starts on the bottom point, Player2 on the top point.
			switch {
			case y > hexRadius:
				homeCells[Player1.index()] = append(homeCells[Player1.index()], c)
				homeLookup[Player1.index()][r][col] = true
			case y < -hexRadius:
				homeCells[Player2.index()] = append(homeCells[Player2.index()], c)
				homeLookup[Player2.index()][r][col] = true
			}
		}
	}
}

// IsValid reports whether c is a playable cell of the star.
func IsValid(c Coord) bool {
	return c.InRange() && mask[c.Row][c.Col]
}

// ValidCoords returns every playable cell in row-major order.
func ValidCoords() []Coord {
	out := make([]Coord, len(validList))
	copy(out, validList)
	return out
}

// Neighbors returns the valid cells adjacent to c.
func Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n := c.Add(d); IsValid(n) {
			out = append(out, n)
		}
	}
	return out
}

// HomeTriangle returns the ten cells where p's pieces start.
func HomeTriangle(p Player) []Coord {
	src := homeCells[p.index()]
	out := make([]Coord, len(src))
	copy(out, src)
	return out
}

// TargetTriangle returns the cells p has to fill to win: the opponent's home.
func TargetTriangle(p Player) []Coord {
	return HomeTriangle(p.Opponent())
}

// InHome reports whether c belongs to p's home triangle.
func InHome(c Coord, p Player) bool {
	return c.InRange() && homeLookup[p.index()][c.Row][c.Col]
}

// inHexagon reports whether c lies in the central hexagon.
func inHexagon(c Coord) bool {
	x, y, z := c.cube()
	return abs(x) <= hexRadius && abs(y) <= hexRadius && abs(z) <= hexRadius
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
