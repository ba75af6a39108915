package movement

// Direction is a unit step on the grid. The zero value None means no
// direction has been committed yet.
type Direction uint8

const (
	None Direction = iota
	North
	East
	South
	West
)

// Directions lists the four real directions in clockwise order.
var Directions = [4]Direction{North, East, South, West}

var (
	opposite = [...]Direction{
		None:  None,
		North: South,
		East:  West,
		South: North,
		West:  East,
	}
	perpendiculars = [...][2]Direction{
		None:  {},
		North: {East, West},
		East:  {North, South},
		South: {East, West},
		West:  {North, South},
	}
	// deltas holds {dRow, dCol}; rows grow southward.
	deltas = [...][2]int{
		None:  {0, 0},
		North: {-1, 0},
		East:  {0, 1},
		South: {1, 0},
		West:  {0, -1},
	}
	names = [...]string{
		None:  "none",
		North: "north",
		East:  "east",
		South: "south",
		West:  "west",
	}
)

// Opposite returns the reverse of d. Opposite(None) is None.
func (d Direction) Opposite() Direction { return opposite[d] }

// Perpendiculars returns the two directions at right angles to d.
func (d Direction) Perpendiculars() [2]Direction { return perpendiculars[d] }

// Delta returns the row and column offset of one step along d.
func (d Direction) Delta() (dRow, dCol int) { return deltas[d][0], deltas[d][1] }

func (d Direction) String() string {
	if int(d) >= len(names) {
		return "invalid"
	}
	return names[d]
}

// Arrow returns a single-character glyph for d, used when rendering paths.
func (d Direction) Arrow() byte {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	default:
		return '.'
	}
}
