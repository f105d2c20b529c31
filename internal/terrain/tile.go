package terrain

// Tile identifies the terrain type of one map cell.
type Tile uint8

const (
	Ocean Tile = iota
	Land
	Shore
	Mountain
)

var tileNames = [...]string{"ocean", "land", "shore", "mountain"}

// String returns the lower-case terrain name.
func (t Tile) String() string {
	if t.Valid() {
		return tileNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the four terrain types.
func (t Tile) Valid() bool { return t <= Mountain }

// All lists every terrain type in code order.
func All() []Tile { return []Tile{Ocean, Land, Shore, Mountain} }
