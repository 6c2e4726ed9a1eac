package distmat

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors returned by table constructors and parsers.
var (
	// ErrEmpty is returned when a table has no rows.
	ErrEmpty = errors.New("distmat: empty table")

	// ErrNonSquare is returned when a row length differs from the row count.
	ErrNonSquare = errors.New("distmat: table is not square")

	// ErrTooLarge is returned when the table exceeds MaxNodes locations.
	ErrTooLarge = errors.New("distmat: table exceeds compiled node capacity")

	// ErrAsymmetricCost is returned by FromTables when cost(i,j) != cost(j,i).
	ErrAsymmetricCost = errors.New("distmat: cost table is not symmetric")

	// ErrDirectionMismatch is returned by FromTables when dir(j,i) is not the
	// inverse of dir(i,j).
	ErrDirectionMismatch = errors.New("distmat: direction table is not anti-symmetric")

	// ErrBadDirection is returned for symbols outside the 8-value alphabet.
	ErrBadDirection = errors.New("distmat: unknown direction symbol")

	// ErrOutOfRange is the panic value (wrapped) for lookups outside the table.
	ErrOutOfRange = errors.New("distmat: index out of range")
)

// MaxNodes is the compiled location capacity of this build.
const MaxNodes = 16

// Cost is an unsigned cost accumulator. Stored edge costs and priorities are
// 8-bit; sums are carried in Cost and saturate at Infinity.
type Cost uint16

// Infinity marks an unreachable node. Nothing compares better than Infinity.
const Infinity Cost = math.MaxUint16

// SatAdd returns a+b clamped to Infinity.
// Complexity: O(1).
func SatAdd(a, b Cost) Cost {
	s := a + b
	if s < a { // wrapped
		return Infinity
	}

	return s
}

// Direction is a compass-style relative direction symbol.
//
// Values pair each direction with its inverse on adjacent codes, so the
// inverse of d is d^1.
type Direction uint8

const (
	Up Direction = iota
	Down
	UpLeft
	DownRight
	UpRight
	DownLeft
	Left
	Right

	numDirections = 8
)

var directionNames = [numDirections]string{
	Up:        "up",
	Down:      "down",
	UpLeft:    "up-left",
	DownRight: "down-right",
	UpRight:   "up-right",
	DownLeft:  "down-left",
	Left:      "left",
	Right:     "right",
}

// Valid reports whether d belongs to the 8-symbol alphabet.
func (d Direction) Valid() bool { return d < numDirections }

// Inverse returns the opposite direction (up↔down, left↔right,
// up-left↔down-right, up-right↔down-left).
// Panics if d is not Valid.
func (d Direction) Inverse() Direction {
	if !d.Valid() {
		panic(fmt.Errorf("Direction(%d).Inverse: %w", d, ErrBadDirection))
	}

	return d ^ 1
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}

	return directionNames[d]
}

// ParseDirection converts a symbol name ("up", "down-left", ...) to a Direction.
// Matching is case-insensitive and accepts '_' in place of '-'.
func ParseDirection(s string) (Direction, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range directionNames {
		if name == key {
			return Direction(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, ErrBadDirection
	}

	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// Node identifies a location inside one route computation.
// Index is the stable position in the Matrix; Slot is the position within the
// working subset and has no meaning outside the View that assigned it.
type Node struct {
	Index uint8 // matrix index, fixed at configuration time
	Slot  uint8 // graph-slot index, assigned per computation
}

// String implements fmt.Stringer.
func (n Node) String() string {
	return fmt.Sprintf("%d@%d", n.Index, n.Slot)
}
