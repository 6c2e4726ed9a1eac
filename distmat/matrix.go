package distmat

import (
	"fmt"
	"strings"
)

// Matrix is the packed location table: n×n uint8 cells in row-major order.
// Upper triangle = cost, lower triangle = direction (canonical orientation),
// diagonal = priority. It is immutable after construction.
type Matrix struct {
	n    int     // number of locations
	data []uint8 // flat backing storage, length == n*n
}

// outOfRange panics with a wrapped ErrOutOfRange naming the failing lookup.
func outOfRange(method string, u, v, n int) {
	panic(fmt.Errorf("Matrix.%s(%d,%d) on %d locations: %w", method, u, v, n, ErrOutOfRange))
}

// NewPacked builds a Matrix from an already-packed table, the layout the
// cart firmware ships: rows[i][j] for i<j is the cost, rows[i][j] for i>j is
// the direction code from j to i, rows[i][i] is the priority.
//
// Returns ErrEmpty, ErrNonSquare, ErrTooLarge or ErrBadDirection.
// Complexity: O(n²).
func NewPacked(rows [][]uint8) (*Matrix, error) {
	n := len(rows)
	if err := checkShape(n); err != nil {
		return nil, err
	}

	m := &Matrix{n: n, data: make([]uint8, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("row %d has %d cells: %w", i, len(rows[i]), ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			if i > j && !Direction(rows[i][j]).Valid() {
				return nil, fmt.Errorf("cell (%d,%d)=%d: %w", i, j, rows[i][j], ErrBadDirection)
			}
			m.data[i*n+j] = rows[i][j]
		}
	}

	return m, nil
}

// FromTables packs two separate tables into a Matrix.
//
// cost must be symmetric off the diagonal (the diagonal is ignored), dir must
// be anti-symmetric: dir[j][i] == dir[i][j].Inverse() for every i≠j. An empty
// dir table defaults every direction to Up (and its inverse Down).
// prio supplies the diagonal and must have n entries.
//
// Complexity: O(n²).
func FromTables(cost [][]uint8, dir [][]Direction, prio []uint8) (*Matrix, error) {
	n := len(cost)
	if err := checkShape(n); err != nil {
		return nil, err
	}
	if len(prio) != n {
		return nil, fmt.Errorf("priorities: got %d, want %d: %w", len(prio), n, ErrNonSquare)
	}
	if len(dir) != 0 && len(dir) != n {
		return nil, fmt.Errorf("directions: got %d rows, want %d: %w", len(dir), n, ErrNonSquare)
	}

	m := &Matrix{n: n, data: make([]uint8, n*n)}
	var (
		i, j int
		d    Direction
	)
	for i = 0; i < n; i++ {
		if len(cost[i]) != n {
			return nil, fmt.Errorf("cost row %d: %w", i, ErrNonSquare)
		}
		if len(dir) != 0 && len(dir[i]) != n {
			return nil, fmt.Errorf("direction row %d: %w", i, ErrNonSquare)
		}
	}
	for i = 0; i < n; i++ {
		m.data[i*n+i] = prio[i]
		for j = i + 1; j < n; j++ {
			if cost[i][j] != cost[j][i] {
				return nil, fmt.Errorf("cost(%d,%d)=%d, cost(%d,%d)=%d: %w",
					i, j, cost[i][j], j, i, cost[j][i], ErrAsymmetricCost)
			}
			d = Up
			if len(dir) != 0 {
				d = dir[i][j]
				if !d.Valid() || !dir[j][i].Valid() {
					return nil, fmt.Errorf("direction (%d,%d): %w", i, j, ErrBadDirection)
				}
				if dir[j][i] != d.Inverse() {
					return nil, fmt.Errorf("dir(%d,%d)=%s, dir(%d,%d)=%s: %w",
						i, j, d, j, i, dir[j][i], ErrDirectionMismatch)
				}
			}
			m.data[i*n+j] = cost[i][j] // upper: cost
			m.data[j*n+i] = uint8(d)   // lower: direction i→j
		}
	}

	return m, nil
}

func checkShape(n int) error {
	if n == 0 {
		return ErrEmpty
	}
	if n > MaxNodes {
		return fmt.Errorf("%d locations: %w", n, ErrTooLarge)
	}

	return nil
}

// Size returns the number of locations.
func (m *Matrix) Size() int { return m.n }

// Len is Size; it lets *Matrix serve directly as a tour weigher where tour
// values are matrix indices.
func (m *Matrix) Len() int { return m.n }

// Cost returns the symmetric travel cost between u and v, or the priority of
// u when u == v. Panics on out-of-range indices.
// Complexity: O(1).
func (m *Matrix) Cost(u, v int) Cost {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		outOfRange("Cost", u, v, m.n)
	}
	if u > v {
		u, v = v, u
	}

	return Cost(m.data[u*m.n+v])
}

// Direction returns the direction of travel from u to v. The stored symbol is
// read in canonical orientation; a request in the opposite orientation gets
// the inverse. Panics if u == v or an index is out of range.
// Complexity: O(1).
func (m *Matrix) Direction(u, v int) Direction {
	if u < 0 || u >= m.n || v < 0 || v >= m.n || u == v {
		outOfRange("Direction", u, v, m.n)
	}
	if u < v {
		return Direction(m.data[v*m.n+u])
	}

	return Direction(m.data[u*m.n+v]).Inverse()
}

// Priority returns the diagonal priority of u.
// Complexity: O(1).
func (m *Matrix) Priority(u int) Cost {
	if u < 0 || u >= m.n {
		outOfRange("Priority", u, u, m.n)
	}

	return Cost(m.data[u*m.n+u])
}

// Packed returns a copy of the raw packed table (the NewPacked layout).
// Complexity: O(n²).
func (m *Matrix) Packed() [][]uint8 {
	out := make([][]uint8, m.n)
	for i := range out {
		out[i] = make([]uint8, m.n)
		copy(out[i], m.data[i*m.n:(i+1)*m.n])
	}

	return out
}

// String renders the table with costs above and direction names below the
// diagonal, one row per line.
func (m *Matrix) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.n; i++ {
		sb.WriteString("[")
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			if i > j {
				sb.WriteString(Direction(m.data[i*m.n+j]).String())
				continue
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.n+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
