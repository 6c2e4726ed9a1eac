package entry

import "fmt"

// Default 4 KiB layout bounds, inclusive.
const (
	PreLo  uint16 = 0x000
	PreHi  uint16 = 0xBFF
	PostLo uint16 = 0xC00
	PostHi uint16 = 0xF9B

	// DeviceSize is the smallest device that fits the default layout.
	DeviceSize = 0x1000
)

// Region is an append pointer confined to the inclusive range [Lo, Hi].
type Region struct {
	Lo, Hi uint16
	Addr   uint16
}

// NewRegion returns a region with its pointer at lo.
func NewRegion(lo, hi uint16) Region {
	return Region{Lo: lo, Hi: hi, Addr: lo}
}

// Reset moves the pointer back to Lo and returns the old address.
func (r *Region) Reset() uint16 {
	old := r.Addr
	r.Addr = r.Lo

	return old
}

// Set moves the pointer to addr.
func (r *Region) Set(addr uint16) error {
	if addr < r.Lo || addr > r.Hi+1 {
		return fmt.Errorf("set %#03x outside %#03x-%#03x: %w", addr, r.Lo, r.Hi, ErrOutOfBounds)
	}
	r.Addr = addr

	return nil
}

// Fits reports whether n bytes can be written at the current pointer.
func (r *Region) Fits(n int) bool {
	return n > 0 && int(r.Addr)+n-1 <= int(r.Hi)
}

// Capacity returns how many records of size n the whole region holds.
func (r *Region) Capacity(n int) int {
	return (int(r.Hi) - int(r.Lo) + 1) / n
}

// Slot returns the address of record i of size n.
func (r *Region) Slot(i, n int) (uint16, error) {
	if i < 0 || i >= r.Capacity(n) {
		return 0, fmt.Errorf("record %d of %d: %w", i, r.Capacity(n), ErrIndex)
	}

	return r.Lo + uint16(i*n), nil
}
