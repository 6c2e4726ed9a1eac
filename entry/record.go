package entry

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Record sizes in bytes.
const (
	PreSize  = 256
	PostSize = 8
	DescSize = PreSize - 4

	// MaxSince is the largest value a 24-bit Since field holds.
	MaxSince = 1<<24 - 1
)

// Blank is the character-generator code written for description runes the
// display cannot render.
const Blank byte = 0xFF

// Sentinel errors.
var (
	ErrShortBuffer = errors.New("entry: buffer too short")
	ErrDescTooLong = errors.New("entry: description exceeds 252 bytes")
	ErrBadStatus   = errors.New("entry: unknown status")
	ErrSince       = errors.New("entry: since exceeds 24 bits")
	ErrOutOfBounds = errors.New("entry: address out of region bounds")
	ErrDeviceSize  = errors.New("entry: device too small for layout")
	ErrIndex       = errors.New("entry: record index out of range")
	ErrBlank       = errors.New("entry: record encodes as erased space")
)

// PreEntry is a pending delivery.
type PreEntry struct {
	Dict  uint8          // location matrix index
	TTD   uint16         // time to deadline
	Flags uint8          // low three bits: base priority
	Desc  [DescSize]byte // pre-mapped display codes
}

// PostEntry is the recorded outcome of a delivery.
type PostEntry struct {
	Dict   uint8
	Prio   uint8
	EID    uint8 // entry id
	OID    uint8 // operator id
	Status Status
	Since  uint32 // 24-bit
}

// NewPreEntry builds a pre entry whose description is desc mapped to display
// codes: printable ASCII passes through, other runes become Blank, and the
// remainder is padded with spaces.
func NewPreEntry(dict uint8, ttd uint16, flags uint8, desc string) (PreEntry, error) {
	pre := PreEntry{Dict: dict, TTD: ttd, Flags: flags}
	var i int
	for _, r := range desc {
		if i == DescSize {
			return PreEntry{}, fmt.Errorf("%d runes: %w", len([]rune(desc)), ErrDescTooLong)
		}
		if r >= 0x20 && r < 0x7E && r != '\\' {
			pre.Desc[i] = byte(r)
		} else {
			pre.Desc[i] = Blank
		}
		i++
	}
	for ; i < DescSize; i++ {
		pre.Desc[i] = ' '
	}

	return pre, nil
}

// Description returns the description with trailing padding removed.
func (p PreEntry) Description() string {
	end := DescSize
	for end > 0 && (p.Desc[end-1] == ' ' || p.Desc[end-1] == 0) {
		end--
	}

	return string(p.Desc[:end])
}

// MarshalBinary encodes p into PreSize bytes.
func (p PreEntry) MarshalBinary() ([]byte, error) {
	b := make([]byte, PreSize)
	b[0] = p.Dict
	binary.BigEndian.PutUint16(b[1:3], p.TTD)
	b[3] = p.Flags
	copy(b[4:], p.Desc[:])

	return b, nil
}

// UnmarshalBinary decodes the first PreSize bytes of b.
func (p *PreEntry) UnmarshalBinary(b []byte) error {
	if len(b) < PreSize {
		return fmt.Errorf("pre entry: %d bytes: %w", len(b), ErrShortBuffer)
	}
	p.Dict = b[0]
	p.TTD = binary.BigEndian.Uint16(b[1:3])
	p.Flags = b[3]
	copy(p.Desc[:], b[4:PreSize])

	return nil
}

// MarshalBinary encodes p into PostSize bytes.
func (p PostEntry) MarshalBinary() ([]byte, error) {
	if p.Since > MaxSince {
		return nil, fmt.Errorf("since %d: %w", p.Since, ErrSince)
	}
	b := make([]byte, PostSize)
	b[0], b[1], b[2], b[3], b[4] = p.Dict, p.Prio, p.EID, p.OID, uint8(p.Status)
	putUint24(b[5:8], p.Since)

	return b, nil
}

// UnmarshalBinary decodes the first PostSize bytes of b.
func (p *PostEntry) UnmarshalBinary(b []byte) error {
	if len(b) < PostSize {
		return fmt.Errorf("post entry: %d bytes: %w", len(b), ErrShortBuffer)
	}
	p.Dict, p.Prio, p.EID, p.OID = b[0], b[1], b[2], b[3]
	p.Status = Status(b[4])
	p.Since = uint24(b[5:8])

	return nil
}

func putUint24(b []byte, v uint32) {
	_ = b[2]
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

func uint24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// DerivePriority returns flags&7 plus the deadline share scaled to 0..10.
// The result ranges over 0..17.
func DerivePriority(flags uint8, ttd uint16) uint8 {
	return flags&0x7 + uint8(uint32(ttd)*10/0xFFFF)
}

// Transmute turns a pending delivery into its outcome record. Since starts at
// zero.
func Transmute(pre PreEntry, eid, oid uint8, status Status) PostEntry {
	return PostEntry{
		Dict:   pre.Dict,
		Prio:   DerivePriority(pre.Flags, pre.TTD),
		EID:    eid,
		OID:    oid,
		Status: status,
	}
}

func isErased(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}

	return true
}
