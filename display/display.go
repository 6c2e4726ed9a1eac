// Package display turns route legs into frames for a 16x2 HD44780-class
// character display.
//
// The engine only produces distmat.Direction values. This package owns the
// byte codes: six arrows live in custom CGRAM slots 0-5, left and right use
// the arrows built into the A00 character ROM.
package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/cartroute/distmat"
)

// Display geometry.
const (
	Columns = 16
	Rows    = 2

	// Blank is the ROM code for a fully lit cell, shown for unmappable runes.
	Blank byte = 0xFF
)

// ROM codes for the horizontal arrows.
const (
	RightArrow byte = 0x7E
	LeftArrow  byte = 0x7F
)

var symbols = [...]byte{
	distmat.Up:        0x00,
	distmat.Down:      0x01,
	distmat.UpLeft:    0x02,
	distmat.DownRight: 0x03,
	distmat.UpRight:   0x04,
	distmat.DownLeft:  0x05,
	distmat.Left:      LeftArrow,
	distmat.Right:     RightArrow,
}

var runes = [...]rune{
	distmat.Up:        '↑',
	distmat.Down:      '↓',
	distmat.UpLeft:    '↖',
	distmat.DownRight: '↘',
	distmat.UpRight:   '↗',
	distmat.DownLeft:  '↙',
	distmat.Left:      '←',
	distmat.Right:     '→',
}

// Symbol returns the display byte for d, or Blank for an invalid direction.
func Symbol(d distmat.Direction) byte {
	if !d.Valid() {
		return Blank
	}

	return symbols[d]
}

// Rune returns a terminal arrow for d, or '?' for an invalid direction.
func Rune(d distmat.Direction) rune {
	if !d.Valid() {
		return '?'
	}

	return runes[d]
}

// CGRAM returns the 5x8 bitmaps for custom slots 0-5, one byte per row with
// the five pixels in the low bits. Row 7 stays clear for the cursor.
func CGRAM() [6][8]byte {
	return [6][8]byte{
		{0b00000, 0b00100, 0b01110, 0b10101, 0b00101, 0b00100, 0, 0}, // up
		{0b00000, 0b00100, 0b00100, 0b10101, 0b01110, 0b00100, 0, 0}, // down
		{0b00000, 0b01110, 0b11000, 0b10100, 0b10010, 0b00001, 0, 0}, // up-left
		{0b00000, 0b10000, 0b01001, 0b00101, 0b00011, 0b01110, 0, 0}, // down-right
		{0b00000, 0b01110, 0b00011, 0b00101, 0b01001, 0b10000, 0, 0}, // up-right
		{0b00000, 0b00001, 0b10010, 0b10100, 0b11000, 0b01110, 0, 0}, // down-left
	}
}

// Encode maps s to ROM codes. Printable ASCII passes through except '\' and
// '~', which the A00 ROM replaces with other glyphs; everything else is Blank.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= 0x20 && r < 0x7E && r != '\\' {
			out = append(out, byte(r))
		} else {
			out = append(out, Blank)
		}
	}

	return out
}

// Edge is one leg as the display sees it.
type Edge struct {
	From, To  string
	Cost      distmat.Cost
	Direction distmat.Direction
}

// Frame is one screen: a direction glyph in column 0 followed by a line of
// Columns-1 characters.
type Frame struct {
	Glyph     byte
	Direction distmat.Direction
	Line      string
}

// NewFrame lays out e as the destination name padded left and the cost right
// aligned. Unreachable costs show as "---".
func NewFrame(e Edge) Frame {
	cost := "---"
	if e.Cost != distmat.Infinity {
		cost = strconv.Itoa(int(e.Cost))
	}
	width := Columns - 1
	name := fit(e.To, width-len(cost)-1)

	return Frame{
		Glyph:     Symbol(e.Direction),
		Direction: e.Direction,
		Line:      name + strings.Repeat(" ", width-len([]rune(name))-len(cost)) + cost,
	}
}

// Frames builds one frame per edge.
func Frames(edges []Edge) []Frame {
	out := make([]Frame, len(edges))
	for i, e := range edges {
		out[i] = NewFrame(e)
	}

	return out
}

// Bytes returns the Columns bytes written to one display row.
func (f Frame) Bytes() []byte {
	return append([]byte{f.Glyph}, Encode(f.Line)...)
}

// String renders the frame for a terminal.
func (f Frame) String() string {
	return fmt.Sprintf("%c%s", Rune(f.Direction), f.Line)
}

// fit truncates s to at most n runes.
func fit(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}
