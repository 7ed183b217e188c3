// Package hdbool implements the Heavy Duty Bool: a boolean stored redundantly as
// all-1 or all-0 bits of a byte, so that a minority of flipped bits can be outvoted
// when the value is read back.
//
// An HDBool obtained from New or FromUint8 is always canonical (0xFF or 0x00).
// A plain conversion HDBool(w) keeps w as is; such a value may be non-canonical,
// and is normalized on read by Bool.
package hdbool

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// HDBool is a redundantly encoded boolean.
type HDBool uint8

const (
	False HDBool = 0x00
	True  HDBool = 0xFF
)

// threshold is the number of set bits a word must exceed to resolve to true.
// A 4/4 tie resolves to false.
const threshold = 4

var ErrInvalidLength = errors.New("hdbool: invalid length")

// Refresh returns 0xFF if more than 4 bits of raw are set, and 0x00 otherwise.
func Refresh(raw uint8) uint8 {
	if bits.OnesCount8(raw) > threshold {
		return uint8(True)
	}
	return uint8(False)
}

// Encode returns the canonical word for b.
func Encode(b bool) uint8 {
	if b {
		return uint8(True)
	}
	return uint8(False)
}

// Decode returns the boolean meaning of raw, refreshing it first when it is
// not canonical.
func Decode(raw uint8) bool {
	switch HDBool(raw) {
	case True:
		return true
	case False:
		return false
	}
	return Refresh(raw) == uint8(True)
}

// New returns the canonical HDBool for b.
func New(b bool) HDBool {
	return HDBool(Encode(b))
}

// FromUint8 returns the refreshed HDBool for a word that may have suffered bit flips.
func FromUint8(raw uint8) HDBool {
	return HDBool(Refresh(raw))
}

// Bool returns the logical value of h.
func (h HDBool) Bool() bool {
	return Decode(uint8(h))
}

// Uint8 returns the stored word verbatim.
func (h HDBool) Uint8() uint8 {
	return uint8(h)
}

func (h HDBool) IsCanonical() bool {
	return h == True || h == False
}

// Refreshed returns the canonical form of h.
func (h HDBool) Refreshed() HDBool {
	return FromUint8(uint8(h))
}

// Ones returns the number of set bits in the stored word.
func (h HDBool) Ones() int {
	return bits.OnesCount8(uint8(h))
}

func (h HDBool) String() string {
	if h.IsCanonical() {
		return strconv.FormatBool(h.Bool())
	}
	return fmt.Sprintf("%t(0b%08b)", h.Bool(), uint8(h))
}

// MarshalBinary encodes h as a single byte, without refreshing it.
func (h HDBool) MarshalBinary() ([]byte, error) {
	return []byte{uint8(h)}, nil
}

// UnmarshalBinary decodes a single byte, refreshing it.
func (h *HDBool) UnmarshalBinary(data []byte) error {
	if len(data) != 1 {
		return fmt.Errorf("%w: expected 1 byte, given: %d", ErrInvalidLength, len(data))
	}
	*h = FromUint8(data[0])
	return nil
}

func (h HDBool) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatBool(h.Bool())), nil
}

func (h *HDBool) UnmarshalText(text []byte) error {
	b, err := strconv.ParseBool(string(text))
	if err != nil {
		return fmt.Errorf("hdbool: %w", err)
	}
	*h = New(b)
	return nil
}
