package hdbool_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/hdbool"
)

func allWords() []uint8 {
	words := make([]uint8, 0, 256)
	for w := 0; w < 256; w++ {
		words = append(words, uint8(w))
	}
	return words
}

func TestRefresh(t *testing.T) {
	req := require.New(t)

	req.Equal(uint8(0x00), hdbool.Refresh(0b10011001)) // tie
	req.Equal(uint8(0xFF), hdbool.Refresh(0b11111100))
	req.Equal(uint8(0xFF), hdbool.Refresh(0xFF))
	req.Equal(uint8(0x00), hdbool.Refresh(0x00))
	req.Equal(uint8(0x00), hdbool.Refresh(0b00000111))
	req.Equal(uint8(0x00), hdbool.Refresh(0b01000011))
	req.Equal(uint8(0x00), hdbool.Refresh(0b00001111))
	req.Equal(uint8(0x00), hdbool.Refresh(0b11110000))
	req.Equal(uint8(0xFF), hdbool.Refresh(0b11111000))
	req.Equal(uint8(0xFF), hdbool.Refresh(0b01111111))
}

func TestRefresh_AllWords(t *testing.T) {
	req := require.New(t)

	for _, w := range allWords() {
		r := hdbool.Refresh(w)
		req.Contains([]uint8{0x00, 0xFF}, r, "word %#08b", w)
		req.Equal(r, hdbool.Refresh(r), "word %#08b", w)
		req.Equal(bits.OnesCount8(w) > 4, r == 0xFF, "word %#08b", w)
	}
}

func TestRefresh_Ties(t *testing.T) {
	req := require.New(t)

	var ties int
	for _, w := range allWords() {
		if bits.OnesCount8(w) != 4 {
			continue
		}
		ties++
		req.Equal(uint8(0x00), hdbool.Refresh(w), "word %#08b", w)
		req.False(hdbool.Decode(w), "word %#08b", w)
	}
	req.Equal(70, ties)
}

func TestSingleBitFlip(t *testing.T) {
	req := require.New(t)

	for _, c := range []uint8{0x00, 0xFF} {
		for pos := 0; pos < 8; pos++ {
			w := c ^ (1 << pos)
			req.Equal(c, hdbool.Refresh(w))
			req.Equal(hdbool.HDBool(c), hdbool.FromUint8(w))
		}
	}
}

func TestNew(t *testing.T) {
	req := require.New(t)

	req.Equal(hdbool.True, hdbool.New(true))
	req.Equal(hdbool.False, hdbool.New(false))
	req.Equal(uint8(0xFF), hdbool.New(true).Uint8())
	req.Equal(uint8(0x00), hdbool.New(false).Uint8())
	req.True(hdbool.New(true).Bool())
	req.False(hdbool.New(false).Bool())
	req.True(hdbool.New(true).IsCanonical())
	req.True(hdbool.New(false).IsCanonical())

	// Not the single-bit representation of a plain bool.
	req.NotEqual(uint8(1), hdbool.New(true).Uint8())
}

func TestZeroValue(t *testing.T) {
	req := require.New(t)

	var h hdbool.HDBool
	req.True(h.IsCanonical())
	req.False(h.Bool())
}

func TestEncodeDecode(t *testing.T) {
	req := require.New(t)

	req.Equal(uint8(0b11111111), hdbool.Encode(true))
	req.Equal(uint8(0b00000000), hdbool.Encode(false))

	req.True(hdbool.Decode(0b11111111))
	req.False(hdbool.Decode(0b00000000))
	req.False(hdbool.Decode(0b00001111))
	req.False(hdbool.Decode(0b11110000))
	req.True(hdbool.Decode(0b11101111))

	for _, b := range []bool{true, false} {
		req.Equal(b, hdbool.Decode(hdbool.Encode(b)))
	}
}

func TestFromUint8(t *testing.T) {
	req := require.New(t)

	for _, w := range allWords() {
		h := hdbool.FromUint8(w)
		req.True(h.IsCanonical(), "word %#08b", w)
		req.Equal(bits.OnesCount8(w) > 4, h.Bool(), "word %#08b", w)
		req.Equal(hdbool.Refresh(w), h.Uint8(), "word %#08b", w)
	}
}

func TestBool_NonCanonical(t *testing.T) {
	req := require.New(t)

	for _, w := range allWords() {
		raw := hdbool.HDBool(w)
		req.Equal(hdbool.FromUint8(w).Bool(), raw.Bool(), "word %#08b", w)
		req.Equal(hdbool.Decode(w), raw.Bool(), "word %#08b", w)
		req.Equal(w, raw.Uint8(), "word %#08b", w)
		req.Equal(w == 0x00 || w == 0xFF, raw.IsCanonical(), "word %#08b", w)
		req.Equal(bits.OnesCount8(w), raw.Ones(), "word %#08b", w)
	}
}

func TestRefreshed(t *testing.T) {
	req := require.New(t)

	h := hdbool.HDBool(0b11011111)
	req.False(h.IsCanonical())

	r := h.Refreshed()
	req.Equal(hdbool.True, r)
	// The original value is left untouched.
	req.Equal(uint8(0b11011111), h.Uint8())

	req.Equal(hdbool.False, hdbool.HDBool(0b00100000).Refreshed())
	req.Equal(hdbool.True, hdbool.True.Refreshed())
}

func TestString(t *testing.T) {
	req := require.New(t)

	req.Equal("true", hdbool.True.String())
	req.Equal("false", hdbool.False.String())
	req.Equal("true(0b11101111)", hdbool.HDBool(0b11101111).String())
	req.Equal("false(0b00000001)", hdbool.HDBool(0b00000001).String())
}

func TestBinary(t *testing.T) {
	req := require.New(t)

	data, err := hdbool.HDBool(0b11101111).MarshalBinary()
	req.NoError(err)
	req.Equal([]byte{0b11101111}, data)

	var h hdbool.HDBool
	req.NoError(h.UnmarshalBinary([]byte{0b11101111}))
	req.Equal(hdbool.True, h)

	req.NoError(h.UnmarshalBinary([]byte{0b10011001}))
	req.Equal(hdbool.False, h)

	err = h.UnmarshalBinary(nil)
	req.ErrorIs(err, hdbool.ErrInvalidLength)
	err = h.UnmarshalBinary([]byte{0xFF, 0xFF})
	req.ErrorIs(err, hdbool.ErrInvalidLength)
}

func TestText(t *testing.T) {
	req := require.New(t)

	text, err := hdbool.HDBool(0b01111111).MarshalText()
	req.NoError(err)
	req.Equal("true", string(text))

	var h hdbool.HDBool
	req.NoError(h.UnmarshalText([]byte("true")))
	req.Equal(hdbool.True, h)
	req.NoError(h.UnmarshalText([]byte("0")))
	req.Equal(hdbool.False, h)

	req.Error(h.UnmarshalText([]byte("maybe")))
}
