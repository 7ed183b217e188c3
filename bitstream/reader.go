package bitstream

import (
	"io"

	"github.com/spacemeshos/hdbool"
)

// Reader reads bits from an io.Reader.
type Reader struct {
	stream    io.Reader
	pending   [1]byte
	remaining uint8 // number of unread bits left in pending
}

// NewReader returns a new Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{stream: r}
}

// ReadBit reads a single bit, LSB first.
func (r *Reader) ReadBit() (Bit, error) {
	if r.remaining == 0 {
		if err := r.fill(); err != nil {
			return Zero, err
		}
		r.remaining = 8
	}

	bit := Bit(r.pending[0]&1 == 1)
	r.pending[0] >>= 1
	r.remaining--
	return bit, nil
}

// ReadByte reads the next 8 bits regardless of the current alignment.
// A split byte takes its LS bits from the current pending byte.
func (r *Reader) ReadByte() (byte, error) {
	if r.remaining == 0 {
		if err := r.fill(); err != nil {
			return 0, err
		}
		return r.pending[0], nil
	}

	current := r.pending[0]
	used := 8 - r.remaining
	if err := r.fill(); err != nil {
		return 0, err
	}
	current |= r.pending[0] << r.remaining
	r.pending[0] >>= used
	return current, nil
}

// Read reads the next numBits. Trailing bits that do not fill a byte are
// returned in the LS bits of the last byte.
func (r *Reader) Read(numBits uint) ([]byte, error) {
	data := make([]byte, (numBits+7)/8)

	for i := range data {
		if numBits >= 8 {
			b, err := r.ReadByte()
			if err != nil {
				return nil, err
			}
			data[i] = b
			numBits -= 8
			continue
		}

		for pos := uint(0); pos < numBits; pos++ {
			bit, err := r.ReadBit()
			if err != nil {
				return nil, err
			}
			if bit {
				data[i] |= 1 << pos
			}
		}
	}
	return data, nil
}

// ReadHDBool reads the next 8 bits as a refreshed HDBool.
func (r *Reader) ReadHDBool() (hdbool.HDBool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return hdbool.False, err
	}
	return hdbool.FromUint8(b), nil
}

// ReadHDBoolRaw reads the next 8 bits as an HDBool without refreshing it.
func (r *Reader) ReadHDBoolRaw() (hdbool.HDBool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return hdbool.False, err
	}
	return hdbool.HDBool(b), nil
}

// fill loads the next byte into pending. io.EOF is returned only at a clean
// end of stream.
func (r *Reader) fill() error {
	_, err := io.ReadFull(r.stream, r.pending[:])
	return err
}
