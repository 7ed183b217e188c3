package bitstream

import (
	"io"

	"github.com/spacemeshos/hdbool"
)

// Writer writes bits to an io.Writer.
type Writer struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8 // number of bits already occupied in pending
}

// NewWriter returns a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{stream: w}
}

// WriteBit writes a single bit, LSB first.
func (w *Writer) WriteBit(bit Bit) error {
	if bit {
		w.pending[0] |= 1 << w.alignment
	}
	w.alignment++

	if w.alignment < 8 {
		return nil
	}
	if err := w.emit(); err != nil {
		return err
	}
	w.pending[0] = 0
	w.alignment = 0
	return nil
}

// WriteByte writes 8 bits regardless of the current alignment.
// A byte split across the stream keeps its LS bits in the pending byte.
func (w *Writer) WriteByte(b byte) error {
	w.pending[0] |= b << w.alignment
	if err := w.emit(); err != nil {
		return err
	}
	// The shift is a no-op when aligned, which leaves pending empty.
	w.pending[0] = byte(uint16(b) >> (8 - w.alignment))
	return nil
}

// Write writes the numBits LS bits of data, byte by byte.
func (w *Writer) Write(data []byte, numBits int) error {
	for i := 0; numBits > 0; i++ {
		if numBits >= 8 {
			if err := w.WriteByte(data[i]); err != nil {
				return err
			}
			numBits -= 8
			continue
		}

		b := data[i]
		for ; numBits > 0; numBits-- {
			if err := w.WriteBit(b&1 == 1); err != nil {
				return err
			}
			b >>= 1
		}
	}
	return nil
}

// WriteHDBool writes the stored word of h verbatim.
func (w *Writer) WriteHDBool(h hdbool.HDBool) error {
	return w.WriteByte(h.Uint8())
}

// Flush pads the pending byte with fill and writes it.
// It is a no-op when the stream is aligned.
func (w *Writer) Flush(fill Bit) error {
	for w.alignment != 0 {
		if err := w.WriteBit(fill); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) emit() error {
	n, err := w.stream.Write(w.pending[:])
	if err != nil {
		return err
	}
	if n != 1 {
		return io.ErrShortWrite
	}
	return nil
}
