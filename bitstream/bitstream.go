// Package bitstream wraps io.Writer and io.Reader with bit-granular access, so that
// HDBool words can be packed next to arbitrary bit fields. Bits are written and
// read LSB first within each byte.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
