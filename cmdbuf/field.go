// field.go defines named bit fields of command descriptors.

// Package cmdbuf provides the primitives to pack hardware command
// descriptors: fixed-size word arrays with named bit fields, and the
// command buffer they are appended to.
package cmdbuf

import (
	"fmt"
)

// Field is the inclusive bit range [Low, High] of the word DW.
type Field struct {
	DW   int
	Low  uint
	High uint
}

// Bit returns a single-bit field.
func Bit(dw int, bit uint) Field {
	return Field{DW: dw, Low: bit, High: bit}
}

// Bits returns the field of bits [low, high] of the word dw.
func Bits(dw int, low, high uint) Field {
	return Field{DW: dw, Low: low, High: high}
}

func (f Field) String() string {
	if f.Low == f.High {
		return fmt.Sprintf("DW%d[%d]", f.DW, f.Low)
	}
	return fmt.Sprintf("DW%d[%d:%d]", f.DW, f.High, f.Low)
}

// Width returns the amount of bits in the field.
func (f Field) Width() uint {
	return f.High - f.Low + 1
}

// Max returns the largest unsigned value the field can hold.
func (f Field) Max() uint64 {
	return 1<<f.Width() - 1
}

func (f Field) mask() uint32 {
	return uint32(f.Max() << f.Low)
}
