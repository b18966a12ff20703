// descriptor.go implements a fixed-size command descriptor and its field writer.

package cmdbuf

import (
	"fmt"
	"strings"

	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

// Descriptor is a fixed-length sequence of 32-bit command words.
type Descriptor []uint32

func NewDescriptor(size int) Descriptor {
	return make(Descriptor, size)
}

// Get returns the raw value of the field.
func (d Descriptor) Get(f Field) uint32 {
	return (d[f.DW] & f.mask()) >> f.Low
}

func (d Descriptor) Reset() {
	for i := range d {
		d[i] = 0
	}
}

func (d Descriptor) String() string {
	var b strings.Builder
	for idx, w := range d {
		if idx > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%08x", w)
	}
	return b.String()
}

// Writer fills a Descriptor field by field. The first out-of-range value
// is remembered and returned by Err; later writes are still applied so
// the descriptor can be inspected, but it must not be submitted.
type Writer struct {
	Descriptor Descriptor
	Bindings   []resource.Binding
	err        error
}

func NewWriter(d Descriptor) *Writer {
	return &Writer{Descriptor: d}
}

func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) fail(f Field, reason string) {
	if w.err != nil {
		return
	}
	w.err = types.ErrInvalidConfiguration{Reason: fmt.Sprintf("field %s: %s", f, reason)}
}

func (w *Writer) put(f Field, v uint32) {
	if f.DW < 0 || f.DW >= len(w.Descriptor) {
		w.fail(f, fmt.Sprintf("word is out of the descriptor of %d words", len(w.Descriptor)))
		return
	}
	d := &w.Descriptor[f.DW]
	*d = (*d &^ f.mask()) | ((v << f.Low) & f.mask())
}

// Set writes an unsigned value into the field.
func (w *Writer) Set(f Field, v uint64) {
	if v > f.Max() {
		w.fail(f, fmt.Sprintf("value %d does not fit into %d bits", v, f.Width()))
	}
	w.put(f, uint32(v))
}

// SetSigned writes a two's complement value into the field.
func (w *Writer) SetSigned(f Field, v int64) {
	half := int64(1) << (f.Width() - 1)
	if v < -half || v >= half {
		w.fail(f, fmt.Sprintf("value %d does not fit into %d signed bits", v, f.Width()))
	}
	w.put(f, uint32(v))
}

func (w *Writer) SetBool(f Field, v bool) {
	if v {
		w.Set(f, 1)
	} else {
		w.Set(f, 0)
	}
}

// SetWord overwrites a whole word.
func (w *Writer) SetWord(dw int, v uint32) {
	w.put(Bits(dw, 0, 31), v)
}

// Bind records that the word carries the address of a buffer.
func (w *Writer) Bind(b resource.Binding) {
	if b.Word < 0 || b.Word >= len(w.Descriptor) {
		w.fail(Bits(b.Word, 0, 31), fmt.Sprintf("binding of %s is out of the descriptor", b.Kind))
		return
	}
	w.Bindings = append(w.Bindings, b)
}
