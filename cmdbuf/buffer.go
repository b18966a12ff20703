// buffer.go models the command buffer descriptors are appended to.

package cmdbuf

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/resource"
)

// Buffer is a growing sequence of command words with a side table of the
// buffers the words reference.
type Buffer struct {
	words    []uint32
	bindings []resource.Binding
}

func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		words: make([]uint32, 0, capacity),
	}
}

// Append copies the descriptor of a successful Writer into the buffer,
// rebasing the binding words to absolute offsets. Nothing is appended if
// the writer has failed.
func (b *Buffer) Append(w *Writer) error {
	if err := w.Err(); err != nil {
		return fmt.Errorf("unable to append a failed descriptor: %w", err)
	}
	base := len(b.words)
	b.words = append(b.words, w.Descriptor...)
	for _, binding := range w.Bindings {
		binding.Word += base
		b.bindings = append(b.bindings, binding)
	}
	return nil
}

// AppendBuffer copies all the commands of another buffer into this one.
func (b *Buffer) AppendBuffer(other *Buffer) error {
	if other == nil {
		return fmt.Errorf("nil buffer")
	}
	base := len(b.words)
	b.words = append(b.words, other.words...)
	for _, binding := range other.bindings {
		binding.Word += base
		b.bindings = append(b.bindings, binding)
	}
	return nil
}

func (b *Buffer) Len() int {
	return len(b.words)
}

func (b *Buffer) Words() []uint32 {
	return b.words
}

func (b *Buffer) Bindings() []resource.Binding {
	return b.bindings
}

// Reset empties the buffer keeping the allocated memory.
func (b *Buffer) Reset() {
	b.words = b.words[:0]
	b.bindings = b.bindings[:0]
}
