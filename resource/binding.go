// binding.go defines the attachment of a buffer to a command word.

package resource

import (
	"fmt"
)

// Binding attaches a buffer to a position of a command descriptor.
type Binding struct {
	Kind        Kind
	Handle      Handle
	Offset      uint64
	Writable    bool
	CachePolicy uint8

	// Word is the index of the address word, relative to the descriptor
	// start or, once appended to a command buffer, to the buffer start.
	Word int
}

func (b Binding) String() string {
	access := "ro"
	if b.Writable {
		access = "rw"
	}
	return fmt.Sprintf("DW%d: %s %s+%d %s mocs:%d", b.Word, b.Kind, b.Handle, b.Offset, access, b.CachePolicy)
}
