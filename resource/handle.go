// handle.go defines the opaque reference to a GPU buffer.

package resource

import (
	"fmt"
)

// Handle is a logical buffer reference resolved to a physical address by
// the submission layer.
type Handle uint64

// InvalidHandle is the zero value and never refers to a buffer.
const InvalidHandle = Handle(0)

func (h Handle) IsValid() bool {
	return h != InvalidHandle
}

func (h Handle) String() string {
	if !h.IsValid() {
		return "<invalid>"
	}
	return fmt.Sprintf("0x%x", uint64(h))
}
