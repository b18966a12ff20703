// assignment.go defines per-engine assignments and their bounded container.

package partition

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/types"
)

// Span is an inclusive column range.
type Span struct {
	Start int
	End   int
}

// EmptySpan is the range of an engine producing no output.
var EmptySpan = Span{Start: 0, End: -1}

func (s Span) IsEmpty() bool {
	return s.End < s.Start
}

func (s Span) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start + 1
}

func (s Span) String() string {
	if s.IsEmpty() {
		return "[]"
	}
	return fmt.Sprintf("[%d, %d]", s.Start, s.End)
}

type EngineAssignment struct {
	Index  int
	Role   Role
	Source Span

	// Dest is the range of destination columns this engine owns.
	Dest Span

	// DestContextStart is Dest.Start moved left to give the sharpening
	// filter and the chroma pairs their context; it is what gets programmed.
	DestContextStart int

	ColorFill bool
}

func (a EngineAssignment) HasOutput() bool {
	return !a.Dest.IsEmpty()
}

// Assignments is a sequence of engine assignments whose capacity is fixed
// at construction.
type Assignments struct {
	items []EngineAssignment

	FirstValid int
	LastValid  int
}

func NewAssignments(capacity int) *Assignments {
	return &Assignments{
		items:      make([]EngineAssignment, 0, capacity),
		FirstValid: -1,
		LastValid:  -1,
	}
}

func (a *Assignments) Append(item EngineAssignment) error {
	if len(a.items) == cap(a.items) {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("more than %d engine assignments", cap(a.items))}
	}
	a.items = append(a.items, item)
	return nil
}

func (a *Assignments) Len() int {
	return len(a.items)
}

func (a *Assignments) Cap() int {
	return cap(a.items)
}

func (a *Assignments) At(index int) (EngineAssignment, error) {
	if index < 0 || index >= len(a.items) {
		return EngineAssignment{}, types.ErrInvalidConfiguration{Reason: fmt.Sprintf("engine index %d is not in [0, %d)", index, len(a.items))}
	}
	return a.items[index], nil
}

// All returns a copy of the assignments.
func (a *Assignments) All() []EngineAssignment {
	result := make([]EngineAssignment, len(a.items))
	copy(result, a.items)
	return result
}
