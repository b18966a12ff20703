// fixup.go replaces the null slots of a reference list before the list is handed to the hardware.

// Package reference patches reference-surface lists so that the hardware
// never dereferences an empty slot.
package reference

import (
	"context"

	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/resource"
)

// Substitution records one patched slot.
type Substitution struct {
	Slot   int
	Source int
	Handle resource.Handle
}

// FromFallback is the Source of a Substitution that used the fallback.
const FromFallback = -1

// Fixup replaces every invalid handle in refs by the most recent valid
// reference preceding it, or by fallback when there is none. It returns
// the substitutions made; refs is modified in place.
func Fixup(
	ctx context.Context,
	refs []resource.Handle,
	fallback resource.Handle,
) []Substitution {
	var result []Substitution
	last := FromFallback
	for idx, h := range refs {
		if h.IsValid() {
			last = idx
			continue
		}

		replacement := fallback
		if last != FromFallback {
			replacement = refs[last]
		}
		if !replacement.IsValid() {
			logger.Warnf(ctx, "reference slot %d is empty and there is nothing to substitute it with", idx)
			continue
		}
		logger.Warnf(ctx, "reference slot %d is empty, substituting %s (from slot %d)", idx, replacement, last)
		refs[idx] = replacement
		result = append(result, Substitution{
			Slot:   idx,
			Source: last,
			Handle: replacement,
		})
	}
	return result
}
