package avsfc

import (
	"context"

	"github.com/xaionaro-go/avsfc/types"
	"github.com/xaionaro-go/xsync"
)

type Statistics = types.Statistics

type CommonsRendering struct {
	CountersStorage types.Counters
}

// GetStats returns a snapshot of the counters together with the current
// amount of line-buffer memory.
func (r *Renderer) GetStats(ctx context.Context) *Statistics {
	stats := r.CountersStorage.ToStats()
	stats.LineBufferBytes = xsync.DoR1(xsync.WithNoLogging(ctx, true), &r.Locker, r.lineBuffers.TotalSize)
	return ptr(stats)
}
