// scaler.go defines the interface of a scaler-unit command renderer.

// Package scaler declares what callers of a scaler-unit renderer rely on.
package scaler

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avsfc/cmdbuf"
	"github.com/xaionaro-go/avsfc/sfc"
	"github.com/xaionaro-go/avsfc/types"
)

type Scaler interface {
	fmt.Stringer
	Close(context.Context) error
	Generation() sfc.Generation
	SetGeneration(context.Context, sfc.Generation) error
	Render(ctx context.Context, req sfc.Request, buf *cmdbuf.Buffer) (*sfc.State, error)
	RenderAll(ctx context.Context, req sfc.Request, buf *cmdbuf.Buffer) ([]*sfc.State, error)
	GetStats(context.Context) *types.Statistics
}
