// renderer.go implements the long-lived object turning scaling requests into scaler-unit commands.

package avsfc

import (
	"context"
	"errors"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/go-ng/xatomic"
	"github.com/xaionaro-go/avsfc/cmdbuf"
	"github.com/xaionaro-go/avsfc/linebuffer"
	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/scaler"
	"github.com/xaionaro-go/avsfc/sfc"
	"github.com/xaionaro-go/avsfc/types"
	"github.com/xaionaro-go/xsync"
)

// Renderer packs the scaler-unit commands of a stream of frames. It
// keeps the line buffers between frames, so one Renderer should be used
// per media context.
type Renderer struct {
	CommonsRendering

	Locker        xsync.Mutex
	encoder       *sfc.Encoder
	lineBuffers   *linebuffer.Manager
	cachePolicies resource.CachePolicyTable
}

// NewRenderer returns a Renderer for the generation. Cache policies are
// resolved once here; a nil resolver leaves them all at index zero.
func NewRenderer(
	ctx context.Context,
	generation sfc.Generation,
	allocator linebuffer.Allocator,
	cachePolicies resource.CachePolicyResolver,
) (_ret *Renderer, _err error) {
	logger.Tracef(ctx, "NewRenderer(ctx, %s)", generation)
	defer func() { logger.Tracef(ctx, "/NewRenderer(ctx, %s): %v", generation, _err) }()

	if allocator == nil {
		return nil, types.ErrInvalidParameter{Name: "Allocator"}
	}
	enc, err := sfc.NewEncoder(generation)
	if err != nil {
		return nil, types.ErrInvalidConfiguration{Reason: "generation", Err: err}
	}
	return &Renderer{
		encoder:       &enc,
		lineBuffers:   linebuffer.NewManager(allocator),
		cachePolicies: resource.NewCachePolicyTable(cachePolicies),
	}, nil
}

func (r *Renderer) String() string {
	return fmt.Sprintf("Renderer(%s)", r.Generation())
}

func (r *Renderer) Encoder() sfc.Encoder {
	return *xatomic.LoadPointer(&r.encoder)
}

func (r *Renderer) Generation() sfc.Generation {
	return r.Encoder().Generation()
}

// SetGeneration switches the layout of the following commands.
func (r *Renderer) SetGeneration(
	ctx context.Context,
	generation sfc.Generation,
) error {
	enc, err := sfc.NewEncoder(generation)
	if err != nil {
		return types.ErrInvalidConfiguration{Reason: "generation", Err: err}
	}
	old := *xatomic.SwapPointer(&r.encoder, &enc)
	logger.Debugf(ctx, "switched the generation %s -> %s", old.Generation(), generation)
	return nil
}

// Render appends the command of the engine req.Scalability.Index to buf.
// On failure buf is left untouched.
func (r *Renderer) Render(
	ctx context.Context,
	req sfc.Request,
	buf *cmdbuf.Buffer,
) (_ret *sfc.State, _err error) {
	logger.Tracef(ctx, "Render(ctx, %s, %s)", req.Scalability, req.Output)
	defer func() { logger.Tracef(ctx, "/Render(ctx, %s, %s): %v", req.Scalability, req.Output, _err) }()
	defer func() {
		if _err != nil {
			r.CountersStorage.Failures.Add(1)
		}
	}()
	return xsync.DoA3R2(xsync.WithNoLogging(ctx, true), &r.Locker, r.renderNoLock, ctx, req, buf)
}

func (r *Renderer) renderNoLock(
	ctx context.Context,
	req sfc.Request,
	buf *cmdbuf.Buffer,
) (*sfc.State, error) {
	if buf == nil {
		return nil, types.ErrInvalidParameter{Name: "Buffer"}
	}
	s, err := sfc.BuildState(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("unable to build the state: %w", err)
	}
	if err := r.packNoLock(ctx, s, req.Scalability.Count, buf); err != nil {
		return nil, err
	}
	return s, nil
}

// RenderAll appends the commands of every engine of req.Scalability to
// buf, in engine order. On failure buf is left untouched.
func (r *Renderer) RenderAll(
	ctx context.Context,
	req sfc.Request,
	buf *cmdbuf.Buffer,
) (_ret []*sfc.State, _err error) {
	logger.Tracef(ctx, "RenderAll(ctx, %s, %s)", req.Scalability, req.Output)
	defer func() { logger.Tracef(ctx, "/RenderAll(ctx, %s, %s): %v", req.Scalability, req.Output, _err) }()
	defer func() {
		if _err != nil {
			r.CountersStorage.Failures.Add(1)
		}
	}()
	return xsync.DoA3R2(xsync.WithNoLogging(ctx, true), &r.Locker, r.renderAllNoLock, ctx, req, buf)
}

func (r *Renderer) renderAllNoLock(
	ctx context.Context,
	req sfc.Request,
	buf *cmdbuf.Buffer,
) ([]*sfc.State, error) {
	if buf == nil {
		return nil, types.ErrInvalidParameter{Name: "Buffer"}
	}
	if err := req.Scalability.Validate(); err != nil {
		return nil, err
	}

	count := req.Scalability.Count
	states := make([]*sfc.State, 0, count)
	for idx := 0; idx < count; idx++ {
		engineReq := req
		engineReq.Scalability = req.Scalability.WithIndex(idx)
		s, err := sfc.BuildState(ctx, engineReq)
		if err != nil {
			return nil, fmt.Errorf("unable to build the state of engine %d: %w", idx, err)
		}
		states = append(states, s)
	}

	staging := cmdbuf.NewBuffer(count * r.Encoder().DescriptorSize())
	for _, s := range states {
		if err := r.packNoLock(ctx, s, count, staging); err != nil {
			return nil, fmt.Errorf("engine %d: %w", s.Engine.Index, err)
		}
	}
	if err := buf.AppendBuffer(staging); err != nil {
		return nil, err
	}
	return states, nil
}

func (r *Renderer) packNoLock(
	ctx context.Context,
	s *sfc.State,
	engineCount int,
	buf *cmdbuf.Buffer,
) error {
	enc := r.Encoder()
	if err := enc.Validate(s); err != nil {
		return err
	}

	in := lineBufferInput(s)
	if err := r.lineBuffers.Prepare(ctx, in, engineCount); err != nil {
		return fmt.Errorf("unable to prepare the line buffers: %w", err)
	}

	if logger.FromCtx(ctx).Level() >= logger.LevelDebug {
		logger.Debugf(ctx, "state of engine %d: %s", s.Engine.Index, spew.Sdump(s))
	}

	wordsBefore, bindingsBefore := buf.Len(), len(buf.Bindings())
	if err := sfc.Pack(ctx, enc, s, r.lineBuffers.Handles(s.Engine.Index, in, engineCount), &r.cachePolicies, buf); err != nil {
		return fmt.Errorf("unable to pack the command: %w", err)
	}
	assert(ctx, buf.Len()-wordsBefore == enc.DescriptorSize(), buf.Len(), wordsBefore, enc.DescriptorSize())
	r.CountersStorage.Commands.Increment(uint64(enc.DescriptorSize()))
	r.CountersStorage.Bindings.Add(uint64(len(buf.Bindings()) - bindingsBefore))
	return nil
}

func lineBufferInput(s *sfc.State) linebuffer.SizeInput {
	return linebuffer.SizeInput{
		PipeMode:        s.PipeMode,
		EightTapChroma:  s.Scaling.EightTapChroma,
		InputWidth:      s.InputFrame.Width,
		InputHeight:     s.InputFrame.Height,
		ScaledWidth:     s.ScaledRegion.Width,
		ScaledHeight:    s.ScaledRegion.Height,
		OutputColorPack: s.Output.ColorPack,
	}
}

// LineBuffers returns the line buffers currently held for the engine.
func (r *Renderer) LineBuffers(ctx context.Context, engine int) []linebuffer.Buffer {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &r.Locker, func() []linebuffer.Buffer {
		return r.lineBuffers.Buffers(engine)
	})
}

// Close releases all the line buffers.
func (r *Renderer) Close(ctx context.Context) (_err error) {
	logger.Tracef(ctx, "Close(ctx)")
	defer func() { logger.Tracef(ctx, "/Close(ctx): %v", _err) }()
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &r.Locker, func() error {
		total := r.lineBuffers.TotalSize()
		var errs []error
		if err := r.lineBuffers.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("unable to release the line buffers: %w", err))
		}
		logger.Debugf(ctx, "released %s of line buffers", humanize.IBytes(total))
		return errors.Join(errs...)
	})
}

var _ scaler.Scaler = (*Renderer)(nil)
