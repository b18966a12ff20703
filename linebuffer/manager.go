// manager.go keeps the scratch line buffers of one renderer across frames.

package linebuffer

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

var perEngineKinds = [...]resource.Kind{
	resource.KindAVSLineBuffer,
	resource.KindIEFLineBuffer,
	resource.KindSFDLineBuffer,
}

var tileKinds = [...]resource.Kind{
	resource.KindAVSLineTileBuffer,
	resource.KindIEFLineTileBuffer,
	resource.KindSFDLineTileBuffer,
}

// Buffer is one scratch line buffer.
type Buffer struct {
	Kind   resource.Kind
	Engine int
	Size   uint64
	Handle resource.Handle
}

func (b Buffer) Name() string {
	if b.Kind.IsTiled() {
		return b.Kind.String()
	}
	return fmt.Sprintf("%s#%d", b.Kind, b.Engine)
}

// Manager owns the per-engine and the shared per-partition line buffers.
// Buffers only grow: a smaller requirement keeps the existing memory,
// a zero requirement releases it.
//
// Manager is not safe for concurrent use.
type Manager struct {
	Allocator Allocator

	perEngine [][len(perEngineKinds)]Buffer
	tiles     [len(tileKinds)]Buffer
}

func NewManager(allocator Allocator) *Manager {
	return &Manager{
		Allocator: allocator,
	}
}

// Prepare makes sure every buffer needed to scale a frame described by
// the input on engineCount engines is allocated and large enough.
func (m *Manager) Prepare(
	ctx context.Context,
	in SizeInput,
	engineCount int,
) (_err error) {
	logger.Tracef(ctx, "Prepare(ctx, %#+v, %d)", in, engineCount)
	defer func() { logger.Tracef(ctx, "/Prepare(ctx, %#+v, %d): %v", in, engineCount, _err) }()

	if engineCount < 1 {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("engine count %d", engineCount)}
	}
	if m.Allocator == nil {
		return types.ErrInvalidParameter{Name: "Allocator"}
	}

	for len(m.perEngine) < engineCount {
		engine := len(m.perEngine)
		var bufs [len(perEngineKinds)]Buffer
		for idx, kind := range perEngineKinds {
			bufs[idx] = Buffer{Kind: kind, Engine: engine}
		}
		m.perEngine = append(m.perEngine, bufs)
	}

	needsSFD := NeedsSFD(in)
	for engine := 0; engine < engineCount; engine++ {
		for idx := range perEngineKinds {
			buf := &m.perEngine[engine][idx]
			size := Size(buf.Kind, in)
			if buf.Kind == resource.KindSFDLineBuffer && !needsSFD {
				continue
			}
			if err := m.ensure(ctx, buf, size); err != nil {
				return err
			}
		}
	}

	if NeedsTiles(in, engineCount) {
		for idx, kind := range tileKinds {
			buf := &m.tiles[idx]
			buf.Kind = kind
			if err := m.ensure(ctx, buf, Size(kind, in)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Manager) ensure(
	ctx context.Context,
	buf *Buffer,
	size uint64,
) error {
	switch {
	case size == 0:
		if !buf.Handle.IsValid() {
			return nil
		}
		logger.Debugf(ctx, "releasing '%s' (%s)", buf.Name(), humanize.IBytes(buf.Size))
		if err := m.Allocator.Free(ctx, buf.Handle); err != nil {
			return types.ErrAllocationFailure{Name: buf.Name(), Size: 0, Err: err}
		}
		buf.Handle = resource.InvalidHandle
		buf.Size = 0
	case !buf.Handle.IsValid():
		logger.Debugf(ctx, "allocating '%s' (%s)", buf.Name(), humanize.IBytes(size))
		h, err := m.Allocator.Allocate(ctx, buf.Name(), size)
		if err != nil {
			return types.ErrAllocationFailure{Name: buf.Name(), Size: size, Err: err}
		}
		buf.Handle = h
		buf.Size = size
	case size > buf.Size:
		logger.Debugf(ctx, "growing '%s' %s -> %s", buf.Name(), humanize.IBytes(buf.Size), humanize.IBytes(size))
		h, err := m.Allocator.Resize(ctx, buf.Handle, size)
		if err != nil {
			return types.ErrAllocationFailure{Name: buf.Name(), Size: size, Err: err}
		}
		buf.Handle = h
		buf.Size = size
	}
	return nil
}

// Handles returns the buffers the given engine uses for a frame described
// by the input on engineCount engines, keyed by kind. Buffers kept from
// earlier frames are left out unless this frame needs them.
func (m *Manager) Handles(
	engine int,
	in SizeInput,
	engineCount int,
) map[resource.Kind]resource.Handle {
	result := map[resource.Kind]resource.Handle{}
	if engine < 0 || engine >= engineCount {
		return result
	}
	needsSFD := NeedsSFD(in)
	needsTiles := NeedsTiles(in, engineCount)
	for _, buf := range m.Buffers(engine) {
		switch {
		case buf.Kind.IsTiled() && !needsTiles:
			continue
		case buf.Kind == resource.KindSFDLineBuffer && !needsSFD:
			continue
		case Size(buf.Kind, in) == 0:
			continue
		}
		result[buf.Kind] = buf.Handle
	}
	return result
}

// Buffers returns the allocated buffers the given engine holds, whether
// or not the latest frame used them.
func (m *Manager) Buffers(engine int) []Buffer {
	var result []Buffer
	if engine >= 0 && engine < len(m.perEngine) {
		for _, buf := range m.perEngine[engine] {
			if buf.Handle.IsValid() {
				result = append(result, buf)
			}
		}
	}
	for _, buf := range m.tiles {
		if buf.Handle.IsValid() {
			result = append(result, buf)
		}
	}
	return result
}

// TotalSize returns the amount of bytes held by the manager.
func (m *Manager) TotalSize() uint64 {
	var total uint64
	for _, bufs := range m.perEngine {
		for _, buf := range bufs {
			total += buf.Size
		}
	}
	for _, buf := range m.tiles {
		total += buf.Size
	}
	return total
}

// Close releases every buffer.
func (m *Manager) Close(ctx context.Context) error {
	var result []error
	release := func(buf *Buffer) {
		if err := m.ensure(ctx, buf, 0); err != nil {
			result = append(result, err)
		}
	}
	for engine := range m.perEngine {
		for idx := range m.perEngine[engine] {
			release(&m.perEngine[engine][idx])
		}
	}
	for idx := range m.tiles {
		release(&m.tiles[idx])
	}
	return errors.Join(result...)
}
