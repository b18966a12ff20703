// allocator.go defines the interface to the GPU memory manager and a heap-backed implementation.

package linebuffer

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/xsync"
)

// Allocator is the memory manager scratch buffers are allocated with.
type Allocator interface {
	Allocate(ctx context.Context, name string, size uint64) (resource.Handle, error)

	// Resize grows or shrinks the buffer; the returned handle may differ
	// from the given one.
	Resize(ctx context.Context, handle resource.Handle, size uint64) (resource.Handle, error)

	Free(ctx context.Context, handle resource.Handle) error
}

// HeapAllocator allocates buffers from the Go heap. It is used where no
// GPU is available: the CLI and tests.
type HeapAllocator struct {
	Locker xsync.Mutex

	// Limit, if non-zero, is the maximal total amount of bytes.
	Limit uint64

	nextHandle resource.Handle
	buffers    map[resource.Handle][]byte
	names      map[resource.Handle]string
	total      uint64
}

var _ Allocator = (*HeapAllocator)(nil)

func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{
		buffers: map[resource.Handle][]byte{},
		names:   map[resource.Handle]string{},
	}
}

func (a *HeapAllocator) Allocate(
	ctx context.Context,
	name string,
	size uint64,
) (resource.Handle, error) {
	return xsync.DoA2R2(xsync.WithNoLogging(ctx, true), &a.Locker, a.allocate, name, size)
}

func (a *HeapAllocator) allocate(
	name string,
	size uint64,
) (resource.Handle, error) {
	if err := a.checkLimit(0, size); err != nil {
		return resource.InvalidHandle, err
	}
	a.nextHandle++
	h := a.nextHandle
	a.buffers[h] = make([]byte, size)
	a.names[h] = name
	a.total += size
	return h, nil
}

func (a *HeapAllocator) checkLimit(oldSize, newSize uint64) error {
	if a.Limit == 0 {
		return nil
	}
	if a.total-oldSize+newSize > a.Limit {
		return fmt.Errorf("the limit of %s would be exceeded", humanize.IBytes(a.Limit))
	}
	return nil
}

func (a *HeapAllocator) Resize(
	ctx context.Context,
	handle resource.Handle,
	size uint64,
) (resource.Handle, error) {
	return xsync.DoA2R2(xsync.WithNoLogging(ctx, true), &a.Locker, a.resize, handle, size)
}

func (a *HeapAllocator) resize(
	handle resource.Handle,
	size uint64,
) (resource.Handle, error) {
	buf, ok := a.buffers[handle]
	if !ok {
		return resource.InvalidHandle, fmt.Errorf("unknown handle %s", handle)
	}
	oldSize := uint64(len(buf))
	if err := a.checkLimit(oldSize, size); err != nil {
		return resource.InvalidHandle, err
	}
	if size <= uint64(cap(buf)) {
		a.buffers[handle] = buf[:size]
	} else {
		newBuf := make([]byte, size)
		copy(newBuf, buf)
		a.buffers[handle] = newBuf
	}
	a.total = a.total - oldSize + size
	return handle, nil
}

func (a *HeapAllocator) Free(
	ctx context.Context,
	handle resource.Handle,
) error {
	return xsync.DoA2R1(xsync.WithNoLogging(ctx, true), &a.Locker, a.free, ctx, handle)
}

func (a *HeapAllocator) free(
	ctx context.Context,
	handle resource.Handle,
) error {
	buf, ok := a.buffers[handle]
	if !ok {
		return fmt.Errorf("unknown handle %s", handle)
	}
	logger.Tracef(ctx, "freeing '%s' (%s)", a.names[handle], humanize.IBytes(uint64(len(buf))))
	a.total -= uint64(len(buf))
	delete(a.buffers, handle)
	delete(a.names, handle)
	return nil
}

// Size returns the current size of the buffer, or false if the handle is unknown.
func (a *HeapAllocator) Size(ctx context.Context, handle resource.Handle) (uint64, bool) {
	return xsync.DoR2(xsync.WithNoLogging(ctx, true), &a.Locker, func() (uint64, bool) {
		buf, ok := a.buffers[handle]
		return uint64(len(buf)), ok
	})
}

// TotalSize returns the amount of bytes currently allocated.
func (a *HeapAllocator) TotalSize(ctx context.Context) uint64 {
	return xsync.DoR1(xsync.WithNoLogging(ctx, true), &a.Locker, func() uint64 {
		return a.total
	})
}
