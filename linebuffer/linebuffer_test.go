package linebuffer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

func veboxInput() SizeInput {
	return SizeInput{
		PipeMode:        types.PipeModeVEBox,
		InputWidth:      1920,
		InputHeight:     1080,
		ScaledWidth:     1280,
		ScaledHeight:    720,
		OutputColorPack: format.ColorPack420,
	}
}

func vdboxInput() SizeInput {
	return SizeInput{
		PipeMode:        types.PipeModeVDBox,
		EightTapChroma:  true,
		InputWidth:      1917,
		InputHeight:     1080,
		ScaledWidth:     1280,
		ScaledHeight:    720,
		OutputColorPack: format.ColorPack420,
	}
}

func TestSizes(t *testing.T) {
	t.Parallel()

	in := veboxInput()
	require.Equal(t, uint64(1080*48), AVSSize(in, false))
	require.Equal(t, uint64(720*16), IEFSize(in, false))
	require.Equal(t, uint64(720*8), SFDSize(in, false))
	require.Equal(t, uint64(1080*48+TilePadding), AVSSize(in, true))

	in.EightTapChroma = true
	require.Equal(t, uint64(1080*80), AVSSize(in, false))

	in.OutputColorPack = format.ColorPack444
	require.Zero(t, SFDSize(in, false))
	require.Zero(t, SFDSize(in, true))

	in = vdboxInput()
	require.Equal(t, uint64(1920*40), AVSSize(in, false))
	require.Zero(t, IEFSize(in, false))
	require.Zero(t, IEFSize(in, true))
	require.Equal(t, uint64(128*64*2), SFDSize(in, false))
	require.Equal(t, uint64(128*64*2+TilePadding), Size(resource.KindSFDLineTileBuffer, in))

	in.EightTapChroma = false
	require.Equal(t, uint64(1920*24), AVSSize(in, false))

	in.PipeMode = types.PipeModeHCP
	require.Equal(t, uint64(1920*48), AVSSize(in, false))

	require.Zero(t, Size(resource.KindOutput, in))
}

func TestNeeds(t *testing.T) {
	t.Parallel()

	in := veboxInput()
	require.False(t, NeedsSFD(in))
	require.False(t, NeedsTiles(in, 2))
	in.ScaledHeight = SFDHeightLimit + 1
	require.True(t, NeedsSFD(in))

	in = vdboxInput()
	require.True(t, NeedsSFD(in))
	require.False(t, NeedsTiles(in, 1))
	require.True(t, NeedsTiles(in, 2))
}

func kindsOf(bufs []Buffer) []resource.Kind {
	var kinds []resource.Kind
	for _, buf := range bufs {
		kinds = append(kinds, buf.Kind)
	}
	return kinds
}

func TestManagerSingleEngineDisplayFed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alloc := NewHeapAllocator()
	m := NewManager(alloc)
	require.NoError(t, m.Prepare(ctx, veboxInput(), 1))

	require.Equal(t, []resource.Kind{
		resource.KindAVSLineBuffer,
		resource.KindIEFLineBuffer,
	}, kindsOf(m.Buffers(0)))
	require.Equal(t, m.TotalSize(), alloc.TotalSize(ctx))
	require.Empty(t, m.Buffers(1))
}

func TestManagerGrowOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alloc := NewHeapAllocator()
	m := NewManager(alloc)

	in := veboxInput()
	require.NoError(t, m.Prepare(ctx, in, 1))
	handle := m.Handles(0, in, 1)[resource.KindAVSLineBuffer]

	in.InputHeight = 2160
	require.NoError(t, m.Prepare(ctx, in, 1))
	require.Equal(t, handle, m.Handles(0, in, 1)[resource.KindAVSLineBuffer])
	size, ok := alloc.Size(ctx, handle)
	require.True(t, ok)
	require.Equal(t, uint64(2160*48), size)

	in.InputHeight = 480
	require.NoError(t, m.Prepare(ctx, in, 1))
	size, _ = alloc.Size(ctx, handle)
	require.Equal(t, uint64(2160*48), size)
	require.Equal(t, uint64(2160*48), m.Buffers(0)[0].Size)
}

func TestManagerZeroReleases(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alloc := NewHeapAllocator()
	m := NewManager(alloc)

	require.NoError(t, m.Prepare(ctx, veboxInput(), 1))
	ief := m.Handles(0, veboxInput(), 1)[resource.KindIEFLineBuffer]
	require.True(t, ief.IsValid())

	in := vdboxInput()
	require.NoError(t, m.Prepare(ctx, in, 1))
	_, ok := m.Handles(0, in, 1)[resource.KindIEFLineBuffer]
	require.False(t, ok)
	_, ok = alloc.Size(ctx, ief)
	require.False(t, ok)
	require.Equal(t, m.TotalSize(), alloc.TotalSize(ctx))
}

func TestManagerMultiEngineDecodeFed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alloc := NewHeapAllocator()
	m := NewManager(alloc)

	in := vdboxInput()
	require.NoError(t, m.Prepare(ctx, in, 1))
	require.Equal(t, []resource.Kind{
		resource.KindAVSLineBuffer,
		resource.KindSFDLineBuffer,
	}, kindsOf(m.Buffers(0)))

	require.NoError(t, m.Prepare(ctx, in, 2))
	for engine := 0; engine < 2; engine++ {
		require.Equal(t, []resource.Kind{
			resource.KindAVSLineBuffer,
			resource.KindSFDLineBuffer,
			resource.KindAVSLineTileBuffer,
			resource.KindSFDLineTileBuffer,
		}, kindsOf(m.Buffers(engine)))
	}

	h0 := m.Handles(0, in, 2)
	h1 := m.Handles(1, in, 2)
	require.NotEqual(t, h0[resource.KindAVSLineBuffer], h1[resource.KindAVSLineBuffer])
	require.Equal(t, h0[resource.KindAVSLineTileBuffer], h1[resource.KindAVSLineTileBuffer])
	require.Equal(t, m.TotalSize(), alloc.TotalSize(ctx))

	require.NoError(t, m.Close(ctx))
	require.Zero(t, alloc.TotalSize(ctx))
	require.Zero(t, m.TotalSize())
}

func TestManagerAllocationFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alloc := NewHeapAllocator()
	alloc.Limit = 1024
	m := NewManager(alloc)

	err := m.Prepare(ctx, veboxInput(), 1)
	require.Error(t, err)
	var allocErr types.ErrAllocationFailure
	require.True(t, errors.As(err, &allocErr))
	require.Equal(t, uint64(1080*48), allocErr.Size)
}

func TestManagerInvalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	require.Error(t, NewManager(NewHeapAllocator()).Prepare(ctx, veboxInput(), 0))
	err := NewManager(nil).Prepare(ctx, veboxInput(), 1)
	require.True(t, errors.As(err, &types.ErrInvalidParameter{}))
}

func TestManagerBindingsFollowTheFrame(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	alloc := NewHeapAllocator()
	m := NewManager(alloc)

	decode := vdboxInput()
	decode.PipeMode = types.PipeModeHCP
	require.NoError(t, m.Prepare(ctx, decode, 2))
	decodeHandles := m.Handles(0, decode, 2)
	require.Contains(t, decodeHandles, resource.KindSFDLineBuffer)
	require.Contains(t, decodeHandles, resource.KindAVSLineTileBuffer)
	require.Contains(t, decodeHandles, resource.KindSFDLineTileBuffer)
	held := m.TotalSize()

	display := veboxInput()
	require.NoError(t, m.Prepare(ctx, display, 1))
	displayHandles := m.Handles(0, display, 1)
	require.Equal(t, map[resource.Kind]resource.Handle{
		resource.KindAVSLineBuffer: decodeHandles[resource.KindAVSLineBuffer],
		resource.KindIEFLineBuffer: displayHandles[resource.KindIEFLineBuffer],
	}, displayHandles)
	require.Empty(t, m.Handles(1, display, 1))

	// the memory of the decode-fed frame is kept
	require.Equal(t, []resource.Kind{
		resource.KindAVSLineBuffer,
		resource.KindIEFLineBuffer,
		resource.KindSFDLineBuffer,
		resource.KindAVSLineTileBuffer,
		resource.KindSFDLineTileBuffer,
	}, kindsOf(m.Buffers(0)))
	require.Equal(t, uint64(1920*80), m.Buffers(0)[0].Size)
	require.Equal(t, held+uint64(720*16), m.TotalSize())
	require.Equal(t, m.TotalSize(), alloc.TotalSize(ctx))

	// and bound again once a frame needs it
	require.NoError(t, m.Prepare(ctx, decode, 2))
	require.Equal(t, decodeHandles, m.Handles(0, decode, 2))
}
