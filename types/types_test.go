package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolution(t *testing.T) {
	var r Resolution
	require.NoError(t, r.Parse("1920x1080"))
	require.Equal(t, Resolution{Width: 1920, Height: 1080}, r)
	require.Equal(t, "1920x1080", r.String())
	require.Equal(t, Resolution{Width: 1080, Height: 1920}, r.Transposed())
	require.False(t, r.IsZero())
	require.True(t, Resolution{Width: 1}.IsZero())
	require.Error(t, r.Parse("wide"))
}

func TestRect(t *testing.T) {
	frame := Resolution{Width: 100, Height: 50}
	require.True(t, Full(frame).Within(frame))
	require.True(t, Rect{X: 10, Y: 10, Width: 90, Height: 40}.Within(frame))
	require.False(t, Rect{X: 11, Width: 90, Height: 1}.Within(frame))
	require.False(t, Rect{X: 1 << 31, Width: 1 << 31, Height: 1}.Within(frame))
	require.Equal(t, Rect{X: 2, Y: 1, Width: 4, Height: 3}, Rect{X: 1, Y: 2, Width: 3, Height: 4}.Transposed())
	require.True(t, Rect{Width: 5}.IsEmpty())
}

func TestEnumText(t *testing.T) {
	var m PipeMode
	require.NoError(t, m.UnmarshalText([]byte("VEBOX")))
	require.Equal(t, PipeModeVEBox, m)
	require.Error(t, m.UnmarshalText([]byte("sfc")))

	var r Rotation
	require.NoError(t, r.UnmarshalText([]byte("270")))
	require.True(t, r.SwapsAxes())

	var f FieldMode
	require.NoError(t, f.UnmarshalText([]byte("interleaved-to-field")))
	in, out := f.DataFormats()
	require.Equal(t, FrameDataFormatInterleaved, in)
	require.Equal(t, FrameDataFormatField, out)

	b, err := CompressionModeMC.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "mc", string(b))
	require.Equal(t, "<unexpected_9>", TileMode(9).String())
}

func TestErrors(t *testing.T) {
	cause := fmt.Errorf("out of memory")
	err := fmt.Errorf("unable to prepare: %w", ErrAllocationFailure{Name: "AVS#0", Size: 64, Err: cause})

	var allocErr ErrAllocationFailure
	require.True(t, errors.As(err, &allocErr))
	require.Equal(t, "AVS#0", allocErr.Name)
	require.ErrorIs(t, err, cause)

	require.Contains(t, ErrInvalidConfiguration{Reason: "engine index 2"}.Error(), "engine index 2")
	require.Contains(t, ErrInvalidParameter{Name: "Output.Handle"}.Error(), "Output.Handle")
}
