package format

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avsfc/types"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format        Format
		code          OutputCode
		bitDepthField uint8
		interleaved   bool
		swap          bool
		pack          ColorPack
	}{
		{AYUV, OutputCodeAYUV, 0, false, false, ColorPack444},
		{A8R8G8B8, OutputCodeA8B8G8R8, 0, false, true, ColorPack444},
		{X8R8G8B8, OutputCodeA8B8G8R8, 0, false, true, ColorPack444},
		{A8B8G8R8, OutputCodeA8B8G8R8, 0, false, false, ColorPack444},
		{X8B8G8R8, OutputCodeA8B8G8R8, 0, false, false, ColorPack444},
		{R10G10B10A2, OutputCodeA2R10G10B10, 0, false, true, ColorPack444},
		{B10G10R10A2, OutputCodeA2R10G10B10, 0, false, false, ColorPack444},
		{R5G6B5, OutputCodeR5G6B5, 0, false, false, ColorPack444},
		{NV12, OutputCodeNV12, 0, true, false, ColorPack420},
		{YUY2, OutputCodeYUYV, 0, false, false, ColorPack422H},
		{YVYU, OutputCodeYUYV, 0, false, true, ColorPack422H},
		{UYVY, OutputCodeUYVY, 0, false, false, ColorPack422H},
		{VYUY, OutputCodeUYVY, 0, false, true, ColorPack422H},
		{P010, OutputCodeP016, 0, true, false, ColorPack420},
		{P016, OutputCodeP016, 1, true, false, ColorPack420},
		{Y210, OutputCodeY216, 0, false, false, ColorPack422H},
		{Y216, OutputCodeY216, 1, false, false, ColorPack422H},
		{Y410, OutputCodeY416, 0, false, false, ColorPack444},
		{Y416, OutputCodeY416, 1, false, false, ColorPack444},
		{Y8, OutputCodeY8, 0, false, false, ColorPack400},
		{Y16U, OutputCodeY8, 0, false, false, ColorPack400},
		{A16R16G16B16, OutputCodeA16B16G16R16, 0, false, true, ColorPack444},
		{A16B16G16R16, OutputCodeA16B16G16R16, 0, false, false, ColorPack444},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.format.String(), func(t *testing.T) {
			t.Parallel()

			c, err := Classify(tt.format)
			require.NoError(t, err)
			require.Equal(t, tt.format, c.Format)
			require.Equal(t, tt.code, c.Code)
			require.Equal(t, tt.bitDepthField, c.BitDepthField)
			require.Equal(t, tt.interleaved, c.Interleaved)
			require.Equal(t, tt.swap, c.Swap)
			require.Equal(t, tt.pack, c.ColorPack)
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{Undefined, YV12, I420, P444, EndOfFormat, Format(1000)} {
		_, err := Classify(f)
		var errUnsupported types.ErrUnsupportedFormat
		require.True(t, errors.As(err, &errUnsupported), "format %v", f)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	for _, f := range All() {
		first, firstErr := Classify(f)
		for i := 0; i < 3; i++ {
			again, err := Classify(f)
			require.Equal(t, firstErr, err)
			require.Equal(t, first, again)
		}
	}
}

func TestSwapOnlyForReorderedSiblings(t *testing.T) {
	t.Parallel()

	// every swapped format must share its code with a non-swapped one
	for _, f := range All() {
		c, err := Classify(f)
		if err != nil || !c.Swap {
			continue
		}
		var found bool
		for _, other := range All() {
			oc, err := Classify(other)
			if err == nil && !oc.Swap && oc.Code == c.Code {
				found = true
				break
			}
		}
		require.True(t, found, "format %v", f)
	}
}

func TestInputOnlyFormats(t *testing.T) {
	t.Parallel()

	pack, err := ColorPackOf(I420)
	require.NoError(t, err)
	require.Equal(t, ColorPack420, pack)
	family, err := FamilyOf(P411)
	require.NoError(t, err)
	require.Equal(t, FamilyYUV, family)
	require.True(t, IsRGB(A8R8G8B8))
	require.False(t, IsRGB(NV12))

	_, err = ColorPackOf(Undefined)
	require.Error(t, err)
}

func TestParse(t *testing.T) {
	t.Parallel()

	for _, f := range All() {
		parsed, err := Parse(f.String())
		require.NoError(t, err)
		require.Equal(t, f, parsed)
	}

	var f Format
	require.NoError(t, f.UnmarshalText([]byte(" nv12 ")))
	require.Equal(t, NV12, f)
	require.Error(t, f.UnmarshalText([]byte("RGB24")))
}

func TestDefaultPlaneOffsets(t *testing.T) {
	t.Parallel()

	c, err := Classify(NV12)
	require.NoError(t, err)
	u, v := c.DefaultPlaneOffsets(1088)
	require.Equal(t, types.PlaneOffset{Y: 1088}, u)
	require.Equal(t, types.PlaneOffset{Y: 1088}, v)

	c, err = Classify(YUY2)
	require.NoError(t, err)
	u, _ = c.DefaultPlaneOffsets(1088)
	require.Zero(t, u)
}
