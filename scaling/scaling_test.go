package scaling

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/types"
)

func TestScaleFactor(t *testing.T) {
	t.Parallel()

	sf, err := ScaleFactor(1920, 1920)
	require.NoError(t, err)
	require.Equal(t, uint32(One), sf)

	sf, err = ScaleFactor(100, 50)
	require.NoError(t, err)
	require.Equal(t, uint32(2*One), sf)

	sf, err = ScaleFactor(1, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(174763), sf) // 524288/3 = 174762.67

	sf, err = ScaleFactor(16*1024, 1024)
	require.NoError(t, err)
	require.Equal(t, uint32(MaxScaleFactor), sf)

	_, err = ScaleFactor(100, 0)
	var errCfg types.ErrInvalidConfiguration
	require.True(t, errors.As(err, &errCfg))

	_, err = ScaleFactor(0, 100)
	require.True(t, errors.As(err, &errCfg))
}

func TestPhaseShift(t *testing.T) {
	t.Parallel()

	ps, err := PhaseShift(1000, 1000)
	require.NoError(t, err)
	require.Zero(t, ps)

	ps, err = PhaseShift(200, 100)
	require.NoError(t, err)
	require.Equal(t, int32(One/2), ps)

	ps, err = PhaseShift(100, 200)
	require.NoError(t, err)
	require.Equal(t, int32(-One/4), ps)

	_, err = PhaseShift(100, 0)
	require.Error(t, err)
}

func TestScalePhaseRoundTrip(t *testing.T) {
	t.Parallel()

	for _, sourceLen := range []uint32{128, 333, 1080, 1920, 4096} {
		for _, ratio := range []float64{0.0625, 0.1, 0.25, 0.5, 0.75, 1, 1.5, 2, 3.3, 8, 16} {
			destLen := uint32(math.Round(float64(sourceLen) * ratio))
			if destLen == 0 || destLen > 16384 {
				continue
			}
			sf, err := ScaleFactor(sourceLen, destLen)
			require.NoError(t, err)
			recovered := DestinationLength(sourceLen, sf)
			require.InDelta(t, float64(destLen), float64(recovered), 1, "%d -> %d", sourceLen, destLen)

			ps, err := PhaseShift(sourceLen, destLen)
			require.NoError(t, err)
			require.GreaterOrEqual(t, ps, int32(MinPhaseShift))
			require.LessOrEqual(t, ps, int32(MaxPhaseShift))
		}
	}
}

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want uint32
	}{
		{0, 0},
		{1, 1023},
		{0.5, 512},
		{-0.3, 0},
		{7, 1023},
		{math.NaN(), 0},
		{math.Inf(1), 1023},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, NormalizeColor(tt.in), "%v", tt.in)
	}

	c := EncodeColor(types.Color{R: 1, G: 0.25, B: 0, A: 1})
	require.Equal(t, ColorFill{YR: 1023, UG: 256, VB: 0, A: 1023}, c)
}

func TestCompute(t *testing.T) {
	t.Parallel()

	res := func(w, h uint32) types.Resolution { return types.Resolution{Width: w, Height: h} }

	t.Run("identity", func(t *testing.T) {
		t.Parallel()
		p, err := Compute(Input{
			Source:      res(1920, 1080),
			Dest:        res(1920, 1080),
			InputFormat: format.NV12,
		})
		require.NoError(t, err)
		require.False(t, p.AVSEnabled)
		require.True(t, p.BypassXAdaptive)
		require.True(t, p.BypassYAdaptive)
		require.Zero(t, p.X.PhaseShift)
	})

	t.Run("yuv upscale", func(t *testing.T) {
		t.Parallel()
		p, err := Compute(Input{
			Source:          res(960, 540),
			Dest:            res(1920, 1080),
			InputFormat:     format.NV12,
			FilterMode:      types.FilterModePoly8x8,
			OutputCentering: true,
		})
		require.NoError(t, err)
		require.True(t, p.AVSEnabled)
		require.False(t, p.BypassXAdaptive)
		require.False(t, p.BypassYAdaptive)
		require.Equal(t, int32(-One/4), p.X.PhaseShift)
		require.Equal(t, uint32(1), p.FilterModeCode())
		require.True(t, p.ChromaUpsampling)
	})

	t.Run("yuv upscale bilinear", func(t *testing.T) {
		t.Parallel()
		p, err := Compute(Input{
			Source:      res(960, 540),
			Dest:        res(1920, 1080),
			InputFormat: format.NV12,
			FilterMode:  types.FilterModeBilinear,
		})
		require.NoError(t, err)
		require.True(t, p.BypassXAdaptive)
		require.Equal(t, uint32(2), p.FilterModeCode())
	})

	t.Run("yuv downscale", func(t *testing.T) {
		t.Parallel()
		p, err := Compute(Input{
			Source:      res(1920, 1080),
			Dest:        res(960, 540),
			InputFormat: format.YUY2,
		})
		require.NoError(t, err)
		require.True(t, p.AVSEnabled)
		require.True(t, p.BypassXAdaptive)
	})

	t.Run("rgb 8-tap", func(t *testing.T) {
		t.Parallel()
		p, err := Compute(Input{
			Source:         res(1920, 1080),
			Dest:           res(3840, 2160),
			InputFormat:    format.A8R8G8B8,
			EightTapChroma: true,
		})
		require.NoError(t, err)
		require.True(t, p.RGBAdaptive)
		require.True(t, p.BypassXAdaptive)
	})

	t.Run("one axis scaled", func(t *testing.T) {
		t.Parallel()
		p, err := Compute(Input{
			Source:      res(1920, 1080),
			Dest:        res(1920, 540),
			InputFormat: format.NV12,
		})
		require.NoError(t, err)
		require.True(t, p.AVSEnabled)
	})

	t.Run("unknown input", func(t *testing.T) {
		t.Parallel()
		_, err := Compute(Input{
			Source: res(1920, 1080),
			Dest:   res(1920, 1080),
		})
		var errUnsupported types.ErrUnsupportedFormat
		require.True(t, errors.As(err, &errUnsupported))
	})

	t.Run("zero destination", func(t *testing.T) {
		t.Parallel()
		_, err := Compute(Input{
			Source:      res(1920, 1080),
			Dest:        res(0, 1080),
			InputFormat: format.NV12,
		})
		var errCfg types.ErrInvalidConfiguration
		require.True(t, errors.As(err, &errCfg))
	})
}

func TestDitherIndependentOfParameters(t *testing.T) {
	t.Parallel()

	want := [DitherLUTSize]uint8{0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 1, 1}
	for _, f := range []format.Format{format.NV12, format.A8R8G8B8, format.P010} {
		for _, dest := range []uint32{50, 100, 400} {
			p, err := Compute(Input{
				Source:      types.Resolution{Width: 100, Height: 100},
				Dest:        types.Resolution{Width: dest, Height: dest},
				InputFormat: f,
				Dithering:   true,
			})
			require.NoError(t, err)
			require.Equal(t, want, p.DitherDelta)
		}
	}

	p, err := Compute(Input{
		Source:      types.Resolution{Width: 100, Height: 100},
		Dest:        types.Resolution{Width: 50, Height: 50},
		InputFormat: format.NV12,
	})
	require.NoError(t, err)
	require.Zero(t, p.DitherDelta)
}
