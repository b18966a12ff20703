// params.go derives the filter and scaling parameters of one request.

package scaling

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/types"
)

type Input struct {
	// Source is the size of the source region.
	Source types.Resolution

	// Dest is the size of the scaled region, in the orientation of the source.
	Dest types.Resolution

	InputFormat     format.Format
	FilterMode      types.FilterMode
	EightTapChroma  bool
	OutputCentering bool
	Dithering       bool
	ForcePolyphase  bool
}

// Axis holds the parameters of one direction.
type Axis struct {
	ScaleFactor uint32

	// PhaseShift is zero unless output centering is enabled.
	PhaseShift int32

	// Ratio is destination length divided by source length.
	Ratio float64
}

func (a Axis) IsUpscale() bool {
	return a.Ratio > 1
}

func (a Axis) IsIdentity() bool {
	return a.Ratio == 1
}

type Params struct {
	X Axis
	Y Axis

	AVSEnabled          bool
	BypassXAdaptive     bool
	BypassYAdaptive     bool
	RGBAdaptive         bool
	AdaptiveAllChannels bool
	EightTapChroma      bool
	FilterMode          types.FilterMode
	ChromaUpsampling    bool

	Dithering   bool
	DitherDelta [DitherLUTSize]uint8
}

// FilterModeCode is the hardware AVS filter mode code.
func (p Params) FilterModeCode() uint32 {
	switch p.FilterMode {
	case types.FilterModePoly8x8:
		return 1
	case types.FilterModeBilinear:
		return 2
	default:
		return 0
	}
}

func computeAxis(sourceLen, destLen uint32, centering bool) (Axis, error) {
	sf, err := ScaleFactor(sourceLen, destLen)
	if err != nil {
		return Axis{}, err
	}
	a := Axis{
		ScaleFactor: sf,
		Ratio:       float64(destLen) / float64(sourceLen),
	}
	if centering {
		a.PhaseShift, err = PhaseShift(sourceLen, destLen)
		if err != nil {
			return Axis{}, err
		}
	}
	return a, nil
}

func Compute(in Input) (Params, error) {
	family, err := format.FamilyOf(in.InputFormat)
	if err != nil {
		return Params{}, fmt.Errorf("unable to classify the input format: %w", err)
	}

	x, err := computeAxis(in.Source.Width, in.Dest.Width, in.OutputCentering)
	if err != nil {
		return Params{}, fmt.Errorf("unable to compute the horizontal parameters: %w", err)
	}
	y, err := computeAxis(in.Source.Height, in.Dest.Height, in.OutputCentering)
	if err != nil {
		return Params{}, fmt.Errorf("unable to compute the vertical parameters: %w", err)
	}

	p := Params{
		X:                   x,
		Y:                   y,
		AVSEnabled:          !(x.IsIdentity() && y.IsIdentity()),
		FilterMode:          in.FilterMode,
		EightTapChroma:      in.EightTapChroma,
		AdaptiveAllChannels: in.EightTapChroma,
		RGBAdaptive:         family == format.FamilyRGB && in.EightTapChroma,
		Dithering:           in.Dithering,
	}
	p.ChromaUpsampling = p.AVSEnabled || in.ForcePolyphase

	adaptive := family == format.FamilyYUV &&
		(x.IsUpscale() || y.IsUpscale()) &&
		in.FilterMode != types.FilterModeBilinear
	p.BypassXAdaptive = !adaptive
	p.BypassYAdaptive = !adaptive

	if in.Dithering {
		p.DitherDelta = DitherDeltas()
	}
	return p, nil
}
