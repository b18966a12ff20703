// state.go derives the generation-independent parameter set of a scaler-unit command.

package sfc

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/partition"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/scaling"
	"github.com/xaionaro-go/avsfc/types"
)

const (
	MinFrameSize = 128
	MaxFrameSize = 16384
)

// State is the logical content of one scaler-unit command. Encoders
// only translate it into words; all the decisions are made here.
type State struct {
	PipeMode          types.PipeMode
	InputOrderingMode uint32
	InputFrame        types.Resolution
	InputColorPack    format.ColorPack
	InputRGB          bool

	Output       format.Class
	Surface      Surface
	UOffset      types.PlaneOffset
	VOffset      types.PlaneOffset
	ChromaSiting types.ChromaSiting

	SourceRegion types.Rect

	// OutputFrame and ScaledRegion are in the orientation of the source.
	OutputFrame  types.Resolution
	ScaledRegion types.Rect

	Scaling  scaling.Params
	Rotation types.Rotation
	Mirror   types.Mirror

	Sharpening    bool
	SkinToneTuned bool
	IEFSmooth     bool
	CSC           bool

	ColorFill bool
	Color     scaling.ColorFill
	Alpha     uint32

	Histogram *Histogram

	Field     types.FieldParams
	TempField resource.Handle

	MultiEngine bool
	Engine      partition.EngineAssignment
}

func checkFrame(name string, r types.Resolution) error {
	if r.Width < MinFrameSize || r.Width > MaxFrameSize ||
		r.Height < MinFrameSize || r.Height > MaxFrameSize {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf(
			"%s %s is out of [%d, %d]", name, r, MinFrameSize, MaxFrameSize,
		)}
	}
	return nil
}

// BuildState validates the request and derives the parameters of the
// command of the engine req.Scalability.Index.
func BuildState(
	ctx context.Context,
	req Request,
) (_ret *State, _err error) {
	logger.Tracef(ctx, "BuildState(ctx, %#+v)", req)
	defer func() { logger.Tracef(ctx, "/BuildState(ctx, %#+v): %v", req, _err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	outClass, err := format.Classify(req.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("unable to classify the output format: %w", err)
	}
	inPack, err := format.ColorPackOf(req.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("unable to classify the input format: %w", err)
	}

	if err := checkFrame("input frame", req.InputFrame); err != nil {
		return nil, err
	}
	if err := checkFrame("output frame", req.OutputFrame); err != nil {
		return nil, err
	}
	if req.PipeMode == types.PipeModeVDBox && req.SourceRegion != types.Full(req.InputFrame) {
		return nil, types.ErrInvalidConfiguration{Reason: fmt.Sprintf(
			"a decoder-fed pipe cannot crop: source region %s, input frame %s",
			req.SourceRegion, req.InputFrame,
		)}
	}

	outputFrame, scaledRegion := req.OutputFrame, req.DestRegion
	if req.Rotation.SwapsAxes() {
		outputFrame, scaledRegion = outputFrame.Transposed(), scaledRegion.Transposed()
	}

	params, err := scaling.Compute(scaling.Input{
		Source:          types.Resolution{Width: req.SourceRegion.Width, Height: req.SourceRegion.Height},
		Dest:            types.Resolution{Width: scaledRegion.Width, Height: scaledRegion.Height},
		InputFormat:     req.InputFormat,
		FilterMode:      req.FilterMode,
		EightTapChroma:  req.EightTapChroma,
		OutputCentering: req.OutputCentering,
		Dithering:       req.Dithering,
		ForcePolyphase:  req.ForcePolyphase,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to compute the scaling parameters: %w", err)
	}

	s := &State{
		PipeMode:          req.PipeMode,
		InputOrderingMode: req.InputOrderingMode,
		InputFrame:        req.InputFrame,
		InputColorPack:    inPack,
		InputRGB:          format.IsRGB(req.InputFormat),
		Output:            outClass,
		Surface:           req.Output,
		ChromaSiting:      req.ChromaSiting,
		SourceRegion:      req.SourceRegion,
		OutputFrame:       outputFrame,
		ScaledRegion:      scaledRegion,
		Scaling:           params,
		Rotation:          req.Rotation,
		Mirror:            req.Mirror,
		Sharpening:        req.Sharpening.IsSet(),
		CSC:               req.CSC,
		ColorFill:         req.ColorFill.IsSet(),
		Alpha:             scaling.NormalizeColor(req.Alpha),
		Field:             req.Field,
		TempField:         req.TempField,
		MultiEngine:       req.Scalability.IsMultiEngine(),
	}
	s.UOffset, s.VOffset = req.Output.planeOffsets(outClass)
	if req.Sharpening.IsSet() {
		sharpening := req.Sharpening.Get()
		s.SkinToneTuned = sharpening.SkinToneTuned
		s.IEFSmooth = sharpening.Smooth
	}
	if req.ColorFill.IsSet() {
		s.Color = scaling.EncodeColor(req.ColorFill.Get())
	}
	if req.Histogram.IsSet() {
		h := req.Histogram.Get()
		s.Histogram = &h
	}

	if !s.MultiEngine {
		s.Engine = partition.EngineAssignment{
			Role:      partition.RoleSingle,
			Source:    partition.Span{Start: 0, End: int(req.InputFrame.Width) - 1},
			Dest:      partition.Span{Start: 0, End: int(scaledRegion.Width) - 1},
			ColorFill: s.ColorFill,
		}
		return s, nil
	}

	plan, err := partition.Plan(ctx, partition.Input{
		Config:             req.Scalability,
		SourceWidth:        req.InputFrame.Width,
		SourceRegionOffset: req.SourceRegion.X,
		SourceRegionWidth:  req.SourceRegion.Width,
		ScaledWidth:        scaledRegion.Width,
		Sharpening:         s.Sharpening,
		OutputColorPack:    outClass.ColorPack,
		ColorFill:          s.ColorFill,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to partition the frame between %d engines: %w", req.Scalability.Count, err)
	}
	s.Engine, err = plan.At(req.Scalability.Index)
	if err != nil {
		return nil, err
	}
	s.ColorFill = s.Engine.ColorFill
	logger.Debugf(ctx, "engine %s: source %s, destination %s (from %d), role %s",
		req.Scalability, s.Engine.Source, s.Engine.Dest, s.Engine.DestContextStart, s.Engine.Role)
	return s, nil
}

// OutputTarget returns the buffer the primary output address points to.
func (s *State) OutputTarget() resource.Handle {
	if s.Field.Mode == types.FieldModeInterleavedToField && s.Field.Field == types.FieldBottom {
		return s.TempField
	}
	return s.Surface.Handle
}

// BottomFieldTarget returns the buffer the bottom-field address points to.
func (s *State) BottomFieldTarget() resource.Handle {
	if s.Field.Field == types.FieldBottom {
		return s.Surface.Handle
	}
	return s.TempField
}
