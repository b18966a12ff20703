// request.go defines a request to scale one frame.

package sfc

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/partition"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
	"github.com/xaionaro-go/typing"
)

// Sharpening enables the image enhancement filter.
type Sharpening struct {
	SkinToneTuned bool
	Smooth        bool
}

// Histogram is the target of the histogram stream-out.
type Histogram struct {
	Handle resource.Handle
	Offset uint64
}

// Request is everything needed to build the scaler-unit commands of
// one frame.
type Request struct {
	PipeMode types.PipeMode

	// InputOrderingMode is passed to the hardware as is; its meaning
	// depends on the feeding engine.
	InputOrderingMode uint32

	InputFrame   types.Resolution
	InputFormat  format.Format
	SourceRegion types.Rect

	// OutputFrame and DestRegion are in the orientation of the output,
	// that is after the rotation.
	OutputFrame types.Resolution
	DestRegion  types.Rect
	Output      Surface

	ChromaSiting types.ChromaSiting
	Rotation     types.Rotation
	Mirror       types.Mirror

	ColorFill  typing.Optional[types.Color]
	Alpha      float64
	Sharpening typing.Optional[Sharpening]
	Histogram  typing.Optional[Histogram]
	CSC        bool

	FilterMode      types.FilterMode
	EightTapChroma  bool
	Dithering       bool
	OutputCentering bool

	// ForcePolyphase enables chroma upsampling through the polyphase
	// filter even when no scaling is done.
	ForcePolyphase bool

	Field types.FieldParams

	// TempField is the intermediate surface used when converting an
	// interleaved frame into separate fields.
	TempField resource.Handle

	Scalability partition.Config
}

func (req *Request) Validate() error {
	if req.InputFrame.IsZero() {
		return types.ErrInvalidConfiguration{Reason: "empty input frame"}
	}
	if req.OutputFrame.IsZero() {
		return types.ErrInvalidConfiguration{Reason: "empty output frame"}
	}
	if req.SourceRegion.IsEmpty() || !req.SourceRegion.Within(req.InputFrame) {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("source region %s is not within the input frame %s", req.SourceRegion, req.InputFrame)}
	}
	if req.DestRegion.IsEmpty() || !req.DestRegion.Within(req.OutputFrame) {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("destination region %s is not within the output frame %s", req.DestRegion, req.OutputFrame)}
	}
	if req.PipeMode < 0 || req.PipeMode >= types.EndOfPipeMode {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("pipe mode %s", req.PipeMode)}
	}
	if req.Rotation < 0 || req.Rotation >= types.EndOfRotation {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("rotation %s", req.Rotation)}
	}
	if err := req.Scalability.Validate(); err != nil {
		return err
	}
	if err := req.Output.validate("Output"); err != nil {
		return err
	}
	if req.Field.Mode == types.FieldModeInterleavedToField && !req.TempField.IsValid() {
		return types.ErrInvalidParameter{Name: "TempField"}
	}
	if req.Histogram.IsSet() && !req.Histogram.Get().Handle.IsValid() {
		return types.ErrInvalidParameter{Name: "Histogram.Handle"}
	}
	return nil
}
