// gen12.go implements the 50-word command layout of the first generation with scaler-unit scalability.

package sfc

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/cmdbuf"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

const gen12Size = 50

var gen12Layout = newLayout(gen12Size, 19, 29)

var (
	gen12TileWalk = cmdbuf.Bit(29, 0)
	gen12Tiled    = cmdbuf.Bit(29, 1)
)

type Gen12 struct{}

var _ Encoder = Gen12{}

func (Gen12) Generation() Generation {
	return GenerationGen12
}

func (Gen12) DescriptorSize() int {
	return gen12Size
}

func (Gen12) Validate(s *State) error {
	switch {
	case s.PipeMode == types.PipeModeAVP:
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("pipe mode %s is not supported by %s", s.PipeMode, GenerationGen12)}
	case s.Scaling.Dithering:
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("dithering is not supported by %s", GenerationGen12)}
	case s.Mirror != types.MirrorNone:
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("mirroring is not supported by %s", GenerationGen12)}
	case s.Field.Mode != types.FieldModeProgressive:
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("field mode %s is not supported by %s", s.Field.Mode, GenerationGen12)}
	}
	return nil
}

func (Gen12) Encode(s *State, w *cmdbuf.Writer) {
	gen12Layout.encode(s, w)
	w.SetBool(gen12TileWalk, s.Surface.TileMode == types.TileModeY)
	w.SetBool(gen12Tiled, s.Surface.TileMode != types.TileModeLinear)
}

func (Gen12) BindingWord(kind resource.Kind) (int, bool) {
	dw, ok := bindingWords[kind]
	return dw, ok
}
