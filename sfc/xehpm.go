// xehpm.go implements the 61-word command layout with dithering, mirroring and field modes.

package sfc

import (
	"github.com/xaionaro-go/avsfc/cmdbuf"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/scaling"
	"github.com/xaionaro-go/avsfc/types"
)

const xeHPMSize = 61

var xeHPMLayout = newLayout(xeHPMSize, 21, 31)

var (
	xeInputDataFormat    = cmdbuf.Bits(1, 18, 19)
	xeOutputDataFormat   = cmdbuf.Bits(1, 20, 21)
	xeTopBottomField     = cmdbuf.Bit(1, 22)
	xeBottomFieldFirst   = cmdbuf.Bit(1, 23)
	xeDitherEnable       = cmdbuf.Bit(3, 17)
	xeCompressionFormat  = cmdbuf.Bits(3, 18, 22)
	xeMirrorType         = cmdbuf.Bit(4, 13)
	xeMirrorMode         = cmdbuf.Bit(4, 14)
	xeTiledMode          = cmdbuf.Bits(29, 0, 1)
	xeBottomFieldOffset  = cmdbuf.Bits(54, 0, 23)
	xeBottomFieldAddress = 55

	xeBottomTileWalk   = cmdbuf.Bit(58, 0)
	xeBottomTiled      = cmdbuf.Bit(58, 1)
	xeBottomHalfPitch  = cmdbuf.Bit(58, 2)
	xeBottomPitch      = cmdbuf.Bits(58, 3, 19)
	xeBottomInterleave = cmdbuf.Bit(58, 27)
	xeBottomUOffsetY   = cmdbuf.Bits(59, 0, 15)
	xeBottomUOffsetX   = cmdbuf.Bits(59, 16, 31)
	xeBottomVOffsetY   = cmdbuf.Bits(60, 0, 15)
	xeBottomVOffsetX   = cmdbuf.Bits(60, 16, 31)
)

// ditherDeltaField returns the position of the delta of the index: four
// deltas a word, byte-aligned, starting from the last word.
func ditherDeltaField(index int) cmdbuf.Field {
	dw := 53 - index/4
	low := uint(index%4) * 8
	return cmdbuf.Bits(dw, low, low+2)
}

func xeTiledModeOf(m types.TileMode) uint64 {
	switch m {
	case types.TileModeLinear:
		return 0
	case types.TileMode64:
		return 1
	case types.TileModeX:
		return 2
	default:
		return 3
	}
}

type XeHPM struct{}

var _ Encoder = XeHPM{}

func (XeHPM) Generation() Generation {
	return GenerationXeHPM
}

func (XeHPM) DescriptorSize() int {
	return xeHPMSize
}

func (XeHPM) Validate(*State) error {
	return nil
}

func (XeHPM) Encode(s *State, w *cmdbuf.Writer) {
	xeHPMLayout.encode(s, w)
	w.Set(xeTiledMode, xeTiledModeOf(s.Surface.TileMode))

	if s.Surface.IsCompressed() {
		w.Set(xeCompressionFormat, uint64(s.Surface.CompressionFormat))
	}

	if s.Mirror != types.MirrorNone {
		w.SetBool(xeMirrorMode, true)
		w.SetBool(xeMirrorType, s.Mirror == types.MirrorVertical)
	}

	if s.Scaling.Dithering {
		w.SetBool(xeDitherEnable, true)
		for idx := 0; idx < scaling.DitherLUTSize; idx++ {
			w.Set(ditherDeltaField(idx), uint64(s.Scaling.DitherDelta[idx]))
		}
	}

	in, out := s.Field.Mode.DataFormats()
	w.Set(xeInputDataFormat, uint64(in))
	w.Set(xeOutputDataFormat, uint64(out))
	switch s.Field.Mode {
	case types.FieldModeInterleavedToInterleaved:
		w.Set(xeBottomFieldOffset, uint64(s.Field.BottomFieldVerticalOffset))
	case types.FieldModeFieldToInterleaved:
		w.SetBool(xeTopBottomField, s.Field.Field == types.FieldBottom)
		w.SetBool(xeBottomFieldFirst, !s.Field.TopFieldFirst)
	case types.FieldModeInterleavedToField:
		// the bottom field is written with the layout of the output surface
		w.SetBool(xeBottomTileWalk, s.Surface.TileMode == types.TileModeY)
		w.SetBool(xeBottomTiled, s.Surface.TileMode != types.TileModeLinear)
		w.SetBool(xeBottomHalfPitch, false)
		w.Set(xeBottomPitch, uint64(s.Surface.Pitch)-1)
		w.SetBool(xeBottomInterleave, s.Output.Interleaved)
		w.Set(xeBottomUOffsetY, uint64(s.UOffset.Y))
		w.Set(xeBottomUOffsetX, uint64(s.UOffset.X))
		w.Set(xeBottomVOffsetY, uint64(s.VOffset.Y))
		w.Set(xeBottomVOffsetX, uint64(s.VOffset.X))
	}
}

func (XeHPM) BindingWord(kind resource.Kind) (int, bool) {
	if kind == resource.KindBottomField {
		return xeBottomFieldAddress, true
	}
	dw, ok := bindingWords[kind]
	return dw, ok
}
