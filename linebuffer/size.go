// size.go computes the byte sizes of the scaler-unit scratch line buffers.

// Package linebuffer sizes and keeps the scratch line buffers of the
// scaler unit across frames.
package linebuffer

import (
	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

const (
	CachelineSize = 64

	// TilePadding is added to a non-empty per-partition buffer.
	TilePadding = 1024 * CachelineSize

	// SFDHeightLimit is the scaled height above which a display-fed
	// pipe needs the SFD line buffers.
	SFDHeightLimit = 4160

	avsPerPixel4Tap8Bit  = 24
	avsPerPixel8Tap8Bit  = 40
	avsPerPixel4Tap12Bit = 48
	avsPerPixel8Tap12Bit = 80

	iefPerVerticalPixel = CachelineSize / 4
	sfdPerVerticalPixel = CachelineSize / 8
)

// SizeInput is everything the sizes of the line buffers depend on.
type SizeInput struct {
	PipeMode        types.PipeMode
	EightTapChroma  bool
	InputWidth      uint32
	InputHeight     uint32
	ScaledWidth     uint32
	ScaledHeight    uint32
	OutputColorPack format.ColorPack
}

func (in SizeInput) avsBytesPerPixel() uint64 {
	if in.PipeMode == types.PipeModeVDBox {
		if in.EightTapChroma {
			return avsPerPixel8Tap8Bit
		}
		return avsPerPixel4Tap8Bit
	}
	if in.EightTapChroma {
		return avsPerPixel8Tap12Bit
	}
	return avsPerPixel4Tap12Bit
}

func padTiled(size uint64, tiled bool) uint64 {
	if tiled && size > 0 {
		size += TilePadding
	}
	return size
}

// AVSSize returns the size of the adaptive scaler line buffer. A display
// fed pipe stores columns (one entry per input row), a decode fed pipe
// stores rows.
func AVSSize(in SizeInput, tiled bool) uint64 {
	var size uint64
	if in.PipeMode == types.PipeModeVEBox {
		size = uint64(in.InputHeight) * in.avsBytesPerPixel()
	} else {
		size = alignUp(uint64(in.InputWidth), 8) * in.avsBytesPerPixel()
	}
	return padTiled(size, tiled)
}

// IEFSize returns the size of the sharpening line buffer; it is only
// needed by a display fed pipe.
func IEFSize(in SizeInput, tiled bool) uint64 {
	if in.PipeMode != types.PipeModeVEBox {
		return 0
	}
	return padTiled(uint64(in.ScaledHeight)*iefPerVerticalPixel, tiled)
}

// SFDSize returns the size of the scaler front-end downsampling line buffer.
func SFDSize(in SizeInput, tiled bool) uint64 {
	var size uint64
	if in.PipeMode == types.PipeModeVEBox {
		if in.OutputColorPack != format.ColorPack444 {
			size = uint64(in.ScaledHeight) * sfdPerVerticalPixel
		}
	} else {
		size = (uint64(in.ScaledWidth) + 9) / 10 * CachelineSize
		size *= 2
	}
	return padTiled(size, tiled)
}

// Size returns the size of a buffer of the given kind.
func Size(kind resource.Kind, in SizeInput) uint64 {
	switch kind {
	case resource.KindAVSLineBuffer:
		return AVSSize(in, false)
	case resource.KindIEFLineBuffer:
		return IEFSize(in, false)
	case resource.KindSFDLineBuffer:
		return SFDSize(in, false)
	case resource.KindAVSLineTileBuffer:
		return AVSSize(in, true)
	case resource.KindIEFLineTileBuffer:
		return IEFSize(in, true)
	case resource.KindSFDLineTileBuffer:
		return SFDSize(in, true)
	default:
		return 0
	}
}

// NeedsSFD reports whether the per-engine SFD buffers are used at all.
func NeedsSFD(in SizeInput) bool {
	return in.PipeMode.IsDecodeFed() || in.ScaledHeight > SFDHeightLimit
}

// NeedsTiles reports whether the per-partition buffers are used at all.
func NeedsTiles(in SizeInput, engineCount int) bool {
	return in.PipeMode.IsDecodeFed() && engineCount > 1
}

func alignUp(v, alignment uint64) uint64 {
	return (v + alignment - 1) / alignment * alignment
}
