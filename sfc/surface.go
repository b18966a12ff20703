// surface.go describes the surface the scaler unit writes to.

package sfc

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
	"github.com/xaionaro-go/typing"
)

type Surface struct {
	Format     format.Format
	Resolution types.Resolution
	Pitch      uint32
	TileMode   types.TileMode

	// UOffset and VOffset are the positions of the chroma planes; if
	// unset, the defaults of the format are used.
	UOffset typing.Optional[types.PlaneOffset]
	VOffset typing.Optional[types.PlaneOffset]

	// XOffset and YOffset are the position of the frame within the surface.
	XOffset uint32
	YOffset uint32

	Compression       types.CompressionMode
	CompressionFormat uint32

	Handle resource.Handle
	Offset uint64
}

func (s Surface) String() string {
	return fmt.Sprintf("%s %s pitch:%d %s %s", s.Format, s.Resolution, s.Pitch, s.TileMode, s.Handle)
}

// IsCompressed reports whether the compression is one the scaler unit writes.
func (s Surface) IsCompressed() bool {
	return s.Compression.IsSupportedBySFC()
}

func (s Surface) validate(name string) error {
	if !s.Handle.IsValid() {
		return types.ErrInvalidParameter{Name: name + ".Handle"}
	}
	if s.Pitch == 0 {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("%s has zero pitch", name)}
	}
	return nil
}

// planeOffsets returns the chroma plane offsets, falling back to the
// defaults of the format class.
func (s Surface) planeOffsets(class format.Class) (u, v types.PlaneOffset) {
	u, v = class.DefaultPlaneOffsets(s.Resolution.Height)
	if s.UOffset.IsSet() {
		u = s.UOffset.Get()
	}
	if s.VOffset.IsSet() {
		v = s.VOffset.Get()
	}
	return u, v
}
