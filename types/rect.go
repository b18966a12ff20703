// rect.go defines a rectangular image region.

package types

import (
	"fmt"
)

type Rect struct {
	X      uint32 `yaml:"x"`
	Y      uint32 `yaml:"y"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

func (r Rect) Right() uint32 {
	return r.X + r.Width
}

func (r Rect) Bottom() uint32 {
	return r.Y + r.Height
}

func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Within reports whether the rectangle lies fully inside a frame of the given size.
func (r Rect) Within(frame Resolution) bool {
	return uint64(r.X)+uint64(r.Width) <= uint64(frame.Width) &&
		uint64(r.Y)+uint64(r.Height) <= uint64(frame.Height)
}

// Transposed mirrors the rectangle over the main diagonal.
func (r Rect) Transposed() Rect {
	return Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width}
}

// Full returns a rectangle covering the whole frame.
func Full(frame Resolution) Rect {
	return Rect{Width: frame.Width, Height: frame.Height}
}
