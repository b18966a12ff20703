// surface_layout.go defines the memory layout properties of a surface.

package types

import (
	"fmt"
)

type TileMode int

const (
	TileModeLinear TileMode = iota
	TileModeX
	TileModeY
	TileModeF
	TileMode64
	EndOfTileMode
)

func (m TileMode) String() string {
	switch m {
	case TileModeLinear:
		return "linear"
	case TileModeX:
		return "x"
	case TileModeY:
		return "y"
	case TileModeF:
		return "f"
	case TileMode64:
		return "64"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(m))
	}
}

func (m TileMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *TileMode) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfTileMode)
	if err != nil {
		return fmt.Errorf("unable to parse tile mode: %w", err)
	}
	*m = v
	return nil
}

type CompressionMode int

const (
	CompressionModeNone CompressionMode = iota

	// CompressionModeRC is render-engine compression.
	CompressionModeRC

	// CompressionModeMC is media-engine compression.
	CompressionModeMC

	// CompressionModeHorizontal is a legacy layout the scaler unit cannot write.
	CompressionModeHorizontal
	EndOfCompressionMode
)

func (m CompressionMode) String() string {
	switch m {
	case CompressionModeNone:
		return "none"
	case CompressionModeRC:
		return "rc"
	case CompressionModeMC:
		return "mc"
	case CompressionModeHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(m))
	}
}

// IsSupportedBySFC reports whether the scaler unit can write this compressed layout.
func (m CompressionMode) IsSupportedBySFC() bool {
	return m == CompressionModeRC || m == CompressionModeMC
}

func (m CompressionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *CompressionMode) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfCompressionMode)
	if err != nil {
		return fmt.Errorf("unable to parse compression mode: %w", err)
	}
	*m = v
	return nil
}

// PlaneOffset is the position of a chroma plane inside a surface.
type PlaneOffset struct {
	X uint32 `yaml:"x"`
	Y uint32 `yaml:"y"`
}
