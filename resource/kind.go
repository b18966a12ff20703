// kind.go defines the Kind enum of the resources referenced by a command.

// Package resource describes GPU resources referenced by commands and
// their cache policies.
package resource

import (
	"fmt"
)

type Kind int

const (
	UndefinedKind Kind = iota
	KindOutput
	KindBottomField
	KindAVSLineBuffer
	KindIEFLineBuffer
	KindSFDLineBuffer
	KindAVSLineTileBuffer
	KindIEFLineTileBuffer
	KindSFDLineTileBuffer
	KindHistogram
	EndOfKind
)

func (k Kind) String() string {
	switch k {
	case UndefinedKind:
		return "<undefined>"
	case KindOutput:
		return "output"
	case KindBottomField:
		return "bottom_field"
	case KindAVSLineBuffer:
		return "avs_line_buffer"
	case KindIEFLineBuffer:
		return "ief_line_buffer"
	case KindSFDLineBuffer:
		return "sfd_line_buffer"
	case KindAVSLineTileBuffer:
		return "avs_line_tile_buffer"
	case KindIEFLineTileBuffer:
		return "ief_line_tile_buffer"
	case KindSFDLineTileBuffer:
		return "sfd_line_tile_buffer"
	case KindHistogram:
		return "histogram"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(k))
	}
}

// IsLineBuffer reports whether the kind is a scratch line buffer.
func (k Kind) IsLineBuffer() bool {
	return k >= KindAVSLineBuffer && k <= KindSFDLineTileBuffer
}

// IsTiled reports whether the kind is a per-partition ("tile") line buffer.
func (k Kind) IsTiled() bool {
	return k >= KindAVSLineTileBuffer && k <= KindSFDLineTileBuffer
}

// Usage returns the cache usage class of the kind.
func (k Kind) Usage() Usage {
	switch k {
	case KindOutput, KindBottomField:
		return UsageCurrentOutputSurface
	case KindAVSLineBuffer, KindAVSLineTileBuffer:
		return UsageAVSLineBuffer
	case KindIEFLineBuffer, KindIEFLineTileBuffer:
		return UsageIEFLineBuffer
	default:
		return UsageDefault
	}
}
