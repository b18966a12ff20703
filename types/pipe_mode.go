// pipe_mode.go defines which engine feeds the scaler unit.

package types

import (
	"fmt"
)

type PipeMode int

const (
	PipeModeVDBox PipeMode = iota
	PipeModeVEBox
	PipeModeHCP
	PipeModeAVP
	EndOfPipeMode
)

func (m PipeMode) String() string {
	switch m {
	case PipeModeVDBox:
		return "vdbox"
	case PipeModeVEBox:
		return "vebox"
	case PipeModeHCP:
		return "hcp"
	case PipeModeAVP:
		return "avp"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(m))
	}
}

// Code is the hardware pipe mode code.
func (m PipeMode) Code() uint32 {
	switch m {
	case PipeModeVDBox:
		return 0
	case PipeModeVEBox:
		return 1
	case PipeModeHCP:
		return 2
	case PipeModeAVP:
		return 5
	default:
		return 0
	}
}

// IsDecodeFed reports whether the input arrives from a decode engine, in
// which case the frame is delivered in column order and buffers are sized
// by width.
func (m PipeMode) IsDecodeFed() bool {
	return m != PipeModeVEBox
}

func (m PipeMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *PipeMode) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfPipeMode)
	if err != nil {
		return fmt.Errorf("unable to parse pipe mode: %w", err)
	}
	*m = v
	return nil
}
