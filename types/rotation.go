// rotation.go defines the rotation and mirroring modes of the scaler unit.

package types

import (
	"fmt"
)

type Rotation int

const (
	Rotation0 Rotation = iota
	Rotation90
	Rotation180
	Rotation270
	EndOfRotation
)

func (r Rotation) String() string {
	switch r {
	case Rotation0:
		return "0"
	case Rotation90:
		return "90"
	case Rotation180:
		return "180"
	case Rotation270:
		return "270"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(r))
	}
}

// SwapsAxes reports whether the output is transposed relative to the input.
func (r Rotation) SwapsAxes() bool {
	return r == Rotation90 || r == Rotation270
}

func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rotation) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfRotation)
	if err != nil {
		return fmt.Errorf("unable to parse rotation: %w", err)
	}
	*r = v
	return nil
}

type Mirror int

const (
	MirrorNone Mirror = iota
	MirrorHorizontal
	MirrorVertical
	EndOfMirror
)

func (m Mirror) String() string {
	switch m {
	case MirrorNone:
		return "none"
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(m))
	}
}

func (m Mirror) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mirror) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfMirror)
	if err != nil {
		return fmt.Errorf("unable to parse mirror mode: %w", err)
	}
	*m = v
	return nil
}
