// filter_mode.go defines the scaling filter modes.

package types

import (
	"fmt"
)

type FilterMode int

const (
	FilterModePoly5x5 FilterMode = iota
	FilterModePoly8x8
	FilterModeBilinear
	EndOfFilterMode
)

func (m FilterMode) String() string {
	switch m {
	case FilterModePoly5x5:
		return "poly5x5"
	case FilterModePoly8x8:
		return "poly8x8"
	case FilterModeBilinear:
		return "bilinear"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(m))
	}
}

func (m FilterMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *FilterMode) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfFilterMode)
	if err != nil {
		return fmt.Errorf("unable to parse filter mode: %w", err)
	}
	*m = v
	return nil
}
