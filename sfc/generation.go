// generation.go defines the hardware generations a command can be encoded for.

package sfc

import (
	"fmt"
	"strings"
)

type Generation int

const (
	UndefinedGeneration Generation = iota
	GenerationGen12
	GenerationXeHPM
	EndOfGeneration
)

func (g Generation) String() string {
	switch g {
	case UndefinedGeneration:
		return "<undefined>"
	case GenerationGen12:
		return "gen12"
	case GenerationXeHPM:
		return "xehpm"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(g))
	}
}

func (g Generation) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Generation) UnmarshalText(b []byte) error {
	s := strings.ToLower(string(b))
	for c := UndefinedGeneration + 1; c < EndOfGeneration; c++ {
		if c.String() == s {
			*g = c
			return nil
		}
	}
	return fmt.Errorf("unknown generation '%s'", s)
}

// NewEncoder returns the encoder of the generation.
func NewEncoder(g Generation) (Encoder, error) {
	switch g {
	case GenerationGen12:
		return Gen12{}, nil
	case GenerationXeHPM:
		return XeHPM{}, nil
	default:
		return nil, fmt.Errorf("no encoder for generation %s", g)
	}
}
