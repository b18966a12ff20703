// resolution.go defines frame dimensions.

package types

import (
	"fmt"
)

type Resolution struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

func (r *Resolution) Parse(s string) error {
	_, err := fmt.Sscanf(s, "%dx%d", &r.Width, &r.Height)
	if err != nil {
		return fmt.Errorf("unable to parse resolution '%s': %w", s, err)
	}
	return nil
}

func (r Resolution) IsZero() bool {
	return r.Width == 0 || r.Height == 0
}

// Transposed returns the resolution with width and height swapped.
func (r Resolution) Transposed() Resolution {
	return Resolution{Width: r.Height, Height: r.Width}
}
