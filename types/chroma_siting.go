// chroma_siting.go defines where chroma samples are located relative to luma.

package types

import (
	"fmt"
)

// SitingPosition is a chroma sample position in eighths of a luma pixel.
type SitingPosition int

const (
	SitingStart SitingPosition = iota
	SitingCenter
	SitingEnd
	EndOfSitingPosition
)

func (p SitingPosition) String() string {
	switch p {
	case SitingStart:
		return "start"
	case SitingCenter:
		return "center"
	case SitingEnd:
		return "end"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(p))
	}
}

// Eighths returns the hardware co-siting code (0/8, 4/8 or 8/8).
func (p SitingPosition) Eighths() uint32 {
	switch p {
	case SitingCenter:
		return 4
	case SitingEnd:
		return 8
	default:
		return 0
	}
}

func (p SitingPosition) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *SitingPosition) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfSitingPosition)
	if err != nil {
		return fmt.Errorf("unable to parse chroma siting: %w", err)
	}
	*p = v
	return nil
}

type ChromaSiting struct {
	Horizontal SitingPosition `yaml:"horizontal"`
	Vertical   SitingPosition `yaml:"vertical"`
}
