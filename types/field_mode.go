// field_mode.go defines how interlaced content is read and written.

package types

import (
	"fmt"
)

type FieldMode int

const (
	FieldModeProgressive FieldMode = iota
	FieldModeInterleavedToInterleaved
	FieldModeInterleavedToField
	FieldModeFieldToInterleaved
	FieldModeFieldToField
	EndOfFieldMode
)

func (m FieldMode) String() string {
	switch m {
	case FieldModeProgressive:
		return "progressive"
	case FieldModeInterleavedToInterleaved:
		return "interleaved-to-interleaved"
	case FieldModeInterleavedToField:
		return "interleaved-to-field"
	case FieldModeFieldToInterleaved:
		return "field-to-interleaved"
	case FieldModeFieldToField:
		return "field-to-field"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(m))
	}
}

func (m FieldMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *FieldMode) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfFieldMode)
	if err != nil {
		return fmt.Errorf("unable to parse field mode: %w", err)
	}
	*m = v
	return nil
}

// FrameDataFormat is the per-direction layout code of the frame data.
type FrameDataFormat uint8

const (
	FrameDataFormatProgressive = FrameDataFormat(0)
	FrameDataFormatInterleaved = FrameDataFormat(1)
	FrameDataFormatField       = FrameDataFormat(2)
)

// DataFormats returns the input and the output frame data formats.
func (m FieldMode) DataFormats() (in, out FrameDataFormat) {
	switch m {
	case FieldModeInterleavedToInterleaved:
		return FrameDataFormatInterleaved, FrameDataFormatInterleaved
	case FieldModeInterleavedToField:
		return FrameDataFormatInterleaved, FrameDataFormatField
	case FieldModeFieldToInterleaved:
		return FrameDataFormatField, FrameDataFormatInterleaved
	case FieldModeFieldToField:
		return FrameDataFormatField, FrameDataFormatField
	default:
		return FrameDataFormatProgressive, FrameDataFormatProgressive
	}
}

type Field int

const (
	FieldTop Field = iota
	FieldBottom
	EndOfField
)

func (f Field) String() string {
	switch f {
	case FieldTop:
		return "top"
	case FieldBottom:
		return "bottom"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(f))
	}
}

func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Field) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), EndOfField)
	if err != nil {
		return fmt.Errorf("unable to parse field: %w", err)
	}
	*f = v
	return nil
}

// FieldParams describes the interlacing of a request.
type FieldParams struct {
	Mode FieldMode `yaml:"mode"`

	// Field is the field being produced (interleaved-to-field) or the field
	// being consumed (field-to-interleaved).
	Field Field `yaml:"field"`

	TopFieldFirst bool `yaml:"top_field_first"`

	// BottomFieldVerticalOffset is the Q4.19 vertical phase of the bottom
	// field for interleaved-to-interleaved scaling.
	BottomFieldVerticalOffset uint32 `yaml:"bottom_field_vertical_offset"`
}
