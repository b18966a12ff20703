// format.go defines the pixel formats understood by the scaler unit.

// Package format classifies pixel formats into the hardware encodings of the scaler unit.
package format

import (
	"fmt"
	"strings"
)

type Format int

const (
	Undefined Format = iota

	AYUV
	A8R8G8B8
	X8R8G8B8
	A8B8G8R8
	X8B8G8R8
	R10G10B10A2
	B10G10R10A2
	R5G6B5
	NV12
	YUY2
	YVYU
	UYVY
	VYUY
	P010
	P016
	Y210
	Y216
	Y410
	Y416
	Y8
	Y16U
	Y16S
	A16R16G16B16
	A16B16G16R16

	// planar formats accepted as input only
	YV12
	I420
	P422H
	P444
	P411
	P400

	EndOfFormat
)

var names = map[Format]string{
	AYUV:         "AYUV",
	A8R8G8B8:     "A8R8G8B8",
	X8R8G8B8:     "X8R8G8B8",
	A8B8G8R8:     "A8B8G8R8",
	X8B8G8R8:     "X8B8G8R8",
	R10G10B10A2:  "R10G10B10A2",
	B10G10R10A2:  "B10G10R10A2",
	R5G6B5:       "R5G6B5",
	NV12:         "NV12",
	YUY2:         "YUY2",
	YVYU:         "YVYU",
	UYVY:         "UYVY",
	VYUY:         "VYUY",
	P010:         "P010",
	P016:         "P016",
	Y210:         "Y210",
	Y216:         "Y216",
	Y410:         "Y410",
	Y416:         "Y416",
	Y8:           "Y8",
	Y16U:         "Y16U",
	Y16S:         "Y16S",
	A16R16G16B16: "A16R16G16B16",
	A16B16G16R16: "A16B16G16R16",
	YV12:         "YV12",
	I420:         "I420",
	P422H:        "422H",
	P444:         "444P",
	P411:         "411P",
	P400:         "400P",
}

func (f Format) String() string {
	if f == Undefined {
		return "<undefined>"
	}
	if name, ok := names[f]; ok {
		return name
	}
	return fmt.Sprintf("<unexpected_%d>", int(f))
}

func Parse(s string) (Format, error) {
	s = strings.TrimSpace(s)
	for f, name := range names {
		if strings.EqualFold(name, s) {
			return f, nil
		}
	}
	return Undefined, fmt.Errorf("unknown pixel format '%s'", s)
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// All returns every known format in declaration order.
func All() []Format {
	result := make([]Format, 0, int(EndOfFormat)-1)
	for f := Undefined + 1; f < EndOfFormat; f++ {
		result = append(result, f)
	}
	return result
}
