// table.go is the single source of truth mapping pixel formats to their hardware encodings.

package format

// OutputCode is the hardware output surface format code.
type OutputCode uint32

const (
	OutputCodeAYUV         = OutputCode(0)
	OutputCodeA8B8G8R8     = OutputCode(1)
	OutputCodeA2R10G10B10  = OutputCode(2)
	OutputCodeR5G6B5       = OutputCode(3)
	OutputCodeNV12         = OutputCode(4)
	OutputCodeYUYV         = OutputCode(5)
	OutputCodeUYVY         = OutputCode(6)
	OutputCodeP016         = OutputCode(9)
	OutputCodeY216         = OutputCode(10)
	OutputCodeY416         = OutputCode(11)
	OutputCodeY8           = OutputCode(13)
	OutputCodeA16B16G16R16 = OutputCode(14)
)

type entry struct {
	// HasOutputCode is false for formats the scaler unit can read but not write.
	HasOutputCode bool
	Code          OutputCode

	BitDepth uint8

	// BitDepthField selects between the 10-bit and the 16-bit variant
	// of formats sharing a code.
	BitDepthField uint8

	Interleaved bool
	Swap        bool
	ColorPack   ColorPack
	Family      Family
}

func output(code OutputCode, bitDepth uint8, pack ColorPack, family Family) entry {
	return entry{
		HasOutputCode: true,
		Code:          code,
		BitDepth:      bitDepth,
		ColorPack:     pack,
		Family:        family,
	}
}

func inputOnly(pack ColorPack, family Family) entry {
	return entry{
		BitDepth:  8,
		ColorPack: pack,
		Family:    family,
	}
}

func (e entry) swapped() entry {
	e.Swap = true
	return e
}

func (e entry) interleaved() entry {
	e.Interleaved = true
	return e
}

func (e entry) wide() entry {
	e.BitDepthField = 1
	return e
}

var table = map[Format]entry{
	AYUV: output(OutputCodeAYUV, 8, ColorPack444, FamilyYUV),

	A8R8G8B8: output(OutputCodeA8B8G8R8, 8, ColorPack444, FamilyRGB).swapped(),
	X8R8G8B8: output(OutputCodeA8B8G8R8, 8, ColorPack444, FamilyRGB).swapped(),
	A8B8G8R8: output(OutputCodeA8B8G8R8, 8, ColorPack444, FamilyRGB),
	X8B8G8R8: output(OutputCodeA8B8G8R8, 8, ColorPack444, FamilyRGB),

	R10G10B10A2: output(OutputCodeA2R10G10B10, 10, ColorPack444, FamilyRGB).swapped(),
	B10G10R10A2: output(OutputCodeA2R10G10B10, 10, ColorPack444, FamilyRGB),

	R5G6B5: output(OutputCodeR5G6B5, 8, ColorPack444, FamilyRGB),

	NV12: output(OutputCodeNV12, 8, ColorPack420, FamilyYUV).interleaved(),
	P010: output(OutputCodeP016, 10, ColorPack420, FamilyYUV).interleaved(),
	P016: output(OutputCodeP016, 16, ColorPack420, FamilyYUV).interleaved().wide(),

	YUY2: output(OutputCodeYUYV, 8, ColorPack422H, FamilyYUV),
	YVYU: output(OutputCodeYUYV, 8, ColorPack422H, FamilyYUV).swapped(),
	UYVY: output(OutputCodeUYVY, 8, ColorPack422H, FamilyYUV),
	VYUY: output(OutputCodeUYVY, 8, ColorPack422H, FamilyYUV).swapped(),

	Y210: output(OutputCodeY216, 10, ColorPack422H, FamilyYUV),
	Y216: output(OutputCodeY216, 16, ColorPack422H, FamilyYUV).wide(),
	Y410: output(OutputCodeY416, 10, ColorPack444, FamilyYUV),
	Y416: output(OutputCodeY416, 16, ColorPack444, FamilyYUV).wide(),

	Y8:   output(OutputCodeY8, 8, ColorPack400, FamilyYUV),
	Y16U: output(OutputCodeY8, 16, ColorPack400, FamilyYUV),
	Y16S: output(OutputCodeY8, 16, ColorPack400, FamilyYUV),

	A16R16G16B16: output(OutputCodeA16B16G16R16, 16, ColorPack444, FamilyRGB).swapped(),
	A16B16G16R16: output(OutputCodeA16B16G16R16, 16, ColorPack444, FamilyRGB),

	YV12:  inputOnly(ColorPack420, FamilyYUV),
	I420:  inputOnly(ColorPack420, FamilyYUV),
	P422H: inputOnly(ColorPack422H, FamilyYUV),
	P444:  inputOnly(ColorPack444, FamilyYUV),
	P411:  inputOnly(ColorPack411, FamilyYUV),
	P400:  inputOnly(ColorPack400, FamilyYUV),
}
