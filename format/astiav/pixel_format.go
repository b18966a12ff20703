// pixel_format.go maps libav pixel formats to the formats of the scaler unit.

// Package astiav bridges github.com/asticode/go-astiav pixel formats and format.Format.
package astiav

import (
	"github.com/asticode/go-astiav"
	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/types"
)

// libav names the byte order in memory while the format package names
// the order of a little-endian word, hence the reversed-looking pairs.
var fromAstiav = map[astiav.PixelFormat]format.Format{
	astiav.PixelFormatBgra:      format.A8R8G8B8,
	astiav.PixelFormatBgr0:      format.X8R8G8B8,
	astiav.PixelFormatRgba:      format.A8B8G8R8,
	astiav.PixelFormatRgb0:      format.X8B8G8R8,
	astiav.PixelFormatX2Rgb10Le: format.B10G10R10A2,
	astiav.PixelFormatX2Bgr10Le: format.R10G10B10A2,
	astiav.PixelFormatRgb565Le:  format.R5G6B5,
	astiav.PixelFormatNv12:      format.NV12,
	astiav.PixelFormatP010Le:    format.P010,
	astiav.PixelFormatP016Le:    format.P016,
	astiav.PixelFormatYuyv422:   format.YUY2,
	astiav.PixelFormatYvyu422:   format.YVYU,
	astiav.PixelFormatUyvy422:   format.UYVY,
	astiav.PixelFormatY210Le:    format.Y210,
	astiav.PixelFormatGray8:     format.Y8,
	astiav.PixelFormatGray16Le:  format.Y16U,
	astiav.PixelFormatBgra64Le:  format.A16R16G16B16,
	astiav.PixelFormatRgba64Le:  format.A16B16G16R16,
	astiav.PixelFormatYuv420P:   format.I420,
	astiav.PixelFormatYuv422P:   format.P422H,
	astiav.PixelFormatYuv444P:   format.P444,
	astiav.PixelFormatYuv411P:   format.P411,
}

var toAstiav = func() map[format.Format]astiav.PixelFormat {
	m := make(map[format.Format]astiav.PixelFormat, len(fromAstiav))
	for k, v := range fromAstiav {
		m[v] = k
	}
	return m
}()

// FormatFromAstiav returns the scaler-unit format of a libav pixel format.
func FormatFromAstiav(pixFmt astiav.PixelFormat) (format.Format, error) {
	f, ok := fromAstiav[pixFmt]
	if !ok {
		return format.Undefined, types.ErrUnsupportedFormat{Format: pixFmt}
	}
	return f, nil
}

// FormatToAstiav returns the libav pixel format of a scaler-unit format,
// or astiav.PixelFormatNone if libav has no equivalent.
func FormatToAstiav(f format.Format) astiav.PixelFormat {
	pixFmt, ok := toAstiav[f]
	if !ok {
		return astiav.PixelFormatNone
	}
	return pixFmt
}
