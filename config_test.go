package avsfc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/partition"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/sfc"
	"github.com/xaionaro-go/avsfc/types"
)

const testRequestYAML = `
generation: gen12
pipe_mode: vdbox
input_frame: {width: 3840, height: 2160}
input_format: P010
output_frame: {width: 1920, height: 1080}
dest_region: {x: 0, y: 60, width: 1920, height: 960}
output:
  format: NV12
  pitch: 2048
  tile_mode: y
  compression: rc
  handle: 16
rotation: 180
color_fill: {r: 0, g: 0.5, b: 0.5, a: 1}
sharpening: {smooth: true}
force_polyphase: true
scalability: {count: 2, index: 1}
`

func TestParseRequestConfig(t *testing.T) {
	cfg, err := ParseRequestConfig(strings.NewReader(testRequestYAML))
	require.NoError(t, err)
	require.Equal(t, sfc.GenerationGen12, cfg.Generation)

	req := cfg.Request()
	require.Equal(t, types.PipeModeVDBox, req.PipeMode)
	require.Equal(t, format.P010, req.InputFormat)
	require.Equal(t, types.Full(types.Resolution{Width: 3840, Height: 2160}), req.SourceRegion)
	require.Equal(t, types.Rect{Y: 60, Width: 1920, Height: 960}, req.DestRegion)
	require.Equal(t, types.Resolution{Width: 1920, Height: 1080}, req.Output.Resolution)
	require.Equal(t, resource.Handle(16), req.Output.Handle)
	require.Equal(t, types.CompressionModeRC, req.Output.Compression)
	require.Equal(t, types.TileModeY, req.Output.TileMode)
	require.False(t, req.Output.UOffset.IsSet())
	require.Equal(t, types.Rotation180, req.Rotation)
	require.True(t, req.ColorFill.IsSet())
	require.Equal(t, 0.5, req.ColorFill.Get().G)
	require.Equal(t, 1.0, req.Alpha)
	require.True(t, req.Sharpening.IsSet())
	require.True(t, req.Sharpening.Get().Smooth)
	require.False(t, req.Histogram.IsSet())
	require.True(t, req.ForcePolyphase)
	require.Equal(t, partition.Config{Count: 2, Index: 1}, req.Scalability)
	require.NoError(t, req.Validate())
}

func TestParseRequestConfigDefaults(t *testing.T) {
	cfg, err := ParseRequestConfig(strings.NewReader("input_frame: {width: 640, height: 480}\n"))
	require.NoError(t, err)
	require.Equal(t, sfc.GenerationXeHPM, cfg.Generation)
	req := cfg.Request()
	require.Equal(t, partition.Single(), req.Scalability)
	require.Equal(t, types.Full(cfg.InputFrame), req.SourceRegion)
}

func TestParseRequestConfigErrors(t *testing.T) {
	_, err := ParseRequestConfig(strings.NewReader("no_such_key: 1\n"))
	require.Error(t, err)

	_, err = ParseRequestConfig(strings.NewReader("input_format: NV13\n"))
	require.Error(t, err)
}
