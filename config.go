// config.go defines the YAML representation of a scaling request.

package avsfc

import (
	"fmt"
	"io"
	"os"

	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/partition"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/sfc"
	"github.com/xaionaro-go/avsfc/types"
	"github.com/xaionaro-go/typing"
	"gopkg.in/yaml.v3"
)

type SurfaceConfig struct {
	Format            format.Format         `yaml:"format"`
	Resolution        *types.Resolution     `yaml:"resolution,omitempty"`
	Pitch             uint32                `yaml:"pitch"`
	TileMode          types.TileMode        `yaml:"tile_mode"`
	UOffset           *types.PlaneOffset    `yaml:"u_offset,omitempty"`
	VOffset           *types.PlaneOffset    `yaml:"v_offset,omitempty"`
	XOffset           uint32                `yaml:"x_offset"`
	YOffset           uint32                `yaml:"y_offset"`
	Compression       types.CompressionMode `yaml:"compression"`
	CompressionFormat uint32                `yaml:"compression_format"`
	Handle            uint64                `yaml:"handle"`
	Offset            uint64                `yaml:"offset"`
}

type SharpeningConfig struct {
	SkinToneTuned bool `yaml:"skin_tone_tuned"`
	Smooth        bool `yaml:"smooth"`
}

type HistogramConfig struct {
	Handle uint64 `yaml:"handle"`
	Offset uint64 `yaml:"offset"`
}

// RequestConfig is a scaling request as written in a file. Omitted
// regions cover the whole frame, an omitted alpha is opaque.
type RequestConfig struct {
	Generation sfc.Generation `yaml:"generation"`

	PipeMode          types.PipeMode `yaml:"pipe_mode"`
	InputOrderingMode uint32         `yaml:"input_ordering_mode"`

	InputFrame   types.Resolution `yaml:"input_frame"`
	InputFormat  format.Format    `yaml:"input_format"`
	SourceRegion *types.Rect      `yaml:"source_region,omitempty"`

	OutputFrame types.Resolution `yaml:"output_frame"`
	DestRegion  *types.Rect      `yaml:"dest_region,omitempty"`
	Output      SurfaceConfig    `yaml:"output"`

	ChromaSiting types.ChromaSiting `yaml:"chroma_siting"`
	Rotation     types.Rotation     `yaml:"rotation"`
	Mirror       types.Mirror       `yaml:"mirror"`

	ColorFill  *types.Color      `yaml:"color_fill,omitempty"`
	Alpha      *float64          `yaml:"alpha,omitempty"`
	Sharpening *SharpeningConfig `yaml:"sharpening,omitempty"`
	Histogram  *HistogramConfig  `yaml:"histogram,omitempty"`
	CSC        bool              `yaml:"csc"`

	FilterMode      types.FilterMode `yaml:"filter_mode"`
	EightTapChroma  bool             `yaml:"eight_tap_chroma"`
	Dithering       bool             `yaml:"dithering"`
	OutputCentering bool             `yaml:"output_centering"`
	ForcePolyphase  bool             `yaml:"force_polyphase"`

	Field     types.FieldParams `yaml:"field"`
	TempField uint64            `yaml:"temp_field"`

	Scalability *partition.Config `yaml:"scalability,omitempty"`
}

func optional[T any](v *T) typing.Optional[T] {
	if v == nil {
		return typing.Optional[T]{}
	}
	return typing.Opt(*v)
}

func (cfg SurfaceConfig) Surface(frame types.Resolution) sfc.Surface {
	resolution := frame
	if cfg.Resolution != nil {
		resolution = *cfg.Resolution
	}
	return sfc.Surface{
		Format:            cfg.Format,
		Resolution:        resolution,
		Pitch:             cfg.Pitch,
		TileMode:          cfg.TileMode,
		UOffset:           optional(cfg.UOffset),
		VOffset:           optional(cfg.VOffset),
		XOffset:           cfg.XOffset,
		YOffset:           cfg.YOffset,
		Compression:       cfg.Compression,
		CompressionFormat: cfg.CompressionFormat,
		Handle:            resource.Handle(cfg.Handle),
		Offset:            cfg.Offset,
	}
}

// Request converts the configuration into a request of the engine 0.
func (cfg RequestConfig) Request() sfc.Request {
	req := sfc.Request{
		PipeMode:          cfg.PipeMode,
		InputOrderingMode: cfg.InputOrderingMode,
		InputFrame:        cfg.InputFrame,
		InputFormat:       cfg.InputFormat,
		SourceRegion:      types.Full(cfg.InputFrame),
		OutputFrame:       cfg.OutputFrame,
		DestRegion:        types.Full(cfg.OutputFrame),
		Output:            cfg.Output.Surface(cfg.OutputFrame),
		ChromaSiting:      cfg.ChromaSiting,
		Rotation:          cfg.Rotation,
		Mirror:            cfg.Mirror,
		ColorFill:         optional(cfg.ColorFill),
		Alpha:             1,
		CSC:               cfg.CSC,
		FilterMode:        cfg.FilterMode,
		EightTapChroma:    cfg.EightTapChroma,
		Dithering:         cfg.Dithering,
		OutputCentering:   cfg.OutputCentering,
		ForcePolyphase:    cfg.ForcePolyphase,
		Field:             cfg.Field,
		TempField:         resource.Handle(cfg.TempField),
		Scalability:       partition.Single(),
	}
	if cfg.SourceRegion != nil {
		req.SourceRegion = *cfg.SourceRegion
	}
	if cfg.DestRegion != nil {
		req.DestRegion = *cfg.DestRegion
	}
	if cfg.Alpha != nil {
		req.Alpha = *cfg.Alpha
	}
	if cfg.Sharpening != nil {
		req.Sharpening = typing.Opt(sfc.Sharpening{
			SkinToneTuned: cfg.Sharpening.SkinToneTuned,
			Smooth:        cfg.Sharpening.Smooth,
		})
	}
	if cfg.Histogram != nil {
		req.Histogram = typing.Opt(sfc.Histogram{
			Handle: resource.Handle(cfg.Histogram.Handle),
			Offset: cfg.Histogram.Offset,
		})
	}
	if cfg.Scalability != nil {
		req.Scalability = *cfg.Scalability
	}
	return req
}

// ParseRequestConfig decodes a YAML request; unknown keys are rejected.
func ParseRequestConfig(r io.Reader) (*RequestConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cfg := &RequestConfig{
		Generation: sfc.GenerationXeHPM,
	}
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode the request: %w", err)
	}
	return cfg, nil
}

func LoadRequestConfig(path string) (*RequestConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open '%s': %w", path, err)
	}
	defer f.Close()
	cfg, err := ParseRequestConfig(f)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", path, err)
	}
	return cfg, nil
}
