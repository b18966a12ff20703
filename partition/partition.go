// partition.go implements the split of a frame between several scaler units.

package partition

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/scaling"
	"github.com/xaionaro-go/avsfc/types"
)

// sharpeningContext is how many destination columns the sharpening
// filter needs to the left of a tile.
const sharpeningContext = 4

type Input struct {
	Config Config

	// SourceWidth is the width of the whole input frame.
	SourceWidth uint32

	SourceRegionOffset uint32
	SourceRegionWidth  uint32
	ScaledWidth        uint32

	Sharpening      bool
	OutputColorPack format.ColorPack
	ColorFill       bool
}

func (in Input) validate() error {
	if err := in.Config.Validate(); err != nil {
		return err
	}
	if in.SourceRegionWidth == 0 || in.ScaledWidth == 0 {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("empty region: %d -> %d", in.SourceRegionWidth, in.ScaledWidth)}
	}
	if uint64(in.SourceRegionOffset)+uint64(in.SourceRegionWidth) > uint64(in.SourceWidth) {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf(
			"source region [%d, +%d) is out of the frame of width %d",
			in.SourceRegionOffset, in.SourceRegionWidth, in.SourceWidth,
		)}
	}
	if uint64(in.SourceWidth) < uint64(in.Config.Count)*TileAlignment {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf(
			"source width %d cannot hold %d tiles of %d columns",
			in.SourceWidth, in.Config.Count, TileAlignment,
		)}
	}
	return nil
}

// MedianTileWidth returns floor(width/count) aligned down to the tile
// granularity and clamped to [TileAlignment, width-TileAlignment].
func MedianTileWidth(width uint32, count int) int {
	w := int(width)
	median := (w / count) / TileAlignment * TileAlignment
	if median > w-TileAlignment {
		median = w - TileAlignment
	}
	if median < TileAlignment {
		median = TileAlignment
	}
	return median
}

// SourceSpans splits [0, width-1] into count overlapping tiles.
func SourceSpans(width uint32, count int) []Span {
	if count == 1 {
		return []Span{{Start: 0, End: int(width) - 1}}
	}
	median := MedianTileWidth(width, count)
	spans := make([]Span, count)
	for i := range spans {
		if i == count-1 {
			spans[i].End = int(width) - 1
		} else {
			spans[i].End = median*(i+1) - 1 + Overlap
		}
		if i > 0 {
			spans[i].Start = spans[i-1].End + 1 - Overlap
		}
	}
	return spans
}

type destinationScanner struct {
	regionOffset int64
	regionEnd    int64
	scaledWidth  int
	step         int64
	phase        int64
}

func newDestinationScanner(in Input) (*destinationScanner, error) {
	phase, err := scaling.PhaseShift(in.SourceRegionWidth, in.ScaledWidth)
	if err != nil {
		return nil, err
	}
	return &destinationScanner{
		regionOffset: int64(in.SourceRegionOffset),
		regionEnd:    int64(in.SourceRegionOffset) + int64(in.SourceRegionWidth) - 1,
		scaledWidth:  int(in.ScaledWidth),
		step:         (int64(in.SourceRegionWidth) << scaling.FractionBits) / int64(in.ScaledWidth),
		phase:        int64(phase),
	}, nil
}

// landsAtOrBeyond reports whether the source column sampled by the given
// destination column is at or beyond limit.
func (s *destinationScanner) landsAtOrBeyond(dest int, limit int64) bool {
	pos := int64(dest)*s.step + s.phase
	if pos < 0 {
		pos = 0
	}
	// rounding to 1/32 of a source column
	pos += 1 << (scaling.FractionBits - 5 - 1)
	return pos >= (limit-s.regionOffset)<<scaling.FractionBits
}

// scan advances the destination counter through the source tile and
// returns the new counter value.
func (s *destinationScanner) scan(counter int, tile Span) int {
	if counter >= s.scaledWidth {
		return counter
	}
	tileEnd := int64(tile.End)
	if s.regionEnd <= tileEnd {
		return s.scaledWidth
	}
	if tileEnd-s.regionOffset < EdgeOffset+1 {
		return counter
	}
	limit := tileEnd - EdgeOffset
	for counter < s.scaledWidth && !s.landsAtOrBeyond(counter, limit) {
		counter++
	}
	return counter
}

func contextStart(dest Span, sharpening bool, pack format.ColorPack) int {
	if dest.IsEmpty() {
		return 0
	}
	start := dest.Start
	if sharpening {
		start -= sharpeningContext
	}
	if start < 0 {
		start = 0
	}
	if pack != format.ColorPack444 && start%2 == 1 {
		start--
	}
	return start
}

// Plan computes the assignments of all the engines of in.Config.
func Plan(
	ctx context.Context,
	in Input,
) (_ret *Assignments, _err error) {
	logger.Tracef(ctx, "Plan(ctx, %#+v)", in)
	defer func() { logger.Tracef(ctx, "/Plan(ctx, %#+v): %v", in, _err) }()

	if err := in.validate(); err != nil {
		return nil, err
	}

	scanner, err := newDestinationScanner(in)
	if err != nil {
		return nil, fmt.Errorf("unable to initialize the destination scan: %w", err)
	}

	count := in.Config.Count
	sources := SourceSpans(in.SourceWidth, count)
	result := NewAssignments(count)

	counter := 0
	for i, source := range sources {
		next := scanner.scan(counter, source)
		dest := EmptySpan
		if next > counter {
			dest = Span{Start: counter, End: next - 1}
			if result.FirstValid < 0 {
				result.FirstValid = i
			}
			result.LastValid = i
		}
		counter = next

		err := result.Append(EngineAssignment{
			Index:            i,
			Role:             roles[count][i],
			Source:           source,
			Dest:             dest,
			DestContextStart: contextStart(dest, in.Sharpening, in.OutputColorPack),
		})
		if err != nil {
			return nil, err
		}
	}

	if in.ColorFill {
		for i := result.FirstValid; i >= 0 && i <= result.LastValid; i++ {
			result.items[i].ColorFill = true
		}
	}

	if counter != scanner.scaledWidth {
		return nil, fmt.Errorf("internal error: %d of %d destination columns assigned", counter, scanner.scaledWidth)
	}

	logger.Debugf(ctx, "partitioned width %d between %d engines: valid engines [%d, %d]", in.SourceWidth, count, result.FirstValid, result.LastValid)
	return result, nil
}
