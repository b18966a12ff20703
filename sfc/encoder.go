// encoder.go defines the generation-specific translation of a State into command words.

package sfc

import (
	"github.com/xaionaro-go/avsfc/cmdbuf"
	"github.com/xaionaro-go/avsfc/format"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

// Encoder packs a State into the descriptor layout of one hardware generation.
type Encoder interface {
	Generation() Generation
	DescriptorSize() int

	// Validate rejects states the generation cannot express.
	Validate(*State) error

	Encode(*State, *cmdbuf.Writer)

	// BindingWord returns the word carrying the address of the resource kind.
	BindingWord(resource.Kind) (int, bool)
}

const (
	commandTypeGFXPipe = 3
	pipelineMedia      = 2
	subOpcodeBSFCState = 1

	opcodeHCP   = 0x9
	opcodeMFX   = 0xA
	opcodeAVP   = 0xD
	monoDefault = 512
)

var bindingWords = map[resource.Kind]int{
	resource.KindOutput:            17,
	resource.KindAVSLineBuffer:     20,
	resource.KindIEFLineBuffer:     23,
	resource.KindSFDLineBuffer:     26,
	resource.KindAVSLineTileBuffer: 38,
	resource.KindIEFLineTileBuffer: 41,
	resource.KindSFDLineTileBuffer: 44,
	resource.KindHistogram:         47,
}

// Fields of the memory-control word following each 64-bit address.
func mocsField(addressWord int) cmdbuf.Field {
	return cmdbuf.Bits(addressWord+2, 1, 6)
}

func compressionEnableField(addressWord int) cmdbuf.Field {
	return cmdbuf.Bit(addressWord+2, 9)
}

func compressionTypeField(addressWord int) cmdbuf.Field {
	return cmdbuf.Bit(addressWord+2, 10)
}

// layout holds the fields shared by all the generations, with the
// positions of the given generation.
type layout struct {
	size int

	dwordLength, subOpcodeB, opcode, pipeline, commandType cmdbuf.Field

	pipeMode, inputSubsampling, inputOrdering, engineMode cmdbuf.Field

	inputWidth, inputHeight cmdbuf.Field

	outputFormat, channelSwap, sitingVertical, sitingHorizontal, inputRGB cmdbuf.Field

	ief, skinTone, iefSmooth, eightTapChroma, avsFilterMode, adaptiveAllChannels cmdbuf.Field
	avsEnable, bypassY, bypassX, rgbAdaptive, chromaUpsampling                   cmdbuf.Field
	rotation, colorFill, csc, bitDepth, histogram                                cmdbuf.Field

	sourceWidth, sourceHeight, sourceX, sourceY cmdbuf.Field
	outputWidth, outputHeight                   cmdbuf.Field
	scaledWidth, scaledHeight, scaledX, scaledY cmdbuf.Field

	fillUG, fillYR, fillA, fillVB, monoU, monoV, alpha cmdbuf.Field

	scaleFactorHeight, scaleFactorWidth cmdbuf.Field

	halfPitchForChroma, pitch, interleaveChroma, surfaceFormat cmdbuf.Field
	uOffsetY, uOffsetX, vOffsetY, vOffsetX                     cmdbuf.Field

	sourceStartX, sourceEndX, destStartX, destEndX cmdbuf.Field
	phaseX, phaseY                                 cmdbuf.Field
}

func newLayout(size int, pitchHigh uint, vOffsetHigh uint) layout {
	return layout{
		size:        size,
		dwordLength: cmdbuf.Bits(0, 0, 11),
		subOpcodeB:  cmdbuf.Bits(0, 16, 20),
		opcode:      cmdbuf.Bits(0, 23, 26),
		pipeline:    cmdbuf.Bits(0, 27, 28),
		commandType: cmdbuf.Bits(0, 29, 31),

		pipeMode:         cmdbuf.Bits(1, 0, 3),
		inputSubsampling: cmdbuf.Bits(1, 4, 7),
		inputOrdering:    cmdbuf.Bits(1, 8, 10),
		engineMode:       cmdbuf.Bits(1, 12, 13),

		inputWidth:  cmdbuf.Bits(2, 0, 13),
		inputHeight: cmdbuf.Bits(2, 16, 29),

		outputFormat:     cmdbuf.Bits(3, 0, 3),
		channelSwap:      cmdbuf.Bit(3, 5),
		sitingVertical:   cmdbuf.Bits(3, 8, 11),
		sitingHorizontal: cmdbuf.Bits(3, 12, 15),
		inputRGB:         cmdbuf.Bit(3, 16),

		ief:                 cmdbuf.Bit(4, 0),
		skinTone:            cmdbuf.Bit(4, 1),
		iefSmooth:           cmdbuf.Bit(4, 2),
		eightTapChroma:      cmdbuf.Bit(4, 3),
		avsFilterMode:       cmdbuf.Bits(4, 4, 5),
		adaptiveAllChannels: cmdbuf.Bit(4, 6),
		avsEnable:           cmdbuf.Bit(4, 7),
		bypassY:             cmdbuf.Bit(4, 8),
		bypassX:             cmdbuf.Bit(4, 9),
		rgbAdaptive:         cmdbuf.Bit(4, 10),
		chromaUpsampling:    cmdbuf.Bit(4, 12),
		rotation:            cmdbuf.Bits(4, 16, 17),
		colorFill:           cmdbuf.Bit(4, 18),
		csc:                 cmdbuf.Bit(4, 19),
		bitDepth:            cmdbuf.Bits(4, 20, 21),
		histogram:           cmdbuf.Bit(4, 23),

		sourceWidth:  cmdbuf.Bits(5, 0, 13),
		sourceHeight: cmdbuf.Bits(5, 16, 29),
		sourceX:      cmdbuf.Bits(6, 0, 13),
		sourceY:      cmdbuf.Bits(6, 16, 29),
		outputWidth:  cmdbuf.Bits(7, 0, 13),
		outputHeight: cmdbuf.Bits(7, 16, 29),
		scaledWidth:  cmdbuf.Bits(8, 0, 13),
		scaledHeight: cmdbuf.Bits(8, 16, 29),
		scaledX:      cmdbuf.Bits(9, 0, 14),
		scaledY:      cmdbuf.Bits(9, 16, 30),

		fillUG: cmdbuf.Bits(10, 0, 9),
		fillYR: cmdbuf.Bits(10, 16, 25),
		fillA:  cmdbuf.Bits(11, 0, 9),
		fillVB: cmdbuf.Bits(11, 16, 25),
		monoU:  cmdbuf.Bits(12, 0, 9),
		monoV:  cmdbuf.Bits(12, 16, 25),
		alpha:  cmdbuf.Bits(13, 0, 9),

		scaleFactorHeight: cmdbuf.Bits(14, 5, 27),
		scaleFactorWidth:  cmdbuf.Bits(15, 5, 27),

		halfPitchForChroma: cmdbuf.Bit(29, 2),
		pitch:              cmdbuf.Bits(29, 3, pitchHigh),
		interleaveChroma:   cmdbuf.Bit(29, 27),
		surfaceFormat:      cmdbuf.Bits(29, 28, 31),
		uOffsetY:           cmdbuf.Bits(30, 0, 15),
		uOffsetX:           cmdbuf.Bits(30, 16, 31),
		vOffsetY:           cmdbuf.Bits(31, 0, vOffsetHigh-16),
		vOffsetX:           cmdbuf.Bits(31, 16, vOffsetHigh),

		sourceStartX: cmdbuf.Bits(34, 0, 13),
		sourceEndX:   cmdbuf.Bits(34, 16, 29),
		destStartX:   cmdbuf.Bits(35, 0, 13),
		destEndX:     cmdbuf.Bits(35, 16, 29),
		phaseX:       cmdbuf.Bits(36, 5, 28),
		phaseY:       cmdbuf.Bits(37, 5, 28),
	}
}

func opcodeOf(m types.PipeMode) uint64 {
	switch m {
	case types.PipeModeHCP:
		return opcodeHCP
	case types.PipeModeAVP:
		return opcodeAVP
	default:
		return opcodeMFX
	}
}

// encode writes everything the generations have in common.
func (l *layout) encode(s *State, w *cmdbuf.Writer) {
	w.Set(l.commandType, commandTypeGFXPipe)
	w.Set(l.pipeline, pipelineMedia)
	w.Set(l.opcode, opcodeOf(s.PipeMode))
	w.Set(l.subOpcodeB, subOpcodeBSFCState)
	w.Set(l.dwordLength, uint64(l.size-2))

	w.Set(l.pipeMode, uint64(s.PipeMode.Code()))
	w.Set(l.inputSubsampling, uint64(s.InputColorPack.SubsamplingCode()))
	w.Set(l.inputOrdering, uint64(s.InputOrderingMode))
	if s.MultiEngine {
		w.Set(l.engineMode, uint64(s.Engine.Role.ModeCode()))
	}

	w.Set(l.inputWidth, uint64(s.InputFrame.Width)-1)
	w.Set(l.inputHeight, uint64(s.InputFrame.Height)-1)

	w.Set(l.outputFormat, uint64(s.Output.Code))
	w.SetBool(l.channelSwap, s.Output.Swap)
	w.Set(l.sitingVertical, uint64(s.ChromaSiting.Vertical.Eighths()))
	w.Set(l.sitingHorizontal, uint64(s.ChromaSiting.Horizontal.Eighths()))
	w.SetBool(l.inputRGB, s.InputRGB)

	p := &s.Scaling
	w.SetBool(l.ief, s.Sharpening)
	w.SetBool(l.skinTone, s.SkinToneTuned)
	w.SetBool(l.iefSmooth, s.IEFSmooth)
	w.SetBool(l.eightTapChroma, p.EightTapChroma)
	w.Set(l.avsFilterMode, uint64(p.FilterModeCode()))
	w.SetBool(l.adaptiveAllChannels, p.AdaptiveAllChannels)
	w.SetBool(l.avsEnable, p.AVSEnabled)
	w.SetBool(l.bypassY, p.BypassYAdaptive)
	w.SetBool(l.bypassX, p.BypassXAdaptive)
	w.SetBool(l.rgbAdaptive, p.RGBAdaptive)
	w.SetBool(l.chromaUpsampling, p.ChromaUpsampling)
	w.Set(l.rotation, uint64(s.Rotation))
	w.SetBool(l.colorFill, s.ColorFill)
	w.SetBool(l.csc, s.CSC)
	w.Set(l.bitDepth, uint64(s.Output.BitDepthField))
	w.SetBool(l.histogram, s.Histogram != nil)

	w.Set(l.sourceWidth, uint64(s.SourceRegion.Width)-1)
	w.Set(l.sourceHeight, uint64(s.SourceRegion.Height)-1)
	w.Set(l.sourceX, uint64(s.SourceRegion.X))
	w.Set(l.sourceY, uint64(s.SourceRegion.Y))
	w.Set(l.outputWidth, uint64(s.OutputFrame.Width)+uint64(s.Surface.XOffset)-1)
	w.Set(l.outputHeight, uint64(s.OutputFrame.Height)+uint64(s.Surface.YOffset)-1)
	w.Set(l.scaledWidth, uint64(s.ScaledRegion.Width)-1)
	w.Set(l.scaledHeight, uint64(s.ScaledRegion.Height)-1)
	w.Set(l.scaledX, uint64(s.ScaledRegion.X)+uint64(s.Surface.XOffset))
	w.Set(l.scaledY, uint64(s.ScaledRegion.Y)+uint64(s.Surface.YOffset))

	w.Set(l.fillUG, uint64(s.Color.UG))
	w.Set(l.fillYR, uint64(s.Color.YR))
	w.Set(l.fillA, uint64(s.Color.A))
	w.Set(l.fillVB, uint64(s.Color.VB))
	if s.InputColorPack == format.ColorPack400 {
		w.Set(l.monoU, monoDefault)
		w.Set(l.monoV, monoDefault)
	}
	w.Set(l.alpha, uint64(s.Alpha))

	w.Set(l.scaleFactorHeight, uint64(p.Y.ScaleFactor))
	w.Set(l.scaleFactorWidth, uint64(p.X.ScaleFactor))

	w.Set(l.pitch, uint64(s.Surface.Pitch)-1)
	w.SetBool(l.interleaveChroma, s.Output.Interleaved)
	w.Set(l.surfaceFormat, uint64(s.Output.Code))
	w.Set(l.uOffsetY, uint64(s.UOffset.Y))
	w.Set(l.uOffsetX, uint64(s.UOffset.X))
	w.Set(l.vOffsetY, uint64(s.VOffset.Y))
	w.Set(l.vOffsetX, uint64(s.VOffset.X))

	if s.MultiEngine {
		w.Set(l.sourceStartX, uint64(s.Engine.Source.Start))
		w.Set(l.sourceEndX, uint64(s.Engine.Source.End))
		if s.Engine.HasOutput() {
			w.Set(l.destStartX, uint64(s.Engine.DestContextStart))
			w.Set(l.destEndX, uint64(s.Engine.Dest.End))
		}
	}
	w.SetSigned(l.phaseX, int64(p.X.PhaseShift))
	w.SetSigned(l.phaseY, int64(p.Y.PhaseShift))
}
