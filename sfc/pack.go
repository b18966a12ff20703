// pack.go writes a scaler-unit command with its resource bindings into a command buffer.

package sfc

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/avsfc/cmdbuf"
	"github.com/xaionaro-go/avsfc/logger"
	"github.com/xaionaro-go/avsfc/pool"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
	"github.com/xaionaro-go/xsync"
)

var descriptorPools xsync.Map[int, *pool.Pool[cmdbuf.Descriptor]]

func descriptorPool(size int) *pool.Pool[cmdbuf.Descriptor] {
	if p, ok := descriptorPools.Load(size); ok {
		return p
	}
	p, _ := descriptorPools.LoadOrStore(size, pool.NewPool(
		func() *cmdbuf.Descriptor {
			d := cmdbuf.NewDescriptor(size)
			return &d
		},
		func(d *cmdbuf.Descriptor) {
			d.Reset()
		},
	))
	return p
}

type binding struct {
	kind   resource.Kind
	handle resource.Handle
	offset uint64
}

func (s *State) bindings(lineBuffers map[resource.Kind]resource.Handle) []binding {
	result := []binding{{
		kind:   resource.KindOutput,
		handle: s.OutputTarget(),
		offset: s.Surface.Offset,
	}}
	for _, kind := range []resource.Kind{
		resource.KindAVSLineBuffer,
		resource.KindIEFLineBuffer,
		resource.KindSFDLineBuffer,
		resource.KindAVSLineTileBuffer,
		resource.KindIEFLineTileBuffer,
		resource.KindSFDLineTileBuffer,
	} {
		if h := lineBuffers[kind]; h.IsValid() {
			result = append(result, binding{kind: kind, handle: h})
		}
	}
	if s.Histogram != nil {
		result = append(result, binding{
			kind:   resource.KindHistogram,
			handle: s.Histogram.Handle,
			offset: s.Histogram.Offset,
		})
	}
	if s.Field.Mode == types.FieldModeInterleavedToField {
		result = append(result, binding{
			kind:   resource.KindBottomField,
			handle: s.BottomFieldTarget(),
			offset: s.Surface.Offset,
		})
	}
	return result
}

// Pack encodes the state with the encoder and appends the command to
// buf. On failure buf is left untouched.
func Pack(
	ctx context.Context,
	enc Encoder,
	s *State,
	lineBuffers map[resource.Kind]resource.Handle,
	cachePolicies *resource.CachePolicyTable,
	buf *cmdbuf.Buffer,
) (_err error) {
	logger.Tracef(ctx, "Pack(ctx, %T, %s)", enc, s.Engine.Role)
	defer func() { logger.Tracef(ctx, "/Pack(ctx, %T, %s): %v", enc, s.Engine.Role, _err) }()

	if enc == nil {
		return types.ErrInvalidParameter{Name: "Encoder"}
	}
	if s == nil {
		return types.ErrInvalidParameter{Name: "State"}
	}
	if buf == nil {
		return types.ErrInvalidParameter{Name: "Buffer"}
	}
	if err := enc.Validate(s); err != nil {
		return err
	}

	descPool := descriptorPool(enc.DescriptorSize())
	d := descPool.Get()
	defer descPool.Put(d)

	w := cmdbuf.NewWriter(*d)
	enc.Encode(s, w)

	for _, b := range s.bindings(lineBuffers) {
		if !b.handle.IsValid() {
			return types.ErrInvalidParameter{Name: b.kind.String()}
		}
		dw, ok := enc.BindingWord(b.kind)
		if !ok {
			return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("%s cannot reference %s", enc.Generation(), b.kind)}
		}
		var mocs uint8
		if cachePolicies != nil {
			mocs = cachePolicies.Lookup(b.kind)
		}
		if mocs != 0 {
			w.Set(mocsField(dw), uint64(mocs))
		}
		switch b.kind {
		case resource.KindOutput, resource.KindBottomField:
			if s.Surface.IsCompressed() {
				w.SetBool(compressionEnableField(dw), true)
				w.SetBool(compressionTypeField(dw), s.Surface.Compression == types.CompressionModeRC)
			}
		}
		w.Bind(resource.Binding{
			Kind:        b.kind,
			Handle:      b.handle,
			Offset:      b.offset,
			Writable:    true,
			CachePolicy: mocs,
			Word:        dw,
		})
	}

	if err := buf.Append(w); err != nil {
		return fmt.Errorf("unable to encode the %s command: %w", enc.Generation(), err)
	}
	logger.Debugf(ctx, "packed %d words and %d bindings for %s", len(w.Descriptor), len(w.Bindings), enc.Generation())
	return nil
}
