package cmdbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avsfc/resource"
	"github.com/xaionaro-go/avsfc/types"
)

func TestWriterSet(t *testing.T) {
	w := NewWriter(NewDescriptor(4))
	w.Set(Bits(1, 0, 13), 1919)
	w.Set(Bits(1, 16, 29), 1079)
	w.SetBool(Bit(2, 7), true)
	w.SetBool(Bit(2, 7), false)
	w.SetBool(Bit(2, 3), true)
	w.SetWord(3, 0xdeadbeef)
	require.NoError(t, w.Err())

	require.Equal(t, uint32(1079<<16|1919), w.Descriptor[1])
	require.Equal(t, uint32(1<<3), w.Descriptor[2])
	require.Equal(t, uint32(0xdeadbeef), w.Descriptor[3])
	require.Equal(t, uint32(1079), w.Descriptor.Get(Bits(1, 16, 29)))
}

func TestWriterSigned(t *testing.T) {
	w := NewWriter(NewDescriptor(1))
	f := Bits(0, 5, 28)
	w.SetSigned(f, -1)
	require.NoError(t, w.Err())
	require.Equal(t, uint32(0x00ffffff), w.Descriptor.Get(f))
	require.Zero(t, w.Descriptor[0]&0x1f)
	require.Zero(t, w.Descriptor[0]>>29)

	w.SetSigned(f, 1<<23)
	require.Error(t, w.Err())
}

func TestWriterOverflow(t *testing.T) {
	w := NewWriter(NewDescriptor(2))
	w.Set(Bits(0, 0, 3), 16)
	w.Set(Bits(5, 0, 3), 1)
	err := w.Err()
	require.Error(t, err)
	require.True(t, errors.As(err, &types.ErrInvalidConfiguration{}))
	require.Contains(t, err.Error(), "DW0[3:0]")
}

func TestBufferAppend(t *testing.T) {
	buf := NewBuffer(0)

	w := NewWriter(NewDescriptor(3))
	w.SetWord(0, 1)
	w.Bind(resource.Binding{Kind: resource.KindOutput, Handle: 7, Word: 2, Writable: true})
	require.NoError(t, buf.Append(w))

	w = NewWriter(NewDescriptor(3))
	w.SetWord(0, 2)
	w.Bind(resource.Binding{Kind: resource.KindAVSLineBuffer, Handle: 8, Word: 1})
	require.NoError(t, buf.Append(w))

	require.Equal(t, 6, buf.Len())
	require.Equal(t, []uint32{1, 0, 0, 2, 0, 0}, buf.Words())
	require.Len(t, buf.Bindings(), 2)
	require.Equal(t, 2, buf.Bindings()[0].Word)
	require.Equal(t, 4, buf.Bindings()[1].Word)

	failed := NewWriter(NewDescriptor(1))
	failed.Set(Bit(0, 0), 2)
	require.Error(t, buf.Append(failed))
	require.Equal(t, 6, buf.Len())

	buf.Reset()
	require.Zero(t, buf.Len())
	require.Empty(t, buf.Bindings())
}

func TestBufferAppendBuffer(t *testing.T) {
	buf := NewBuffer(0)
	w := NewWriter(NewDescriptor(2))
	w.Bind(resource.Binding{Kind: resource.KindOutput, Handle: 7, Word: 1})
	require.NoError(t, buf.Append(w))

	other := NewBuffer(0)
	w = NewWriter(NewDescriptor(4))
	w.Bind(resource.Binding{Kind: resource.KindOutput, Handle: 8, Word: 3})
	require.NoError(t, other.Append(w))

	require.NoError(t, buf.AppendBuffer(other))
	require.Equal(t, 6, buf.Len())
	require.Equal(t, 5, buf.Bindings()[1].Word)
	require.Equal(t, 3, other.Bindings()[0].Word)
	require.Error(t, buf.AppendBuffer(nil))
}
