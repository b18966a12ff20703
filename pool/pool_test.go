package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolReset(t *testing.T) {
	p := NewPool(
		func() *[]uint32 {
			v := make([]uint32, 4)
			return &v
		},
		func(v *[]uint32) {
			for i := range *v {
				(*v)[i] = 0
			}
		},
	)

	v := p.Get()
	require.Len(t, *v, 4)
	(*v)[1] = 42
	p.Put(v)

	v = p.Get()
	require.Len(t, *v, 4)
	require.Zero(t, (*v)[1])
}
