package reference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/avsfc/resource"
)

func TestFixup(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name     string
		refs     []resource.Handle
		fallback resource.Handle
		want     []resource.Handle
		subs     []Substitution
	}{
		{
			name: "no_gaps",
			refs: []resource.Handle{1, 2, 3},
			want: []resource.Handle{1, 2, 3},
		},
		{
			name:     "leading_gap_uses_fallback",
			refs:     []resource.Handle{0, 2},
			fallback: 9,
			want:     []resource.Handle{9, 2},
			subs:     []Substitution{{Slot: 0, Source: FromFallback, Handle: 9}},
		},
		{
			name:     "gaps_use_most_recent",
			refs:     []resource.Handle{1, 0, 3, 0, 0},
			fallback: 9,
			want:     []resource.Handle{1, 1, 3, 3, 3},
			subs: []Substitution{
				{Slot: 1, Source: 0, Handle: 1},
				{Slot: 3, Source: 2, Handle: 3},
				{Slot: 4, Source: 2, Handle: 3},
			},
		},
		{
			name: "nothing_to_substitute",
			refs: []resource.Handle{0, 0},
			want: []resource.Handle{0, 0},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			subs := Fixup(ctx, tc.refs, tc.fallback)
			require.Equal(t, tc.want, tc.refs)
			require.Equal(t, tc.subs, subs)
		})
	}
}
