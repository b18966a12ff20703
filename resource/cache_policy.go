// cache_policy.go resolves memory-object cache-control indexes per resource kind.

package resource

import (
	"fmt"
)

// Usage is the cache usage class a resource is accessed with.
type Usage int

const (
	UsageDefault Usage = iota
	UsageCurrentOutputSurface
	UsageAVSLineBuffer
	UsageIEFLineBuffer
	EndOfUsage
)

func (u Usage) String() string {
	switch u {
	case UsageDefault:
		return "default"
	case UsageCurrentOutputSurface:
		return "current_output_surface"
	case UsageAVSLineBuffer:
		return "avs_line_buffer"
	case UsageIEFLineBuffer:
		return "ief_line_buffer"
	default:
		return fmt.Sprintf("<unexpected_%d>", int(u))
	}
}

// CachePolicyResolver returns the cache-control table index of a usage;
// it is usually backed by the platform tables of the GPU driver.
type CachePolicyResolver interface {
	CachePolicyIndex(Usage) uint8
}

// StaticCachePolicies is a CachePolicyResolver backed by a fixed map;
// missing usages resolve to the default usage.
type StaticCachePolicies map[Usage]uint8

var _ CachePolicyResolver = StaticCachePolicies(nil)

func (s StaticCachePolicies) CachePolicyIndex(u Usage) uint8 {
	if idx, ok := s[u]; ok {
		return idx
	}
	return s[UsageDefault]
}

// CachePolicyTable is the per-kind cache policy, resolved once.
type CachePolicyTable [EndOfKind]uint8

func NewCachePolicyTable(resolver CachePolicyResolver) CachePolicyTable {
	var t CachePolicyTable
	if resolver == nil {
		return t
	}
	for k := UndefinedKind + 1; k < EndOfKind; k++ {
		t[k] = resolver.CachePolicyIndex(k.Usage())
	}
	return t
}

func (t *CachePolicyTable) Lookup(k Kind) uint8 {
	if k <= UndefinedKind || k >= EndOfKind {
		return 0
	}
	return t[k]
}
