package types

import (
	"sync/atomic"
)

type StatisticsItem struct {
	Count uint64 `json:",omitempty"`
	Words uint64 `json:",omitempty"`
}

func (c StatisticsItem) ToCounters() *CountersItem {
	result := CountersItem{}
	result.Count.Store(c.Count)
	result.Words.Store(c.Words)
	return &result
}

type Statistics struct {
	Commands StatisticsItem
	Bindings uint64 `json:",omitempty"`
	Failures uint64 `json:",omitempty"`

	// LineBufferBytes is the total size of the scratch buffers currently held.
	LineBufferBytes uint64 `json:",omitempty"`
}

type CountersItem struct {
	Count atomic.Uint64
	Words atomic.Uint64
}

func NewCountersItem() *CountersItem {
	return &CountersItem{}
}

func (c *CountersItem) Increment(words uint64) {
	c.Count.Add(1)
	c.Words.Add(words)
}

func (c *CountersItem) ToStats() StatisticsItem {
	return StatisticsItem{
		Count: c.Count.Load(),
		Words: c.Words.Load(),
	}
}

type Counters struct {
	Commands CountersItem
	Bindings atomic.Uint64
	Failures atomic.Uint64
}

func (c *Counters) ToStats() Statistics {
	return Statistics{
		Commands: c.Commands.ToStats(),
		Bindings: c.Bindings.Load(),
		Failures: c.Failures.Load(),
	}
}
