// config.go defines the scalability configuration of a build.

// Package partition splits one logical transform into per-engine tile assignments.
package partition

import (
	"fmt"

	"github.com/xaionaro-go/avsfc/types"
)

const (
	// MaxEngines is the maximal amount of scaler units working on one frame.
	MaxEngines = 4

	// TileAlignment is the granularity (and the minimal width) of a source tile.
	TileAlignment = 64

	// Overlap is the amount of source columns shared by adjacent tiles.
	Overlap = 64

	// EdgeOffset is the amount of source columns kept away from a
	// non-rightmost tile edge when mapping destination pixels.
	EdgeOffset = 3
)

// Config tells how many engines take part in the transform and which
// of them the command is being built for.
type Config struct {
	Count int `yaml:"count"`
	Index int `yaml:"index"`
}

// Single is the configuration of a non-partitioned transform.
func Single() Config {
	return Config{Count: 1}
}

func (c Config) String() string {
	return fmt.Sprintf("%d/%d", c.Index, c.Count)
}

func (c Config) IsMultiEngine() bool {
	return c.Count > 1
}

// WithIndex returns a copy of the configuration targeting another engine.
func (c Config) WithIndex(index int) Config {
	c.Index = index
	return c
}

func (c Config) Validate() error {
	if c.Count < 1 || c.Count > MaxEngines {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("engine count %d is not in [1, %d]", c.Count, MaxEngines)}
	}
	if c.Index < 0 || c.Index >= c.Count {
		return types.ErrInvalidConfiguration{Reason: fmt.Sprintf("engine index %d is not in [0, %d)", c.Index, c.Count)}
	}
	return nil
}
