// color.go defines normalized colors used for color fill.

package types

// Color is a normalized color; channels are expected in [0, 1] and are
// clamped when encoded. For YUV outputs R/G/B carry Y/U/V.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}
