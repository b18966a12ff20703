// enum.go provides text (un)marshaling helpers shared by the enumerations of this package.

package types

import (
	"fmt"
	"strings"
)

type enum interface {
	~int
	String() string
}

func parseEnum[T enum](s string, end T) (T, error) {
	s = strings.TrimSpace(s)
	for v := T(0); v < end; v++ {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown value '%s'", s)
}
