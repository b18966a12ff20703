// role.go defines the position of an engine within a partitioned frame.

package partition

import (
	"fmt"
)

// Role is the position of an engine; its value is the hardware engine mode code.
type Role uint32

const (
	RoleSingle    = Role(0)
	RoleLeftmost  = Role(1)
	RoleRightmost = Role(2)
	RoleInterior  = Role(3)
)

func (r Role) String() string {
	switch r {
	case RoleSingle:
		return "single"
	case RoleLeftmost:
		return "leftmost"
	case RoleRightmost:
		return "rightmost"
	case RoleInterior:
		return "interior"
	default:
		return fmt.Sprintf("<unexpected_%d>", uint32(r))
	}
}

// ModeCode is the value of the engine mode field.
func (r Role) ModeCode() uint32 {
	return uint32(r)
}

var roles = [MaxEngines + 1][]Role{
	1: {RoleSingle},
	2: {RoleLeftmost, RoleRightmost},
	3: {RoleLeftmost, RoleInterior, RoleRightmost},
	4: {RoleLeftmost, RoleInterior, RoleInterior, RoleRightmost},
}

// RoleOf returns the role of the engine selected by the configuration.
func RoleOf(c Config) (Role, error) {
	if err := c.Validate(); err != nil {
		return RoleSingle, err
	}
	return roles[c.Count][c.Index], nil
}
