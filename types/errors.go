// errors.go defines the error taxonomy shared by all the packages of the module.

package types

import (
	"fmt"
)

// ErrInvalidParameter is returned when a required resource or value is missing.
type ErrInvalidParameter struct {
	Name string
	Err  error
}

func (e ErrInvalidParameter) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid parameter '%s': %v", e.Name, e.Err)
	}
	return fmt.Sprintf("invalid parameter '%s'", e.Name)
}

func (e ErrInvalidParameter) Unwrap() error {
	return e.Err
}

// ErrUnsupportedFormat is returned when a pixel format has no hardware encoding.
type ErrUnsupportedFormat struct {
	Format fmt.Stringer
}

func (e ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported format: %v", e.Format)
}

// ErrInvalidConfiguration is returned when dimensions, ratios or engine
// indexes fall outside of the hardware-documented bounds.
type ErrInvalidConfiguration struct {
	Reason string
	Err    error
}

func (e ErrInvalidConfiguration) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

func (e ErrInvalidConfiguration) Unwrap() error {
	return e.Err
}

// ErrAllocationFailure wraps an error of the underlying scratch-resource allocator.
type ErrAllocationFailure struct {
	Name string
	Size uint64
	Err  error
}

func (e ErrAllocationFailure) Error() string {
	return fmt.Sprintf("unable to allocate %d bytes for '%s': %v", e.Size, e.Name, e.Err)
}

func (e ErrAllocationFailure) Unwrap() error {
	return e.Err
}
