// avsfc.go declares the root package.

// Package avsfc builds scaler-unit (SFC) state commands for media
// engines, splits a frame between several scaler units and owns the
// scratch line buffers they need.
package avsfc
