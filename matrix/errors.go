// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods return these sentinels (possibly wrapped with positional
// context); callers match them with errors.Is. No method panics on user
// input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when the requested size is invalid (n <= 0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates a row whose length is not n-1-i.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDiagonal indicates a write to a diagonal cell, which is fixed at 0.
	ErrDiagonal = errors.New("matrix: diagonal is not stored")
)
