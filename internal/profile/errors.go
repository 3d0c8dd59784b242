package profile

import "errors"

var (
	// ErrTooFewPoints indicates fewer than three anchors were supplied.
	ErrTooFewPoints = errors.New("profile: at least 3 anchor points are required")
	// ErrNotMonotonic indicates anchor heights are not strictly increasing.
	ErrNotMonotonic = errors.New("profile: anchor heights must be strictly increasing")
	// ErrOpenPole indicates the first or last anchor is off the revolution axis.
	ErrOpenPole = errors.New("profile: profile must start and end on the axis (radius 0)")
)
