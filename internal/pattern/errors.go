package pattern

import "errors"

var (
	// ErrHeightOutOfRange indicates row planning sampled a height the
	// curve cannot answer. The planner derives its heights from the
	// curve's own range, so this is a defect signal, not bad input.
	ErrHeightOutOfRange = errors.New("pattern: sampled height outside profile range")
	// ErrInvalidConfig indicates the gauge or height configuration
	// failed validation.
	ErrInvalidConfig = errors.New("pattern: invalid configuration")
)
