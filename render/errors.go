package render

import (
	"errors"
	"fmt"
)

// ErrMissingPaint is returned when a drawing call has no paint for its role
var ErrMissingPaint = errors.New("missing paint")

var (
	ErrMissingStroke = fmt.Errorf("stroke: %w", ErrMissingPaint)
	ErrMissingFill   = fmt.Errorf("fill: %w", ErrMissingPaint)
)

// ErrInvalidGeometry is returned for negative radii or extents
var ErrInvalidGeometry = errors.New("invalid geometry")
