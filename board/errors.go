package board

import "errors"

var (
	// ErrPaletteTooSmall is returned when fewer than two gem types are configured
	ErrPaletteTooSmall = errors.New("gem palette too small to avoid forced matches")
	// ErrRerollExhausted is returned when the initial board could not be made matchless
	ErrRerollExhausted = errors.New("initial reroll budget exhausted")
	// ErrGeometry is returned for non-positive board dimensions
	ErrGeometry = errors.New("invalid board geometry")
	// ErrInvariant signals an internal board inconsistency
	ErrInvariant = errors.New("board invariant violated")
)
