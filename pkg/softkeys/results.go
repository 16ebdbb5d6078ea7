package softkeys

import "errors"

var (
	ErrInvalidTemplate = errors.New("invalid row template")
	ErrInvalidConfig   = errors.New("invalid keyboard configuration")
	ErrReentrantPress  = errors.New("key press already in progress")
)

// Change is reported to the OnChange callback whenever an edit produces a new
// text value.
type Change struct {
	Value string
	// Caret is where the caret belongs after the edit, in runes.
	Caret int
}
