package welllog

import (
	"errors"
	"fmt"
)

// ErrWellNotFound indicates a well identifier selected zero rows.
var ErrWellNotFound = errors.New("well not found")

// ErrMissingColumn indicates a column lookup failed.
var ErrMissingColumn = errors.New("missing column")

// ErrUnsupportedSource indicates Load could not pick a reader for a path.
var ErrUnsupportedSource = errors.New("unsupported table source")

// EmptySelectionError reports a well identifier with no matching rows.
type EmptySelectionError struct {
	Well string
	Rows int // rows in the table that was searched
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("well %q not found in table (%d rows searched)", e.Well, e.Rows)
}

func (e *EmptySelectionError) Unwrap() error { return ErrWellNotFound }

// MissingColumnError reports an absent column or one of the wrong kind.
type MissingColumnError struct {
	Column string
	Want   Kind
	Got    Kind // KindNone when the column does not exist
}

func (e *MissingColumnError) Error() string {
	if e.Got == KindNone {
		return fmt.Sprintf("column %q not found", e.Column)
	}
	return fmt.Sprintf("column %q is %s, want %s", e.Column, e.Got, e.Want)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }
