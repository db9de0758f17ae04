package tracks

import (
	"errors"
	"fmt"
)

// ErrClassOutOfRange indicates a class code with no palette slot.
var ErrClassOutOfRange = errors.New("class code out of palette range")

// ErrFigureClosed is returned by every Figure method after Close.
var ErrFigureClosed = errors.New("figure closed")

// ErrEmptySpec indicates a Spec without panels.
var ErrEmptySpec = errors.New("spec has no panels")

// RangeError reports a class code that cannot be mapped onto a palette.
type RangeError struct {
	Column string
	Row    int
	Code   float64
	Size   int // palette size; valid codes are 0..Size-1
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("column %q row %d: class code %v outside [0, %d]", e.Column, e.Row, e.Code, e.Size-1)
}

func (e *RangeError) Unwrap() error { return ErrClassOutOfRange }
