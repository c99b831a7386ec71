package window

import "fmt"

// MisalignedError is returned when a parallel field of a record does not
// have as many rows as the sequence field.
type MisalignedError struct {
	Field string
	Want  int
	Got   int
}

func (e *MisalignedError) Error() string {
	return fmt.Sprintf("field %s has %d rows, expected %d", e.Field, e.Got, e.Want)
}

// NegativeFreqError is returned when a frequency count is below zero.
type NegativeFreqError struct {
	Row   int
	Value int
}

func (e *NegativeFreqError) Error() string {
	return fmt.Sprintf("negative frequency %d at row %d", e.Value, e.Row)
}

// WindowError attaches the window length to a record error.
type WindowError struct {
	Window int
	Err    error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("window %d: %v", e.Window, e.Err)
}

func (e *WindowError) Unwrap() error {
	return e.Err
}
