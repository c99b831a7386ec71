package coords

import "fmt"

// ArityError is returned when more chromosome tables are requested than
// were supplied.
type ArityError struct {
	Requested int
	Supplied  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("requested %d chromosome tables, %d supplied", e.Requested, e.Supplied)
}

// SchemaError is returned when a table lacks a usable required field.
// Index is the 1-based position of the offending table.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %d: field '%s': %s", e.Index, e.Field, e.Reason)
}
