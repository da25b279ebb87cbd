package app

import "fmt"

// FieldErrorKind classifies why a form field was rejected.
type FieldErrorKind int

const (
	// FieldMissing means a required field was empty or absent.
	FieldMissing FieldErrorKind = iota
	// FieldFormat means the field value has the wrong shape (charset,
	// email, date).
	FieldFormat
	// FieldRange means the field value falls outside its length bounds.
	FieldRange
)

// ValidationError reports the first form-field check that failed. All
// validation failures are terminal and user-visible; nothing is retried.
type ValidationError struct {
	Field string
	Kind  FieldErrorKind
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Kind: FieldMissing, Msg: fmt.Sprintf("%s is required", field)}
}

func formatError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Kind: FieldFormat, Msg: msg}
}

func rangeError(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Kind: FieldRange, Msg: msg}
}
