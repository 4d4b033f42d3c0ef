package core

// # Error Codes Reference
//
// Every failure the cleaner reports carries a Kind and a stable code so a
// logged run can be matched to the status line the user saw.
//
//	CSV001 - File missing: the input file could not be found when opened
//	         Status: "Error: The file '<input>' was not found."
//
//	CSV002 - No header: the input has no first record to use as a header
//	         Status: "An error occurred: The input file '<input>' has no headers."
//
//	CSV003 - Column not found: the target column is not in the header
//	         Status: "Error: Column '<column>' not found in the CSV headers."
//
//	CSV004 - Generic: any other I/O, encoding, or parse failure
//	         Status: "An error occurred: <message>"
//
// The pre-check performed by the command before the pipeline runs reports
// CSV001 with its own wording ("Error: Input file '<input>' does not exist.").

import (
	"errors"
	"fmt"
)

// Kind classifies a cleaner failure.
type Kind int

const (
	KindGeneric Kind = iota
	KindFileMissing
	KindNoHeader
	KindColumnNotFound
)

var kindNames = [...]string{"generic", "file_missing", "no_header", "column_not_found"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Code returns the support code for the kind.
func (k Kind) Code() string {
	switch k {
	case KindFileMissing:
		return "CSV001"
	case KindNoHeader:
		return "CSV002"
	case KindColumnNotFound:
		return "CSV003"
	default:
		return "CSV004"
	}
}

// Error is returned by Run for every failure. Path is the input file and
// Column the requested target column; Err holds the underlying cause, if any.
type Error struct {
	Kind   Kind
	Path   string
	Column string
	Err    error
}

// Error returns the user-facing reason, without the "Error:" or
// "An error occurred:" prefix chosen by the reporter.
func (e *Error) Error() string {
	switch e.Kind {
	case KindFileMissing:
		return fmt.Sprintf("The file '%s' was not found.", e.Path)
	case KindNoHeader:
		return fmt.Sprintf("The input file '%s' has no headers.", e.Path)
	case KindColumnNotFound:
		return fmt.Sprintf("Column '%s' not found in the CSV headers.", e.Column)
	}
	if e.Err == nil {
		return "unknown error"
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf classifies err. Errors that are not *Error are generic.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindGeneric
}

func fileMissing(path string, err error) *Error {
	return &Error{Kind: KindFileMissing, Path: path, Err: err}
}

func noHeader(path string) *Error {
	return &Error{Kind: KindNoHeader, Path: path}
}

func columnNotFound(path, column string) *Error {
	return &Error{Kind: KindColumnNotFound, Path: path, Column: column}
}

func generic(path string, err error) *Error {
	return &Error{Kind: KindGeneric, Path: path, Err: err}
}
