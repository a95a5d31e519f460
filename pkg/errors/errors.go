// Package errors provides the typed error values used across the analysis
// pipeline. Error construction attaches a stack trace via cockroachdb/errors
// so that the logging layer can surface it; each domain error also implements
// zerolog's object marshaler for structured output.
package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Pipeline error types
//
// ===========================================================================

// ConnectionError reports a failure to open the database session.
// It halts the pipeline: nothing downstream can run without a connection.
type ConnectionError struct {
	Host     string
	Port     int
	Database string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("houseda: connect to %s:%d/%s failed: %v", e.Host, e.Port, e.Database, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds structured connection context to a zerolog event.
func (e *ConnectionError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("host", e.Host).
		Int("port", e.Port).
		Str("database", e.Database).
		Str("type", "ConnectionError")
}

// NewConnectionError creates a ConnectionError with a stack trace attached.
func NewConnectionError(host string, port int, database string, err error) error {
	connErr := &ConnectionError{Host: host, Port: port, Database: database, Err: err}
	return errors.WithStack(connErr)
}

// QueryError reports a failure to execute the load query or to materialize
// its result set. Like ConnectionError it halts the pipeline.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("houseda: query %q failed: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// MarshalZerologObject adds the failing query to a zerolog event.
func (e *QueryError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("query", e.Query).
		Str("type", "QueryError")
}

// NewQueryError creates a QueryError with a stack trace attached.
func NewQueryError(query string, err error) error {
	qErr := &QueryError{Query: query, Err: err}
	return errors.WithStack(qErr)
}

// ColumnNotFoundError reports that a stage referenced a column name the
// loaded frame does not contain.
type ColumnNotFoundError struct {
	Op     string
	Column string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("houseda: %s: column %q not found in frame", e.Op, e.Column)
}

// MarshalZerologObject adds the missing column to a zerolog event.
func (e *ColumnNotFoundError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("type", "ColumnNotFoundError")
}

// NewColumnNotFoundError creates a ColumnNotFoundError with a stack trace.
func NewColumnNotFoundError(op, column string) error {
	err := &ColumnNotFoundError{Op: op, Column: column}
	return errors.WithStack(err)
}

// ColumnTypeError reports that a column exists but has the wrong storage
// kind for the requested operation (e.g. profiling a text column as numeric).
type ColumnTypeError struct {
	Op       string
	Column   string
	Expected string
	Got      string
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("houseda: %s: column %q is %s, expected %s", e.Op, e.Column, e.Got, e.Expected)
}

// MarshalZerologObject adds the kind mismatch to a zerolog event.
func (e *ColumnTypeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("column", e.Column).
		Str("expected", e.Expected).
		Str("got", e.Got).
		Str("type", "ColumnTypeError")
}

// NewColumnTypeError creates a ColumnTypeError with a stack trace.
func NewColumnTypeError(op, column, expected, got string) error {
	err := &ColumnTypeError{Op: op, Column: column, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// EmptyGroupError reports that a hypothesis test did not receive enough
// non-empty groups to run (ANOVA needs at least two, the t-test exactly two).
type EmptyGroupError struct {
	Test     string
	Required int
	Got      int
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("houseda: %s: need %d non-empty groups, got %d", e.Test, e.Required, e.Got)
}

// MarshalZerologObject adds group counts to a zerolog event.
func (e *EmptyGroupError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("test", e.Test).
		Int("required", e.Required).
		Int("got", e.Got).
		Str("type", "EmptyGroupError")
}

// NewEmptyGroupError creates an EmptyGroupError with a stack trace.
func NewEmptyGroupError(test string, required, got int) error {
	err := &EmptyGroupError{Test: test, Required: required, Got: got}
	return errors.WithStack(err)
}

// NotFittedError is returned when an encoder's Transform or InverseTransform
// is called before Fit.
type NotFittedError struct {
	Encoder string
	Method  string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("houseda: %s: not fitted yet, call Fit() before %s()", e.Encoder, e.Method)
}

// MarshalZerologObject adds encoder context to a zerolog event.
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("encoder", e.Encoder).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError creates a NotFittedError with a stack trace.
func NewNotFittedError(encoder, method string) error {
	err := &NotFittedError{Encoder: encoder, Method: method}
	return errors.WithStack(err)
}

// ValueError reports an invalid argument value.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("houseda: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain matching target's type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack attaches a stack trace to err.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error values
//
// ===========================================================================

var (
	// ErrEmptyData is returned when an operation receives no rows.
	ErrEmptyData = New("empty data")

	// ErrNoNumericColumns is returned when the correlation stage finds no
	// numeric columns to correlate.
	ErrNoNumericColumns = New("no numeric columns")
)
