package dockerfile

import (
	"fmt"

	"github.com/dexnore/dockerfile/instructions/parser"
	"github.com/pkg/errors"
)

// ErrInvalidEncoding is wrapped by an IOError when the input is not UTF-8.
var ErrInvalidEncoding = errors.New("dockerfile is not valid UTF-8")

// IOError is a failure in opening or reading a Dockerfile.
type IOError struct {
	Msg string
	Err error
}

func (e *IOError) Error() string {
	return e.Msg
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func newIOError(err error) error {
	return &IOError{Msg: err.Error(), Err: err}
}

func invalidEncoding(filename string) error {
	msg := ErrInvalidEncoding.Error()
	if filename != "" {
		msg = filename + ": " + msg
	}
	return &IOError{Msg: msg, Err: ErrInvalidEncoding}
}

// ParseError is a failure in parsing the input as a Dockerfile. Line is the
// 1-based line the error was found on, or 0 when it is not known.
type ParseError struct {
	Msg  string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("dockerfile parse error on line %d: %s", e.Line, e.Msg)
	}
	return "dockerfile parse error: " + e.Msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error) error {
	pe := &ParseError{Msg: err.Error(), Err: err}
	var le *parser.LocationError
	if errors.As(err, &le) {
		pe.Line = le.Line()
	}
	return pe
}
