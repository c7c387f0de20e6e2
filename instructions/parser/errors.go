package parser

import (
	"fmt"

	"github.com/moby/buildkit/frontend/dockerfile/parser"
	"github.com/moby/buildkit/util/stack"
	"github.com/pkg/errors"
)

// LocationError gives a location in source code that caused the error
type LocationError struct {
	Locations [][]Range
	error
}

// Unwrap unwraps to the next error
func (e *LocationError) Unwrap() error {
	return e.error
}

// Line returns the first source line the error points at, or 0 when the
// error carries no usable location.
func (e *LocationError) Line() int {
	for _, loc := range e.Locations {
		for _, r := range loc {
			if r.Start.Line > 0 {
				return r.Start.Line
			}
		}
	}
	return 0
}

// Range is a code section between two positions
type Range = parser.Range

// Position is a point in source code
type Position = parser.Position

// UnknownInstructionError represents an error occurring when a command is unresolvable
type UnknownInstructionError struct {
	Instruction string
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction: %s", e.Instruction)
}

var (
	errDockerfileNotStringArray = errors.New("when using JSON array syntax, arrays must be comprised of strings only")
	errOnbuildChaining          = errors.New("chaining ONBUILD via `ONBUILD ONBUILD` isn't allowed")
)

func withLocation(err error, start, end int) error {
	return WithLocation(err, toRanges(start, end))
}

// WithLocation extends an error with a source code location
func WithLocation(err error, location []Range) error {
	if err == nil {
		return nil
	}
	var el *LocationError
	if errors.As(err, &el) {
		el.Locations = append(el.Locations, location)
		return err
	}
	return stack.Enable(&LocationError{
		error:     err,
		Locations: [][]Range{location},
	})
}

func toRanges(start, end int) (r []Range) {
	if end <= start {
		end = start
	}
	for i := start; i <= end; i++ {
		r = append(r, Range{Start: Position{Line: i}, End: Position{Line: i}})
	}
	return
}
