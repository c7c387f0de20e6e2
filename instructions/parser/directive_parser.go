package parser

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	keySyntax = "syntax"
	keyCheck  = "check"
	keyEscape = "escape"
)

var validDirectives = map[string]struct{}{
	keyEscape: {},
	keySyntax: {},
	keyCheck:  {},
}

// Directive is the structure used during a build run to hold the state of
// parsing directives.
type Directive struct {
	Name     string
	Value    string
	Location []Range
}

// DirectiveParser is a parser for Dockerfile directives that enforces the
// quirks of the directive parser: directives are only recognized in the
// leading run of comment lines, unknown keys end that run, and every
// directive may appear at most once.
type DirectiveParser struct {
	line int
	seen map[string]struct{}
	done bool
}

// ParseLine inspects the next physical line. It returns nil once directive
// recognition has stopped or when the line is not a known directive.
func (d *DirectiveParser) ParseLine(line []byte) (*Directive, error) {
	d.line++
	if d.done {
		return nil, nil
	}

	match := reDirective.FindSubmatch(line)
	if len(match) == 0 {
		d.done = true
		return nil, nil
	}

	k := strings.ToLower(string(match[1]))
	if _, ok := validDirectives[k]; !ok {
		d.done = true
		return nil, nil
	}
	if _, ok := d.seen[k]; ok {
		return nil, errors.Errorf("only one %s parser directive can be used", k)
	}
	if d.seen == nil {
		d.seen = map[string]struct{}{}
	}
	d.seen[k] = struct{}{}

	return &Directive{
		Name:     k,
		Value:    string(match[2]),
		Location: toRanges(d.line, d.line),
	}, nil
}
