// Package dockerfile parses Dockerfiles into a flat list of commands.
package dockerfile

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dexnore/dockerfile/command"
	"github.com/dexnore/dockerfile/instructions/parser"
	"github.com/sirupsen/logrus"
)

// AllCmds lists all legal instructions of a Dockerfile, sorted.
func AllCmds() []string {
	return command.Sorted()
}

// ParseString parses a Dockerfile held in a string. An *IOError (invalid
// UTF-8) or *ParseError may occur.
func ParseString(dt string, opts ...Option) ([]Command, error) {
	if !utf8.ValidString(dt) {
		return nil, invalidEncoding("")
	}
	return parse([]byte(dt), newOptions(opts))
}

// ParseReader parses a Dockerfile from a reader. The reader is consumed
// completely before parsing starts. An *IOError or *ParseError may occur.
func ParseReader(r io.Reader, opts ...Option) ([]Command, error) {
	dt, err := io.ReadAll(r)
	if err != nil {
		return nil, newIOError(err)
	}
	if !utf8.Valid(dt) {
		return nil, invalidEncoding("")
	}
	return parse(dt, newOptions(opts))
}

// ParseFile parses the Dockerfile at filename. An *IOError or *ParseError
// may occur.
func ParseFile(filename string, opts ...Option) ([]Command, error) {
	o := newOptions(opts)
	o.logger = o.logger.WithField("file", filename)

	dt, err := os.ReadFile(filename)
	if err != nil {
		return nil, newIOError(err)
	}
	if !utf8.Valid(dt) {
		return nil, invalidEncoding(filename)
	}
	return parse(dt, o)
}

func parse(dt []byte, o *options) ([]Command, error) {
	result, err := parser.Parse(bytes.NewReader(dt))
	if err != nil {
		return nil, newParseError(err)
	}

	for _, w := range result.Warnings {
		fields := logrus.Fields{"url": w.URL}
		if w.Location != nil {
			fields["line"] = w.Location.Start.Line
		}
		o.logger.WithFields(fields).Warn(w.Short)
	}

	cmds := commandsFromAST(result.AST)
	o.logger.WithFields(logrus.Fields{
		"commands": len(cmds),
		"escape":   string(result.EscapeToken),
	}).Debug("parsed dockerfile")
	return cmds, nil
}
