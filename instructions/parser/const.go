package parser

import (
	"regexp"

	"github.com/dexnore/dockerfile/command"
)

// DefaultEscapeToken is the escape and line continuation token used until
// an escape directive changes it.
const DefaultEscapeToken = '\\'

var (
	reWhitespace = regexp.MustCompile(`[\t\v\f\r ]+`)
	reHeredoc    = regexp.MustCompile(`^(\d*)<<(-?)\s*([^<]*)$`)
	reDirective  = regexp.MustCompile(`^#\s*([a-zA-Z][a-zA-Z0-9]*)\s*=\s*(.+?)\s*$`)
)

// heredocInstructions may carry heredocs directly; heredocWrappers may
// wrap one of them.
var (
	heredocInstructions = map[string]bool{
		command.ADD:  true,
		command.COPY: true,
		command.RUN:  true,
	}
	heredocWrappers = map[string]bool{
		command.ONBUILD: true,
	}
)
