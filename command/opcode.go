// Package command contains the set of Dockerfile instruction keywords.
package command

import (
	"maps"
	"slices"
)

const (
	ADD         = "add"
	ARG         = "arg"
	CMD         = "cmd"
	COPY        = "copy"
	ENTRYPOINT  = "entrypoint"
	ENV         = "env"
	EXPOSE      = "expose"
	FROM        = "from"
	HEALTHCHECK = "healthcheck"
	LABEL       = "label"
	MAINTAINER  = "maintainer"
	ONBUILD     = "onbuild"
	RUN         = "run"
	SHELL       = "shell"
	STOPSIGNAL  = "stopsignal"
	USER        = "user"
	VOLUME      = "volume"
	WORKDIR     = "workdir"
)

// Instructions is the set of all recognized Dockerfile instructions.
var Instructions = map[string]struct{}{
	ADD:         {},
	ARG:         {},
	CMD:         {},
	COPY:        {},
	ENTRYPOINT:  {},
	ENV:         {},
	EXPOSE:      {},
	FROM:        {},
	HEALTHCHECK: {},
	LABEL:       {},
	MAINTAINER:  {},
	ONBUILD:     {},
	RUN:         {},
	SHELL:       {},
	STOPSIGNAL:  {},
	USER:        {},
	VOLUME:      {},
	WORKDIR:     {},
}

var sorted = slices.Sorted(maps.Keys(Instructions))

// IsInstruction reports whether name (lowercase) is a known instruction.
func IsInstruction(name string) bool {
	_, ok := Instructions[name]
	return ok
}

// Sorted returns the instruction keywords in lexical order. The returned
// slice is a copy and may be modified by the caller.
func Sorted() []string {
	return slices.Clone(sorted)
}
