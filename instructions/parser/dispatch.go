package parser

import "github.com/dexnore/dockerfile/command"

// lineParser decodes the argument text of one instruction into the node
// chain hung off that instruction, plus node attributes such as "json".
type lineParser func(rest string, d *directives) (*Node, map[string]bool, error)

// dispatch maps every keyword in command.Instructions to its argument
// decoder.
var dispatch map[string]lineParser

func init() {
	// Assigned in init since parseSubCommand reaches back into dispatch.
	dispatch = map[string]lineParser{
		command.ADD:         parseMaybeJSONToList,
		command.ARG:         parseNameOrNameVal,
		command.CMD:         parseMaybeJSON,
		command.COPY:        parseMaybeJSONToList,
		command.ENTRYPOINT:  parseMaybeJSON,
		command.ENV:         parseEnv,
		command.EXPOSE:      parseStringsWhitespaceDelimited,
		command.FROM:        parseStringsWhitespaceDelimited,
		command.HEALTHCHECK: parseHealthConfig,
		command.LABEL:       parseLabel,
		command.MAINTAINER:  parseString,
		command.ONBUILD:     parseSubCommand,
		command.RUN:         parseMaybeJSON,
		command.SHELL:       parseMaybeJSON,
		command.STOPSIGNAL:  parseString,
		command.USER:        parseString,
		command.VOLUME:      parseMaybeJSONToList,
		command.WORKDIR:     parseString,
	}
}
