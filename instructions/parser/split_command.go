package parser

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// splitCommand takes a single line of text and parses out the cmd and args,
// which are used for dispatching to more exact parsing functions.
func splitCommand(line string, d *directives) (string, []string, string, error) {
	var args string
	flags := []string{}

	// Make sure we get the same results irrespective of leading/trailing spaces
	cmdline := reWhitespace.Split(strings.TrimSpace(line), 2)

	if len(cmdline) == 2 {
		var err error
		args, flags, err = extractBuilderFlags(cmdline[1], d.escapeToken)
		if err != nil {
			return "", nil, "", err
		}
	}

	return cmdline[0], flags, strings.TrimSpace(args), nil
}

// extractBuilderFlags collects the leading "--" words of line and returns
// the remaining part of the line. Flag words are returned exactly as they
// were written; quotes only keep whitespace from ending a word. A bare "--"
// ends the flags and is dropped.
func extractBuilderFlags(line string, escapeToken rune) (string, []string, error) {
	const (
		inSpaces = iota // looking for start of a word
		inWord
		inQuote
	)

	var (
		words   = []string{}
		phase   = inSpaces
		start   int
		quote   rune
		escaped bool
	)

	for pos, ch := range line {
		if phase == inSpaces {
			if unicode.IsSpace(ch) {
				continue
			}
			// Only keep going if the next word starts with --
			if !strings.HasPrefix(line[pos:], "--") {
				return line[pos:], words, nil
			}
			phase, start = inWord, pos
		}

		if escaped {
			escaped = false
			continue
		}

		switch {
		case ch == escapeToken && (phase == inWord || quote == '"'):
			escaped = true
		case phase == inQuote:
			if ch == quote {
				phase = inWord
			}
		case ch == '\'' || ch == '"':
			phase, quote = inQuote, ch
		case unicode.IsSpace(ch):
			phase = inSpaces
			word := line[start:pos]
			if word == "--" {
				return line[pos:], words, nil
			}
			words = append(words, word)
		}
	}

	switch phase {
	case inQuote:
		return "", nil, errors.Errorf("unterminated quoted string in flag %s", line[start:])
	case inWord:
		if word := line[start:]; word != "--" {
			words = append(words, word)
		}
	}

	return "", words, nil
}
