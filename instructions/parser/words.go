package parser

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// parseWords splits rest into shell words. Quotes keep whitespace inside a
// word, single quotes are literal and the escape token escapes the next
// character (inside double quotes only `"`, `$` and the escape token itself).
// Quotes and escapes are removed from the returned words.
func parseWords(rest string, d *directives) ([]string, error) {
	return lexWords(rest, d.escapeToken, false)
}

// splitWords splits rest like parseWords but returns the words exactly as
// written, quotes and escapes included.
func splitWords(rest string, d *directives) ([]string, error) {
	return lexWords(rest, d.escapeToken, true)
}

// unquote removes the quoting of a single word returned by splitWords.
func unquote(word string, d *directives) string {
	words, err := lexWords(word, d.escapeToken, false)
	if err != nil || len(words) == 0 {
		return word
	}
	return strings.Join(words, " ")
}

func lexWords(rest string, escapeToken rune, raw bool) ([]string, error) {
	const (
		inSpaces = iota // looking for start of a word
		inWord
		inQuote
	)

	var (
		words   = []string{}
		word    strings.Builder
		phase   = inSpaces
		quote   rune
		escaped bool
	)

	for _, ch := range rest {
		switch {
		case escaped:
			escaped = false
			if raw || (phase == inQuote && ch != '"' && ch != '$' && ch != escapeToken) {
				word.WriteRune(escapeToken)
			}
			word.WriteRune(ch)
		case phase == inQuote:
			switch {
			case ch == quote:
				phase = inWord
				if raw {
					word.WriteRune(ch)
				}
			case ch == escapeToken && quote == '"':
				escaped = true
			default:
				word.WriteRune(ch)
			}
		case unicode.IsSpace(ch):
			if phase == inWord {
				words = append(words, word.String())
				word.Reset()
				phase = inSpaces
			}
		case ch == '\'' || ch == '"':
			phase, quote = inQuote, ch
			if raw {
				word.WriteRune(ch)
			}
		case ch == escapeToken:
			phase, escaped = inWord, true
		default:
			phase = inWord
			word.WriteRune(ch)
		}
	}

	switch phase {
	case inQuote:
		return nil, errors.Errorf("unterminated quoted string: missing closing %c in %s", quote, rest)
	case inWord:
		if escaped && raw {
			// trailing escape token with nothing to escape
			word.WriteRune(escapeToken)
		}
		words = append(words, word.String())
	}
	return words, nil
}
