// Package parser implements a parser and parse tree dumper for Dockerfiles.
package parser

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

var utf8bom = []byte{0xEF, 0xBB, 0xBF}

// Parse consumes lines from a provided Reader, parses each line into an AST
// and returns the results of doing so.
func Parse(rwc io.Reader) (*Result, error) {
	d := newDefaultDirectives()
	currentLine := 0
	root := &Node{StartLine: -1}
	scanner := bufio.NewScanner(rwc)
	scanner.Split(scanLines)
	warnings := []Warning{}
	var comments []string
	buf := &bytes.Buffer{}

	for scanner.Scan() {
		bytesRead := scanner.Bytes()
		if currentLine == 0 {
			// First line, strip the byte-order-marker if present
			bytesRead = discardBOM(bytesRead)
		}
		currentLine++

		if isComment(bytesRead) {
			comment := strings.TrimSpace(string(trimLeadingWhitespace(bytesRead)[1:]))
			if comment == "" {
				comments = nil
			} else {
				comments = append(comments, comment)
			}
		}
		bytesRead, directiveOk, err := processLine(d, bytesRead, true)
		if err != nil {
			return nil, withLocation(err, currentLine, 0)
		}
		// If the line is a directive, strip it from the comments
		// so it doesn't get added to the AST.
		if directiveOk && len(comments) > 0 {
			comments = comments[:len(comments)-1]
		}

		startLine := currentLine
		bytesRead, isEndOfLine := trimContinuationCharacter(bytesRead, d)
		if isEndOfLine && len(bytesRead) == 0 {
			continue
		}
		buf.Reset()
		buf.Write(bytesRead)

		var firstEmpty, lastEmpty int
		for !isEndOfLine && scanner.Scan() {
			currentLine++
			bytesRead, _, err := processLine(d, scanner.Bytes(), false)
			if err != nil {
				return nil, withLocation(err, currentLine, 0)
			}

			if isComment(scanner.Bytes()) {
				// original line was a comment (processLine strips comments)
				continue
			}
			if isEmptyContinuationLine(bytesRead) {
				if firstEmpty == 0 {
					firstEmpty = currentLine
				}
				lastEmpty = currentLine
				continue
			}

			bytesRead, isEndOfLine = trimContinuationCharacter(bytesRead, d)
			buf.Write(bytesRead)
		}
		if !isEndOfLine {
			if err := handleScannerError(scanner.Err()); err != nil {
				return nil, withLocation(err, currentLine, 0)
			}
			return nil, withLocation(errors.New("unexpected end of file: line continuation has no following line"), startLine, currentLine)
		}

		line := buf.String()
		if strings.TrimFunc(line, unicode.IsSpace) == "" {
			continue
		}

		if firstEmpty > 0 {
			warnings = append(warnings, Warning{
				Short:    "Empty continuation line found in: " + line,
				Detail:   [][]byte{[]byte("Empty continuation lines will become errors in a future release")},
				URL:      "https://docs.docker.com/go/dockerfile/rule/no-empty-continuation/",
				Location: &Range{Start: Position{Line: firstEmpty}, End: Position{Line: lastEmpty}},
			})
		}

		child, err := newNodeFromLine(line, d, comments)
		if err != nil {
			return nil, withLocation(err, startLine, currentLine)
		}

		if child.canContainHeredoc() && strings.Contains(line, "<<") {
			heredocs, err := heredocsFromLine(line, d.escapeToken)
			if err != nil {
				return nil, withLocation(err, startLine, currentLine)
			}

			original := strings.Builder{}
			original.WriteString(line)
			bodies := make([]string, 0, len(heredocs))
			for _, heredoc := range heredocs {
				terminator := []byte(heredoc.Name)
				terminated := false
				for scanner.Scan() {
					bytesRead := scanner.Bytes()
					currentLine++

					possibleTerminator := trimNewline(bytesRead)
					if heredoc.Chomp {
						possibleTerminator = trimLeadingTabs(possibleTerminator)
					}
					if bytes.Equal(possibleTerminator, terminator) {
						terminated = true
						bodies = append(bodies, "\n"+heredoc.Content+string(trimNewline(bytesRead)))
						break
					}
					heredoc.Content += string(bytesRead)
				}
				if !terminated {
					if err := handleScannerError(scanner.Err()); err != nil {
						return nil, withLocation(err, currentLine, 0)
					}
					return nil, withLocation(errors.Errorf("unterminated heredoc %s", heredoc.Name), startLine, currentLine)
				}

				child.Heredocs = append(child.Heredocs, heredoc)
				original.WriteString(bodies[len(bodies)-1])
			}
			child.Original = original.String()
			child.attachHeredocs(bodies)
		}

		root.AddChild(child, startLine, currentLine)
		comments = nil
	}

	if err := handleScannerError(scanner.Err()); err != nil {
		return nil, withLocation(err, currentLine, 0)
	}

	return &Result{
		AST:         root,
		Warnings:    warnings,
		EscapeToken: d.escapeToken,
		Directives:  d.found,
	}, nil
}

func trimComments(src []byte) []byte {
	if !isComment(src) {
		return src
	}
	return nil
}

func trimLeadingWhitespace(src []byte) []byte {
	return bytes.TrimLeftFunc(src, unicode.IsSpace)
}
func trimLeadingTabs(src []byte) []byte {
	return bytes.TrimLeft(src, "\t")
}
func trimNewline(src []byte) []byte {
	return bytes.TrimRight(src, "\r\n")
}

func discardBOM(src []byte) []byte {
	return bytes.TrimPrefix(src, utf8bom)
}

func isComment(line []byte) bool {
	line = trimLeadingWhitespace(line)
	return len(line) > 0 && line[0] == '#'
}

func isEmptyContinuationLine(line []byte) bool {
	return len(trimLeadingWhitespace(trimNewline(line))) == 0
}

func trimContinuationCharacter(line []byte, d *directives) ([]byte, bool) {
	if d.lineContinuationRegex.Match(line) {
		line = d.lineContinuationRegex.ReplaceAll(line, []byte("$1"))
		return line, false
	}
	return line, true
}

// processLine strips the line ending and, for the first line of an
// instruction, leading whitespace. Continuation lines keep their leading
// whitespace so that joined text matches what docker produces.
func processLine(d *directives, token []byte, stripLeftWhitespace bool) ([]byte, bool, error) {
	token = trimNewline(token)
	if stripLeftWhitespace {
		token = trimLeadingWhitespace(token)
	}
	directiveOk, err := d.possibleParserDirective(token)
	return trimComments(token), directiveOk, err
}

// Variation of bufio.ScanLines that preserves the line endings
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[0 : i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func handleScannerError(err error) error {
	switch {
	case errors.Is(err, bufio.ErrTooLong):
		return errors.Errorf("dockerfile line greater than max allowed size of %d", bufio.MaxScanTokenSize-1)
	default:
		return err
	}
}
