package parser

// line parsers are dispatch calls that parse a single unit of text into a
// Node object which contains the whole statement. Dockerfiles have varied
// (but not usually unique, see ONBUILD for a unique example) parsing rules
// per-command, and these unify the processing in a way that makes it
// manageable.

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/dexnore/dockerfile/command"
	"github.com/pkg/errors"
)

const (
	commandLabel = "LABEL"
	commandEnv   = "ENV"
)

// parseSubCommand parses the wrapped instruction of an ONBUILD. The wrapped
// instruction becomes the only child of the returned node.
func parseSubCommand(rest string, d *directives) (*Node, map[string]bool, error) {
	if rest == "" {
		return nil, nil, nil
	}

	child, err := newNodeFromLine(rest, d, nil)
	if err != nil {
		return nil, nil, err
	}
	if child.Value == command.ONBUILD {
		return nil, nil, errOnbuildChaining
	}

	return &Node{Children: []*Node{child}}, nil, nil
}

func newKeyValueNode(key, value string) *Node {
	return &Node{
		Value: key,
		Next:  &Node{Value: value},
	}
}

func appendKeyValueNode(node, rootNode, prevNode *Node) (*Node, *Node) {
	if rootNode == nil {
		rootNode = node
	}
	if prevNode != nil {
		prevNode.Next = node
	}

	prevNode = node.Next
	return rootNode, prevNode
}

func parseNameVal(rest string, key string, d *directives) (*Node, error) {
	// This is kind of tricky because we need to support the old
	// variant:   KEY name value
	// as well as the new one:    KEY name=value ...
	// The trigger to know which one is being used will be whether we hit
	// a space or = first.  space ==> old, "=" ==> new

	words, err := splitWords(rest, d)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, nil
	}

	// Old format (KEY name value)
	if _, _, ok := cutUnquoted(words[0], d.escapeToken); !ok {
		value := strings.TrimLeftFunc(strings.TrimPrefix(rest, words[0]), unicode.IsSpace)
		if len(words) < 2 || value == "" {
			return nil, errors.Errorf("%s must have two arguments", key)
		}
		return newKeyValueNode(unquote(words[0], d), value), nil
	}

	var rootNode *Node
	var prevNode *Node
	for _, word := range words {
		name, value, ok := cutUnquoted(word, d.escapeToken)
		if !ok {
			return nil, errors.Errorf("Syntax error - can't find = in %q. Must be of the form: name=value", word)
		}

		node := newKeyValueNode(unquote(name, d), unquote(value, d))
		rootNode, prevNode = appendKeyValueNode(node, rootNode, prevNode)
	}

	return rootNode, nil
}

// cutUnquoted splits word around its first '=' that is neither quoted nor
// escaped.
func cutUnquoted(word string, escapeToken rune) (string, string, bool) {
	var quote rune
	var escaped bool
	for i, ch := range word {
		switch {
		case escaped:
			escaped = false
		case ch == escapeToken && quote != '\'':
			escaped = true
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == '=':
			return word[:i], word[i+1:], true
		}
	}
	return word, "", false
}

func parseEnv(rest string, d *directives) (*Node, map[string]bool, error) {
	node, err := parseNameVal(rest, commandEnv, d)
	return node, nil, err
}

func parseLabel(rest string, d *directives) (*Node, map[string]bool, error) {
	node, err := parseNameVal(rest, commandLabel, d)
	return node, nil, err
}

// parses a statement containing one or more keyword definition(s) and/or
// value assignments, like `name1 name2= name3="" name4=value`.
// Note that this is a stricter format than the old format of assignment,
// allowed by parseNameVal(), in a way that this only allows assignment of the
// form `keyword=[<value>]` like `name2=`, `name3=""`, and `name4=value` above.
// In addition, a keyword definition alone is of the form `keyword` like `name1`
// above. And the assignments `name2=` and `name3=""` are equivalent and
// assign an empty value to the respective keywords.
func parseNameOrNameVal(rest string, d *directives) (*Node, map[string]bool, error) {
	words, err := parseWords(rest, d)
	if err != nil {
		return nil, nil, err
	}
	return wordsToNodes(words), nil, nil
}

// parseStringsWhitespaceDelimited parses a whitespace-delimited set of
// arguments into a node chain, one node per shell word.
func parseStringsWhitespaceDelimited(rest string, d *directives) (*Node, map[string]bool, error) {
	if rest == "" {
		return nil, nil, nil
	}

	words, err := parseWords(rest, d)
	if err != nil {
		return nil, nil, err
	}
	return wordsToNodes(words), nil, nil
}

// parseString just wraps the string in quotes and returns a working node.
func parseString(rest string, d *directives) (*Node, map[string]bool, error) {
	if rest == "" {
		return nil, nil, nil
	}
	n := &Node{}
	n.Value = rest
	return n, nil, nil
}

// parseJSON converts JSON arrays to an AST.
func parseJSON(rest string) (*Node, map[string]bool, error) {
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if !strings.HasPrefix(rest, "[") {
		return nil, nil, errors.Errorf("error parsing %q as a JSON array", rest)
	}

	var myJSON []any
	if err := json.Unmarshal([]byte(rest), &myJSON); err != nil {
		return nil, nil, errors.Wrapf(err, "error parsing %q as a JSON array", rest)
	}

	var top, prev *Node
	for _, str := range myJSON {
		s, ok := str.(string)
		if !ok {
			return nil, nil, errDockerfileNotStringArray
		}

		node := &Node{Value: s}
		if prev == nil {
			top = node
		} else {
			prev.Next = node
		}
		prev = node
	}

	return top, map[string]bool{"json": true}, nil
}

// parseMaybeJSON determines if the argument appears to be a JSON array. If
// so, passes to parseJSON; if not, quotes the result and returns a single
// node.
func parseMaybeJSON(rest string, d *directives) (*Node, map[string]bool, error) {
	if rest == "" {
		return nil, nil, nil
	}

	if isJSONForm(rest) {
		return parseJSON(rest)
	}

	node := &Node{}
	node.Value = rest
	return node, nil, nil
}

// parseMaybeJSONToList determines if the argument appears to be a JSON array. If
// so, passes to parseJSON; if not, attempts to parse it as a whitespace
// delimited string.
func parseMaybeJSONToList(rest string, d *directives) (*Node, map[string]bool, error) {
	if isJSONForm(rest) {
		return parseJSON(rest)
	}

	return parseStringsWhitespaceDelimited(rest, d)
}

// The HEALTHCHECK command is like parseMaybeJSON, but has an extra type argument.
func parseHealthConfig(rest string, d *directives) (*Node, map[string]bool, error) {
	// Find end of first argument
	var sep int
	for ; sep < len(rest); sep++ {
		if unicode.IsSpace(rune(rest[sep])) {
			break
		}
	}
	next := sep
	for ; next < len(rest); next++ {
		if !unicode.IsSpace(rune(rest[next])) {
			break
		}
	}

	if sep == 0 {
		return nil, nil, nil
	}

	typ := rest[:sep]
	cmd, attrs, err := parseMaybeJSON(rest[next:], d)
	if err != nil {
		return nil, nil, err
	}

	return &Node{Value: typ, Next: cmd}, attrs, err
}

// isJSONForm reports whether an argument commits to the JSON array form.
// The check is purely syntactic: a leading '[' is never read as shell form.
func isJSONForm(rest string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(rest, unicode.IsSpace), "[")
}

func wordsToNodes(words []string) *Node {
	var rootNode, prevNode *Node
	for _, word := range words {
		node := &Node{Value: word}
		if rootNode == nil {
			rootNode = node
		} else {
			prevNode.Next = node
		}
		prevNode = node
	}
	return rootNode
}
