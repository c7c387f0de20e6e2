package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dexnore/dockerfile/command"
	"github.com/moby/buildkit/util/suggest"
)

// Node is a structure used to represent a parse tree.
//
// In the node there are three fields, Value, Next, and Children. Value is the
// current token's string value. Next is always the next non-child token, and
// children contains all the children. Here's an example:
//
// (value next (child child-next child-next-next) next-next)
//
// This data structure is frankly pretty lousy for handling complex languages,
// but lucky for us the Dockerfile isn't very complicated. This structure
// works a little more effectively than a "proper" parse tree for our needs.
type Node struct {
	Value       string          // actual content
	Next        *Node           // the next item in the current sexp
	Children    []*Node         // the children of this sexp
	Heredocs    []Heredoc       // extra heredoc content attachments
	Attributes  map[string]bool // special attributes for this node
	Original    string          // original line used before parsing
	Flags       []string        // only top Node should have this set
	StartLine   int             // the line in the original dockerfile where the node begins
	EndLine     int             // the line in the original dockerfile where the node ends
	PrevComment []string
}

// newNodeFromLine splits the line into parts, and dispatches to a function
// based on the command and command arguments. A Node is created from the
// result of the dispatch.
func newNodeFromLine(line string, d *directives, comments []string) (*Node, error) {
	cmd, flags, args, err := splitCommand(line, d)
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(cmd)
	if !command.IsInstruction(key) {
		return nil, suggest.WrapError(&UnknownInstructionError{Instruction: cmd}, cmd, allInstructionNames(), false)
	}
	next, attrs, err := dispatch[key](args, d)
	if err != nil {
		return nil, err
	}

	return &Node{
		Value:       key,
		Original:    line,
		Flags:       flags,
		Next:        next,
		Attributes:  attrs,
		PrevComment: comments,
	}, nil
}

func allInstructionNames() []string {
	names := command.Sorted()
	for i, name := range names {
		names[i] = strings.ToUpper(name)
	}
	return names
}

// Dump dumps the AST defined by `node` as a list of sexps.
// Returns a string suitable for printing.
func (node *Node) Dump() string {
	str := strings.ToLower(node.Value)

	if len(node.Flags) > 0 {
		str += fmt.Sprintf(" %q", node.Flags)
	}

	for _, n := range node.Children {
		str += "(" + n.Dump() + ")\n"
	}

	for n := node.Next; n != nil; n = n.Next {
		if len(n.Children) > 0 {
			str += " " + n.Dump()
		} else {
			str += " " + strconv.Quote(n.Value)
		}
	}

	return strings.TrimSpace(str)
}

// Instruction returns the node carrying the arguments of a top-level
// instruction: the wrapped instruction for ONBUILD, the node itself otherwise.
func (node *Node) Instruction() *Node {
	if node.Next != nil && len(node.Next.Children) > 0 {
		return node.Next.Children[0]
	}
	return node
}

func (node *Node) lines(start, end int) {
	node.StartLine = start
	node.EndLine = end
}

func (node *Node) canContainHeredoc() bool {
	// check for compound commands, like ONBUILD
	if ok := heredocWrappers[strings.ToLower(node.Value)]; ok {
		node = node.Instruction()
	}

	if ok := heredocInstructions[strings.ToLower(node.Value)]; !ok {
		return false
	}
	if isJSON := node.Attributes["json"]; isJSON {
		return false
	}

	return true
}

// attachHeredocs folds the captured heredoc bodies into the argument values.
// A value that is exactly a heredoc word receives that heredoc's body; the
// bodies of heredocs embedded in a larger value (the shell-form text of RUN)
// are appended to the last value in order.
func (node *Node) attachHeredocs(bodies []string) {
	target := node.Instruction()

	var pending strings.Builder
	used := map[*Node]bool{}
	for i, heredoc := range node.Heredocs {
		var word *Node
		for n := target.Next; n != nil; n = n.Next {
			if used[n] {
				continue
			}
			if h := MustParseHeredoc(n.Value); h != nil && h.Name == heredoc.Name {
				word = n
				break
			}
		}
		if word == nil {
			pending.WriteString(bodies[i])
			continue
		}
		used[word] = true
		word.Value += bodies[i]
	}

	if pending.Len() == 0 || target.Next == nil {
		return
	}
	last := target.Next
	for last.Next != nil {
		last = last.Next
	}
	last.Value += pending.String()
}

// AddChild adds a new child node, and updates line information
func (node *Node) AddChild(child *Node, startLine, endLine int) {
	child.lines(startLine, endLine)
	if node.StartLine < 0 {
		node.StartLine = startLine
	}
	node.EndLine = endLine
	node.Children = append(node.Children, child)
}
