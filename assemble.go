package dockerfile

import (
	"slices"

	"github.com/dexnore/dockerfile/instructions/parser"
)

func commandsFromAST(ast *parser.Node) []Command {
	cmds := make([]Command, 0, len(ast.Children))
	for _, child := range ast.Children {
		cmds = append(cmds, newCommand(child))
	}
	return cmds
}

func newCommand(node *parser.Node) Command {
	cmd := Command{
		Cmd:       node.Value,
		Original:  node.Original,
		StartLine: node.StartLine,
		Flags:     slices.Clone(node.Flags),
		Value:     []string{},
	}

	// Only happens for ONBUILD
	if inner := node.Instruction(); inner != node {
		cmd.SubCmd = inner.Value
		cmd.Flags = append(cmd.Flags, inner.Flags...)
		node = inner
	}
	if cmd.Flags == nil {
		cmd.Flags = []string{}
	}

	cmd.JSON = node.Attributes["json"]
	for n := node.Next; n != nil; n = n.Next {
		cmd.Value = append(cmd.Value, n.Value)
	}
	return cmd
}
