package cli

import (
	"github.com/dexnore/dockerfile/instructions/flags"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type flagResult struct {
	File      string    `json:"file" yaml:"file"`
	StartLine int       `json:"start_line" yaml:"start_line"`
	Cmd       string    `json:"cmd" yaml:"cmd"`
	SubCmd    string    `json:"sub_cmd,omitempty" yaml:"sub_cmd,omitempty"`
	Flags     flags.Set `json:"flags" yaml:"flags"`
}

func newFlagsCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "flags [FILE...]",
		Short: "List the flags of every instruction that has any",
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := parseFiles(cmd, root, args, 0)
			if err != nil {
				return err
			}

			out := []flagResult{}
			for _, res := range results {
				for _, c := range res.Commands {
					if len(c.Flags) == 0 {
						continue
					}
					set, err := flags.Parse(c.Flags)
					if err != nil {
						return errors.Wrapf(err, "%s:%d", res.File, c.StartLine)
					}
					out = append(out, flagResult{
						File:      res.File,
						StartLine: c.StartLine,
						Cmd:       c.Cmd,
						SubCmd:    c.SubCmd,
						Flags:     set,
					})
				}
			}
			return root.encode(cmd.OutOrStdout(), out)
		},
	}
}
