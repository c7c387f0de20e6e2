// Package cli implements the dockerfile command line tool.
package cli

import (
	"encoding/json"
	"io"

	"github.com/dexnore/dockerfile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// Exit codes returned by ExitCode.
const (
	ExitFailure    = 1
	ExitIOError    = 2
	ExitParseError = 3
)

type rootOptions struct {
	format   string
	logLevel string
	logger   *logrus.Logger
}

// NewRootCommand returns the `dockerfile` command with all subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{logger: logrus.New()}

	cmd := &cobra.Command{
		Use:   "dockerfile",
		Short: "Parse Dockerfiles into structured commands",
		Long: `dockerfile parses Dockerfiles into a flat list of commands and
prints them as JSON or YAML.

Examples:
  dockerfile parse                      # ./Dockerfile
  dockerfile parse -f yaml a/Dockerfile b/Dockerfile
  cat Dockerfile | dockerfile parse -
  dockerfile cmds`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger.SetLevel(lvl)
			opts.logger.SetOutput(cmd.ErrOrStderr())

			switch opts.format {
			case formatJSON, formatYAML:
				return nil
			default:
				return errors.Errorf("unsupported output format %q", opts.format)
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatJSON, "output format (json, yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logrus.WarnLevel.String(), "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newParseCommand(opts),
		newFlagsCommand(opts),
		newCmdsCommand(),
	)
	return cmd
}

func (o *rootOptions) encode(w io.Writer, v any) error {
	if o.format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ExitCode maps an error returned by the root command to a process exit
// code.
func ExitCode(err error) int {
	var ioErr *dockerfile.IOError
	var parseErr *dockerfile.ParseError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ioErr):
		return ExitIOError
	case errors.As(err, &parseErr):
		return ExitParseError
	default:
		return ExitFailure
	}
}
