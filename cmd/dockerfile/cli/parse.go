package cli

import (
	"io"
	"runtime"

	"github.com/dexnore/dockerfile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type fileResult struct {
	File     string               `json:"file" yaml:"file"`
	Commands []dockerfile.Command `json:"commands" yaml:"commands"`
}

func newParseCommand(root *rootOptions) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "parse [FILE...]",
		Short: "Parse Dockerfiles and print their commands",
		Long: `Parses each FILE (default: Dockerfile) and prints the commands.
A FILE of "-" reads from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := parseFiles(cmd, root, args, jobs)
			if err != nil {
				return err
			}
			return root.encode(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "number of files parsed concurrently")
	return cmd
}

// parseFiles parses every file concurrently. Results keep argument order.
func parseFiles(cmd *cobra.Command, root *rootOptions, files []string, jobs int) ([]fileResult, error) {
	if len(files) == 0 {
		files = []string{dockerfile.DefaultDockerfileName}
	}

	stdin := 0
	for _, f := range files {
		if f == dockerfile.StdinName {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, errors.New("standard input can only be read once")
	}

	results := make([]fileResult, len(files))
	eg, ctx := errgroup.WithContext(cmd.Context())
	if jobs > 0 {
		eg.SetLimit(jobs)
	}
	for i, f := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmds, err := parseOne(cmd.InOrStdin(), root, f)
			if err != nil {
				return errors.Wrap(err, f)
			}
			results[i] = fileResult{File: f, Commands: cmds}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseOne(stdin io.Reader, root *rootOptions, file string) ([]dockerfile.Command, error) {
	logger := dockerfile.WithLogger(root.logger.WithField("file", file))
	if file == dockerfile.StdinName {
		return dockerfile.ParseReader(stdin, logger)
	}
	return dockerfile.ParseFile(file, logger)
}
