package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/utakatalp/football-statistics/internal/log"
	"github.com/utakatalp/football-statistics/internal/source"
)

func runCmd() *cobra.Command {
	var input string

	command := &cobra.Command{
		Use:   "run",
		Short: "Process a newline delimited message file and print the reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			app, errApp := newApp(ctx, cmd.OutOrStdout())
			if errApp != nil {
				return errApp
			}
			defer app.Close()

			if input == "" {
				input = app.conf.Input.Path
			}

			reader, errOpen := openInput(input, cmd.InOrStdin())
			if errOpen != nil {
				return errOpen
			}
			defer log.Closer(reader)

			return ignoreCancel(app.proc.Run(ctx, source.NewLines(reader)))
		},
	}

	command.Flags().StringVarP(&input, "input", "i", "", "message file, - for stdin (default from config input.path)")

	return command
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}

	return file, nil
}
