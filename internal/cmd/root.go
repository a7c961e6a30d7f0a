// Package cmd implements the codetabs command line.
package cmd

import (
	_ "embed"
	"io"
	"os"

	"github.com/spf13/cobra"
)

//go:embed help/root.md
var rootHelp string

// Execute runs the command line with args and exits with status 1 on error.
func Execute(args []string, stdout, stderr io.Writer) {
	if err := execute(args, os.Stdin, stdout, stderr); err != nil {
		os.Exit(1)
	}
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root := rootCmd()

	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return root.Execute()
}

func rootCmd() *cobra.Command {
	opts := new(options)

	root := &cobra.Command{ //nolint:exhaustruct
		Use:          "codetabs",
		Short:        "Turn multi-language code blocks into Docusaurus tabs",
		Long:         rootHelp,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.createLogger(cmd.ErrOrStderr())
			opts.createStatus(cmd.ErrOrStderr())

			return opts.load(cmd)
		},

		DisableAutoGenTag: true,
	}

	configFlags(root, opts)

	root.AddCommand(transformCmd(opts), listCmd(opts), execCmd(opts))

	return root
}
