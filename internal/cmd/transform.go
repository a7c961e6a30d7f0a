package cmd

import (
	"bytes"
	_ "embed"
	"os"

	"github.com/ezerfernandes/codetabs/internal/mdast"
	"github.com/spf13/cobra"
)

//go:embed help/transform.md
var transformHelp string

func transformCmd(opts *options) *cobra.Command {
	var (
		write  bool
		asJSON bool
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "transform [flags] [filename]",
		Aliases: []string{"t"},
		Short:   "Replace codetabs blocks with Tabs and TabItem markup",
		Long:    transformHelp,
		Args:    checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return transformRun(cmd, source(args), opts, write, asJSON)
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the source file")
	cmd.Flags().BoolVar(&asJSON, "json", false, "read and write an mdast JSON tree instead of markdown")

	return cmd
}

func transformRun(cmd *cobra.Command, filename string, opts *options, write, asJSON bool) error {
	if write && filename == stdinName {
		return errWriteStdin
	}

	src, err := readSource(cmd.InOrStdin(), filename)
	if err != nil {
		return err
	}

	result, err := transformSource(src, opts, asJSON)
	if err != nil {
		return err
	}

	if !write {
		_, err = cmd.OutOrStdout().Write(result)

		return err
	}

	if bytes.Equal(src, result) {
		opts.status("%s: no codetabs blocks\n", filename)

		return nil
	}

	opts.status("%s: updated\n", filename)

	return os.WriteFile(filename, result, fileMode)
}

func transformSource(src []byte, opts *options, asJSON bool) ([]byte, error) {
	plugin := opts.plugin()

	if !asJSON {
		root := mdast.Parse(src)
		plugin.Transform(root)

		return mdast.Render(root), nil
	}

	root, err := mdast.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	plugin.Transform(root)

	var buff bytes.Buffer

	if err := mdast.Encode(&buff, root); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}
