package cmd

import (
	_ "embed"
	"strings"

	"github.com/ezerfernandes/codetabs/internal/codetabs"
	"github.com/ezerfernandes/codetabs/internal/mdast"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] [filename]",
		Aliases: []string{"l", "ls"},
		Short:   "List codetabs blocks and their tabs",
		Long:    listHelp,
		Args:    checkargs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return buildFilter(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRun(cmd, source(args), opts)
		},

		DisableAutoGenTag: true,
	}

	filterFlags(cmd, opts)

	return cmd
}

func listRun(cmd *cobra.Command, filename string, opts *options) error {
	src, err := readSource(cmd.InOrStdin(), filename)
	if err != nil {
		return err
	}

	plugin := opts.plugin()
	tbl := table.New("#", "Line", "Tabs", "Group").WithWriter(cmd.OutOrStdout())
	index := 0

	err = walk(src, plugin, opts.filter, func(node *mdast.Node, tabs []codetabs.Tab) error {
		labels := make([]string, len(tabs))
		for i, tab := range tabs {
			labels[i] = tab.Label
		}

		group := plugin.GroupID(labels)
		if len(group) == 0 {
			group = "-"
		}

		tbl.AddRow(index, node.Line, strings.Join(labels, ", "), group)
		index++

		return nil
	})
	if err != nil {
		return err
	}

	tbl.Print()

	return nil
}
