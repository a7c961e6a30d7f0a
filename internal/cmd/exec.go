package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ezerfernandes/codetabs/internal/codetabs"
	"github.com/ezerfernandes/codetabs/internal/mdast"
	"github.com/spf13/cobra"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

//go:embed help/exec.md
var execHelp string

type tabInfo struct {
	index    int
	lang     string
	label    string
	file     string
	tempPath string
	line     int
}

func execCmd(opts *options) *cobra.Command {
	var batch bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "exec [flags] [filename] [-- command]",
		Aliases: []string{"e"},
		Short:   "Execute shell commands on every tab of codetabs blocks",
		Long:    execHelp,
		Args:    checkargs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return buildFilter(opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scr, args := script(cmd, args)
			if len(scr) == 0 {
				return errMissingCommand
			}

			if !cmd.Flag("dir").Changed {
				dir, err := os.MkdirTemp(".", "codetabs-exec-")
				if err != nil {
					return err
				}

				opts.dir = dir

				if !opts.keep {
					defer os.RemoveAll(dir)
				}
			}

			return execRun(cmd, source(args), opts, scr, batch)
		},

		DisableAutoGenTag: true,
	}

	dirFlag(cmd, opts)
	quietFlag(cmd, opts)
	filterFlags(cmd, opts)

	cmd.Flags().BoolVar(&batch, "batch", false, "run command once for all tabs instead of once per tab")
	cmd.Flags().BoolVarP(&opts.keep, "keep", "k", false, "don't remove temporary directory")

	return cmd
}

func execRun(cmd *cobra.Command, filename string, opts *options, scr string, batch bool) error {
	src, err := readSource(cmd.InOrStdin(), filename)
	if err != nil {
		return err
	}

	absDir, err := filepath.Abs(opts.dir)
	if err != nil {
		return err
	}

	entries, err := extractTabs(src, absDir, opts)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		opts.status("%s: no tabs matched\n", filepath.Base(filename))

		return nil
	}

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if batch {
		return execBatch(entries, absDir, opts, scr, out, errOut)
	}

	return execPerTab(filename, entries, absDir, opts, scr, out, errOut)
}

func extractTabs(src []byte, dir string, opts *options) ([]*tabInfo, error) {
	var entries []*tabInfo

	err := walk(src, opts.plugin(), opts.filter, func(node *mdast.Node, tabs []codetabs.Tab) error {
		for _, tab := range tabs {
			info, err := writeTabToTemp(node, tab, len(entries), dir)
			if err != nil {
				opts.status("warning: %v\n", err)

				continue
			}

			entries = append(entries, info)
		}

		return nil
	})

	return entries, err
}

func execPerTab(filename string, entries []*tabInfo, dir string, opts *options, scr string, out, errOut io.Writer) error {
	var failures int

	for _, info := range entries {
		expanded, err := expandCommand(scr, info, dir)
		if err != nil {
			return err
		}

		opts.status("--- tab %d (%s%s) : L%d : %s ---\n", info.index, info.label, fileLabel(info.file), info.line, filepath.Base(filename))

		exitCode, err := runCommand(expanded, dir, out, errOut)
		if err != nil {
			return err
		}

		if exitCode != 0 {
			failures++
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d tab(s) failed", failures)
	}

	return nil
}

func execBatch(entries []*tabInfo, dir string, opts *options, scr string, out, errOut io.Writer) error {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.tempPath
	}

	words, err := quoteWords(append(paths, dir)...)
	if err != nil {
		return err
	}

	expanded := strings.NewReplacer(
		"{}", strings.Join(words[:len(paths)], " "),
		"{dir}", words[len(paths)],
	).Replace(scr)

	opts.status("--- batch (%d tabs) ---\n", len(entries))

	exitCode, err := runCommand(expanded, dir, out, errOut)
	if err != nil {
		return err
	}

	if exitCode != 0 {
		return fmt.Errorf("command exited with %d", exitCode)
	}

	return nil
}

func writeTabToTemp(node *mdast.Node, tab codetabs.Tab, index int, dir string) (*tabInfo, error) {
	info := &tabInfo{
		index: index,
		lang:  tab.Lang,
		label: tab.Label,
		file:  tab.Block.Meta.Get("file"),
		line:  node.Line + tab.Block.StartLine,
	}

	info.tempPath = filepath.Join(dir, tempFilename(info))

	if err := os.MkdirAll(filepath.Dir(info.tempPath), dirMode); err != nil {
		return nil, fmt.Errorf("create directory for tab %d: %w", index, err)
	}

	if err := os.WriteFile(info.tempPath, []byte(tab.Body+"\n"), fileMode); err != nil {
		return nil, fmt.Errorf("write tab %d: %w", index, err)
	}

	return info, nil
}

func tempFilename(info *tabInfo) string {
	if len(info.file) != 0 {
		return fmt.Sprintf("%d_%s", info.index, filepath.Base(filepath.FromSlash(info.file)))
	}

	return fmt.Sprintf("tab_%d%s", info.index, langExtension(info.lang))
}

func langExtension(lang string) string {
	if len(lang) > 0 {
		return "." + strings.ToLower(lang)
	}

	return ".txt"
}

// expandCommand substitutes the placeholders in scr with shell-quoted words.
func expandCommand(scr string, info *tabInfo, dir string) (string, error) {
	words, err := quoteWords(info.tempPath, info.lang, info.label, dir)
	if err != nil {
		return "", fmt.Errorf("tab %d: %w", info.index, err)
	}

	return strings.NewReplacer(
		"{}", words[0],
		"{lang}", words[1],
		"{label}", words[2],
		"{index}", fmt.Sprint(info.index),
		"{dir}", words[3],
	).Replace(scr), nil
}

func quoteWords(values ...string) ([]string, error) {
	words := make([]string, len(values))

	for i, value := range values {
		word, err := syntax.Quote(value, syntax.LangBash)
		if err != nil {
			return nil, err
		}

		words[i] = word
	}

	return words, nil
}

func runCommand(command, dir string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(interp.Dir(dir), interp.StdIO(os.Stdin, stdout, stderr))
	if err != nil {
		return -1, err
	}

	err = runner.Run(context.TODO(), file)
	if err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}

func fileLabel(file string) string {
	if len(file) != 0 {
		return ", file=" + file
	}

	return ""
}

var errMissingCommand = fmt.Errorf("command is required after '--'")
