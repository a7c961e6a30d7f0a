package cmd

import (
	"fmt"

	"github.com/ezerfernandes/codetabs/internal/mdcode"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

type filterFunc func(lang string, meta mdcode.Meta) bool

func filterFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", []string{"*"}, "language glob patterns of tabs to include")
	cmd.Flags().StringToStringVarP(&opts.meta, "meta", "m", nil, "metastring attribute glob patterns, as key=pattern")
}

func buildFilter(opts *options) error {
	var err error

	opts.filter, err = filter(opts.lang, opts.meta)

	return err
}

// filter matches tabs whose language matches any of langs and whose
// metastring attributes match every pattern in meta.
func filter(langs []string, meta map[string]string) (filterFunc, error) {
	langGlobs := make([]glob.Glob, 0, len(langs))

	for _, pattern := range langs {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid lang pattern %q: %w", pattern, err)
		}

		langGlobs = append(langGlobs, g)
	}

	metaGlobs := make(map[string]glob.Glob, len(meta))

	for key, pattern := range meta {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid %s pattern %q: %w", key, pattern, err)
		}

		metaGlobs[key] = g
	}

	return func(lang string, m mdcode.Meta) bool {
		for key, g := range metaGlobs {
			if !g.Match(m.Get(key)) {
				return false
			}
		}

		for _, g := range langGlobs {
			if g.Match(lang) {
				return true
			}
		}

		return false
	}, nil
}
