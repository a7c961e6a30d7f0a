package cmd

import (
	"github.com/ezerfernandes/codetabs/internal/codetabs"
	"github.com/ezerfernandes/codetabs/internal/mdast"
)

// tabsWalker is called for every code tabs block with the tabs that passed
// the filter.
type tabsWalker func(node *mdast.Node, tabs []codetabs.Tab) error

func walk(source []byte, plugin *codetabs.Plugin, filter filterFunc, walker tabsWalker) error {
	var err error

	mdast.Walk(mdast.Parse(source), func(node *mdast.Node) bool {
		if err != nil {
			return false
		}

		if !codetabs.IsCandidate(node) {
			return true
		}

		var tabs []codetabs.Tab

		for _, tab := range plugin.Tabs(node) {
			if filter(tab.Lang, tab.Block.Meta) {
				tabs = append(tabs, tab)
			}
		}

		if len(tabs) != 0 {
			err = walker(node, tabs)
		}

		return false
	})

	return err
}
