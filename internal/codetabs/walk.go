package codetabs

import (
	"regexp"

	"github.com/ezerfernandes/codetabs/internal/mdast"
)

const typeESM = "mdxjsEsm"

type declaration struct {
	value  string
	detect *regexp.Regexp
}

// declarations lists the imports the generated markup needs, in the order
// they appear at the top of the document.
var declarations = []declaration{
	{
		value:  "import Tabs from '@theme/Tabs';",
		detect: regexp.MustCompile(`['"]@theme/Tabs['"]`),
	},
	{
		value:  "import TabItem from '@theme/TabItem';",
		detect: regexp.MustCompile(`['"]@theme/TabItem['"]`),
	},
}

type walker struct {
	plugin      *Plugin
	transformed bool
	declared    []bool
}

// Transform rewrites every code tabs block under root in place. When at
// least one block was replaced, the Tabs and TabItem imports are prepended to
// root unless the document already imports them.
func (p *Plugin) Transform(root *mdast.Node) {
	if root == nil {
		return
	}

	w := &walker{plugin: p, declared: make([]bool, len(declarations))}
	w.visit(root)

	if w.transformed {
		w.declare(root)
	}
}

// visit returns the replacement for node, or nil when node stays.
func (w *walker) visit(node *mdast.Node) []*mdast.Node {
	w.checkDeclaration(node)

	if IsCandidate(node) {
		replacement := w.plugin.TransformNode(node)
		if len(replacement) != 0 {
			w.transformed = true
		}

		return replacement
	}

	for idx := 0; idx < len(node.Children); {
		if node.Children[idx] == nil {
			idx++

			continue
		}

		replacement := w.visit(node.Children[idx])
		if replacement == nil {
			idx++

			continue
		}

		node.Children = splice(node.Children, idx, replacement)
		idx += len(replacement)
	}

	return nil
}

func (w *walker) checkDeclaration(node *mdast.Node) {
	if node.Type != mdast.TypeImport && node.Type != typeESM {
		return
	}

	for i, decl := range declarations {
		if decl.detect.MatchString(node.Value) {
			w.declared[i] = true
		}
	}
}

// declare inserts the missing imports at the top of root, after front matter.
func (w *walker) declare(root *mdast.Node) {
	var imports []*mdast.Node

	for i, decl := range declarations {
		if !w.declared[i] {
			imports = append(imports, &mdast.Node{Type: mdast.TypeImport, Value: decl.value})
		}
	}

	if len(imports) == 0 {
		return
	}

	at := 0
	for at < len(root.Children) && root.Children[at] != nil && root.Children[at].Type == mdast.TypeYAML {
		at++
	}

	children := make([]*mdast.Node, 0, len(root.Children)+len(imports))
	children = append(children, root.Children[:at]...)
	children = append(children, imports...)

	root.Children = append(children, root.Children[at:]...)
}

// splice replaces nodes[idx] with replacement.
func splice(nodes []*mdast.Node, idx int, replacement []*mdast.Node) []*mdast.Node {
	res := make([]*mdast.Node, 0, len(nodes)-1+len(replacement))

	res = append(res, nodes[:idx]...)
	res = append(res, replacement...)

	return append(res, nodes[idx+1:]...)
}
