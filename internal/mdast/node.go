// Package mdast holds the document tree handed to transformers, plus a
// goldmark-backed reader and an MDX writer for it.
package mdast

import "encoding/json"

// Node types produced and consumed by this module.
const (
	TypeRoot     = "root"
	TypeCode     = "code"
	TypeImport   = "import"
	TypeJSX      = "jsx"
	TypeMarkdown = "markdown"
	TypeYAML     = "yaml"
)

// Node is a single node of a document tree. The JSON shape follows mdast.
type Node struct {
	Type     string  `json:"type"`
	Value    string  `json:"value,omitempty"`
	Meta     string  `json:"meta,omitempty"`
	Lang     string  `json:"lang,omitempty"`
	Children []*Node `json:"children,omitempty"`

	// Raw is the exact source text the node was read from. Nodes with Raw
	// are written back verbatim; synthetic nodes leave it empty.
	Raw string `json:"-"`

	// Line is the 1-based source line of the node, or zero when unknown.
	Line int `json:"-"`

	// Extra holds the other mdast fields read from JSON (position, depth,
	// url, data, ...) so they are written back unchanged.
	Extra map[string]json.RawMessage `json:"-"`
}

// Visitor is called for every node in pre-order. Returning false skips the
// node's children.
type Visitor func(node *Node) bool

// Walk visits root and its descendants in pre-order.
func Walk(root *Node, visit Visitor) {
	if root == nil || !visit(root) {
		return
	}

	for _, child := range root.Children {
		Walk(child, visit)
	}
}
