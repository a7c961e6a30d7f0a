package mdast

import (
	"bytes"
	"strings"
)

// Render writes the tree back to Markdown/MDX. Nodes read by [Parse] are
// written verbatim; synthetic nodes are separated from their neighbours by a
// blank line. Empty synthetic nodes other than code produce no output.
func Render(root *Node) []byte {
	var buff bytes.Buffer

	renderChildren(&buff, root)

	return buff.Bytes()
}

func renderChildren(buff *bytes.Buffer, node *Node) {
	prevSynthetic := false

	for _, child := range node.Children {
		if child == nil {
			continue
		}

		text, synthetic := renderNode(child)
		if len(text) == 0 {
			continue
		}

		if buff.Len() > 0 && (synthetic || prevSynthetic) && len(strings.TrimLeft(text, "\n")) != 0 {
			separate(buff, text)
		}

		buff.WriteString(text)

		prevSynthetic = synthetic
	}
}

func renderNode(node *Node) (string, bool) {
	if len(node.Raw) != 0 {
		return node.Raw, false
	}

	if len(node.Children) != 0 {
		var buff bytes.Buffer

		renderChildren(&buff, node)

		return buff.String(), true
	}

	switch node.Type {
	case TypeCode:
		return renderCode(node), true
	case TypeYAML:
		return "---\n" + node.Value + "\n---", true
	}

	return node.Value, true
}

func renderCode(node *Node) string {
	fence := strings.Repeat("`", max(3, longestRun(node.Value, '`')+1))

	var sb strings.Builder

	sb.WriteString(fence)
	sb.WriteString(node.Lang)

	if len(node.Meta) != 0 {
		sb.WriteByte(' ')
		sb.WriteString(node.Meta)
	}

	sb.WriteByte('\n')

	if len(node.Value) != 0 {
		sb.WriteString(node.Value)
		sb.WriteByte('\n')
	}

	sb.WriteString(fence)

	return sb.String()
}

// separate pads buff with newlines so that exactly one blank line sits
// between its current content and next.
func separate(buff *bytes.Buffer, next string) {
	have := trailing(buff.Bytes()) + leading(next)
	for ; have < 2; have++ {
		buff.WriteByte('\n')
	}
}

func trailing(b []byte) int {
	n := 0
	for i := len(b) - 1; i >= 0 && b[i] == '\n'; i-- {
		n++
	}

	return n
}

func leading(s string) int {
	return len(s) - len(strings.TrimLeft(s, "\n"))
}

func longestRun(s string, c byte) int {
	longest, run := 0, 0

	for i := 0; i < len(s); i++ {
		if s[i] != c {
			run = 0

			continue
		}

		run++
		longest = max(longest, run)
	}

	return longest
}
