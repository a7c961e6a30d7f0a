package mdast

import (
	"bytes"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var (
	reInfo         = regexp.MustCompile(`^\s*(\S+)\s*(.*?)\s*$`)
	reClosingFence = regexp.MustCompile("^ {0,3}(```+|~~~+)[ \t]*$")
	reImport       = regexp.MustCompile(`^import\s`)
	reFrontMatter  = regexp.MustCompile(`\A---[ \t]*\r?\n(?:((?s:.*?))\r?\n)?---[ \t]*(?:\r?\n|\z)`)
)

// Parse reads a Markdown/MDX document into a root node. Leading front matter
// becomes a yaml node, top-level fenced code blocks with an info string become
// code nodes, top-level import paragraphs become import nodes and everything
// in between is kept as markdown nodes. Rendering the result without changes
// reproduces source exactly.
func Parse(source []byte) *Node {
	root := &Node{Type: TypeRoot, Line: 1}
	pos := 0
	body := source

	if node, stop := frontMatter(source); node != nil {
		root.Children = append(root.Children, node)
		pos = stop
		body = blank(source, stop)
	}

	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader(body)).OwnerDocument()

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		node, start, stop := extractNode(child, source)
		if node == nil || start < pos {
			continue
		}

		if start > pos {
			root.Children = append(root.Children, markdownNode(source, pos, start))
		}

		node.Raw = string(source[start:stop])
		node.Line = lineAt(source, start)
		root.Children = append(root.Children, node)
		pos = stop
	}

	if pos < len(source) {
		root.Children = append(root.Children, markdownNode(source, pos, len(source)))
	}

	return root
}

// frontMatter returns the yaml node for a `---` block opening the document
// and the offset of the end of its closing line.
func frontMatter(source []byte) (*Node, int) {
	loc := reFrontMatter.FindSubmatchIndex(source)
	if loc == nil {
		return nil, 0
	}

	stop := loc[1]
	stop -= len(source[:stop]) - len(bytes.TrimRight(source[:stop], "\r\n"))

	node := &Node{Type: TypeYAML, Raw: string(source[:stop]), Line: 1}
	if loc[2] >= 0 {
		node.Value = string(source[loc[2]:loc[3]])
	}

	return node, stop
}

// blank returns a copy of source with the first n bytes blanked out, keeping
// line breaks so offsets and line numbers stay valid.
func blank(source []byte, n int) []byte {
	masked := bytes.Clone(source)

	for i := 0; i < n; i++ {
		if masked[i] != '\n' && masked[i] != '\r' {
			masked[i] = ' '
		}
	}

	return masked
}

func markdownNode(source []byte, start, stop int) *Node {
	raw := string(source[start:stop])

	return &Node{Type: TypeMarkdown, Value: raw, Raw: raw, Line: lineAt(source, start)}
}

func extractNode(node ast.Node, source []byte) (*Node, int, int) {
	switch block := node.(type) {
	case *ast.FencedCodeBlock:
		if block.Info == nil {
			return nil, 0, 0
		}

		lang, meta := parseInfo(block.Info.Text(source))
		start, stop := fenceBounds(block, source)

		return &Node{Type: TypeCode, Lang: lang, Meta: meta, Value: extractCode(block, source)}, start, stop
	case *ast.Paragraph:
		lines := block.Lines()
		if lines.Len() == 0 {
			return nil, 0, 0
		}

		start := lineStart(source, lines.At(0).Start)
		stop := lineEnd(source, lines.At(lines.Len()-1).Start)

		if !reImport.Match(source[start:stop]) {
			return nil, 0, 0
		}

		return &Node{Type: TypeImport, Value: string(source[start:stop])}, start, stop
	}

	return nil, 0, 0
}

func parseInfo(info []byte) (string, string) {
	all := reInfo.FindSubmatch(info)
	if all == nil {
		return "", ""
	}

	return string(all[1]), string(all[2])
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) string {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return string(bytes.TrimSuffix(buff.Bytes(), []byte("\n")))
}

// fenceBounds returns the byte range from the opening fence line up to the
// end of the closing fence line, excluding its newline. Unclosed fences end
// with their last content line.
func fenceBounds(fcb *ast.FencedCodeBlock, source []byte) (int, int) {
	start := lineStart(source, fcb.Info.Segment.Start)
	next := lineEnd(source, start) + 1

	if lines := fcb.Lines(); lines.Len() > 0 {
		next = lineEnd(source, lines.At(lines.Len()-1).Start) + 1
	}

	if next >= len(source) {
		return start, len(source)
	}

	stop := lineEnd(source, next)
	if reClosingFence.Match(source[next:stop]) {
		return start, stop
	}

	return start, next - 1
}

func lineStart(source []byte, offset int) int {
	for offset > 0 && source[offset-1] != '\n' {
		offset--
	}

	return offset
}

func lineEnd(source []byte, offset int) int {
	if idx := bytes.IndexByte(source[offset:], '\n'); idx >= 0 {
		return offset + idx
	}

	return len(source)
}

func lineAt(source []byte, offset int) int {
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
