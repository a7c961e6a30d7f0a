// Package mdcode splits the value of a code tabs fence into its embedded
// per-language sub-blocks.
package mdcode

import (
	"strings"
	"unicode"
)

const fence = "```"

type lineKind int

const (
	lineText lineKind = iota
	lineHeader
	lineFence
)

// classify reports whether line opens a sub-block, is any other fence line or
// is plain text. A header is a backtick fence followed immediately by a
// language token, optionally followed by whitespace and a metastring.
func classify(line string) (lineKind, string, string) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, fence) {
		return lineText, "", ""
	}

	rest := strings.TrimLeft(trimmed, "`")
	if len(rest) == 0 || unicode.IsSpace(rune(rest[0])) {
		return lineFence, "", ""
	}

	idx := strings.IndexFunc(rest, unicode.IsSpace)
	if idx < 0 {
		return lineHeader, rest, ""
	}

	return lineHeader, rest[:idx], strings.TrimSpace(rest[idx:])
}

// Split scans value line by line and returns every sub-block in source order.
// A block's body runs from the line after its header up to the next fence
// line or the end of input. Text after a bare closing fence and before the
// next header belongs to no block.
func Split(value string) Blocks {
	var (
		blocks  Blocks
		current *Block
		body    []string
	)

	flush := func(endLine int) {
		if current == nil {
			return
		}

		current.Body = trimBlankLines(body)
		current.EndLine = endLine
		blocks = append(blocks, current)
		current, body = nil, nil
	}

	lines := strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n")

	for idx, line := range lines {
		lineNo := idx + 1

		kind, lang, info := classify(line)
		switch kind {
		case lineText:
			if current != nil {
				body = append(body, line)
			}
		case lineFence:
			flush(lineNo - 1)
		case lineHeader:
			flush(lineNo - 1)

			current = &Block{Lang: lang, Info: info, Meta: ParseMeta(info), StartLine: lineNo}
		}
	}

	flush(len(lines))

	return blocks
}

// TrimBlankLines removes leading and trailing lines that hold only
// whitespace, keeping the indentation of the remaining lines.
func TrimBlankLines(text string) string {
	return trimBlankLines(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
}

func trimBlankLines(lines []string) string {
	start, stop := 0, len(lines)

	for start < stop && len(strings.TrimSpace(lines[start])) == 0 {
		start++
	}

	for stop > start && len(strings.TrimSpace(lines[stop-1])) == 0 {
		stop--
	}

	return strings.TrimRightFunc(strings.Join(lines[start:stop], "\n"), unicode.IsSpace)
}
