package codetabs

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/ezerfernandes/codetabs/internal/mdast"
	"github.com/ezerfernandes/codetabs/internal/mdcode"
)

// Marker is the fence metastring that makes a code node a candidate.
const Marker = "codetabs"

const (
	groupPrefix = "codetabs"
	noteText    = "See full example on GitHub"
)

type noteStyle struct {
	FontSize       string `json:"fontSize"`
	FontWeight     int    `json:"fontWeight"`
	Color          string `json:"color"`
	TextAlign      string `json:"textAlign"`
	PaddingBottom  string `json:"paddingBottom"`
	TextDecoration string `json:"textDecoration"`
}

var defaultNoteStyle = noteStyle{
	FontSize:       ".9em",
	FontWeight:     600, //nolint:gomnd
	Color:          "#0E75DD",
	TextAlign:      "center",
	PaddingBottom:  "13px",
	TextDecoration: "underline",
}

// Tab is a sub-block that survived label deduplication.
type Tab struct {
	Label        string
	Lang         string
	Info         string
	Body         string
	CodeLocation string
	Block        *mdcode.Block
}

// IsCandidate reports whether node is a code tabs block: a code node whose
// metastring is the marker, or whose whole info string is the marker.
func IsCandidate(node *mdast.Node) bool {
	if node == nil || node.Type != mdast.TypeCode {
		return false
	}

	return node.Meta == Marker || (len(node.Meta) == 0 && node.Lang == Marker)
}

// Tabs parses the value of a candidate node into tabs: one per distinct
// label, in source order, with file references resolved.
func (p *Plugin) Tabs(node *mdast.Node) []Tab {
	var (
		tabs []Tab
		seen = make(map[string]struct{})
	)

	for _, block := range mdcode.Split(node.Value) {
		label := p.labels.Resolve(block.Lang, block.Meta.Get(metaLabel))
		if _, dup := seen[label]; dup {
			continue
		}

		seen[label] = struct{}{}

		tabs = append(tabs, Tab{
			Label:        label,
			Lang:         block.Lang,
			Info:         block.Info,
			Body:         block.Body,
			CodeLocation: block.Meta.Get(metaCodeLocation),
			Block:        block,
		})
	}

	for i := range tabs {
		if !tabs[i].Block.Meta.Has(metaFile) {
			continue
		}

		inc := p.include(tabs[i].Block.Meta)
		if !inc.OK() {
			p.log.Warn().Err(inc.Err).Str("file", inc.Path).Int("line", node.Line+tabs[i].Block.StartLine).
				Msg("cannot include file")
		}

		tabs[i].Body = inc.Apply(tabs[i].Body)
	}

	return tabs
}

// GroupID returns the groupId shared by synchronized tab sets, or an empty
// string when synchronization is off. Label groups keep first-seen order.
func (p *Plugin) GroupID(labels []string) string {
	switch p.sync {
	case SyncAll:
		return groupPrefix
	case SyncLabels:
		return groupPrefix + "-" + strings.Join(labels, "-")
	default:
		return ""
	}
}

// TransformNode returns the nodes replacing a candidate: the Tabs opening,
// then an opening TabItem, the code, a note and a closing TabItem per tab,
// then the Tabs closing. It returns nil when the value holds no sub-blocks.
func (p *Plugin) TransformNode(node *mdast.Node) []*mdast.Node {
	tabs := p.Tabs(node)
	if len(tabs) == 0 {
		return nil
	}

	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		labels[i] = tab.Label
	}

	groupID := p.GroupID(labels)

	p.log.Debug().Int("line", node.Line).Strs("labels", labels).Str("group", groupID).Msg("code tabs")

	nodes := make([]*mdast.Node, 0, 2+4*len(tabs)) //nolint:gomnd
	nodes = append(nodes, jsx(tabsOpen(labels, groupID)))

	for _, tab := range tabs {
		nodes = append(nodes,
			jsx(fmt.Sprintf("<TabItem value=%s>", attr(tab.Label))),
			&mdast.Node{Type: node.Type, Lang: tab.Lang, Meta: tab.Info, Value: tab.Body},
			jsx(note(tab.CodeLocation)),
			jsx("</TabItem>"),
		)
	}

	return append(nodes, jsx("</Tabs>"))
}

func jsx(value string) *mdast.Node {
	return &mdast.Node{Type: mdast.TypeJSX, Value: value}
}

func tabsOpen(labels []string, groupID string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<Tabs\n  defaultValue=%s\n", attr(labels[0]))

	if len(groupID) != 0 {
		fmt.Fprintf(&sb, "  groupId=%s\n", attr(groupID))
	}

	values := make([]string, len(labels))
	for i, label := range labels {
		values[i] = fmt.Sprintf("{label: %s, value: %s}", jsString(label), jsString(label))
	}

	fmt.Fprintf(&sb, "  values={[%s]}>", strings.Join(values, ", "))

	return sb.String()
}

func note(codeLocation string) string {
	if len(codeLocation) == 0 {
		return ""
	}

	style, _ := json.Marshal(defaultNoteStyle)

	return fmt.Sprintf(`<div style={%s}><a href=%s target="_blank">%s</a></div>`, style, attr(codeLocation), noteText)
}

func attr(value string) string {
	return `"` + html.EscapeString(value) + `"`
}

func jsString(value string) string {
	quoted, _ := json.Marshal(value)

	return string(quoted)
}
