package mdast

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode reads an mdast JSON tree, as produced by remark, from r.
func Decode(r io.Reader) (*Node, error) {
	var root Node

	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode mdast: %w", err)
	}

	return &root, nil
}

// Encode writes root to w as indented mdast JSON.
func Encode(w io.Writer, root *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("encode mdast: %w", err)
	}

	return nil
}

// fields has the same JSON shape as Node without its custom methods.
type fields Node

// UnmarshalJSON decodes the known mdast fields into n and keeps every other
// field, such as position, depth or url, in n.Extra.
func (n *Node) UnmarshalJSON(data []byte) error {
	var all map[string]json.RawMessage

	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}

	if err := json.Unmarshal(data, (*fields)(n)); err != nil {
		return err
	}

	for key := range all {
		if n.known(key) {
			delete(all, key)
		}
	}

	n.Extra = nil
	if len(all) != 0 {
		n.Extra = all
	}

	return nil
}

// MarshalJSON encodes the known fields followed by n.Extra. Known fields set
// on n take precedence over the same key in n.Extra.
func (n Node) MarshalJSON() ([]byte, error) {
	base, err := marshal((*fields)(&n))
	if err != nil {
		return nil, err
	}

	extra := make(map[string]json.RawMessage, len(n.Extra))

	for key, value := range n.Extra {
		if !n.known(key) {
			extra[key] = value
		}
	}

	if len(extra) == 0 {
		return base, nil
	}

	rest, err := marshal(extra)
	if err != nil {
		return nil, err
	}

	base = append(base[:len(base)-1], ',')

	return append(base, rest[1:]...), nil
}

// known reports whether key is a field decoded into n itself. Empty fields do
// not count, so a present but empty value survives through Extra.
func (n *Node) known(key string) bool {
	switch key {
	case "type":
		return true
	case "value":
		return len(n.Value) != 0
	case "meta":
		return len(n.Meta) != 0
	case "lang":
		return len(n.Lang) != 0
	case "children":
		return len(n.Children) != 0
	}

	return false
}

func marshal(v any) ([]byte, error) {
	var buff bytes.Buffer

	enc := json.NewEncoder(&buff)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buff.Bytes(), "\n"), nil
}
