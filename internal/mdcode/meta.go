package mdcode

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/shlex"
)

// Meta holds key-value metadata parsed from a fenced sub-block's metastring.
type Meta map[string]interface{}

// Get returns the metadata value for the given key as a string.
// It returns an empty string if the key is missing or the Meta is nil.
func (m Meta) Get(name string) string {
	if m == nil {
		return ""
	}

	value, has := m[name]
	if !has {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

// Has reports whether the key is set to a non-empty value.
func (m Meta) Has(name string) bool {
	return len(m.Get(name)) != 0
}

var (
	reJSON      = regexp.MustCompile(`^\s*{\s*["}]`)
	reBrackets  = regexp.MustCompile(`^\s*{(.*)}$`)
	reAttribute = regexp.MustCompile(`([\w-]+)=(?:"([^"]*)"|'([^']*)')`)
)

// ParseMeta parses a metastring such as `title="a b" label='Go'`. Input that
// cannot be tokenized shell-style falls back to scanning for quoted
// key="value" and key='value' pairs, so it never fails on free text.
func ParseMeta(input string) Meta {
	meta, err := parseMeta([]byte(input))
	if err != nil {
		return scanAttributes(input)
	}

	return meta
}

func parseMeta(input []byte) (Meta, error) {
	if len(input) == 0 {
		return Meta{}, nil
	}

	if reJSON.Match(input) {
		var meta Meta

		err := json.Unmarshal(input, &meta)
		if err != nil {
			return nil, err
		}

		return meta, nil
	}

	if subs := reBrackets.FindSubmatch(input); subs != nil {
		input = subs[1]
	}

	words, err := shlex.Split(string(input))
	if err != nil {
		return nil, err
	}

	dict := make(Meta)

	for _, word := range words {
		idx := strings.IndexRune(word, '=')
		if idx > 0 {
			dict[word[:idx]] = word[idx+1:]
		}
	}

	return dict, nil
}

func scanAttributes(input string) Meta {
	dict := make(Meta)

	for _, subs := range reAttribute.FindAllStringSubmatch(input, -1) {
		if _, has := dict[subs[1]]; !has {
			dict[subs[1]] = subs[2] + subs[3]
		}
	}

	return dict
}
