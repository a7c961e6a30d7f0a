package mdcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMeta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Meta
	}{
		{name: "empty", input: "", want: Meta{}},
		{
			name:  "quoted",
			input: `label="Python 3" title='a b'`,
			want:  Meta{"label": "Python 3", "title": "a b"},
		},
		{
			name:  "bare_words_ignored",
			input: `{1,3} label=Go`,
			want:  Meta{"label": "Go"},
		},
		{
			name:  "brackets",
			input: `{label=Go file=main.go}`,
			want:  Meta{"label": "Go", "file": "main.go"},
		},
		{
			name:  "json",
			input: `{"label":"Go"}`,
			want:  Meta{"label": "Go"},
		},
		{
			name:  "unbalanced_quote_falls_back",
			input: `label="Go" it's fine`,
			want:  Meta{"label": "Go"},
		},
		{
			name:  "fallback_first_wins",
			input: `label='A' label="B" don't`,
			want:  Meta{"label": "A"},
		},
		{
			name:  "fallback_mixed_quotes",
			input: `title="it's" label='say "hi"' x'`,
			want:  Meta{"title": "it's", "label": `say "hi"`},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseMeta(tt.input))
		})
	}
}

func TestMetaGet(t *testing.T) {
	t.Parallel()

	var empty Meta

	assert.Equal(t, "", empty.Get("label"))
	assert.False(t, empty.Has("label"))

	meta := Meta{"label": "Go", "n": 1.0, "blank": ""}

	assert.Equal(t, "Go", meta.Get("label"))
	assert.Equal(t, "1", meta.Get("n"))
	assert.True(t, meta.Has("label"))
	assert.False(t, meta.Has("blank"))
}
