package mdcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fences = strings.NewReplacer("''''", "````", "'''", "```")

// fenced swaps runs of single quotes for backtick fences in raw test strings.
func fenced(s string) string {
	return fences.Replace(s)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	type want struct {
		lang, info, body string
	}

	tests := []struct {
		name  string
		value string
		want  []want
	}{
		{
			name:  "empty",
			value: "",
		},
		{
			name:  "no_headers",
			value: "just some text\nand more",
		},
		{
			name: "two_blocks",
			value: fenced(`'''js
console.log(1)
'''py title="hello"
print(1)
`),
			want: []want{
				{lang: "js", body: "console.log(1)"},
				{lang: "py", info: `title="hello"`, body: "print(1)"},
			},
		},
		{
			name: "closing_fence_ends_body",
			value: fenced(`'''js
a
'''
ignored
'''py
b`),
			want: []want{
				{lang: "js", body: "a"},
				{lang: "py", body: "b"},
			},
		},
		{
			name:  "space_after_fence_is_not_a_header",
			value: fenced("''' js\na"),
		},
		{
			name:  "indented_header_keeps_body_indentation",
			value: fenced("  '''go\n\tfmt.Println()\n"),
			want:  []want{{lang: "go", body: "\tfmt.Println()"}},
		},
		{
			name:  "blank_lines_trimmed",
			value: fenced("'''sh\n\n\n  echo hi  \n\n\n"),
			want:  []want{{lang: "sh", body: "  echo hi"}},
		},
		{
			name:  "text_before_first_header_ignored",
			value: fenced("intro\n'''rb\nputs 1"),
			want:  []want{{lang: "rb", body: "puts 1"}},
		},
		{
			name:  "longer_fence",
			value: fenced("''''rb label=\"Ruby 3\"\nputs 1"),
			want:  []want{{lang: "rb", info: `label="Ruby 3"`, body: "puts 1"}},
		},
		{
			name:  "empty_body",
			value: fenced("'''js\n'''py\nx"),
			want:  []want{{lang: "js"}, {lang: "py", body: "x"}},
		},
		{
			name:  "crlf",
			value: fenced("'''js\r\na\r\n'''py\r\nb\r\n"),
			want:  []want{{lang: "js", body: "a"}, {lang: "py", body: "b"}},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks := Split(tt.value)
			require.Len(t, blocks, len(tt.want))

			for i, w := range tt.want {
				assert.Equal(t, w.lang, blocks[i].Lang)
				assert.Equal(t, w.info, blocks[i].Info)
				assert.Equal(t, w.body, blocks[i].Body)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	blocks := Split(fenced("intro\n'''js\na\nb\n'''\n\n'''py\nc"))
	require.Len(t, blocks, 2)

	assert.Equal(t, 2, blocks[0].StartLine)
	assert.Equal(t, 4, blocks[0].EndLine)
	assert.Equal(t, 7, blocks[1].StartLine)
	assert.Equal(t, 8, blocks[1].EndLine)
}

func TestSplitMeta(t *testing.T) {
	t.Parallel()

	blocks := Split(fenced(`'''py label="Python 3" file='snippets/hello.py' codeLocation="https://example.com/x"
`))
	require.Len(t, blocks, 1)

	assert.Equal(t, "Python 3", blocks[0].Meta.Get("label"))
	assert.Equal(t, "snippets/hello.py", blocks[0].Meta.Get("file"))
	assert.Equal(t, "https://example.com/x", blocks[0].Meta.Get("codeLocation"))
}

func TestTrimBlankLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  a\n\n  b", TrimBlankLines("\n \n  a\n\n  b\n\t\n"))
	assert.Equal(t, "", TrimBlankLines("\n\n"))
	assert.Equal(t, "x", TrimBlankLines("x"))
}
