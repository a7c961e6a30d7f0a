package codetabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/liamg/memoryfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFiles(t *testing.T) *memoryfs.FS {
	t.Helper()

	files := memoryfs.New()

	require.NoError(t, files.MkdirAll("snippets", 0o755))
	require.NoError(t, files.WriteFile("x.txt", []byte("\n\n  hello\n  world\n\n"), 0o644))
	require.NoError(t, files.WriteFile("snippets/main.go", []byte(`package main

// #region main
func main() {}
// #endregion main
`), 0o644))

	return files
}

func TestInclusion(t *testing.T) {
	t.Parallel()

	plugin := New(Options{Files: testFiles(t)})

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{
			name:  "file_replaces_body",
			value: "'''txt file=\"x.txt\"\nignored body",
			want:  "  hello\n  world",
		},
		{
			name:  "marker_receives_content",
			value: "'''txt file=\"x.txt\"\nbefore\n  {%  file %}  \nafter",
			want:  "before\n  hello\n  world\nafter",
		},
		{
			name:  "dot_slash_path",
			value: "'''txt file=\"./x.txt\"",
			want:  "  hello\n  world",
		},
		{
			name:  "region",
			value: "'''go file=\"snippets/main.go\" region=\"main\"",
			want:  "func main() {}",
		},
		{
			name:  "outline",
			value: "'''go file=\"snippets/main.go\" outline=\"true\"",
			want:  "package main\n\n// #region main\n// #endregion main",
		},
		{
			name:  "missing_file",
			value: "'''txt file=\"missing.txt\"\nbody",
			want:  `Error: could not include "missing.txt"`,
		},
		{
			name:  "missing_region",
			value: "'''go file=\"snippets/main.go\" region=\"nope\"",
			want:  `Error: could not include "snippets/main.go"`,
		},
		{
			name:  "outside_base",
			value: "'''txt file=\"../x.txt\"",
			want:  `Error: could not include "../x.txt"`,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tabs := plugin.Tabs(candidate(tt.value))
			require.Len(t, tabs, 1)
			assert.Equal(t, tt.want, tabs[0].Body)
		})
	}
}

func TestInclusionFailureKeepsOtherTabs(t *testing.T) {
	t.Parallel()

	plugin := New(Options{Files: testFiles(t)})
	nodes := plugin.TransformNode(candidate("'''txt file=\"missing.txt\"\n'''py\nprint(1)"))

	require.Len(t, nodes, 10)
	assert.Equal(t, `Error: could not include "missing.txt"`, nodes[2].Value)
	assert.Equal(t, "print(1)", nodes[6].Value)
}

func TestInclusionFileBasePath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hello.py"), []byte("print('hi')\n"), 0o644))

	plugin := New(Options{FileBasePath: dir})
	tabs := plugin.Tabs(candidate("'''py file=\"hello.py\""))

	require.Len(t, tabs, 1)
	assert.Equal(t, "print('hi')", tabs[0].Body)
}

func TestInclusionApply(t *testing.T) {
	t.Parallel()

	ok := Inclusion{Path: "a.txt", Text: "content"}
	failed := Inclusion{Path: "a.txt", Err: errors.New("boom")}

	assert.True(t, ok.OK())
	assert.False(t, failed.OK())

	assert.Equal(t, "content", ok.Apply("body"))
	assert.Equal(t, "x\ncontent\ny", ok.Apply("x\n{% FILE %}\ny"))
	assert.Equal(t, `Error: could not include "a.txt"`, failed.Apply("body"))
	assert.Equal(t, "x\nError: could not include \"a.txt\"", failed.Apply("x\n{%file%}"))
}
