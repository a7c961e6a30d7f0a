package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const source = `package main

// #region imports
import "fmt"
// #endregion

func main() {
	// #region body
	fmt.Println("hello")
	// #endregion body
}
`

func TestExtract(t *testing.T) {
	t.Parallel()

	got, err := Extract([]byte(source), "imports")
	require.NoError(t, err)
	assert.Equal(t, "import \"fmt\"\n", string(got))

	got, err = Extract([]byte(source), "body")
	require.NoError(t, err)
	assert.Equal(t, "\tfmt.Println(\"hello\")\n", string(got))
}

func TestExtractErrors(t *testing.T) {
	t.Parallel()

	_, err := Extract([]byte(source), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = Extract([]byte("# #region open\nx = 1\n"), "open")
	require.ErrorIs(t, err, ErrMissingEndregion)
}

func TestOutline(t *testing.T) {
	t.Parallel()

	got, err := Outline([]byte(source))
	require.NoError(t, err)
	assert.Equal(t, `package main

// #region imports
// #endregion

func main() {
	// #region body
	// #endregion body
}
`, string(got))

	_, err = Outline([]byte("// #region x\nfoo\n"))
	require.ErrorIs(t, err, ErrMissingEndregion)

	got, err = Outline([]byte("no regions\n"))
	require.NoError(t, err)
	assert.Equal(t, "no regions\n", string(got))
}
