package codetabs

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/ezerfernandes/codetabs/internal/mdcode"
	"github.com/ezerfernandes/codetabs/internal/region"
)

// Metastring attributes understood by the transformer.
const (
	metaLabel        = "label"
	metaFile         = "file"
	metaRegion       = "region"
	metaOutline      = "outline"
	metaCodeLocation = "codeLocation"
)

var reFileMarker = regexp.MustCompile(`(?im)^[ \t]*\{%[ \t]*file[ \t]*%\}[ \t]*$`)

// Inclusion is the outcome of reading a file="..." reference: either the
// trimmed file content or the reason it could not be read.
type Inclusion struct {
	Path string
	Text string
	Err  error
}

// OK reports whether the file was read.
func (inc Inclusion) OK() bool {
	return inc.Err == nil
}

// Content returns the file text, or a placeholder naming the path when the
// file could not be read.
func (inc Inclusion) Content() string {
	if inc.OK() {
		return inc.Text
	}

	return "Error: could not include " + strconv.Quote(inc.Path)
}

// Apply merges the inclusion into body: the content replaces a {% FILE %}
// marker line when body has one and replaces the whole body otherwise.
func (inc Inclusion) Apply(body string) string {
	if reFileMarker.MatchString(body) {
		return reFileMarker.ReplaceAllLiteralString(body, inc.Content())
	}

	return inc.Content()
}

func (p *Plugin) include(meta mdcode.Meta) Inclusion {
	name := meta.Get(metaFile)
	inc := Inclusion{Path: name}

	clean := cleanPath(name)
	if !fs.ValidPath(clean) {
		inc.Err = &fs.PathError{Op: "include", Path: name, Err: fs.ErrInvalid}

		return inc
	}

	data, err := fs.ReadFile(p.files, clean)
	if err != nil {
		inc.Err = err

		return inc
	}

	if meta.Has(metaRegion) {
		data, err = region.Extract(data, meta.Get(metaRegion))
	} else if outline, _ := strconv.ParseBool(meta.Get(metaOutline)); outline {
		data, err = region.Outline(data)
	}

	if err != nil {
		inc.Err = fmt.Errorf("%s: %w", name, err)

		return inc
	}

	inc.Text = mdcode.TrimBlankLines(string(data))

	return inc
}

func cleanPath(name string) string {
	return path.Clean(filepath.ToSlash(name))
}
