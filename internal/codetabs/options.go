// Package codetabs turns `codetabs` fenced blocks into Docusaurus Tabs.
//
// A candidate block holds several fenced sub-blocks, one per language:
//
//	````js codetabs
//	```js
//	console.log("hi")
//	```py label="Python 3"
//	print("hi")
//	````
//
// [Plugin.Transform] replaces every candidate in a document tree with a
// <Tabs> container holding one <TabItem> per distinct label, and adds the
// Tabs/TabItem imports to the document root.
package codetabs

import (
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Sync selects how tab selection is shared between tab sets on a page.
type Sync int

const (
	// SyncOff leaves every tab set independent.
	SyncOff Sync = iota
	// SyncLabels links tab sets that have exactly the same labels.
	SyncLabels
	// SyncAll links every tab set in the document.
	SyncAll
)

// ParseSync converts a configuration value into a Sync mode. "all" selects
// SyncAll, empty and false-like values select SyncOff and anything else is
// treated as true.
func ParseSync(value string) Sync {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "all":
		return SyncAll
	case "", "false", "0", "no", "off":
		return SyncOff
	default:
		return SyncLabels
	}
}

func (s Sync) String() string {
	switch s {
	case SyncLabels:
		return "true"
	case SyncAll:
		return "all"
	default:
		return "false"
	}
}

// Options configures a Plugin.
type Options struct {
	Sync Sync

	// CustomLabels maps language tags to tab labels, overriding the
	// built-in table. The empty key labels sub-blocks without a language.
	CustomLabels map[string]string

	// FileBasePath is the directory file="..." references are resolved
	// against. Defaults to the working directory.
	FileBasePath string

	// Files, when set, is used instead of FileBasePath.
	Files fs.FS

	Logger *zerolog.Logger
}

// Plugin transforms code tabs blocks. It is immutable once created and may
// transform any number of documents.
type Plugin struct {
	sync   Sync
	labels Labels
	files  fs.FS
	log    zerolog.Logger
}

// New builds a Plugin from opts, merging CustomLabels over the default label
// table.
func New(opts Options) *Plugin {
	plugin := &Plugin{
		sync:   opts.Sync,
		labels: DefaultLabels().Merge(opts.CustomLabels),
		files:  opts.Files,
		log:    zerolog.Nop(),
	}

	if plugin.files == nil {
		base := opts.FileBasePath
		if len(base) == 0 {
			base = "."
		}

		plugin.files = os.DirFS(base)
	}

	if opts.Logger != nil {
		plugin.log = *opts.Logger
	}

	return plugin
}
