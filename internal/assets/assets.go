// Package assets holds the fixed set of view templates and stylesheets that
// viewpack materializes.
//
// The literal contents live under files/ and are embedded at build time, so
// what ends up on disk is byte-for-byte what was authored. The order of the
// set is fixed by paths below; it only affects the order in which directories
// are created and archive entries are stored.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed all:files
var content embed.FS

const contentRoot = "files"

// Entry pairs a slash-separated relative output path with its literal content.
type Entry struct {
	Path    string
	Content string
}

// paths is the ordered asset set.
var paths = []string{
	"views/layout.ejs",
	"views/index.ejs",
	"views/member-register.ejs",
	"views/member-login.ejs",
	"views/admin-login.ejs",
	"views/admin-dashboard.ejs",
	"public/css/style.css",
}

// Paths returns the ordered relative paths of the asset set.
func Paths() []string {
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

// Entries returns a fresh copy of the asset set in its fixed order.
func Entries() []Entry {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entry, ok := Lookup(p)
		if !ok {
			// paths and files/ are kept in lockstep by TestEmbeddedFilesMatchPaths.
			panic(fmt.Sprintf("assets: %s is listed but not embedded", p))
		}
		entries = append(entries, entry)
	}
	return entries
}

// Lookup returns the entry stored under rel.
func Lookup(rel string) (Entry, bool) {
	data, err := content.ReadFile(path.Join(contentRoot, rel))
	if err != nil {
		return Entry{}, false
	}
	return Entry{Path: rel, Content: string(data)}, true
}

// embeddedPaths walks the embedded tree and returns every file path relative
// to the content root.
func embeddedPaths() ([]string, error) {
	var found []string
	err := fs.WalkDir(content, contentRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, ok := strings.CutPrefix(p, contentRoot+"/")
		if !ok {
			return fmt.Errorf("%s is not under %s", p, contentRoot)
		}
		found = append(found, rel)
		return nil
	})
	return found, err
}
