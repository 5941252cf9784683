package addon

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// FileEntry is one file discovered under the addon root. Path is the
// directory holding the file; joining Path and Name yields the full path.
type FileEntry struct {
	Name string
	Path string
}

// BuildIndex walks the addon tree rooted at addonPath and returns one entry
// per file, in walk order. Directories themselves are not indexed.
func BuildIndex(addonPath string) ([]FileEntry, error) {
	var index []FileEntry

	err := filepath.WalkDir(addonPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		index = append(index, FileEntry{
			Name: d.Name(),
			Path: filepath.Dir(path),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return index, nil
}

// RelativePath rewrites path relative to the addon root for display. Paths
// outside the root are returned unchanged.
func RelativePath(path, addonPath string) string {
	rel, err := filepath.Rel(addonPath, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
