// Package archive walks resource files packed into zip based archives, such
// as Android library (.aar) and application (.apk) packages.
package archive

import (
	"archive/zip"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// WalkFunc is called for every matching file, archive is path given to Walk.
// Returning error stops the walk.
type WalkFunc func(archive string, file *zip.File) error

// Walk calls walkFn for files located directly in dir inside archive and
// having extension ext (empty ext matches everything). Files are visited in
// natural order of their names. Archives with absolute entry names or ".."
// components are rejected.
func Walk(archive, dir, ext string, walkFn WalkFunc) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	if dir = strings.Trim(dir, "/"); len(dir) == 0 {
		dir = "."
	}

	var files []*zip.File
	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if f.FileInfo().IsDir() || path.Dir(name) != dir {
			continue
		}
		if len(ext) > 0 && path.Ext(name) != ext {
			continue
		}
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return natural.Less(files[i].Name, files[j].Name) })

	for _, f := range files {
		if err := walkFn(archive, f); err != nil {
			return err
		}
	}
	return nil
}

func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
