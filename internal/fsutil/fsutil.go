// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"strings"
)

// FindFilesByExtension recursively searches rootPath within fsys for all
// files ending with the specified extension. It returns a sorted slice of
// their paths relative to fsys.
func FindFilesByExtension(fsys fs.FS, rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := fs.WalkDir(fsys, rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}
