package cifio

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const (
	// Ext is the file extension of CIF files.
	Ext = ".cif"
	// DefaultSuffix is appended to the base name of edited files.
	DefaultSuffix = "_modified"
)

// OutputPath returns the name of the edited version of the CIF file
// path, e.g. "x/BaTiO3_modified.cif" for "x/BaTiO3.cif".
func OutputPath(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return strings.TrimSuffix(path, Ext) + suffix + Ext
}

// Collect returns the CIF files to edit. If path is a directory, its
// regular files are used, otherwise path itself. Files not ending in
// ".cif" and files that already are edited versions, i.e. contain
// suffix+".cif", are dropped. The result is sorted.
func Collect(path, suffix string) ([]string, error) {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, &FileError{Path: path, Op: "collect", err: err}
	}
	var files []string
	if st.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, &FileError{Path: path, Op: "collect", err: err}
		}
		for _, e := range entries {
			if e.Type().IsRegular() {
				files = append(files, filepath.Join(path, e.Name()))
			}
		}
	} else {
		files = []string{path}
	}
	files = slices.DeleteFunc(files, func(f string) bool {
		return !strings.HasSuffix(f, Ext) || strings.Contains(f, suffix+Ext)
	})
	slices.Sort(files)
	return files, nil
}

func splitPath(name string) (dir, base string) {
	return filepath.Dir(name), filepath.Base(name)
}
