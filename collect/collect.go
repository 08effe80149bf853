// Package collect enumerates source files in a deterministic order.
//
// At every directory level the files come first, sorted by name, followed
// by the subdirectories, sorted by name and recursed in place. Fragment
// concatenation downstream depends on this order.
package collect

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5"
)

// CollectError reports a directory that could not be listed.
type CollectError struct {
	Dir string
	Err error
}

func (e *CollectError) Error() string {
	return fmt.Sprintf("cannot read directory %s: %v", e.Dir, e.Err)
}

func (e *CollectError) Unwrap() error {
	return e.Err
}

// WalkFunc is called for every entry below the walk root, directories
// included. p is the root-joined slash path.
type WalkFunc func(p string, fi os.FileInfo) error

// Walk visits root recursively in collection order.
func Walk(fsys billy.Filesystem, root string, fn WalkFunc) error {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return &CollectError{Dir: root, Err: err}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	dirs := []os.FileInfo{}
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e)
			continue
		}
		if err = fn(path.Join(root, e.Name()), e); err != nil {
			return err
		}
	}
	for _, d := range dirs {
		p := path.Join(root, d.Name())
		if err = fn(p, d); err != nil {
			return err
		}
		if err = Walk(fsys, p, fn); err != nil {
			return err
		}
	}
	return nil
}

// Collect returns the files below root whose base name matches pattern.
// The pattern uses doublestar syntax, e.g. "*.scss" or "*.{scss,css}".
// An empty pattern matches every file.
func Collect(fsys billy.Filesystem, root, pattern string) ([]string, error) {
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q", pattern)
	}

	files := []string{}
	err := Walk(fsys, root, func(p string, fi os.FileInfo) error {
		if fi.IsDir() {
			return nil
		}
		if pattern != "" {
			ok, err := doublestar.Match(pattern, fi.Name())
			if err != nil || !ok {
				return err
			}
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// CollectOptional is Collect for trees that may be absent: a missing root
// yields no files and no error.
func CollectOptional(fsys billy.Filesystem, root, pattern string) ([]string, error) {
	files, err := Collect(fsys, root, pattern)
	if err != nil {
		var ce *CollectError
		if errors.As(err, &ce) && ce.Dir == root && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return files, nil
}

// Rel returns p relative to root with forward slashes.
func Rel(root, p string) string {
	rel, err := filepath.Rel(filepath.FromSlash(root), filepath.FromSlash(p))
	if err != nil {
		return p
	}
	return filepath.ToSlash(rel)
}
