// Package scaffold creates a new project by copying the skeleton project
// found under the source root.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"

	"github.com/adnsv/flagship/collect"
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidName     = errors.New("invalid project name")
	ErrProjectExists   = errors.New("project already exists")
	ErrTemplateMissing = errors.New("project template not found")
)

var reName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateName reports whether name can be used as a project directory.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: a name is required", ErrInvalidName)
	}
	if !reName.MatchString(name) {
		return fmt.Errorf("%w: %q (use letters, digits, '-' and '_')", ErrInvalidName, name)
	}
	return nil
}

// Create copies <srcDir>/<templateDir> to <srcDir>/<name>, directories
// included, and returns the created files.
func Create(fsys billy.Filesystem, srcDir, templateDir, name string, logger zerolog.Logger) ([]string, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	from := path.Join(srcDir, templateDir)
	to := path.Join(srcDir, name)

	if fi, err := fsys.Stat(from); err != nil || !fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTemplateMissing, from)
	}
	if _, err := fsys.Stat(to); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, to)
	}

	logger.Info().Str("project", name).Msgf("creating project from %s", from)
	if err := fsys.MkdirAll(to, 0755); err != nil {
		return nil, err
	}

	created := []string{}
	err := collect.Walk(fsys, from, func(p string, fi os.FileInfo) error {
		dst := path.Join(to, collect.Rel(from, p))
		if fi.IsDir() {
			return fsys.MkdirAll(dst, 0755)
		}
		if err := collect.CopyFile(fsys, p, dst); err != nil {
			return fmt.Errorf("copying %s: %w", p, err)
		}
		logger.Debug().Msgf("created %s", dst)
		created = append(created, dst)
		return nil
	})
	if err != nil {
		return created, err
	}

	logger.Info().Str("project", name).Int("files", len(created)).Msg("project created")
	return created, nil
}
