package collect

import (
	"io"
	"path"

	"github.com/go-git/go-billy/v5"
)

// CopyFile copies src to dst byte for byte, creating the parent
// directories of dst and replacing any existing file.
func CopyFile(fsys billy.Filesystem, src, dst string) (err error) {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err = fsys.MkdirAll(path.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := fsys.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
