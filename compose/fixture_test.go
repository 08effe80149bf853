package compose

import (
	"errors"
	"testing"

	"github.com/adnsv/flagship/minify"
	"github.com/adnsv/flagship/model"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type fakeCompiler struct {
	calls []string
	out   string
	err   error
}

func (c *fakeCompiler) Compile(src string) (string, error) {
	c.calls = append(c.calls, src)
	if c.err != nil {
		return "", c.err
	}
	return c.out, nil
}

var errBoom = errors.New("boom")

func writeFiles(t *testing.T, fls billy.Filesystem, files map[string]string) {
	t.Helper()
	for fn, content := range files {
		require.NoError(t, util.WriteFile(fls, fn, []byte(content), 0644))
	}
}

func readFile(t *testing.T, fls billy.Filesystem, fn string) string {
	t.Helper()
	buf, err := util.ReadFile(fls, fn)
	require.NoError(t, err)
	return string(buf)
}

// newCardProject is a project with one component contributing one
// fragment of each kind.
func newCardProject(t *testing.T) billy.Filesystem {
	t.Helper()
	fls := memfs.New()
	writeFiles(t, fls, map[string]string{
		"src/demo/templates/index.html":      emptyTemplate,
		"src/demo/components/card/card.scss": ".card{color:red}",
		"src/demo/components/card/card.html": "<div>card</div>",
		"src/demo/components/card/card.js":   "console.log(1)",
		"src/demo/components/card/README.md": "ignored",
		"src/demo/images/logo.png":           "PNG",
		"src/demo/images/icons/arrow.svg":    "<svg/>",
		"src/demo/videos/sample.mp4":         "MP4",
	})
	return fls
}

func newTestBuilder(fls billy.Filesystem, compiler StyleCompiler) *Builder {
	return NewBuilder(fls, model.DefaultConfig(), compiler, minify.Naive{}, zerolog.Nop())
}
