package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adnsv/flagship/compose"
	"github.com/adnsv/flagship/model"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *state {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	vol := filepath.VolumeName(wd)
	return &state{
		fs:     osfs.New(vol + string(filepath.Separator)),
		volume: vol,
		cfg:    model.DefaultConfig(),
		logger: zerolog.Nop(),
	}
}

func TestAbsPath(t *testing.T) {
	st := newTestState(t)
	wd, _ := os.Getwd()

	got := st.absPath("dist/projectA")
	assert.Equal(t, filepath.Join(wd, "dist", "projectA"), st.osPath(got))
	assert.True(t, filepath.IsAbs(st.osPath(got)))
}

func TestOutputDir(t *testing.T) {
	st := newTestState(t)
	st.cfg.DistDir = "/work/dist"

	assert.Equal(t, "/work/dist/projectA", st.outputDir("projectA", ""))
	assert.Equal(t, st.absPath("out"), st.outputDir("projectA", "out"))
	assert.Equal(t, st.absPath("site"), st.outputDir("projectA", "", "site"))
	assert.Equal(t, st.absPath("out"), st.outputDir("projectA", "out", "site"))
	assert.Equal(t, "/work/dist/projectA", st.outputDir("projectA", "", ""))
}

func TestLoadConfigDefaultIsOptional(t *testing.T) {
	st := newTestState(t)
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	cfg, err := st.loadConfig(defaultConfigFN)
	require.NoError(t, err)
	assert.Equal(t, "src", cfg.SrcDir)

	_, err = st.loadConfig("other.yml")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(defaultConfigFN, []byte("dist: public\n"), 0644))
	cfg, err = st.loadConfig(defaultConfigFN)
	require.NoError(t, err)
	assert.Equal(t, "public", cfg.DistDir)
}

func TestBuildThroughOSFilesystem(t *testing.T) {
	st := newTestState(t)
	root := t.TempDir()
	files := map[string]string{
		"src/demo/templates/index.html":      `<style id="style-container"></style><div id="contents"></div><script id="script-container"></script>`,
		"src/demo/components/card/card.html": "<p>card</p>",
		"src/demo/videos/clip.mp4":           "MP4",
	}
	for fn, content := range files {
		p := filepath.Join(root, filepath.FromSlash(fn))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	st.cfg.SrcDir = st.absPath(filepath.Join(root, "src"))
	st.cfg.Sass.Disabled = true
	st.mini = nil

	b := compose.NewBuilder(st.fs, st.cfg, nil, nil, st.logger)
	out := st.absPath(filepath.Join(root, "dist"))
	rep, err := b.BuildAll(b.Project("demo"), out)
	require.NoError(t, err)
	assert.Empty(t, rep.Failed())

	buf, err := os.ReadFile(filepath.Join(root, "dist", "index-pim.html"))
	require.NoError(t, err)
	assert.Contains(t, string(buf), "<p>card</p>")

	buf, err = os.ReadFile(filepath.Join(root, "dist", "images", "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "MP4", string(buf))
}

func TestBuilderWiresSassCompiler(t *testing.T) {
	st := newTestState(t)
	wd, _ := os.Getwd()
	st.cfg.Sass.IncludePaths = []string{"shared/scss"}

	b := st.builder()
	require.NotNil(t, st.sass)
	assert.Equal(t, st.sass, b.Styles.Compiler)
	assert.Equal(t, "sass", st.sass.Command)
	assert.Equal(t, []string{filepath.Join(wd, "shared", "scss")}, st.sass.IncludePaths)
	assert.NoError(t, st.sass.Close())
}
