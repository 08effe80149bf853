// Package compose assembles page variants of a project: it splices the
// project's style, markup and script fragments into a page template and
// writes the result to an output directory.
package compose

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adnsv/flagship/minify"
	"github.com/adnsv/flagship/model"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrIndexMissing     = errors.New("index output not found")
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

type Builder struct {
	FS      billy.Filesystem
	Config  *model.Config
	Styles  *StylePipeline
	Scripts *ScriptPipeline
	Splicer Splicer
	Logger  zerolog.Logger
}

// NewBuilder wires the pipelines. A nil compiler, or sass.disabled in the
// config, leaves style fragments uncompiled.
func NewBuilder(fsys billy.Filesystem, cfg *model.Config, compiler StyleCompiler, m minify.Minifier, logger zerolog.Logger) *Builder {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}
	if cfg.Sass.Disabled {
		compiler = nil
	}
	return &Builder{
		FS:      fsys,
		Config:  cfg,
		Styles:  &StylePipeline{Compiler: compiler, Minifier: m, Logger: logger},
		Scripts: &ScriptPipeline{Minifier: m},
		Splicer: Splicer{Strict: cfg.StrictRegions},
		Logger:  logger,
	}
}

func (b *Builder) Project(name string) *model.Project {
	return model.NewProject(b.Config.SrcDir, name)
}

// BuildVariant composes templates/<variant>.html of prj into
// <outDir>/<variant>.html and returns the written path. The pim variant is
// minified. A missing template fails with ErrTemplateNotFound.
func (b *Builder) BuildVariant(prj *model.Project, v model.Variant, outDir string) (string, error) {
	log := b.Logger.With().Str("project", prj.Name).Str("variant", string(v)).Logger()
	log.Info().Msg("building")

	tmpl, err := b.readTemplate(prj, v)
	if err != nil {
		return "", err
	}
	for _, rl := range b.Splicer.Locate(tmpl) {
		if !rl.Found {
			log.Warn().Str("region", rl.Region.String()).Msg("template has no placeholder for region, leaving it untouched")
		}
	}

	c, err := b.compose(prj, v == model.VariantPim)
	if err != nil {
		return "", err
	}

	fn, err := b.writeOutput(outDir, v, b.Splicer.Splice(tmpl, c))
	if err != nil {
		return "", err
	}
	log.Info().Str("path", fn).Msg("built")
	return fn, nil
}

func (b *Builder) hasTemplate(prj *model.Project, v model.Variant) bool {
	fi, err := b.FS.Stat(prj.TemplatePath(v))
	return err == nil && !fi.IsDir()
}

func (b *Builder) readTemplate(prj *model.Project, v model.Variant) (string, error) {
	fn := prj.TemplatePath(v)
	if fi, err := b.FS.Stat(fn); err == nil && fi.IsDir() {
		return "", fmt.Errorf("template %s is a directory", fn)
	}
	buf, err := util.ReadFile(b.FS, fn)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, fn)
	} else if err != nil {
		return "", fmt.Errorf("reading template %s: %w", fn, err)
	}
	return string(buf), nil
}

// compose collects and transforms the fragments of every region.
func (b *Builder) compose(prj *model.Project, minified bool) (Content, error) {
	commonStyles, err := AggregateCommon(b.FS, prj.CommonStylesDir(), model.KindStyle)
	if err != nil {
		return Content{}, err
	}
	styles, err := AggregateComponents(b.FS, prj.ComponentsDir(), model.KindStyle)
	if err != nil {
		return Content{}, err
	}
	markup, err := AggregateComponents(b.FS, prj.ComponentsDir(), model.KindMarkup)
	if err != nil {
		return Content{}, err
	}
	commonScripts, err := AggregateCommon(b.FS, prj.CommonScriptsDir(), model.KindScript)
	if err != nil {
		return Content{}, err
	}
	scripts, err := AggregateComponents(b.FS, prj.ComponentsDir(), model.KindScript)
	if err != nil {
		return Content{}, err
	}

	b.Logger.Debug().
		Str("project", prj.Name).
		Int("common-styles", commonStyles.Len()).
		Int("styles", styles.Len()).
		Int("markup", markup.Len()).
		Int("common-scripts", commonScripts.Len()).
		Int("scripts", scripts.Len()).
		Msg("collected fragments")

	return Content{
		Style: b.Styles.Build(Ordered(commonStyles, styles), StyleOptions{
			Compile: b.Styles.Compiler != nil,
			Minify:  minified,
		}),
		Markup: strings.Join(markup.Texts(), "\n"),
		Script: b.Scripts.Build(Ordered(commonScripts, scripts), ScriptOptions{Minify: minified}),
	}, nil
}

// writeOutput overwrites <outDir>/<variant>.html.
func (b *Builder) writeOutput(outDir string, v model.Variant, page string) (string, error) {
	if err := b.FS.MkdirAll(outDir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	fn := path.Join(outDir, v.FileName())
	if err := util.WriteFile(b.FS, fn, []byte(page), filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", fn, err)
	}
	return fn, nil
}
