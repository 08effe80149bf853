package compose

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/adnsv/flagship/model"
	"github.com/go-git/go-billy/v5/util"
)

const StepMedia = "media"

// BuildPim writes the reduced pim page. With a templates/index-pim.html it
// is built like any other variant; otherwise it is derived from the
// already written <outDir>/index.html.
func (b *Builder) BuildPim(prj *model.Project, outDir string) (string, error) {
	if b.hasTemplate(prj, model.VariantPim) {
		return b.BuildVariant(prj, model.VariantPim, outDir)
	}
	b.Logger.Info().Str("project", prj.Name).Msg("no pim template, deriving pim page from index")
	return b.DerivePim(outDir)
}

// DerivePim extracts the regions of <outDir>/index.html, minifies style and
// script, and writes them as a standalone <outDir>/index-pim.html.
func (b *Builder) DerivePim(outDir string) (string, error) {
	src := path.Join(outDir, model.VariantIndex.FileName())
	buf, err := util.ReadFile(b.FS, src)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrIndexMissing, src)
	} else if err != nil {
		return "", fmt.Errorf("reading %s: %w", src, err)
	}

	c, missing := b.Splicer.Extract(string(buf))
	for _, r := range missing {
		b.Logger.Warn().Str("path", src).Str("region", r.String()).Msg("region not found, pim page will leave it empty")
	}
	c.Style = b.Styles.minifier().CSS(c.Style)
	c.Markup = strings.TrimSpace(c.Markup)
	c.Script = b.Scripts.minifier().JS(c.Script)

	fn, err := b.writeOutput(outDir, model.VariantPim, RenderPim(c))
	if err != nil {
		return "", err
	}
	b.Logger.Info().Str("path", fn).Msg("derived pim page")
	return fn, nil
}

// BuildAll runs the complete build of a project: index, then index-rtl,
// then the pim page, then the media copy. Only an index failure stops the
// build early. The rtl and pim outcomes are recorded in the report and
// logged; a media copy error is returned after every page was attempted.
func (b *Builder) BuildAll(prj *model.Project, outDir string) (*Report, error) {
	log := b.Logger.With().Str("project", prj.Name).Logger()
	rep := &Report{Project: prj.Name}

	fn, err := b.BuildVariant(prj, model.VariantIndex, outDir)
	if err != nil {
		rep.add(string(model.VariantIndex), StepFailed, "", err)
		return rep, err
	}
	rep.add(string(model.VariantIndex), StepDone, fn, nil)

	fn, err = b.BuildVariant(prj, model.VariantRTL, outDir)
	switch {
	case errors.Is(err, ErrTemplateNotFound):
		log.Warn().Err(err).Msg("skipping rtl variant")
		rep.add(string(model.VariantRTL), StepSkipped, "", err)
	case err != nil:
		log.Warn().Err(err).Msg("rtl variant failed")
		rep.add(string(model.VariantRTL), StepFailed, "", err)
	default:
		rep.add(string(model.VariantRTL), StepDone, fn, nil)
	}

	fn, err = b.BuildPim(prj, outDir)
	if err != nil {
		log.Error().Err(err).Msg("pim variant failed")
		rep.add(string(model.VariantPim), StepFailed, "", err)
	} else {
		rep.add(string(model.VariantPim), StepDone, fn, nil)
	}

	rep.Media, err = b.CopyMedia(prj, outDir)
	if err != nil {
		rep.add(StepMedia, StepFailed, "", err)
		return rep, fmt.Errorf("copying media: %w", err)
	}
	rep.add(StepMedia, StepDone, path.Join(outDir, b.Config.MediaDir), nil)
	return rep, nil
}
