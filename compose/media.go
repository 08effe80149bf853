package compose

import (
	"path"

	"github.com/adnsv/flagship/collect"
	"github.com/adnsv/flagship/model"
)

// CopyMedia copies images/** and videos/** of prj byte for byte into the
// configured media folder of outDir, keeping sub-paths. Both trees land in
// the same folder, so videos/a.mp4 becomes <outDir>/images/a.mp4 with the
// default config. Missing source trees are skipped.
func (b *Builder) CopyMedia(prj *model.Project, outDir string) ([]*model.MediaAsset, error) {
	dst := path.Join(outDir, b.Config.MediaDir)
	copied := []*model.MediaAsset{}

	for _, src := range []string{prj.ImagesDir(), prj.VideosDir()} {
		files, err := collect.CollectOptional(b.FS, src, "")
		if err != nil {
			return copied, err
		}
		for _, fn := range files {
			a := model.NewMediaAsset(fn, collect.Rel(src, fn))
			to := path.Join(dst, a.RelPath)
			b.Logger.Debug().Str("type", a.Type.String()).Msgf("copying %s -> %s", fn, to)
			if err = collect.CopyFile(b.FS, fn, to); err != nil {
				return copied, err
			}
			copied = append(copied, a)
		}
	}

	if len(copied) > 0 {
		b.Logger.Info().Str("project", prj.Name).Int("files", len(copied)).Str("path", dst).Msg("copied media")
	}
	return copied, nil
}
