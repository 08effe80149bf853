package model

import (
	"path"
	"strings"
)

type MediaType int

const (
	MediaOther = MediaType(iota)
	MediaImage
	MediaVideo
)

func (t MediaType) String() string {
	switch t {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	default:
		return "other"
	}
}

// MediaAsset is a file copied verbatim into the output media folder.
type MediaAsset struct {
	SrcPath string
	RelPath string
	Type    MediaType
}

func NewMediaAsset(src, rel string) *MediaAsset {
	return &MediaAsset{
		SrcPath: src,
		RelPath: rel,
		Type:    mediaTypeFromFileExt(path.Ext(src)),
	}
}

func mediaTypeFromFileExt(ext string) MediaType {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".bmp", ".ico", ".avif":
		return MediaImage
	case ".mp4", ".webm", ".ogv", ".mov", ".m4v":
		return MediaVideo
	}
	return MediaOther
}
