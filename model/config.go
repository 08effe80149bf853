package model

import (
	"fmt"
	"path"
)

const (
	MinifierNaive    = "naive"
	MinifierStandard = "standard"
)

// Config holds the builder settings, usually read from builder.yml.
type Config struct {
	SrcDir        string     `yaml:"src"`            // default "src"
	DistDir       string     `yaml:"dist"`           // default "dist"
	MediaDir      string     `yaml:"media-dir"`      // output folder for images and videos, default "images"
	TemplateDir   string     `yaml:"template-dir"`   // project skeleton under SrcDir, default "_template"
	Minifier      string     `yaml:"minifier"`       // naive (default) or standard
	StrictRegions bool       `yaml:"strict-regions"` // match nested <div> in the content region
	Sass          SassConfig `yaml:"sass"`
}

type SassConfig struct {
	Command      string   `yaml:"command"`       // Dart Sass executable, default "sass"
	IncludePaths []string `yaml:"include-paths"` // extra load paths for @use and @import
	Disabled     bool     `yaml:"disabled"`
}

func DefaultConfig() *Config {
	c := &Config{}
	c.SetDefaults()
	return c
}

func (c *Config) SetDefaults() {
	if c.SrcDir == "" {
		c.SrcDir = "src"
	}
	if c.DistDir == "" {
		c.DistDir = "dist"
	}
	if c.MediaDir == "" {
		c.MediaDir = "images"
	}
	if c.TemplateDir == "" {
		c.TemplateDir = "_template"
	}
	if c.Minifier == "" {
		c.Minifier = MinifierNaive
	}
	if c.Sass.Command == "" {
		c.Sass.Command = "sass"
	}
}

func (c *Config) Validate() error {
	switch c.Minifier {
	case MinifierNaive, MinifierStandard:
	default:
		return fmt.Errorf("unsupported minifier %q (want %s or %s)", c.Minifier, MinifierNaive, MinifierStandard)
	}
	if path.IsAbs(c.MediaDir) {
		return fmt.Errorf("media-dir must be relative to the output directory, got %s", c.MediaDir)
	}
	return nil
}

// OutputDir is the default output directory for a project.
func (c *Config) OutputDir(project string) string {
	return path.Join(c.DistDir, project)
}
