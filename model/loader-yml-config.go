package model

import (
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a yaml config file. Keys that are not set keep their
// defaults.
func LoadConfig(fsys billy.Filesystem, fn string) (*Config, error) {
	buf, err := util.ReadFile(fsys, fn)
	if err != nil {
		return nil, err
	}

	c := &Config{}
	if err = yaml.Unmarshal(buf, c); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	c.SetDefaults()
	if err = c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return c, nil
}
