// Package minify shrinks the style and script text of reduced page
// variants.
package minify

import (
	"fmt"

	"github.com/adnsv/flagship/model"
)

type Minifier interface {
	CSS(src string) string
	JS(src string) string
}

// ByName returns the minifier configured under name.
func ByName(name string) (Minifier, error) {
	switch name {
	case "", model.MinifierNaive:
		return Naive{}, nil
	case model.MinifierStandard:
		return NewStandard(), nil
	}
	return nil, fmt.Errorf("unsupported minifier %q", name)
}
