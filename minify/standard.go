package minify

import (
	tdminify "github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
)

const (
	mimeCSS = "text/css"
	mimeJS  = "application/javascript"
)

// Standard minifies with tdewolff/minify. Input the parser rejects is
// handed to Naive instead.
type Standard struct {
	m        *tdminify.M
	fallback Naive
}

func NewStandard() *Standard {
	m := tdminify.New()
	m.AddFunc(mimeCSS, css.Minify)
	m.AddFunc(mimeJS, js.Minify)
	return &Standard{m: m}
}

func (s *Standard) CSS(src string) string {
	out, err := s.m.String(mimeCSS, src)
	if err != nil {
		return s.fallback.CSS(src)
	}
	return out
}

func (s *Standard) JS(src string) string {
	out, err := s.m.String(mimeJS, src)
	if err != nil {
		return s.fallback.JS(src)
	}
	return out
}
