package compose

import (
	"strings"

	"github.com/adnsv/flagship/minify"
	"github.com/rs/zerolog"
)

// StyleCompiler turns one SCSS source into CSS.
type StyleCompiler interface {
	Compile(src string) (string, error)
}

type StyleOptions struct {
	Compile bool
	Minify  bool
}

type StylePipeline struct {
	Compiler StyleCompiler // nil disables compilation
	Minifier minify.Minifier
	Logger   zerolog.Logger
}

// Build joins the style fragments and, as requested, compiles them as a
// single stylesheet and minifies the result. Fragments may use variables
// and mixins declared in an earlier fragment, so they are never compiled
// one by one. A compile error does not fail the build: the raw source is
// kept behind a comment carrying the error.
func (p *StylePipeline) Build(texts []string, opts StyleOptions) string {
	src := strings.Join(texts, "\n")
	out := src

	if opts.Compile && p.Compiler != nil {
		css, err := p.Compiler.Compile(src)
		if err != nil {
			p.Logger.Warn().Err(err).Msg("style compilation failed, keeping uncompiled source")
			out = compileErrorComment(err) + "\n" + src
		} else {
			out = css
		}
	}

	if opts.Minify {
		out = p.minifier().CSS(out)
	}
	return out
}

func (p *StylePipeline) minifier() minify.Minifier {
	if p.Minifier == nil {
		return minify.Naive{}
	}
	return p.Minifier
}

func compileErrorComment(err error) string {
	msg := strings.ReplaceAll(err.Error(), "*/", "* /")
	return "/* SCSS compile error: " + msg + " */"
}
