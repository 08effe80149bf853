package compose

import (
	"strings"

	"github.com/adnsv/flagship/minify"
)

type ScriptOptions struct {
	Minify bool
}

type ScriptPipeline struct {
	Minifier minify.Minifier
}

// Build joins the script fragments in the order given, minifying on request.
func (p *ScriptPipeline) Build(texts []string, opts ScriptOptions) string {
	out := strings.Join(texts, "\n")
	if opts.Minify {
		out = p.minifier().JS(out)
	}
	return out
}

func (p *ScriptPipeline) minifier() minify.Minifier {
	if p.Minifier == nil {
		return minify.Naive{}
	}
	return p.Minifier
}
