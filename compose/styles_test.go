package compose

import (
	"strings"
	"testing"

	"github.com/adnsv/flagship/minify"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var styleTexts = []string{
	"/* _vars.scss */\n$c: red;",
	"/* card/card.scss */\n.card { color : $c ; }",
}

func TestBuildStylesPassThrough(t *testing.T) {
	p := &StylePipeline{Minifier: minify.Naive{}, Logger: zerolog.Nop()}

	out := p.Build(styleTexts, StyleOptions{})
	assert.Equal(t, strings.Join(styleTexts, "\n"), out)

	c := &fakeCompiler{out: "compiled"}
	p.Compiler = c
	out = p.Build(styleTexts, StyleOptions{Compile: false})
	assert.Equal(t, strings.Join(styleTexts, "\n"), out)
	assert.Empty(t, c.calls)
}

func TestBuildStylesCompilesOnce(t *testing.T) {
	c := &fakeCompiler{out: ".card{color:red}"}
	p := &StylePipeline{Compiler: c, Logger: zerolog.Nop()}

	out := p.Build(styleTexts, StyleOptions{Compile: true})

	assert.Equal(t, ".card{color:red}", out)
	require.Len(t, c.calls, 1)
	assert.Equal(t, strings.Join(styleTexts, "\n"), c.calls[0])
}

func TestBuildStylesCompileErrorIsNotFatal(t *testing.T) {
	p := &StylePipeline{Compiler: &fakeCompiler{err: errBoom}, Logger: zerolog.Nop()}

	out := p.Build(styleTexts, StyleOptions{Compile: true})

	assert.Equal(t, "/* SCSS compile error: boom */\n"+strings.Join(styleTexts, "\n"), out)
}

func TestBuildStylesMinify(t *testing.T) {
	p := &StylePipeline{Logger: zerolog.Nop()}

	out := p.Build([]string{"/* c */ .a { color : red ; }"}, StyleOptions{Minify: true})
	assert.Equal(t, ".a{color:red;}", out)
}

func TestCompileErrorComment(t *testing.T) {
	assert.Equal(t, "/* SCSS compile error: a * / b */", compileErrorComment(errString("a */ b")))
}

type errString string

func (e errString) Error() string { return string(e) }

func TestBuildScripts(t *testing.T) {
	p := &ScriptPipeline{}
	texts := []string{"// utils.js\nfunction u ( ) { }", "// a.js\nu ( ) ;"}

	assert.Equal(t, strings.Join(texts, "\n"), p.Build(texts, ScriptOptions{}))
	assert.Equal(t, "function u(){}u();", p.Build(texts, ScriptOptions{Minify: true}))
}
