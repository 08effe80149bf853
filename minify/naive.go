package minify

import (
	"regexp"
	"strings"
)

var (
	reBlockComment = regexp.MustCompile(`/\*[\s\S]*?\*/`)
	reLineComment  = regexp.MustCompile(`//.*\n`)
	reSpaces       = regexp.MustCompile(`\s+`)
	reCSSPunct     = regexp.MustCompile(`\s*([{}:;,])\s*`)
	reJSPunct      = regexp.MustCompile(`\s*([{};:,()])\s*`)
)

// Naive is a textual minifier. It does not parse its input: comment
// markers or punctuation inside string and regex literals are rewritten
// like any other text.
type Naive struct{}

func (Naive) CSS(src string) string {
	s := reBlockComment.ReplaceAllString(src, "")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reCSSPunct.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

func (Naive) JS(src string) string {
	s := reBlockComment.ReplaceAllString(src, "")
	s = reLineComment.ReplaceAllString(s, "")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reJSPunct.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
