package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SourceLocation is a 1-based line:column position inside a text buffer.
type SourceLocation struct {
	Line   int
	Column int

	lineStart int // byte offset of the line
}

// Locate converts a byte offset in buf into a line and column. A leading
// UTF-8 BOM is not counted. Offsets beyond the buffer are clamped.
func Locate(buf string, offset int) SourceLocation {
	pos := 0
	if strings.HasPrefix(buf, "\xef\xbb\xbf") {
		pos = 3
	}
	if offset > len(buf) {
		offset = len(buf)
	}

	loc := SourceLocation{Line: 1, lineStart: pos}
	for pos < offset {
		c := buf[pos]
		pos++
		switch c {
		case '\n':
			loc.Line++
			loc.lineStart = pos
		case '\r':
			if pos < offset && buf[pos] == '\n' {
				pos++
			}
			loc.Line++
			loc.lineStart = pos
		}
	}
	if offset < loc.lineStart {
		offset = loc.lineStart
	}
	loc.Column = 1 + utf8.RuneCountInString(buf[loc.lineStart:offset])
	return loc
}

func (sl SourceLocation) Valid() bool {
	return sl.Line > 0 && sl.Column > 0
}

func (sl SourceLocation) String() string {
	return fmt.Sprintf("%d:%d", sl.Line, sl.Column)
}

// LineText returns the line of buf the location points into.
func (sl SourceLocation) LineText(buf string) string {
	if sl.lineStart > len(buf) {
		return ""
	}
	buf = buf[sl.lineStart:]
	if p := strings.IndexAny(buf, "\r\n"); p >= 0 {
		return buf[:p]
	}
	return buf
}
