// Package inspect checks that a page template carries the placeholder
// regions the builder splices into.
package inspect

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/adnsv/flagship/compose"
	"github.com/adnsv/flagship/model"
)

type Region struct {
	Region   compose.Region
	Found    bool                 // the literal opening tag was found
	Elements int                  // elements matching the region selector in the parsed document
	Location model.SourceLocation // position of the opening tag
	Line     string               // template line holding the opening tag
}

// Problem describes why the region would not receive content as expected,
// or returns "".
func (r *Region) Problem() string {
	switch {
	case !r.Found && r.Elements > 0:
		return fmt.Sprintf("%s element exists but its opening tag is not exactly %s", r.Region.Selector(), r.Region.Open())
	case !r.Found:
		return "missing " + r.Region.Open()
	case r.Elements > 1:
		return fmt.Sprintf("%d %s elements, only the first is filled", r.Elements, r.Region.Selector())
	}
	return ""
}

type Report struct {
	Regions []*Region
}

func (r *Report) OK() bool {
	for _, reg := range r.Regions {
		if reg.Problem() != "" {
			return false
		}
	}
	return true
}

// Inspect parses page as HTML and matches it against the splicer.
func Inspect(page string, splicer compose.Splicer) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	for _, rl := range splicer.Locate(page) {
		reg := &Region{
			Region:   rl.Region,
			Found:    rl.Found,
			Elements: doc.Find(rl.Region.Selector()).Length(),
		}
		if rl.Found {
			reg.Location = rl.Loc
			reg.Line = rl.Loc.LineText(page)
		}
		rep.Regions = append(rep.Regions, reg)
	}
	return rep, nil
}
