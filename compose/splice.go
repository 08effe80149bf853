package compose

import (
	"regexp"
	"strings"

	"github.com/adnsv/flagship/model"
)

// Region is one of the three placeholder areas of a page template.
type Region int

const (
	RegionStyle = Region(iota)
	RegionContent
	RegionScript
)

// Regions lists the placeholder regions in splice order.
var Regions = []Region{RegionStyle, RegionContent, RegionScript}

type regionDef struct {
	name     string
	open     string
	close    string
	selector string
	re       *regexp.Regexp
}

var regionDefs = [...]regionDef{
	RegionStyle:   newRegionDef("style", `<style id="style-container">`, `</style>`, "style#style-container"),
	RegionContent: newRegionDef("content", `<div id="contents">`, `</div>`, "div#contents"),
	RegionScript:  newRegionDef("script", `<script id="script-container">`, `</script>`, "script#script-container"),
}

func newRegionDef(name, open, close, selector string) regionDef {
	return regionDef{
		name:     name,
		open:     open,
		close:    close,
		selector: selector,
		re:       regexp.MustCompile(regexp.QuoteMeta(open) + `([\s\S]*?)` + regexp.QuoteMeta(close)),
	}
}

func (r Region) String() string   { return regionDefs[r].name }
func (r Region) Open() string     { return regionDefs[r].open }
func (r Region) Close() string    { return regionDefs[r].close }
func (r Region) Selector() string { return regionDefs[r].selector }

// Content holds the inner text of each region.
type Content struct {
	Style  string
	Markup string
	Script string
}

func (c *Content) Get(r Region) string {
	switch r {
	case RegionStyle:
		return c.Style
	case RegionContent:
		return c.Markup
	case RegionScript:
		return c.Script
	}
	return ""
}

func (c *Content) Set(r Region, s string) {
	switch r {
	case RegionStyle:
		c.Style = s
	case RegionContent:
		c.Markup = s
	case RegionScript:
		c.Script = s
	}
}

// span locates a region: page[start:innerStart] is the opening tag and
// page[innerStart:innerEnd] the text between the tags.
type span struct {
	start      int
	innerStart int
	innerEnd   int
}

// Splicer finds placeholder regions by their literal opening tag. Only the
// first occurrence of each region is used, and the page is not validated
// as HTML. By default a region ends at the first closing tag after the
// opening one; with Strict set the content region skips nested divs.
type Splicer struct {
	Strict bool
}

func (s Splicer) find(page string, r Region) (span, bool) {
	if s.Strict && r == RegionContent {
		return findNested(page, r)
	}
	m := regionDefs[r].re.FindStringSubmatchIndex(page)
	if m == nil {
		return span{}, false
	}
	return span{start: m[0], innerStart: m[2], innerEnd: m[3]}, true
}

var reDivTag = regexp.MustCompile(`<!--[\s\S]*?-->|(?i:<div(?:[\s/][^>]*)?>|</div\s*>)`)

// findNested matches the closing tag at the same nesting depth as the
// opening one. Comments and self-closing divs do not change the depth.
// When the depth never returns to zero the first closing tag is used.
func findNested(page string, r Region) (span, bool) {
	def := regionDefs[r]
	start := strings.Index(page, def.open)
	if start < 0 {
		return span{}, false
	}
	inner := start + len(def.open)
	depth := 1
	for _, m := range reDivTag.FindAllStringIndex(page[inner:], -1) {
		tag := page[inner+m[0] : inner+m[1]]
		switch {
		case strings.HasPrefix(tag, "<!--"), strings.HasSuffix(tag, "/>"):
		case tag[1] == '/':
			depth--
			if depth == 0 {
				return span{start: start, innerStart: inner, innerEnd: inner + m[0]}, true
			}
		default:
			depth++
		}
	}
	m := def.re.FindStringSubmatchIndex(page[start:])
	if m == nil {
		return span{}, false
	}
	return span{start: start, innerStart: start + m[2], innerEnd: start + m[3]}, true
}

// Splice replaces the inner text of every region found in page with the
// matching Content field, framed by newlines. The wrapper tags and all
// text outside the regions are kept as is; regions that are not found are
// skipped.
func (s Splicer) Splice(page string, c Content) string {
	for _, r := range Regions {
		sp, ok := s.find(page, r)
		if !ok {
			continue
		}
		page = page[:sp.innerStart] + "\n" + c.Get(r) + "\n" + page[sp.innerEnd:]
	}
	return page
}

// Extract returns the inner text of each region and the regions that were
// not found. The content region is always matched by nesting depth, since
// composed pages carry component markup with nested divs.
func (s Splicer) Extract(page string) (Content, []Region) {
	strict := Splicer{Strict: true}
	c := Content{}
	missing := []Region{}
	for _, r := range Regions {
		sp, ok := strict.find(page, r)
		if !ok {
			missing = append(missing, r)
			continue
		}
		c.Set(r, page[sp.innerStart:sp.innerEnd])
	}
	return c, missing
}

type RegionLocation struct {
	Region Region
	Found  bool
	Loc    model.SourceLocation
}

// Locate reports where the opening tag of each region sits in page.
func (s Splicer) Locate(page string) []RegionLocation {
	ret := make([]RegionLocation, 0, len(Regions))
	for _, r := range Regions {
		rl := RegionLocation{Region: r}
		if sp, ok := s.find(page, r); ok {
			rl.Found = true
			rl.Loc = model.Locate(page, sp.start)
		}
		ret = append(ret, rl)
	}
	return ret
}

// RenderPim lays out the three regions back to back, without any other
// template markup.
func RenderPim(c Content) string {
	b := strings.Builder{}
	for _, r := range Regions {
		b.WriteString(r.Open())
		b.WriteString(c.Get(r))
		b.WriteString(r.Close())
		b.WriteString("\n")
	}
	return b.String()
}
