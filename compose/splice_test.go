package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const emptyTemplate = `<!DOCTYPE html>
<html>
<head>
<title>Demo</title>
<style id="style-container"></style>
</head>
<body>
<div id="contents"></div>
<script id="script-container"></script>
</body>
</html>
`

func TestSplice(t *testing.T) {
	t.Run("fills every region", func(t *testing.T) {
		out := Splicer{}.Splice(emptyTemplate, Content{
			Style:  ".card{color:red}",
			Markup: "<div>card</div>",
			Script: "console.log(1)",
		})

		assert.Equal(t, `<!DOCTYPE html>
<html>
<head>
<title>Demo</title>
<style id="style-container">
.card{color:red}
</style>
</head>
<body>
<div id="contents">
<div>card</div>
</div>
<script id="script-container">
console.log(1)
</script>
</body>
</html>
`, out)
	})

	t.Run("missing regions are left untouched", func(t *testing.T) {
		page := "<html><body><p>static</p></body></html>"
		assert.Equal(t, page, Splicer{}.Splice(page, Content{Style: "x", Markup: "y", Script: "z"}))

		page = `<div id="contents">old</div><style>.keep{}</style>`
		assert.Equal(t, "<div id=\"contents\">\nnew\n</div><style>.keep{}</style>",
			Splicer{}.Splice(page, Content{Style: "x", Markup: "new", Script: "z"}))
	})

	t.Run("first occurrence only", func(t *testing.T) {
		page := `<script id="script-container">a</script><script id="script-container">b</script>`
		out := Splicer{}.Splice(page, Content{Script: "new"})
		assert.Equal(t, "<script id=\"script-container\">\nnew\n</script><script id=\"script-container\">b</script>", out)
	})

	t.Run("replacement text is literal", func(t *testing.T) {
		out := Splicer{}.Splice(emptyTemplate, Content{Script: "var s = '$1 ${0}';"})
		assert.Contains(t, out, "var s = '$1 ${0}';")
	})
}

func TestSpliceNestedContent(t *testing.T) {
	page := `<div id="contents"><div>old</div></div><p>after</p>`

	out := Splicer{}.Splice(page, Content{Markup: "new"})
	assert.Equal(t, "<div id=\"contents\">\nnew\n</div></div><p>after</p>", out)

	out = Splicer{Strict: true}.Splice(page, Content{Markup: "new"})
	assert.Equal(t, "<div id=\"contents\">\nnew\n</div><p>after</p>", out)
}

func TestExtract(t *testing.T) {
	page := `<head><style id="style-container">.a{}</style></head>
<div id="contents"><div class="card"><div>x</div></div></div>
<script id="script-container">f()</script>`

	c, missing := Splicer{}.Extract(page)
	assert.Empty(t, missing)
	assert.Equal(t, ".a{}", c.Style)
	assert.Equal(t, `<div class="card"><div>x</div></div>`, c.Markup)
	assert.Equal(t, "f()", c.Script)

	c, missing = Splicer{}.Extract(`<div id="contents">only</div>`)
	assert.Equal(t, []Region{RegionStyle, RegionScript}, missing)
	assert.Equal(t, "only", c.Markup)

	tests := []struct {
		name string
		page string
		want string
	}{
		{"commented div", "<div id=\"contents\"><!-- <div class=\"old\"> -->\n<p>card</p></div><p>after</p>", "<!-- <div class=\"old\"> -->\n<p>card</p>"},
		{"self-closing div", "<div id=\"contents\"><div class=\"spacer\"/>\n<p>card</p></div><p>after</p>", "<div class=\"spacer\"/>\n<p>card</p>"},
		{"closing tag in comment", "<div id=\"contents\"><!-- </div> --><p>card</p></div>", "<!-- </div> --><p>card</p>"},
		{"unbalanced", "<div id=\"contents\"><div>open</div>", "<div>open"},
	}
	for _, tt := range tests {
		c, missing := Splicer{}.Extract(tt.page)
		assert.Contains(t, missing, RegionStyle, tt.name)
		assert.NotContains(t, missing, RegionContent, tt.name)
		assert.Equal(t, tt.want, c.Markup, tt.name)
	}
}

func TestLocate(t *testing.T) {
	locs := Splicer{}.Locate(emptyTemplate)

	assert.Len(t, locs, 3)
	assert.Equal(t, RegionStyle, locs[0].Region)
	assert.True(t, locs[0].Found)
	assert.Equal(t, "5:1", locs[0].Loc.String())
	assert.Equal(t, "8:1", locs[1].Loc.String())
	assert.Equal(t, "9:1", locs[2].Loc.String())

	locs = Splicer{}.Locate("<p></p>")
	for _, l := range locs {
		assert.False(t, l.Found, l.Region.String())
	}
}

func TestRenderPim(t *testing.T) {
	out := RenderPim(Content{Style: ".a{}", Markup: "<p>x</p>", Script: "f()"})
	assert.Equal(t, `<style id="style-container">.a{}</style>
<div id="contents"><p>x</p></div>
<script id="script-container">f()</script>
`, out)
}

func TestRegionNames(t *testing.T) {
	assert.Equal(t, "style", RegionStyle.String())
	assert.Equal(t, "content", RegionContent.String())
	assert.Equal(t, "script", RegionScript.String())
	assert.Equal(t, "div#contents", RegionContent.Selector())
}
