package model

import "path"

// Variant names a page template under templates/.
type Variant string

const (
	VariantIndex Variant = "index"
	VariantRTL   Variant = "index-rtl"
	VariantPim   Variant = "index-pim"
)

// FileName is the template and output file name for the variant.
func (v Variant) FileName() string {
	return string(v) + ".html"
}

// Project is a source tree under <src>/<name>. It is never written to by
// the builder.
type Project struct {
	Name string
	Dir  string
}

func NewProject(srcDir, name string) *Project {
	return &Project{Name: name, Dir: path.Join(srcDir, name)}
}

func (prj *Project) TemplatesDir() string     { return path.Join(prj.Dir, "templates") }
func (prj *Project) ComponentsDir() string    { return path.Join(prj.Dir, "components") }
func (prj *Project) CommonStylesDir() string  { return path.Join(prj.Dir, "common", "styles") }
func (prj *Project) CommonScriptsDir() string { return path.Join(prj.Dir, "common", "scripts") }
func (prj *Project) ImagesDir() string        { return path.Join(prj.Dir, "images") }
func (prj *Project) VideosDir() string        { return path.Join(prj.Dir, "videos") }

func (prj *Project) TemplatePath(v Variant) string {
	return path.Join(prj.TemplatesDir(), v.FileName())
}
