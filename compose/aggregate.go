package compose

import (
	"fmt"

	"github.com/adnsv/flagship/collect"
	"github.com/adnsv/flagship/model"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// AggregateComponents reads every fragment of the given kind below the
// components directory. A missing directory yields an empty set.
func AggregateComponents(fsys billy.Filesystem, dir string, kind model.Kind) (*model.FragmentSet, error) {
	return aggregate(fsys, dir, kind.ComponentPattern(), model.ScopeComponents, kind)
}

// AggregateCommon reads the shared fragments of a project, e.g. everything
// under common/scripts. A missing directory yields an empty set.
func AggregateCommon(fsys billy.Filesystem, dir string, kind model.Kind) (*model.FragmentSet, error) {
	return aggregate(fsys, dir, kind.CommonPattern(), model.ScopeCommon, kind)
}

func aggregate(fsys billy.Filesystem, root, pattern string, scope model.Scope, kind model.Kind) (*model.FragmentSet, error) {
	set := &model.FragmentSet{Scope: scope, Kind: kind}

	files, err := collect.CollectOptional(fsys, root, pattern)
	if err != nil {
		return nil, err
	}
	for _, fn := range files {
		buf, err := util.ReadFile(fsys, fn)
		if err != nil {
			return nil, fmt.Errorf("reading %s fragment: %w", kind, err)
		}
		set.Fragments = append(set.Fragments, &model.Fragment{
			Kind:    kind,
			RelPath: collect.Rel(root, fn),
			Text:    string(buf),
		})
	}
	return set, nil
}

// Ordered returns the annotated texts of the common set followed by those
// of the component set. Shared code always loads first.
func Ordered(common, components *model.FragmentSet) []string {
	return append(common.Texts(), components.Texts()...)
}
