package shape

import (
	"fmt"

	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/theory"
)

type Assignment struct {
	String model.StringIndex
	Role   model.Role
}

// roles per shape, lowest string of the set first
var layouts = map[model.ShapeName][3]model.Role{
	model.ShapeD: {model.Fifth, model.Root, model.Third},
	model.ShapeA: {model.Root, model.Third, model.Fifth},
	model.ShapeE: {model.Third, model.Fifth, model.Root},
}

func init() {
	for name, layout := range layouts {
		var seen [3]bool
		for _, role := range layout {
			if seen[role] {
				panic(fmt.Sprintf("shape %v carries %v twice", name, role))
			}
			seen[role] = true
		}
	}
}

func Layout(shape model.ShapeName) ([3]model.Role, error) {
	layout, ok := layouts[shape]
	if !ok {
		return layout, fmt.Errorf("%w: shape %d", model.ErrInvalidInput, shape)
	}
	return layout, nil
}

// AnchorIndex is the position within the set (0 = lowest string) of the root.
func AnchorIndex(shape model.ShapeName) (int, error) {
	layout, err := Layout(shape)
	if err != nil {
		return 0, err
	}
	for i, role := range layout {
		if role == model.Root {
			return i, nil
		}
	}
	panic("unreachable: layouts are checked at init")
}

func RolesForShape(set model.StringSet, shape model.ShapeName) ([3]Assignment, error) {
	var res [3]Assignment
	if !set.Valid() {
		return res, fmt.Errorf("%w: string set %d", model.ErrInvalidInput, set)
	}
	layout, err := Layout(shape)
	if err != nil {
		return res, err
	}

	for i, s := range theory.StringsInSet(set) {
		res[i] = Assignment{String: s, Role: layout[i]}
	}
	return res, nil
}
