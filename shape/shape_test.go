package shape

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCombinationCarriesEachRoleOnce(t *testing.T) {
	for _, set := range theory.StringSets() {
		for _, shape := range theory.Shapes() {
			name := fmt.Sprintf("shape %v on set %v", shape, set)
			t.Run(name, func(t *testing.T) {
				assignments, err := RolesForShape(set, shape)
				require.NoError(t, err)

				roles := map[model.Role]int{}
				for _, a := range assignments {
					roles[a.Role]++
				}
				assert.Equal(t, map[model.Role]int{model.Root: 1, model.Third: 1, model.Fifth: 1}, roles)
			})
		}
	}
}

func TestAnchorStrings(t *testing.T) {
	cases := []struct {
		shape  model.ShapeName
		anchor model.StringIndex
	}{
		{model.ShapeA, 3},
		{model.ShapeD, 2},
		{model.ShapeE, 1},
	}

	for _, c := range cases {
		idx, err := AnchorIndex(c.shape)
		require.NoError(t, err)

		assignments, err := RolesForShape(model.SetI, c.shape)
		require.NoError(t, err)
		assert.Equal(t, c.anchor, assignments[idx].String)
		assert.Equal(t, model.Root, assignments[idx].Role)
	}
}

func TestSetIIIDShape(t *testing.T) {
	assignments, err := RolesForShape(model.SetIII, model.ShapeD)
	require.NoError(t, err)
	assert.Equal(t, [3]Assignment{
		{String: 5, Role: model.Fifth},
		{String: 4, Role: model.Root},
		{String: 3, Role: model.Third},
	}, assignments)
}

func TestRejectsUnknownShapeAndSet(t *testing.T) {
	_, err := RolesForShape(model.SetI, model.ShapeName(9))
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = RolesForShape(model.StringSet(0), model.ShapeE)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))

	_, err = AnchorIndex(0)
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}
