package theory

import (
	"errors"
	"testing"

	"github.com/jsphweid/triadex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPitchClassesFollowStandardTuning(t *testing.T) {
	expected := map[model.StringIndex]int{1: 4, 2: 11, 3: 7, 4: 2, 5: 9, 6: 4}
	for s, pc := range expected {
		assert.Equal(t, pc, OpenPitchClass(s), "string %d", s)
	}
}

func TestStringsInSetAreAdjacentLowestFirst(t *testing.T) {
	for _, set := range StringSets() {
		strs := StringsInSet(set)
		assert.Equal(t, strs[0]-1, strs[1], "set %v", set)
		assert.Equal(t, strs[1]-1, strs[2], "set %v", set)
	}
	assert.Equal(t, [3]model.StringIndex{3, 2, 1}, StringsInSet(model.SetI))
	assert.Equal(t, [3]model.StringIndex{6, 5, 4}, StringsInSet(model.SetIV))
}

func TestRoleIntervals(t *testing.T) {
	cases := []struct {
		quality  model.Quality
		expected [3]int
	}{
		{model.Major, [3]int{0, 4, 7}},
		{model.Minor, [3]int{0, 3, 7}},
		{model.Diminished, [3]int{0, 3, 6}},
	}

	for _, c := range cases {
		t.Run(c.quality.String(), func(t *testing.T) {
			for i, role := range []model.Role{model.Root, model.Third, model.Fifth} {
				assert.Equal(t, c.expected[i], IntervalSemitones(RoleInterval(c.quality, role)))
			}
		})
	}
}

func TestParseNote(t *testing.T) {
	cases := map[string]int{
		"C":   0,
		"c":   0,
		"C#":  1,
		"Db":  1,
		"D♭":  1,
		"F♯":  6,
		"bb":  10,
		"B#":  0,
		"Cb":  11,
		"E#":  5,
		"G##": 9,
		" A ": 9,
	}

	for input, pc := range cases {
		t.Run(input, func(t *testing.T) {
			n, err := ParseNote(input)
			require.NoError(t, err)
			assert.Equal(t, pc, n.PitchClass)
		})
	}
}

func TestParseNoteKeepsSpellingButComparesByPitchClass(t *testing.T) {
	sharp, err := ParseNote("C#")
	require.NoError(t, err)
	flat, err := ParseNote("Db")
	require.NoError(t, err)

	assert.Equal(t, "C#", sharp.Spelling)
	assert.Equal(t, "Db", flat.Spelling)
	assert.True(t, sharp.Equal(flat))
}

func TestParseRejectsUnknownValues(t *testing.T) {
	_, err := ParseNote("H")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	_, err = ParseNote("C#x")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	_, err = ParseNote("")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	_, err = ParseQuality("augmented")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	_, err = ParseShape("G")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
	_, err = ParseStringSet("V")
	assert.True(t, errors.Is(err, model.ErrInvalidInput))
}

func TestParseQualityAliases(t *testing.T) {
	cases := map[string]model.Quality{
		"Major":      model.Major,
		"maj":        model.Major,
		"M":          model.Major,
		"minor":      model.Minor,
		"m":          model.Minor,
		"Dim":        model.Diminished,
		"diminished": model.Diminished,
		"°":          model.Diminished,
	}
	for input, q := range cases {
		parsed, err := ParseQuality(input)
		require.NoError(t, err, input)
		assert.Equal(t, q, parsed, input)
	}
}

func TestParseStringSetAcceptsNumerals(t *testing.T) {
	for i, set := range StringSets() {
		roman, err := ParseStringSet(set.String())
		require.NoError(t, err)
		assert.Equal(t, set, roman)

		arabic, err := ParseStringSet(string(rune('1' + i)))
		require.NoError(t, err)
		assert.Equal(t, set, arabic)
	}
}

func TestNoteFromPitchClassWraps(t *testing.T) {
	assert.Equal(t, "A#", NoteFromPitchClass(10, false).Spelling)
	assert.Equal(t, "Bb", NoteFromPitchClass(-2, true).Spelling)
	assert.Equal(t, 10, NoteFromPitchClass(22, true).PitchClass)
}
