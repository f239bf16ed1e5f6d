package theory

import (
	"fmt"
	"strings"

	"github.com/jsphweid/triadex/model"
)

// index 0 unused so the table reads by string number
var openPitchClasses = [model.NumStrings + 1]int{0, 4, 11, 7, 2, 9, 4}

var setStrings = map[model.StringSet][3]model.StringIndex{
	model.SetI:   {3, 2, 1},
	model.SetII:  {4, 3, 2},
	model.SetIII: {5, 4, 3},
	model.SetIV:  {6, 5, 4},
}

var intervalSemitones = map[model.Interval]int{
	model.PerfectUnison:   0,
	model.MinorThird:      3,
	model.MajorThird:      4,
	model.DiminishedFifth: 6,
	model.PerfectFifth:    7,
}

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var letterPitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

func OpenPitchClass(s model.StringIndex) int {
	if !s.Valid() {
		panic(fmt.Sprintf("no open pitch class for string %d", s))
	}
	return openPitchClasses[s]
}

// StringsInSet returns the set's strings, lowest-pitched first.
func StringsInSet(set model.StringSet) [3]model.StringIndex {
	strs, ok := setStrings[set]
	if !ok {
		panic(fmt.Sprintf("unknown string set %d", set))
	}
	return strs
}

func IntervalSemitones(i model.Interval) int {
	st, ok := intervalSemitones[i]
	if !ok {
		panic(fmt.Sprintf("unknown interval %d", i))
	}
	return st
}

func RoleInterval(q model.Quality, r model.Role) model.Interval {
	switch r {
	case model.Root:
		return model.PerfectUnison
	case model.Third:
		if q == model.Major {
			return model.MajorThird
		}
		return model.MinorThird
	case model.Fifth:
		if q == model.Diminished {
			return model.DiminishedFifth
		}
		return model.PerfectFifth
	}
	panic(fmt.Sprintf("unknown role %d", r))
}

// Mod12 is a non-negative remainder.
func Mod12(n int) int {
	return ((n % 12) + 12) % 12
}

func NoteFromPitchClass(pc int, flats bool) model.Note {
	pc = Mod12(pc)
	if flats {
		return model.Note{PitchClass: pc, Spelling: flatNames[pc]}
	}
	return model.Note{PitchClass: pc, Spelling: sharpNames[pc]}
}

// ParseNote accepts a letter followed by any number of sharps or flats.
func ParseNote(s string) (model.Note, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return model.Note{}, fmt.Errorf("%w: empty note", model.ErrInvalidInput)
	}

	letter := strings.ToUpper(trimmed[:1])[0]
	pc, ok := letterPitchClasses[letter]
	if !ok {
		return model.Note{}, fmt.Errorf("%w: note %q", model.ErrInvalidInput, s)
	}

	spelling := string(letter)
	for _, r := range trimmed[1:] {
		switch r {
		case '#', '♯':
			pc++
			spelling += "#"
		case 'b', '♭':
			pc--
			spelling += "b"
		default:
			return model.Note{}, fmt.Errorf("%w: note %q", model.ErrInvalidInput, s)
		}
	}

	return model.Note{PitchClass: Mod12(pc), Spelling: spelling}, nil
}

func ParseQuality(s string) (model.Quality, error) {
	trimmed := strings.TrimSpace(s)
	// "M" and "m" differ only by case
	switch trimmed {
	case "M":
		return model.Major, nil
	case "m":
		return model.Minor, nil
	}
	switch strings.ToLower(trimmed) {
	case "major", "maj":
		return model.Major, nil
	case "minor", "min":
		return model.Minor, nil
	case "dim", "diminished", "°", "o":
		return model.Diminished, nil
	}
	return 0, fmt.Errorf("%w: quality %q", model.ErrInvalidInput, s)
}

func ParseShape(s string) (model.ShapeName, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "D":
		return model.ShapeD, nil
	case "A":
		return model.ShapeA, nil
	case "E":
		return model.ShapeE, nil
	}
	return 0, fmt.Errorf("%w: shape %q", model.ErrInvalidInput, s)
}

func ParseStringSet(s string) (model.StringSet, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "I", "1":
		return model.SetI, nil
	case "II", "2":
		return model.SetII, nil
	case "III", "3":
		return model.SetIII, nil
	case "IV", "4":
		return model.SetIV, nil
	}
	return 0, fmt.Errorf("%w: string set %q", model.ErrInvalidInput, s)
}

func PitchClasses() []model.Note {
	res := make([]model.Note, 0, 12)
	for pc := 0; pc < 12; pc++ {
		res = append(res, NoteFromPitchClass(pc, false))
	}
	return res
}

func Qualities() []model.Quality {
	return []model.Quality{model.Major, model.Minor, model.Diminished}
}

func Shapes() []model.ShapeName {
	return []model.ShapeName{model.ShapeD, model.ShapeA, model.ShapeE}
}

func StringSets() []model.StringSet {
	return []model.StringSet{model.SetI, model.SetII, model.SetIII, model.SetIV}
}
