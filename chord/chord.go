package chord

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/theory"
)

var ErrNoRoots = errors.New("no roots selected")

type Direction string

const (
	Clockwise        Direction = "right"
	CounterClockwise Direction = "left"
)

// GenerateRandom picks a root and quality. With more than one root to choose
// from it never repeats previous's root.
func GenerateRandom(rng *rand.Rand, roots []model.Note, previous *model.Chord, qualities []model.Quality) (model.Chord, error) {
	if len(roots) == 0 {
		return model.Chord{}, ErrNoRoots
	}
	if len(qualities) == 0 {
		qualities = theory.Qualities()
	}

	candidates := roots
	if len(roots) > 1 && previous != nil {
		candidates = nil
		for _, n := range roots {
			if !n.Equal(previous.Root) {
				candidates = append(candidates, n)
			}
		}
		// every root repeats the previous one
		if len(candidates) == 0 {
			candidates = roots
		}
	}

	return model.Chord{
		Root:    candidates[rng.Intn(len(candidates))],
		Quality: qualities[rng.Intn(len(qualities))],
	}, nil
}

func PickShape(rng *rand.Rand, previous *model.ShapeName) model.ShapeName {
	var candidates []model.ShapeName
	for _, s := range theory.Shapes() {
		if previous == nil || s != *previous {
			candidates = append(candidates, s)
		}
	}
	return candidates[rng.Intn(len(candidates))]
}

// CircleOfFifths walks all twelve roots from C, by fifths when clockwise and
// by fourths otherwise, expanding each root into every quality.
func CircleOfFifths(dir Direction, qualities []model.Quality) ([]model.Chord, error) {
	step, flats := 7, false
	switch dir {
	case Clockwise:
	case CounterClockwise:
		step, flats = 5, true
	default:
		return nil, fmt.Errorf("%w: direction %q", model.ErrInvalidInput, dir)
	}
	if len(qualities) == 0 {
		qualities = theory.Qualities()
	}

	var res []model.Chord
	for i := 0; i < 12; i++ {
		root := theory.NoteFromPitchClass(i*step, flats)
		for _, q := range qualities {
			res = append(res, model.Chord{Root: root, Quality: q})
		}
	}
	return res, nil
}

// Next returns the chord after current, wrapping around. It starts over when
// current is nil or not part of the progression.
func Next(current *model.Chord, progression []model.Chord) (model.Chord, bool) {
	if len(progression) == 0 {
		return model.Chord{}, false
	}
	if current == nil {
		return progression[0], true
	}
	for i, c := range progression {
		if c.Root.Equal(current.Root) && c.Quality == current.Quality {
			return progression[(i+1)%len(progression)], true
		}
	}
	return progression[0], true
}

// NoteNames spells the triad's tones in one octave, e.g. C4 E4 G4.
func NoteNames(c model.Chord, octave int) []string {
	flats := len(c.Root.Spelling) > 1 && c.Root.Spelling[1] == 'b'
	var res []string
	for _, role := range []model.Role{model.Root, model.Third, model.Fifth} {
		pc := c.Root.PitchClass + theory.IntervalSemitones(theory.RoleInterval(c.Quality, role))
		res = append(res, fmt.Sprintf("%v%d", theory.NoteFromPitchClass(pc, flats).Spelling, octave))
	}
	return res
}

func Format(c model.Chord) string {
	return fmt.Sprintf("%v %v", c.Root, c.Quality)
}
