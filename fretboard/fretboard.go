// Package fretboard places a triad on three adjacent strings.
//
// Fret offsets relative to the root-carrying (anchor) string are precomputed
// per shape, quality and string-set topology, so solving is a lookup plus
// one modular computation for the anchor fret.
package fretboard

import (
	"fmt"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/shape"
	"github.com/jsphweid/triadex/theory"
	"github.com/jsphweid/triadex/util"
)

type Policy struct {
	// permit fret 0; otherwise every position is fretted
	AllowOpen bool
	// zero means constants.MaxSpan
	MaxSpan int
}

func DefaultPolicy() Policy {
	return Policy{MaxSpan: constants.MaxSpan}
}

func StretchPolicy() Policy {
	return Policy{MaxSpan: constants.StretchMaxSpan}
}

// Limit is the widest span the policy accepts.
func (p Policy) Limit() int {
	if p.MaxSpan == 0 {
		return constants.MaxSpan
	}
	return p.MaxSpan
}

func (p Policy) Floor() int {
	if p.AllowOpen {
		return 0
	}
	return 1
}

func checkInputs(q model.Quality, sh model.ShapeName, set model.StringSet) error {
	if !q.Valid() {
		return fmt.Errorf("%w: quality %d", model.ErrInvalidInput, q)
	}
	if !sh.Valid() {
		return fmt.Errorf("%w: shape %d", model.ErrInvalidInput, sh)
	}
	if !set.Valid() {
		return fmt.Errorf("%w: string set %d", model.ErrInvalidInput, set)
	}
	return nil
}

func Solvable(q model.Quality, sh model.ShapeName, set model.StringSet, policy Policy) bool {
	if checkInputs(q, sh, set) != nil {
		return false
	}
	return lookup(set, sh, q).span <= policy.Limit()
}

func Solve(root model.Note, q model.Quality, sh model.ShapeName, set model.StringSet, policy Policy) (model.Voicing, error) {
	v := model.Voicing{Root: root, Quality: q, Shape: sh, Set: set}
	if err := checkInputs(q, sh, set); err != nil {
		return v, err
	}
	if root.PitchClass < 0 || root.PitchClass > 11 {
		return v, fmt.Errorf("%w: pitch class %d", model.ErrInvalidInput, root.PitchClass)
	}

	p := lookup(set, sh, q)
	if p.span > policy.Limit() {
		return v, fmt.Errorf("%w: %v %v shape %v on set %v spans %d frets", model.ErrUnsolvableVoicing, root, q, sh, set, p.span+1)
	}

	assignments, _ := shape.RolesForShape(set, sh)
	anchor, _ := shape.AnchorIndex(sh)

	anchorFret := theory.Mod12(root.PitchClass - theory.OpenPitchClass(assignments[anchor].String))
	for anchorFret+util.Min(p.offsets[:]...) < policy.Floor() {
		anchorFret += 12
	}

	for i, a := range assignments {
		v.Positions[i] = model.FretPosition{
			String:   a.String,
			Fret:     anchorFret + p.offsets[i],
			Role:     a.Role,
			Interval: theory.RoleInterval(q, a.Role),
		}
	}

	if err := Validate(v, policy); err != nil {
		panic(fmt.Sprintf("solver produced an invalid voicing: %v", err))
	}
	return v, nil
}

// Validate checks a voicing against its own root, quality, shape and set.
func Validate(v model.Voicing, policy Policy) error {
	if err := checkInputs(v.Quality, v.Shape, v.Set); err != nil {
		return err
	}
	assignments, _ := shape.RolesForShape(v.Set, v.Shape)

	var seen [3]bool
	for i, pos := range v.Positions {
		if pos.String != assignments[i].String {
			return fmt.Errorf("position %d is on string %d, want %d", i, pos.String, assignments[i].String)
		}
		if pos.Role != assignments[i].Role || seen[pos.Role] {
			return fmt.Errorf("position %d carries %v, want %v", i, pos.Role, assignments[i].Role)
		}
		seen[pos.Role] = true

		want := theory.RoleInterval(v.Quality, pos.Role)
		if pos.Interval != want {
			return fmt.Errorf("position %d labelled %v, want %v", i, pos.Interval, want)
		}
		sounding := theory.Mod12(theory.OpenPitchClass(pos.String) + pos.Fret)
		target := theory.Mod12(v.Root.PitchClass + theory.IntervalSemitones(want))
		if sounding != target {
			return fmt.Errorf("string %d fret %d sounds pitch class %d, want %d", pos.String, pos.Fret, sounding, target)
		}
	}

	if v.MinFret() < policy.Floor() {
		return fmt.Errorf("fret %d is below %d", v.MinFret(), policy.Floor())
	}
	if v.Span() > policy.Limit() {
		return fmt.Errorf("%w: span %d exceeds %d", model.ErrUnsolvableVoicing, v.Span(), policy.Limit())
	}
	return nil
}

// Transpose moves every position by the same number of frets.
func Transpose(v model.Voicing, frets int) model.Voicing {
	for i := range v.Positions {
		v.Positions[i].Fret += frets
	}
	return v
}
