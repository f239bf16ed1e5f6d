package fretboard

import (
	"fmt"

	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/shape"
	"github.com/jsphweid/triadex/theory"
	"github.com/jsphweid/triadex/util"
)

// topology is the semitone step between adjacent open strings of a set,
// lowest pair first. Sets III and IV share {5, 5}; I is {4, 5} and II {5, 4}.
type topology [2]int

// pattern holds fret offsets relative to the anchor string, lowest string first.
type pattern struct {
	offsets [3]int
	span    int
}

type patternKey struct {
	topology topology
	shape    model.ShapeName
	quality  model.Quality
}

var patterns = map[patternKey]pattern{}

func init() {
	for _, set := range theory.StringSets() {
		topo := topologyOf(set)
		for _, sh := range theory.Shapes() {
			for _, q := range theory.Qualities() {
				key := patternKey{topology: topo, shape: sh, quality: q}
				if _, ok := patterns[key]; ok {
					continue
				}
				p := derivePattern(topo, sh, q)
				checkPattern(topo, sh, q, p)
				patterns[key] = p
			}
		}
	}
}

func topologyOf(set model.StringSet) topology {
	strs := theory.StringsInSet(set)
	var topo topology
	for i := 0; i < 2; i++ {
		topo[i] = theory.Mod12(theory.OpenPitchClass(strs[i+1]) - theory.OpenPitchClass(strs[i]))
	}
	return topo
}

// relative open pitch of each position, lowest string at 0
func (t topology) heights() [3]int {
	return [3]int{0, t[0], t[0] + t[1]}
}

// targets are the semitones above the root each position must sound
func targets(sh model.ShapeName, q model.Quality) [3]int {
	layout, err := shape.Layout(sh)
	if err != nil {
		panic(err)
	}
	var res [3]int
	for i, role := range layout {
		res[i] = theory.IntervalSemitones(theory.RoleInterval(q, role))
	}
	return res
}

func derivePattern(topo topology, sh model.ShapeName, q model.Quality) pattern {
	anchor, err := shape.AnchorIndex(sh)
	if err != nil {
		panic(err)
	}
	heights := topo.heights()
	tgts := targets(sh, q)

	// lowest non-negative offset per position; the anchor is fixed at 0
	var base [3]int
	for i := range base {
		base[i] = theory.Mod12(tgts[i] - (heights[i] - heights[anchor]))
	}

	var best pattern
	bestDistance := -1
	// each non-anchor position may also sit an octave lower
	for mask := 0; mask < 8; mask++ {
		if mask&(1<<anchor) != 0 {
			continue
		}
		var offsets [3]int
		distance := 0
		for i := range offsets {
			offsets[i] = base[i]
			if mask&(1<<i) != 0 {
				offsets[i] -= 12
			}
			distance += util.Abs(offsets[i])
		}
		span := util.Max(offsets[:]...) - util.Min(offsets[:]...)
		if bestDistance < 0 || span < best.span || (span == best.span && distance < bestDistance) {
			best = pattern{offsets: offsets, span: span}
			bestDistance = distance
		}
	}
	return best
}

func checkPattern(topo topology, sh model.ShapeName, q model.Quality, p pattern) {
	anchor, _ := shape.AnchorIndex(sh)
	heights := topo.heights()
	tgts := targets(sh, q)
	for i, offset := range p.offsets {
		got := theory.Mod12(heights[i] - heights[anchor] + offset)
		if got != tgts[i] {
			panic(fmt.Sprintf("pattern %v/%v/%v position %d sounds %d, want %d", topo, sh, q, i, got, tgts[i]))
		}
	}
	if p.offsets[anchor] != 0 {
		panic(fmt.Sprintf("pattern %v/%v/%v moves its anchor", topo, sh, q))
	}
}

func lookup(set model.StringSet, sh model.ShapeName, q model.Quality) pattern {
	p, ok := patterns[patternKey{topology: topologyOf(set), shape: sh, quality: q}]
	if !ok {
		panic(fmt.Sprintf("no pattern for %v/%v/%v", set, sh, q))
	}
	return p
}
