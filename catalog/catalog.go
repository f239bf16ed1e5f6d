package catalog

import (
	"path/filepath"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/fretboard"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/theory"
	"github.com/jsphweid/triadex/util"
)

type Summary struct {
	Total      int
	Solved     int
	Unsolvable []string
	// number of voicings per span
	Spans map[int]int
}

// Build solves every root, quality, shape and set in enumeration order.
func Build(policy fretboard.Policy) []model.CatalogEntry {
	var res []model.CatalogEntry
	for _, root := range theory.PitchClasses() {
		for _, q := range theory.Qualities() {
			for _, sh := range theory.Shapes() {
				for _, set := range theory.StringSets() {
					entry := model.CatalogEntry{Key: model.VoicingKey(root, q, sh, set)}
					v, err := fretboard.Solve(root, q, sh, set, policy)
					if err != nil {
						entry.Err = err.Error()
					}
					entry.Voicing = v
					res = append(res, entry)
				}
			}
		}
	}
	return res
}

func Summarize(entries []model.CatalogEntry) Summary {
	s := Summary{Total: len(entries), Spans: map[int]int{}}
	for _, e := range entries {
		if e.Err != "" {
			s.Unsolvable = append(s.Unsolvable, e.Key)
			continue
		}
		s.Solved++
		s.Spans[e.Voicing.Span()]++
	}
	return s
}

func Index(entries []model.CatalogEntry) map[string]model.CatalogEntry {
	res := make(map[string]model.CatalogEntry, len(entries))
	for _, e := range entries {
		res[e.Key] = e
	}
	return res
}

// file is what Save writes: the entries and the policy they were solved under.
type file struct {
	Policy  fretboard.Policy
	Entries []model.CatalogEntry
}

func GetPath(dir string) string {
	return filepath.Join(dir, constants.CatalogFilename)
}

func Save(dir string, policy fretboard.Policy, entries []model.CatalogEntry) error {
	if err := util.EnsureDir(dir); err != nil {
		return err
	}
	return util.CreateBinary(GetPath(dir), file{Policy: policy, Entries: entries})
}

// Load returns the saved entries and the policy they were built with.
func Load(dir string) (fretboard.Policy, []model.CatalogEntry, error) {
	f, err := util.ReadBinary[file](GetPath(dir))
	if err != nil {
		return fretboard.Policy{}, nil, err
	}
	return f.Policy, f.Entries, nil
}
