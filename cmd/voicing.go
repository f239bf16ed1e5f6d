package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/fretboard"
	"github.com/jsphweid/triadex/midi"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/theory"
	"github.com/jsphweid/triadex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(voicingCmd)
}

var voicingCmd = &cobra.Command{
	Use:     "voicing <root> <quality> <shape> <set>",
	Short:   "Prints the frets for one triad",
	Long:    `Prints the frets for one triad, e.g. "triadex voicing F# Major A II".`,
	Example: "triadex voicing Bb minor E III",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := solveStrings(args[0], args[1], args[2], args[3], currentPolicy())
		if err != nil {
			return err
		}
		frets := v.Frets()
		logger.Debug("solved", zap.String("key", v.Key()), zap.Ints("frets", frets[:]))
		printVoicing(cmd.OutOrStdout(), v)
		return nil
	},
}

func parseVoicingArgs(rootArg, qualityArg, shapeArg, setArg string) (root model.Note, q model.Quality, sh model.ShapeName, set model.StringSet, err error) {
	if root, err = theory.ParseNote(rootArg); err != nil {
		return
	}
	if q, err = theory.ParseQuality(qualityArg); err != nil {
		return
	}
	if sh, err = theory.ParseShape(shapeArg); err != nil {
		return
	}
	set, err = theory.ParseStringSet(setArg)
	return
}

func solveStrings(rootArg, qualityArg, shapeArg, setArg string, policy fretboard.Policy) (model.Voicing, error) {
	root, q, sh, set, err := parseVoicingArgs(rootArg, qualityArg, shapeArg, setArg)
	if err != nil {
		return model.Voicing{}, err
	}
	return fretboard.Solve(root, q, sh, set, policy)
}

// printVoicing draws the voicing's strings highest first, like a tab.
func printVoicing(w io.Writer, v model.Voicing) {
	c := model.Chord{Root: v.Root, Quality: v.Quality}
	fmt.Fprintf(w, "%v, shape %v, set %v (%v)\n", chord.Format(c), v.Shape, v.Set, strings.Join(chord.NoteNames(c, 4), " "))

	low := v.MinFret()
	fmt.Fprintf(w, "fret %d\n", low)
	keys := midi.SoundingKeys(v)
	for i := len(v.Positions) - 1; i >= 0; i-- {
		p := v.Positions[i]
		var cells []string
		for f := low; f <= util.Max(low+3, v.MaxFret()); f++ {
			if f == p.Fret {
				cells = append(cells, fmt.Sprintf("%-3v", p.Interval))
			} else {
				cells = append(cells, "---")
			}
		}
		fmt.Fprintf(w, "%d |%v| fret %-2d key %d\n", p.String, strings.Join(cells, "|"), p.Fret, keys[i])
	}
}
