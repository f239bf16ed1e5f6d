package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/triadex/midi"
	"github.com/jsphweid/triadex/sample"
	"github.com/jsphweid/triadex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file or dir>",
	Short: "Inspects exported MIDI files",
	Long:  `Lists the chords (as MIDI keys) found in a MIDI file or every MIDI file under a directory.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := []string{args[0]}
		if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
			paths, err = util.GatherAllMidiPaths(args[0], 0)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		for _, path := range paths {
			parsed, err := midi.ReadMidiFile(path)
			if err != nil {
				logger.Warn("skipping file", zap.String("path", path), zap.Error(err))
				continue
			}
			fmt.Fprintf(out, "%v\n", path)
			for i, keys := range midi.Chords(parsed, sample.ChordChannel) {
				fmt.Fprintf(out, "  bar %d: %v\n", i+1, keys)
			}
		}
		return nil
	},
}
