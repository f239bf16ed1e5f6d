package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/practice"
	"github.com/jsphweid/triadex/sample"
	"github.com/jsphweid/triadex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportOut       string
	exportCount     int
	exportMode      string
	exportDirection string
	exportSeed      int64
	exportBPM       int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: a new file in the index directory)")
	exportCmd.Flags().IntVarP(&exportCount, "count", "n", 12, "number of chords")
	exportCmd.Flags().StringVar(&exportMode, "mode", string(practice.Random), "random or circle")
	exportCmd.Flags().StringVar(&exportDirection, "direction", string(chord.Clockwise), "circle direction: right or left")
	exportCmd.Flags().Int64Var(&exportSeed, "seed", 1, "random seed")
	exportCmd.Flags().IntVar(&exportBPM, "bpm", 0, "tempo (default from config)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Writes a practice progression as a MIDI file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := Export(exportOut, exportCount)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func Export(path string, count int) (string, error) {
	session, err := practice.NewSession(practice.Options{
		Mode:      practice.Mode(exportMode),
		Direction: chord.Direction(exportDirection),
		Policy:    currentPolicy(),
		Seed:      exportSeed,
	})
	if err != nil {
		return "", err
	}

	var voicings []model.Voicing
	for i := 0; i < count; i++ {
		v, err := session.Next()
		if err != nil {
			return "", err
		}
		voicings = append(voicings, v)
	}

	bpm := cfg.BPM
	if exportBPM > 0 {
		bpm = exportBPM
	}
	s, err := sample.Create(voicings, float64(bpm))
	if err != nil {
		return "", err
	}

	if path == "" {
		if err := util.EnsureDir(cfg.IndexDir); err != nil {
			return "", err
		}
		path = filepath.Join(cfg.IndexDir, uuid.New().String()+".mid")
	}
	if err := s.WriteFile(path); err != nil {
		return "", fmt.Errorf("writing %v: %w", path, err)
	}
	logger.Info("exported", zap.String("path", path), zap.Int("chords", len(voicings)), zap.Int("bpm", bpm))
	return path, nil
}
