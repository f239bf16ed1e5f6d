package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/jsphweid/triadex/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(sessionCmd)
}

var sessionCmd = &cobra.Command{
	Use:   "session <id>",
	Short: "Replays a saved drill session",
	Long:  `Prints every voicing of a session saved with "drill --save", read from the published catalog table.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore()
		if err != nil {
			return err
		}
		return showSession(cmd.Context(), cmd.OutOrStdout(), store, args[0])
	},
}

type sessionStore interface {
	GetSession(ctx context.Context, id string) (model.SessionRecord, bool, error)
	GetVoicings(ctx context.Context, keys []string) (map[string]model.Voicing, error)
}

func showSession(ctx context.Context, w io.Writer, store sessionStore, id string) error {
	rec, ok, err := store.GetSession(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("session %v not found", id)
	}

	voicings, err := store.GetVoicings(ctx, rec.Keys)
	if err != nil {
		return err
	}
	logger.Debug("session loaded", zap.String("id", id), zap.Int("chords", len(rec.Keys)), zap.Int("found", len(voicings)))

	fmt.Fprintf(w, "session %v, started %v\n\n", rec.ID, rec.StartedAt.Format("2006-01-02 15:04"))
	for _, key := range rec.Keys {
		v, ok := voicings[key]
		if !ok {
			// stretch voicings are only published when indexed with --stretch
			fmt.Fprintf(w, "%v: not published\n\n", key)
			continue
		}
		printVoicing(w, v)
		fmt.Fprintln(w)
	}
	return nil
}
