package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/practice"
	"github.com/jsphweid/triadex/theory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	drillRoots     []string
	drillQualities []string
	drillSets      []string
	drillMode      string
	drillSeed      int64
	drillSave      bool
)

func init() {
	drillCmd.Flags().StringSliceVar(&drillRoots, "roots", nil, "roots to practice (default: all twelve)")
	drillCmd.Flags().StringSliceVar(&drillQualities, "qualities", nil, "qualities to practice (default: all)")
	drillCmd.Flags().StringSliceVar(&drillSets, "sets", nil, "string sets to practice (default: all)")
	drillCmd.Flags().StringVar(&drillMode, "mode", string(practice.Random), "random or circle")
	drillCmd.Flags().Int64Var(&drillSeed, "seed", time.Now().UnixNano(), "random seed")
	drillCmd.Flags().BoolVar(&drillSave, "save", false, "save the session to DynamoDB")
	rootCmd.AddCommand(drillCmd)
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice triads interactively",
	Long:  `Shows a new triad every time enter is pressed. Type q to quit.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := drillOptions()
		if err != nil {
			return err
		}
		session, err := practice.NewSession(opts)
		if err != nil {
			return err
		}

		runDrill(cmd.InOrStdin(), cmd.OutOrStdout(), session, 150*time.Millisecond)

		if drillSave {
			return saveSession(cmd.Context(), session)
		}
		return nil
	},
}

func drillOptions() (practice.Options, error) {
	opts := practice.Options{
		Mode:   practice.Mode(drillMode),
		Policy: currentPolicy(),
		Seed:   drillSeed,
	}
	for _, s := range drillRoots {
		n, err := theory.ParseNote(s)
		if err != nil {
			return opts, err
		}
		opts.Roots = append(opts.Roots, n)
	}
	for _, s := range drillQualities {
		q, err := theory.ParseQuality(s)
		if err != nil {
			return opts, err
		}
		opts.Qualities = append(opts.Qualities, q)
	}
	for _, s := range drillSets {
		set, err := theory.ParseStringSet(s)
		if err != nil {
			return opts, err
		}
		opts.Sets = append(opts.Sets, set)
	}
	return opts, nil
}

func runDrill(in io.Reader, out io.Writer, session *practice.Session, wait time.Duration) {
	driver := practice.NewDriver(session, wait, func(v model.Voicing, err error) {
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		printVoicing(out, v)
		fmt.Fprintln(out)
	})

	// the first voicing needs no key press
	driver.Trigger()
	driver.Settle()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "q" {
			break
		}
		driver.Trigger()
	}
	driver.Settle()
	logger.Debug("drill finished", zap.Int("chords", len(session.History)))
}

func saveSession(ctx context.Context, session *practice.Session) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	rec := session.Record()
	if err := store.PutSession(ctx, rec); err != nil {
		return err
	}
	logger.Info("session saved", zap.String("id", rec.ID), zap.Int("chords", len(rec.Keys)))
	return nil
}
