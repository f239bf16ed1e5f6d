package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsphweid/triadex/catalog"
	"github.com/jsphweid/triadex/db"
	"github.com/jsphweid/triadex/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var publish bool

func init() {
	indexCmd.Flags().BoolVar(&publish, "publish", false, "also write the solved voicings to DynamoDB")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Creates the voicing catalog",
	Long:  `Solves every root, quality, shape and set and saves the catalog to the index directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := Index()
		if err != nil {
			return err
		}
		if publish {
			return publishCatalog(cmd.Context(), entries)
		}
		return nil
	},
}

// Index builds the catalog under the current policy and writes it to disk.
func Index() ([]model.CatalogEntry, error) {
	policy := currentPolicy()
	entries := catalog.Build(policy)
	if err := catalog.Save(cfg.IndexDir, policy, entries); err != nil {
		return nil, fmt.Errorf("saving catalog: %w", err)
	}
	s := catalog.Summarize(entries)
	logger.Info("catalog created",
		zap.String("path", catalog.GetPath(cfg.IndexDir)),
		zap.Int("solved", s.Solved),
		zap.Int("unsolvable", len(s.Unsolvable)))
	return entries, nil
}

func newStore() (*db.Store, error) {
	if cfg.DynamoEndpoint == "" {
		return nil, errors.New("TRIADEX_DYNAMO_ENDPOINT is not set")
	}
	client, err := db.NewClient(cfg.DynamoEndpoint, cfg.DynamoRegion)
	if err != nil {
		return nil, err
	}
	return db.NewStore(client, cfg.Table), nil
}

func publishCatalog(ctx context.Context, entries []model.CatalogEntry) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	var voicings []model.Voicing
	for _, e := range entries {
		if e.Err == "" {
			voicings = append(voicings, e.Voicing)
		}
	}
	if err := store.PutVoicings(ctx, voicings); err != nil {
		return err
	}
	logger.Info("catalog published", zap.String("table", cfg.Table), zap.Int("voicings", len(voicings)))
	return nil
}
