package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/triadex/catalog"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Reports span statistics for the saved catalog, building it when none is saved.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, entries, err := catalog.Load(cfg.IndexDir)
		if err != nil {
			logger.Info("no saved catalog, building one", zap.Error(err))
			entries = catalog.Build(currentPolicy())
		}
		report(cmd.OutOrStdout(), entries)
		return nil
	},
}

func report(w io.Writer, entries []model.CatalogEntry) {
	s := catalog.Summarize(entries)
	fmt.Fprintf(w, "combinations: %v\n", s.Total)
	fmt.Fprintf(w, "solved: %v\n", s.Solved)
	for _, span := range util.GetKeys(s.Spans) {
		fmt.Fprintf(w, "span %v: %v\n", span, s.Spans[span])
	}
	fmt.Fprintf(w, "unsolvable: %v\n", len(s.Unsolvable))
	for _, key := range s.Unsolvable {
		fmt.Fprintf(w, "  %v\n", key)
	}
}
