package cmd

import (
	"fmt"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/fretboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop()
	cfg    = constants.FromEnv()

	configPath string
	verbose    bool
	allowOpen  bool
	stretch    bool
)

var rootCmd = &cobra.Command{
	Use:   "triadex",
	Short: "Triad shapes on three-string sets",
	Long: `triadex places major, minor and diminished triads on the four
three-string sets of a standard-tuned guitar, within a four-fret span.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l

		loaded, err := constants.Load(configPath)
		if err != nil {
			return err
		}
		// flags win over the config file
		if cmd.Flags().Changed("open") {
			loaded.AllowOpen = allowOpen
		}
		if cmd.Flags().Changed("stretch") {
			loaded.Stretch = stretch
		}
		cfg = loaded
		logger.Debug("config loaded", zap.String("path", configPath), zap.String("index_dir", cfg.IndexDir))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&allowOpen, "open", false, "allow open strings (fret 0)")
	rootCmd.PersistentFlags().BoolVar(&stretch, "stretch", false, "allow a five-fret span")
}

func policyFor(open, wide bool) fretboard.Policy {
	p := fretboard.DefaultPolicy()
	if wide {
		p = fretboard.StretchPolicy()
	}
	p.AllowOpen = open
	return p
}

func currentPolicy() fretboard.Policy {
	return policyFor(cfg.AllowOpen, cfg.Stretch)
}

// UseConfig replaces the config for callers that skip the root command.
func UseConfig(c constants.Config) {
	cfg = c
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
