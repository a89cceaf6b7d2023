package main

import (
	"os"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/config"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/journal"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "els",
		Short:        "Emotion-layer canonical pipeline",
		Long:         "els runs a single scalar emotion signal through normalization,\nthe depth transform, and safety gating, and republishes the result\nfor downstream consumers.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config",
		os.Getenv("ELS_CONFIG"), "path to YAML config file")

	root.AddCommand(newStepCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newReplayCmd())
	root.AddCommand(newInspectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// #region helpers

// loadConfig reads the config file named by --config (optional) plus env.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// openJournal opens the configured journal, or returns nil when disabled.
func openJournal(cfg *config.Config) (*journal.Store, error) {
	if cfg.Journal.Path == "" {
		return nil, nil
	}
	return journal.NewStore(cfg.Journal.Path)
}

// #endregion helpers
