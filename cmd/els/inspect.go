package main

import (
	"fmt"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/gate"
	"github.com/spf13/cobra"
)

// #region inspect-command
func newInspectCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Dump recent journaled pipeline steps and per-level counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Journal.Path == "" {
				return fmt.Errorf("no journal configured (set journal.path or ELS_JOURNAL_PATH)")
			}

			store, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			steps, err := store.Recent(limit)
			if err != nil {
				return err
			}
			counts, err := store.CountByLevel()
			if err != nil {
				return err
			}

			for _, res := range steps {
				fmt.Fprintf(cmd.OutOrStdout(),
					"%s  raw=%+.4f n=%+.4f u=%+.4f level=%-7s warmth=%.2f  %s\n",
					res.CreatedAt.Format("2006-01-02 15:04:05"),
					res.Raw, res.Norm, res.Depth, res.Level, res.Warmth, res.StepID)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "totals: ok=%d warning=%d blocked=%d\n",
				counts[gate.LevelOK], counts[gate.LevelWarning], counts[gate.LevelBlocked])
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "max steps to print")
	return cmd
}

// #endregion inspect-command
