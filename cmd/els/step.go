package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/ul"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/xc"
	"github.com/spf13/cobra"
)

// #region step-command
func newStepCmd() *cobra.Command {
	var metaphor bool

	cmd := &cobra.Command{
		Use:   "step <raw>",
		Short: "Run one raw sample through the pipeline and print the external state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse raw value %q: %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctrl, err := pipeline.NewController(cfg.Pipeline.ToPipelineConfig())
			if err != nil {
				return err
			}

			res, err := ctrl.Process(raw)
			if err != nil {
				return err
			}

			state, err := xc.Adapt(res, nil)
			if err != nil {
				return err
			}

			store, err := openJournal(cfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
				if err := store.Append(res); err != nil {
					return err
				}
			}

			out, err := json.MarshalIndent(state, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal state: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			if metaphor {
				mapper := ul.NewMapper(cfg.UL.Culture, cfg.UL.Style)
				m := mapper.Map(state)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (intensity=%s, note=%s)\n",
					m.Symbol, m.Text, m.Intensity, m.SafetyNote)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&metaphor, "metaphor", false, "also print the metaphor rendering")
	return cmd
}

// #endregion step-command
