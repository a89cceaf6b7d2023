package main

import (
	"bufio"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/pipeline"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/signals"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/ul"
	"github.com/danielpatrickdp/emotion-layer/go-core/internal/xc"
	"github.com/spf13/cobra"
)

// #region repl-command
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively feed raw values or free text through the pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctrl, err := pipeline.NewController(cfg.Pipeline.ToPipelineConfig())
			if err != nil {
				return err
			}

			store, err := openJournal(cfg)
			if err != nil {
				return err
			}
			if store != nil {
				defer store.Close()
			}

			producer := signals.NewProducer(signals.DefaultProducerConfig())
			mapper := ul.NewMapper(cfg.UL.Culture, cfg.UL.Style)

			fmt.Fprintln(cmd.OutOrStdout(), "Emotion-layer pipeline ready.")
			fmt.Fprintln(cmd.OutOrStdout(), "Enter a raw value or free text (or 'quit' to exit):")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(cmd.OutOrStdout(), "> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "quit" || line == "exit" {
					break
				}

				raw, err := strconv.ParseFloat(line, 64)
				if err != nil {
					// Not a number: score the text with the demo lexicon.
					raw = producer.Produce(line)
					fmt.Fprintf(cmd.OutOrStdout(), "(text scored as raw=%.2f)\n", raw)
				}

				res, err := ctrl.Process(raw)
				if err != nil {
					log.Printf("process error: %v", err)
					continue
				}

				state, err := xc.Adapt(res, nil)
				if err != nil {
					log.Printf("adapt error: %v", err)
					continue
				}

				if store != nil {
					if err := store.Append(res); err != nil {
						log.Printf("journal error: %v", err)
					}
				}

				m := mapper.Map(state)
				fmt.Fprintf(cmd.OutOrStdout(),
					"n=%.4f u=%.4f level=%s warmth=%.2f band=%s\n%s %s\n",
					state.N, state.U, state.SafetyLevel, state.WarmthC,
					state.DepthBand(), m.Symbol, m.Text)
				if state.SafetyLevel != "ok" {
					fmt.Fprintf(cmd.OutOrStdout(), "note: %s\n", state.SafetyReason)
				}
			}
			return scanner.Err()
		},
	}
}

// #endregion repl-command
