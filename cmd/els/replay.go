package main

import (
	"fmt"

	"github.com/danielpatrickdp/emotion-layer/go-core/internal/replay"
	"github.com/spf13/cobra"
)

// #region replay-command
func newReplayCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "replay <fixture.json>",
		Short: "Replay a recorded raw-signal fixture and verify its expectations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := replay.LoadFixture(args[0])
			if err != nil {
				return err
			}

			results, summary, err := replay.Replay(fixture)
			if err != nil {
				return err
			}

			if fixture.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", fixture.Description)
			}

			for _, sr := range results {
				if !verbose && sr.Passed {
					continue
				}
				status := "ok"
				if !sr.Passed {
					status = "FAIL"
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"step %d: raw=%.4f u=%.4f level=%s warmth=%.2f [%s] %s\n",
					sr.Index, sr.Result.Raw, sr.Result.Depth, sr.Result.Level,
					sr.Result.Warmth, status, sr.Reason)
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"steps=%d blocked=%d warnings=%d ok=%d final_warmth=%.4f\n",
				summary.TotalSteps, summary.Blocked, summary.Warnings,
				summary.OKs, summary.FinalWarmth)

			if !summary.Passed {
				for _, f := range summary.Failures {
					fmt.Fprintf(cmd.ErrOrStderr(), "failure: %s\n", f)
				}
				return fmt.Errorf("replay failed: %d failure(s)", len(summary.Failures))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "replay passed")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print every step, not just failures")
	return cmd
}

// #endregion replay-command
