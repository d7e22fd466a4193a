package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"retime/internal/transcript"
)

func newPausesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "pauses FILE",
		Short: "List the pauses between consecutive words in a timed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := ctx.readWords(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			pauses := transcript.Pauses(words)

			if jsonOutput {
				views := make([]pauseView, len(pauses))
				for i, pause := range pauses {
					views[i] = pauseView{
						StartMs:    pause.Start.Milliseconds(),
						EndMs:      pause.End.Milliseconds(),
						DurationMs: pause.Duration(),
					}
				}
				return writeJSON(cmd, views)
			}

			rows := make([][]string, len(pauses))
			for i, pause := range pauses {
				rows[i] = []string{
					pause.Start.Text(),
					pause.End.Text(),
					strconv.FormatInt(pause.Duration(), 10),
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Start", "End", "Duration (ms)"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignRight},
			))
			fmt.Fprintf(out, "%d pauses across %d words\n", len(pauses), len(words))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit pauses as JSON")
	return cmd
}

type pauseView struct {
	StartMs    int64 `json:"start_ms"`
	EndMs      int64 `json:"end_ms"`
	DurationMs int64 `json:"duration_ms"`
}
