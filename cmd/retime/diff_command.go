package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"retime/internal/retimer"
)

func newDiffCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "diff REFERENCE REVISED",
		Short: "Compare a timed reference against a revised transcript",
		Long: `Compare a time-stamped reference transcript against a revised word
sequence and show how every revised word would be timed: carried over,
reused from a replaced word, or synthesized from the surrounding timing.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runPipeline(ctx, cmd, args[0], args[1])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, struct {
					Entries []entryView   `json:"entries"`
					Stats   retimer.Stats `json:"stats"`
				}{entryViews(result.Entries), result.Stats})
			}

			rows := make([][]string, 0, len(result.Entries))
			for _, entry := range result.Entries {
				span := entry.Word.Span()
				rows = append(rows, []string{
					entry.Op.Marker(),
					strconv.Itoa(entry.Index),
					entry.Word.Text(),
					strconv.Itoa(entry.Word.Syllables()),
					span.Start.Text(),
					span.End.Text(),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"", "#", "Word", "Syl", "Start", "End"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignRight, alignRight, alignRight},
			))
			fmt.Fprintln(out, statsSummary(result.Stats))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit entries and stats as JSON")
	return cmd
}

// runPipeline reads both inputs ("-" means plain text on stdin) and runs
// the retiming pipeline over them.
func runPipeline(ctx *commandContext, cmd *cobra.Command, referencePath, revisedPath string) (retimer.Result, error) {
	reference, err := ctx.readWords(referencePath, cmd.InOrStdin())
	if err != nil {
		return retimer.Result{}, err
	}
	revised, err := ctx.readWords(revisedPath, cmd.InOrStdin())
	if err != nil {
		return retimer.Result{}, err
	}

	rt, err := ctx.newRetimer()
	if err != nil {
		return retimer.Result{}, err
	}
	return rt.Retime(reference, revised), nil
}
