package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"retime/internal/align"
	"retime/internal/history"
	"retime/internal/retimer"
	"retime/internal/timedtext"
	"retime/internal/transcript"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "apply REFERENCE REVISED",
		Short: "Retime a revised transcript and write the result",
		Long: `Retime the revised transcript against the reference's timestamps and
write the timed result. Words are regrouped into lines wherever the pause
between them reaches the configured line gap.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			referencePath, revisedPath := args[0], args[1]
			result, err := runPipeline(ctx, cmd, referencePath, revisedPath)
			if err != nil {
				return err
			}

			format, err := resolveFormat(formatFlag, outPath, cfg.Output.Format)
			if err != nil {
				return err
			}
			target := strings.TrimSpace(outPath)
			if target == "" {
				target = defaultOutputPath(revisedPath, format)
			}

			words := survivingWords(result.Entries)
			lines := timedtext.Regroup(words, cfg.Output.LineGapMs)
			if err := timedtext.WriteFile(target, format, lines); err != nil {
				return err
			}

			if cfg.History.Enabled {
				recordRun(ctx, cmd, referencePath, revisedPath, target, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d words in %d lines to %s\n", len(words), len(lines), target)
			fmt.Fprintln(out, statsSummary(result.Stats))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file path (default: revised name with .retimed suffix)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: srt, lrc, or txt (default: from output path or config)")
	return cmd
}

// resolveFormat picks the output format from, in order, the --format flag,
// the --out extension, and the configured default.
func resolveFormat(flagValue, outPath, configured string) (timedtext.Format, error) {
	if trimmed := strings.TrimSpace(flagValue); trimmed != "" {
		return timedtext.ParseFormat(trimmed)
	}
	if ext := filepath.Ext(strings.TrimSpace(outPath)); ext != "" {
		return timedtext.ParseFormat(ext)
	}
	return timedtext.ParseFormat(configured)
}

func defaultOutputPath(revisedPath string, format timedtext.Format) string {
	if revisedPath == "-" {
		return "retimed" + format.Extension()
	}
	base := strings.TrimSuffix(revisedPath, filepath.Ext(revisedPath))
	return base + ".retimed" + format.Extension()
}

// survivingWords keeps every entry still present in the revised sequence,
// in order. Removed placeholders drop out.
func survivingWords(entries []align.Entry) []transcript.Word {
	var words []transcript.Word
	for _, entry := range entries {
		if entry.Op == align.OpRemoved {
			continue
		}
		words = append(words, entry.Word)
	}
	return words
}

// recordRun appends the run to the history ledger. Failures warn rather
// than fail the command; the output file is already written.
func recordRun(ctx *commandContext, cmd *cobra.Command, referencePath, revisedPath, outputPath string, result retimer.Result) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return
	}
	store, err := history.Open(cfg)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	run := history.NewRun(referencePath, revisedPath, outputPath, result.Stats)
	if err := store.Record(cmd.Context(), run); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history record failed: %v\n", err)
	}
}
