package main

import (
	"fmt"

	"retime/internal/align"
	"retime/internal/config"
	"retime/internal/retimer"
)

func calibrationOptions(cfg *config.Config) align.CalibrateOptions {
	return align.CalibrateOptions{
		MinSpace:         cfg.Calibration.MinSpaceMs,
		SpacePerSyllable: cfg.Calibration.SpaceMsPerSyllable,
	}
}

// entryView is the JSON shape of one alignment entry.
type entryView struct {
	Op        string `json:"op"`
	Index     int    `json:"index"`
	Word      string `json:"word"`
	Syllables int    `json:"syllables"`
	StartMs   int64  `json:"start_ms"`
	EndMs     int64  `json:"end_ms"`
}

func entryViews(entries []align.Entry) []entryView {
	views := make([]entryView, len(entries))
	for i, entry := range entries {
		span := entry.Word.Span()
		views[i] = entryView{
			Op:        entry.Op.String(),
			Index:     entry.Index,
			Word:      entry.Word.Text(),
			Syllables: entry.Word.Syllables(),
			StartMs:   span.Start.Milliseconds(),
			EndMs:     span.End.Milliseconds(),
		}
	}
	return views
}

func statsSummary(stats retimer.Stats) string {
	return fmt.Sprintf("%d reference, %d revised: %d unchanged, %d removed, %d added, %d uncalibrated (%d resolved)",
		stats.ReferenceWords, stats.RevisedWords, stats.Unchanged,
		stats.Removed, stats.Added, stats.Uncalibrated, stats.Resolved)
}
