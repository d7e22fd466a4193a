package retimer

import (
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"retime/internal/align"
	"retime/internal/logging"
	"retime/internal/transcript"
)

// ErrNilEstimator indicates construction without a syllable estimator.
var ErrNilEstimator = errors.New("nil syllable estimator")

// Romanizer normalizes text toward Latin script before comparison. A nil
// Romanizer means no romanization.
type Romanizer interface {
	Romanize(text string) string
}

// Options configures a Retimer.
type Options struct {
	// Calibration overrides the default thresholds; nil means
	// align.DefaultCalibrateOptions. An explicit zero value is honored.
	Calibration *align.CalibrateOptions
	Romanizer   Romanizer
	// Logger receives phase summaries; nil discards them.
	Logger *slog.Logger
}

// Stats summarizes one retiming run. The per-op counts reflect the
// comparison phase; Resolved counts how many uncalibrated entries the
// calibration phase then re-timed.
type Stats struct {
	ReferenceWords int `json:"reference_words"`
	RevisedWords   int `json:"revised_words"`
	Unchanged      int `json:"unchanged"`
	Removed        int `json:"removed"`
	Added          int `json:"added"`
	Uncalibrated   int `json:"uncalibrated"`
	Resolved       int `json:"resolved"`
}

// Result is the output artifact of Retime: the calibrated entry sequence
// plus run statistics.
type Result struct {
	Entries []align.Entry
	Stats   Stats
}

// Retimer runs the compare/calibrate pipeline with fixed collaborators.
// Safe for concurrent use across independent inputs.
type Retimer struct {
	estimator   transcript.SyllableEstimator
	calibration align.CalibrateOptions
	romanizer   Romanizer
	logger      *slog.Logger
}

// New constructs a Retimer. The estimator is required; everything else has
// a usable zero form.
func New(est transcript.SyllableEstimator, opts Options) (*Retimer, error) {
	if est == nil {
		return nil, ErrNilEstimator
	}
	calibration := align.DefaultCalibrateOptions()
	if opts.Calibration != nil {
		calibration = *opts.Calibration
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Retimer{
		estimator:   est,
		calibration: calibration,
		romanizer:   opts.Romanizer,
		logger:      logging.WithComponent(logger, "retimer"),
	}, nil
}

var keyStripPattern = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// compareKey folds a word to the form equality is judged on: romanized when
// a romanizer is configured, lower-cased, punctuation stripped.
func (r *Retimer) compareKey(text string) string {
	if r.romanizer != nil {
		text = r.romanizer.Romanize(text)
	}
	text = strings.ToLower(text)
	return keyStripPattern.ReplaceAllString(text, "")
}

// Retime classifies revised against reference and calibrates every entry
// that needs timing.
func (r *Retimer) Retime(reference, revised []transcript.Word) Result {
	entries := align.CompareKeyed(reference, revised, r.compareKey)

	stats := Stats{
		ReferenceWords: len(reference),
		RevisedWords:   len(revised),
	}
	for _, entry := range entries {
		switch entry.Op {
		case align.OpUnchanged:
			stats.Unchanged++
		case align.OpRemoved:
			stats.Removed++
		case align.OpAdded:
			stats.Added++
		case align.OpUncalibrated:
			stats.Uncalibrated++
		}
	}
	r.logger.Debug("compared sequences",
		slog.Int("unchanged", stats.Unchanged),
		slog.Int("removed", stats.Removed),
		slog.Int("added", stats.Added),
		slog.Int("uncalibrated", stats.Uncalibrated),
	)

	calibrated := align.Calibrate(entries, r.calibration)
	remaining := 0
	for _, entry := range calibrated {
		if entry.Op == align.OpUncalibrated {
			remaining++
		}
	}
	stats.Resolved = stats.Uncalibrated - remaining

	r.logger.Info("retimed sequence",
		slog.Int("reference_words", stats.ReferenceWords),
		slog.Int("revised_words", stats.RevisedWords),
		slog.Int("resolved", stats.Resolved),
	)

	return Result{Entries: calibrated, Stats: stats}
}
