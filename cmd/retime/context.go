package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"retime/internal/config"
	"retime/internal/logging"
	"retime/internal/retimer"
	"retime/internal/romanize"
	"retime/internal/syllable"
	"retime/internal/timedtext"
	"retime/internal/transcript"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	estimatorOnce sync.Once
	est           *syllable.Cached
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the file-backed logger from config, falling back to a
// stderr-only console logger when the log directory is unusable.
func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "retime: log setup failed: %v\n", err)
			logger, err = logging.New(logging.Options{Level: cfg.Logging.Level, Format: "console", Writer: os.Stderr})
			if err != nil {
				logger = logging.NewNop()
			}
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) estimator() *syllable.Cached {
	c.estimatorOnce.Do(func() {
		c.est = syllable.NewCached(syllable.Estimator{})
	})
	return c.est
}

// newRetimer assembles the pipeline from configuration.
func (c *commandContext) newRetimer() (*retimer.Retimer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	calibration := calibrationOptions(cfg)
	opts := retimer.Options{
		Calibration: &calibration,
		Logger:      c.ensureLogger(),
	}
	if cfg.Romanization.Enabled {
		opts.Romanizer = romanize.New(romanize.Options{Japanese: cfg.Romanization.Japanese})
	}

	return retimer.New(c.estimator(), opts)
}

// readTimed parses a timed or plain-text file, honoring the configured LRC
// tail duration. "-" reads plain text from stdin.
func (c *commandContext) readTimed(path string, stdin io.Reader) ([]timedtext.Line, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	if path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return timedtext.ParseText(c.estimator(), stdin)
	}

	format, err := timedtext.ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if format != timedtext.FormatLRC {
		return timedtext.ReadFile(c.estimator(), path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	return timedtext.ParseLRCTail(c.estimator(), file, cfg.Output.WordDurationMs)
}

// readWords flattens readTimed into the word sequence the engine consumes.
func (c *commandContext) readWords(path string, stdin io.Reader) ([]transcript.Word, error) {
	lines, err := c.readTimed(path, stdin)
	if err != nil {
		return nil, err
	}
	return timedtext.Words(lines), nil
}
