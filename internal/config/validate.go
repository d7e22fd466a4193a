package config

import "errors"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCalibration(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCalibration() error {
	if c.Calibration.MinSpaceMs < 0 {
		return errors.New("calibration.min_space_ms must not be negative")
	}
	if c.Calibration.SpaceMsPerSyllable < 0 {
		return errors.New("calibration.space_ms_per_syllable must not be negative")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "lrc", "srt":
	default:
		return errors.New("output.format must be \"lrc\" or \"srt\"")
	}
	if c.Output.LineGapMs < 0 {
		return errors.New("output.line_gap_ms must not be negative")
	}
	if c.Output.WordDurationMs <= 0 {
		return errors.New("output.word_duration_ms must be positive")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if c.History.Enabled && c.History.StateDir == "" {
		return errors.New("history.state_dir must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("logging.level must be one of debug, info, warn, error")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return errors.New("logging.format must be \"console\" or \"json\"")
	}
	return nil
}
