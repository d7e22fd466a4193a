package config

import "strings"

// normalize trims and expands every field that needs it, filling defaults
// for values the file left empty.
func (c *Config) normalize() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	c.History.StateDir = strings.TrimSpace(c.History.StateDir)
	if c.History.StateDir == "" {
		c.History.StateDir = defaultStateDir
	}
	stateDir, err := expandPath(c.History.StateDir)
	if err != nil {
		return err
	}
	c.History.StateDir = stateDir

	c.Logging.LogDir = strings.TrimSpace(c.Logging.LogDir)
	if c.Logging.LogDir != "" {
		logDir, err := expandPath(c.Logging.LogDir)
		if err != nil {
			return err
		}
		c.Logging.LogDir = logDir
	}

	return nil
}
