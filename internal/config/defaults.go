package config

const (
	defaultMinSpaceMs         = 100
	defaultSpaceMsPerSyllable = 100
	defaultOutputFormat       = "lrc"
	defaultLineGapMs          = 400
	defaultWordDurationMs     = 500
	defaultStateDir           = "~/.local/share/retime"
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Calibration: Calibration{
			MinSpaceMs:         defaultMinSpaceMs,
			SpaceMsPerSyllable: defaultSpaceMsPerSyllable,
		},
		Romanization: Romanization{
			Enabled: true,
		},
		Output: Output{
			Format:         defaultOutputFormat,
			LineGapMs:      defaultLineGapMs,
			WordDurationMs: defaultWordDurationMs,
		},
		History: History{
			Enabled:  true,
			StateDir: defaultStateDir,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
