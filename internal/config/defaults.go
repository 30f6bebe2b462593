package config

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultKBPath      = "kb.yaml"
	DefaultSequenceDir = "."

	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ApplyDefaults fills every zero-value field in cfg with the default.
// Fields that have already been set by the caller are left unchanged so that
// explicit configuration always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.KB.Path == "" {
		cfg.KB.Path = DefaultKBPath
	}
	if cfg.KB.SequenceDir == "" {
		cfg.KB.SequenceDir = DefaultSequenceDir
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}
	if len(cfg.Log.ErrorOutputPaths) == 0 {
		cfg.Log.ErrorOutputPaths = []string{"stderr"}
	}
}
