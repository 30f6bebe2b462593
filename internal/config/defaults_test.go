package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultKBPath, cfg.KB.Path)
	assert.Equal(t, DefaultSequenceDir, cfg.KB.SequenceDir)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
}

func TestApplyDefaults_PreserveExistingValues(t *testing.T) {
	cfg := &Config{}
	cfg.KB.Path = "model/kb.yaml"
	cfg.Log.Level = "debug"
	ApplyDefaults(cfg)

	assert.Equal(t, "model/kb.yaml", cfg.KB.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestApplyDefaults_Nil(t *testing.T) {
	ApplyDefaults(nil)
}
