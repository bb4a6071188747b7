package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "direct", cfg.SubmissionMode)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SUBMISSION_MODE", "moderated")
	t.Setenv("DB_NAME", "stnh_test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "moderated", cfg.SubmissionMode)
	assert.Contains(t, cfg.DSN(), "dbname=stnh_test")
}

func TestLoadRejectsBadSubmissionMode(t *testing.T) {
	t.Setenv("SUBMISSION_MODE", "yolo")

	_, err := Load()
	assert.Error(t, err)
}
