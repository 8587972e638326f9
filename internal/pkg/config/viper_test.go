package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: finvalidate-test
  max_goroutine: 4
instrument:
  enabled: true
  trace_sample_ratio: 0.5
  metric_interval_seconds: 15
  log_mask_fields: "password, new_password ,,current_password"
validation:
  unknown_fields: reject
  date_layouts:
    - "2006-01-02"
    - " 02/01/2006 "
`

func TestNewViperFromBytes(t *testing.T) {
	t.Parallel()

	// Arrange & Act
	cfg, err := NewViperFromBytes("yaml", []byte(sampleYAML))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "finvalidate-test", cfg.GetString("app.name"))
	assert.Equal(t, 4, cfg.GetInt("app.max_goroutine"))
	assert.True(t, cfg.GetBool("instrument.enabled"))
	assert.InDelta(t, 0.5, cfg.GetFloat64("instrument.trace_sample_ratio"), 0.0001)
	assert.Equal(t, 15*time.Second, cfg.GetSecond("instrument.metric_interval_seconds"))
	assert.Equal(t, []string{"password", "new_password", "current_password"}, cfg.GetArray("instrument.log_mask_fields"))
	assert.Equal(t, "reject", cfg.GetString("validation.unknown_fields"))
	assert.Equal(t, []string{"2006-01-02", "02/01/2006"}, cfg.GetArray("validation.date_layouts"))
	assert.NoError(t, cfg.Close())
}

func TestNewViperFromBytes_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewViperFromBytes("yaml", []byte("app:\n  env: test\n"))

	require.NoError(t, err)
	assert.Equal(t, "strip", cfg.GetString("validation.unknown_fields"))
	assert.Equal(t, []string{time.RFC3339, "2006-01-02"}, cfg.GetArray("validation.date_layouts"))
	assert.Equal(t, 16, cfg.GetInt("app.max_goroutine"))
	assert.Empty(t, cfg.GetArray("instrument.log_mask_fields"))
}

func TestNewViperFromBytes_Errors(t *testing.T) {
	t.Parallel()

	_, err := NewViperFromBytes(" ", []byte("a: b"))
	assert.Error(t, err)

	_, err = NewViperFromBytes("yaml", []byte("a: [unclosed"))
	assert.Error(t, err)
}

func TestNewViper(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(sampleYAML), 0o600))

	cfg, err := NewViper(file)

	require.NoError(t, err)
	assert.Equal(t, "finvalidate-test", cfg.GetString("app.name"))

	_, err = NewViper(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
