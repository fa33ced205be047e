package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := NewManager()
	require.NoError(t, err)
	require.NotNil(t, m.GetConfig())
	return m
}

func TestNewManagerDefaults(t *testing.T) {
	m := newTestManager(t)
	cfg := m.GetConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 40.0, cfg.Engine.RiskSaturationK)
	assert.Equal(t, 4, cfg.Engine.MinClassifyScore)
	assert.Equal(t, 7, cfg.Engine.MaxChecklistItems)
	assert.Equal(t, "sqlite", cfg.Feedback.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	m := newTestManager(t)
	assert.NoError(t, m.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	m := newTestManager(t)
	m.GetConfig().Server.Port = -1

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestValidateRejectsNonPositiveSaturation(t *testing.T) {
	m := newTestManager(t)
	m.GetConfig().Engine.RiskSaturationK = 0

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saturation")
}

func TestValidateRejectsUnknownFeedbackDriver(t *testing.T) {
	m := newTestManager(t)
	m.GetConfig().Feedback.Driver = "mysql"

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid feedback driver")
}

func TestValidateRequiresPostgresURL(t *testing.T) {
	m := newTestManager(t)
	m.GetConfig().Feedback.Driver = "postgres"
	m.GetConfig().Feedback.PostgresURL = ""

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres URL")
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	m := newTestManager(t)
	m.GetConfig().Logging.Level = "verbose"

	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
