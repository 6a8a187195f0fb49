package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "INFO", c.LogLevel)
	assert.Equal(t, BindingRightDrag, c.Binding)
	assert.Equal(t, time.Second, c.AnimInterval())
}

func TestOverrides(t *testing.T) {
	t.Setenv("CHAIKIN_LOG_LEVEL", "DEBUG")
	t.Setenv("CHAIKIN_ANIM_INTERVAL_MS", "500")
	t.Setenv("CHAIKIN_BINDING", "left-only")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", c.LogLevel)
	assert.Equal(t, 500*time.Millisecond, c.AnimInterval())
	assert.Equal(t, BindingLeftOnly, c.Binding)
}

func TestRejectsBadValues(t *testing.T) {
	t.Setenv("CHAIKIN_ANIM_INTERVAL_MS", "0")
	_, err := Load()
	assert.Error(t, err)
}

func TestRejectsUnknownBinding(t *testing.T) {
	t.Setenv("CHAIKIN_BINDING", "middle-click")
	_, err := Load()
	assert.Error(t, err)
}
