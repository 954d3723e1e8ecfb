package filter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentFilter_DefaultPatterns(t *testing.T) {
	f, err := New(nil)
	require.NoError(t, err)

	tests := []struct {
		message string
		emit    bool
	}{
		{"GET /health", false},
		{"GET /health/", false},
		{"GET /api/health", false},
		{"GET /api/health/", false},
		{"get /HEALTH", false},
		{"200 OK GET /Api/Health", false},
		{"GET /healthcheck", true},
		{"GET /api/healthiness", true},
		{"GET /health from 10.0.0.1", true},
		{"GET /users", true},
		{"", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.emit, f.ShouldEmit(tt.message), "message %q", tt.message)
	}
}

func TestContentFilter_CustomPatterns(t *testing.T) {
	f, err := New([]string{`/metrics$`})
	require.NoError(t, err)

	assert.False(t, f.ShouldEmit("GET /metrics"))
	assert.False(t, f.ShouldEmit("GET /METRICS"))
	// custom patterns replace the defaults, they do not extend them
	assert.True(t, f.ShouldEmit("GET /health"))
}

func TestContentFilter_ShortCircuit(t *testing.T) {
	f, err := New([]string{`^never`, `always`})
	require.NoError(t, err)

	// outcome is order-independent: any match suppresses
	assert.False(t, f.ShouldEmit("this always matches"))
	assert.True(t, f.ShouldEmit("this matches nothing"))
}

func TestNew_InvalidPattern(t *testing.T) {
	f, err := New([]string{`(`})
	require.Error(t, err)
	assert.Nil(t, f)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "(", cfgErr.Pattern)
	assert.NotNil(t, cfgErr.Unwrap())
}

func TestNew_InvalidPatternAmongValid(t *testing.T) {
	_, err := New([]string{`/health$`, `[`})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "[", cfgErr.Pattern)
}
