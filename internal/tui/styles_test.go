package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricColor(t *testing.T) {
	assert.Equal(t, ColorHealthy, MetricColor(0))
	assert.Equal(t, ColorHealthy, MetricColor(69.9))
	assert.Equal(t, ColorWarning, MetricColor(70))
	assert.Equal(t, ColorWarning, MetricColor(89.9))
	assert.Equal(t, ColorCritical, MetricColor(90))
	assert.Equal(t, ColorCritical, MetricColor(150))
}

func TestProgressBar(t *testing.T) {
	empty := ProgressBar(10, 0)
	assert.Contains(t, empty, "▱")
	assert.NotContains(t, empty, "▰")

	full := ProgressBar(10, 100)
	assert.Contains(t, full, "▰")
	assert.NotContains(t, full, "▱")

	// Out-of-range input clamps instead of panicking.
	assert.NotEmpty(t, ProgressBar(10, -5))
	assert.NotEmpty(t, ProgressBar(10, 250))
	assert.NotEmpty(t, ProgressBar(0, 50))
}
