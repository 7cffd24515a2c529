package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	fallback := 300 * time.Millisecond

	assert.Equal(t, 150*time.Millisecond, ParseDuration("150ms", fallback))
	assert.Equal(t, 2*time.Second, ParseDuration("2s", fallback))
	assert.Equal(t, fallback, ParseDuration("", fallback))
	assert.Equal(t, fallback, ParseDuration("soon", fallback))
}

func TestParseValue(t *testing.T) {
	assert.Equal(t, 42, ParseValue("42"))
	assert.Equal(t, 4.5, ParseValue("4.5"))
	assert.Equal(t, "Tokyo", ParseValue("Tokyo"))
	assert.Equal(t, 7, ParseValue("  7  "))
	assert.Equal(t, "", ParseValue("   "))
}
