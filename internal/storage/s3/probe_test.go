package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProbeOutput(t *testing.T) {
	duration, err := parseProbeOutput([]byte("42.375000\n"))
	assert.NoError(t, err)
	assert.Equal(t, 42.375, duration)
}

func TestParseProbeOutput_NotAvailable(t *testing.T) {
	_, err := parseProbeOutput([]byte("N/A\n"))
	assert.Error(t, err)
}

func TestParseProbeOutput_Empty(t *testing.T) {
	_, err := parseProbeOutput(nil)
	assert.Error(t, err)
}

func TestParseProbeOutput_Garbage(t *testing.T) {
	_, err := parseProbeOutput([]byte("not-a-number"))
	assert.Error(t, err)
}
