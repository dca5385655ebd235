package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	l, err := New(false, false)
	require.NoError(t, err)
	require.NotNil(t, l)

	l, err = New(true, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(-1), "debug level enabled")
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "abc", TruncateForLog("  abc  ", 10))
	assert.Equal(t, "abcde...", TruncateForLog("abcdefgh", 5))
	assert.Equal(t, "", TruncateForLog("anything", 0))
}
