package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "run.log")

	c := New(Options{Quiet: true, LogFile: logFile})
	c.Info("loaded %d tables", 21)
	c.Debug("hidden %s", "entry")
	c.DebugLevel = 1
	c.Debug("visible %s", "entry")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"loaded 21 tables"`)
	assert.Contains(t, string(b), `"msg":"visible entry"`)
	assert.NotContains(t, string(b), "hidden entry")
}

func TestConfigure_KeepsDebugLevel(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	Logger = New(Options{Quiet: true})
	Logger.DebugLevel = 1
	Configure(Options{Quiet: true})
	assert.Equal(t, 1, Logger.DebugLevel)
	assert.NoError(t, Logger.Close())
}
