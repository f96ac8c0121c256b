package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLoggerToFile(t *testing.T) {
	prev := Log
	defer func() { Log = prev }()

	path := filepath.Join(t.TempDir(), "gdpchart.log")
	require.NoError(t, InitLogger("release", path))
	Info("chart mounted", zap.Int("bars", 275))
	_ = Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"chart mounted"`)
	assert.Contains(t, string(b), `"bars":275`)
}

func TestDefaultIsNop(t *testing.T) {
	assert.NotPanics(t, func() { Info("ignored", zap.String("k", "v")) })
}
