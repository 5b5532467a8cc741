package ghoutput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(path, []byte("existing=1\n"), 0o600))

	require.NoError(t, Write(path, map[string]string{
		"top":   "7",
		"stack": "1\n7",
		" ":     "skipped",
		"error": "50%",
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing=1\nerror=50%25\nstack=1%0A7\ntop=7\n", string(data))
}

func TestWriteNoop(t *testing.T) {
	assert.NoError(t, Write("", map[string]string{"a": "b"}))

	path := filepath.Join(t.TempDir(), "output")
	assert.NoError(t, Write(path, nil))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvVar, " /tmp/out ")
	assert.Equal(t, "/tmp/out", PathFromEnv())
}
