package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/errors"
)

func TestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	require.NoError(t, File(path, []byte("members: []\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "members: []\n", string(data))
}

func TestFileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	require.NoError(t, File(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileMissingDirectory(t *testing.T) {
	err := File(filepath.Join(t.TempDir(), "no-such-dir", "out.yaml"), []byte("x"))
	assert.True(t, errors.IsWrite(err))
}
