package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fort-note/internal/logger"
)

func TestFileStorage_WritesJSONObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.SetString(context.Background(), "FortnotePrefs.notes", `[{"id":"1"}]`))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"FortnotePrefs.notes":"[{\"id\":\"1\"}]"}`, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// no temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStorage_EmptyFileIsEmptyStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	s, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)

	_, ok, err := s.GetString(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorage_UndecodableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileStorage(path, logger.Nop())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestFileStorage_FailedWriteKeepsPreviousValue(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := filepath.Join(t.TempDir(), "ro")
	require.NoError(t, os.Mkdir(dir, 0o700))
	path := filepath.Join(dir, "prefs.json")

	ctx := context.Background()
	s, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetString(ctx, "k", "old"))

	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	err = s.SetString(ctx, "k", "new")
	require.ErrorIs(t, err, ErrPersistence)

	v, ok, err := s.GetString(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "old", v)

	err = s.SetString(ctx, "fresh", "x")
	require.ErrorIs(t, err, ErrPersistence)
	_, ok, _ = s.GetString(ctx, "fresh")
	assert.False(t, ok)
}

func TestFileStorage_SeesWritesFromAnotherHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	ctx := context.Background()

	server, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)
	cli, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, server.SetString(ctx, "FortnotePrefs.notes", "from server"))

	v, ok, err := cli.GetString(ctx, "FortnotePrefs.notes")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "from server", v)

	require.NoError(t, cli.SetString(ctx, "FortnotePrefs.notes", "from cli"))
	require.NoError(t, server.SetString(ctx, "other", "x"))

	// the server's write kept the value the cli stored
	v, _, err = cli.GetString(ctx, "FortnotePrefs.notes")
	require.NoError(t, err)
	assert.Equal(t, "from cli", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"FortnotePrefs.notes":"from cli","other":"x"}`, string(data))
}

func TestFileStorage_RemovedFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	ctx := context.Background()

	s, err := NewFileStorage(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.SetString(ctx, "k", "v"))

	require.NoError(t, os.Remove(path))

	_, ok, err := s.GetString(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
