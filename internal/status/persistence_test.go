package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStatusPersistence_SaveAndLoad(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	persistence := NewFileStatusPersistence(filepath.Join(tmpDir, "state"))

	now := time.Now().UTC().Truncate(time.Second)
	saved := &ConnectionStatus{
		State:        "offline",
		Message:      "Unable to reach the server",
		LastAttempt:  &now,
		AttemptCount: 2,
		LastLoadTime: &now,
		LastError:    "unreachable fetching articles: connection refused",
		HasData:      true,
	}

	ctx := context.Background()
	require.NoError(t, persistence.SaveStatus(ctx, saved))

	_, err := os.Stat(filepath.Join(tmpDir, "state", StatusFileName))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(tmpDir, "state", StatusFileName+".tmp"))
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")

	loaded, err := persistence.LoadStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.State, loaded.State)
	assert.Equal(t, saved.Message, loaded.Message)
	assert.Equal(t, saved.AttemptCount, loaded.AttemptCount)
	assert.Equal(t, saved.LastError, loaded.LastError)
	assert.True(t, loaded.HasData)
	require.NotNil(t, loaded.LastAttempt)
	assert.True(t, now.Equal(*loaded.LastAttempt))
	assert.False(t, loaded.IsZero())
}

func TestFileStatusPersistence_LoadNonExistent(t *testing.T) {
	t.Parallel()

	loaded, err := NewFileStatusPersistence(t.TempDir()).LoadStatus(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.True(t, loaded.IsZero())
}

func TestFileStatusPersistence_Overwrite(t *testing.T) {
	t.Parallel()

	persistence := NewFileStatusPersistence(t.TempDir())
	ctx := context.Background()

	require.NoError(t, persistence.SaveStatus(ctx, &ConnectionStatus{State: "retrying", AttemptCount: 1}))
	require.NoError(t, persistence.SaveStatus(ctx, &ConnectionStatus{State: "connected", HasData: true}))

	loaded, err := persistence.LoadStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "connected", loaded.State)
	assert.Zero(t, loaded.AttemptCount)
}

func TestFileStatusPersistence_InvalidJSON(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, StatusFileName), []byte("{not json"), 0600))

	_, err := NewFileStatusPersistence(tmpDir).LoadStatus(context.Background())
	assert.Error(t, err)
}
