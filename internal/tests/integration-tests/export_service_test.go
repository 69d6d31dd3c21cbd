package integration_tests

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatforge/internal/services"
)

func TestExportService_SnapshotRoundTrip(t *testing.T) {
	_, svc := openStore(t)

	require.NoError(t, svc.Chats.SetMessages("1", userMessages("hello"), "", "exported chat", ""))

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, svc.Export.ExportSnapshot(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var snap services.Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Len(t, snap.Chats, 1)
	assert.Equal(t, "exported chat", snap.Chats[0].Description)

	// import into a fresh store; the chat gets a new id and slug
	_, fresh := openStore(t)
	slugs, err := fresh.Export.ImportChats(path)
	require.NoError(t, err)
	require.Len(t, slugs, 1)

	imported, err := fresh.Chats.GetMessages(slugs[0])
	require.NoError(t, err)
	require.NotNil(t, imported)
	assert.Equal(t, "exported chat", imported.Description)
	assert.Len(t, imported.Messages, 1)
}

func TestExportService_ImportChats_GlobMatchesNestedFiles(t *testing.T) {
	_, svc := openStore(t)
	require.NoError(t, svc.Chats.SetMessages("1", userMessages("a"), "", "one", ""))

	dir := t.TempDir()
	nested := filepath.Join(dir, "backups", "2026")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, svc.Export.ExportSnapshot(filepath.Join(nested, "snap.json")))

	_, fresh := openStore(t)
	slugs, err := fresh.Export.ImportChats(filepath.Join(dir, "**", "*.json"))
	require.NoError(t, err)
	assert.Len(t, slugs, 1)
}

func TestExportService_ImportChats_InvalidJSON(t *testing.T) {
	_, svc := openStore(t)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := svc.Export.ImportChats(path)
	assert.ErrorIs(t, err, services.ErrValidation)
}
