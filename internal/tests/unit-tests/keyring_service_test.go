package unit_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"chatforge/internal/services"
)

func newKeyring(t *testing.T) *services.KeyringService {
	t.Helper()
	keyring.MockInit()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return services.NewKeyringService()
}

func TestKeyringService_StoreAndGetToken(t *testing.T) {
	svc := newKeyring(t)

	remote := "https://example.com/repo.git"
	require.NoError(t, svc.StoreToken(remote, []byte("s3cret")))

	token, err := svc.GetToken(remote)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", token)
}

func TestKeyringService_StoreToken_Validation(t *testing.T) {
	svc := newKeyring(t)

	assert.Error(t, svc.StoreToken("", []byte("x")))
	assert.Error(t, svc.StoreToken("https://example.com/repo.git", nil))
}

func TestKeyringService_DeleteToken(t *testing.T) {
	svc := newKeyring(t)

	remote := "https://example.com/repo.git"
	require.NoError(t, svc.StoreToken(remote, []byte("s3cret")))
	require.NoError(t, svc.DeleteToken(remote))

	_, err := svc.GetToken(remote)
	assert.Error(t, err)
}

func TestKeyringService_ListRemotes(t *testing.T) {
	svc := newKeyring(t)

	require.NoError(t, svc.StoreToken("https://a.example/repo.git", []byte("a")))
	require.NoError(t, svc.StoreToken("https://b.example/repo.git", []byte("b")))
	require.NoError(t, svc.DeleteToken("https://a.example/repo.git"))

	remotes, err := svc.ListRemotes()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://b.example/repo.git"}, remotes)
}
