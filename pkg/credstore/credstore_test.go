package credstore

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestFileStore_LoadBeforeStoreIsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/home/user/.config/anytype/credentials")

	key, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, key)
}

func TestFileStore_StoreThenLoadRoundTrips(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/home/user/.config/anytype/credentials")

	require.NoError(t, s.Store("sk-test-123"))

	key, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "sk-test-123", key)
}

func TestFileStore_StoreCreatesParentDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/home/user/.config/anytype/credentials")

	require.NoError(t, s.Store("sk-test-123"))

	info, err := fs.Stat("/home/user/.config/anytype")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestFileStore_FilePermissionsAreOwnerOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/home/user/.config/anytype/credentials")
	require.NoError(t, s.Store("sk-test-123"))

	info, err := fs.Stat("/home/user/.config/anytype/credentials")
	require.NoError(t, err)
	require.Equal(t, os.FileMode(fileMode), info.Mode().Perm())
}

func TestFileStore_ClearRemovesCredential(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/home/user/.config/anytype/credentials")
	require.NoError(t, s.Store("sk-test-123"))

	require.NoError(t, s.Clear())

	key, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, key)
}

func TestFileStore_ClearWithoutStoreIsNotAnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewFileStore(fs, "/home/user/.config/anytype/credentials")
	require.NoError(t, s.Clear())
}
