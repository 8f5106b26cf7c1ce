package filerepo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/apextrack/go-admin-console/session"
	"github.com/apextrack/go-admin-console/session/filerepo"
)

func TestFileRepo(t *testing.T) {
	sess := session.Session{
		Token: "token-abc",
		User:  &session.User{ID: "u1", Name: "Jane", Email: "jane@example.com", Role: "admin"},
	}

	t.Run("round trip", func(t *testing.T) {
		repo, err := filerepo.New(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, repo.Save(sess))
		loaded, err := repo.Load()
		require.NoError(t, err)
		require.Equal(t, sess.Token, loaded.Token)
		require.Equal(t, sess.User.Email, loaded.User.Email)
	})

	t.Run("load without a saved session is empty", func(t *testing.T) {
		repo, err := filerepo.New(t.TempDir())
		require.NoError(t, err)

		loaded, err := repo.Load()
		require.NoError(t, err)
		require.True(t, loaded.IsZero())
	})

	t.Run("clear removes the file", func(t *testing.T) {
		repo, err := filerepo.New(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, repo.Save(sess))
		require.NoError(t, repo.Clear())
		loaded, err := repo.Load()
		require.NoError(t, err)
		require.True(t, loaded.IsZero())
	})

	t.Run("clear without a file is fine", func(t *testing.T) {
		repo, err := filerepo.New(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, repo.Clear())
	})

	t.Run("corrupt file is treated as no session", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := filerepo.New(dir)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))
		loaded, err := repo.Load()
		require.NoError(t, err)
		require.True(t, loaded.IsZero())
	})
}
