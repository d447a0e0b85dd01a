package cli

import (
	"bytes"
	"encoding/base64"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/tasks/app"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestGenSecret(t *testing.T) {
	out, err := execute(t, "gen-secret")
	require.NoError(t, err)

	secret := strings.TrimSpace(out)
	raw, err := base64.RawURLEncoding.DecodeString(secret)
	require.NoError(t, err)
	require.Len(t, raw, 32)

	again, err := execute(t, "gen-secret")
	require.NoError(t, err)
	require.NotEqual(t, out, again)
}

func TestGenSecretRejectsShortSize(t *testing.T) {
	_, err := execute(t, "gen-secret", "--bytes", "8")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, app.BuildVersion+"\n", out)
}

func TestMigrate(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MONGO_URI", "")

	t.Run("sqlite file", func(t *testing.T) {
		dsn := filepath.Join(t.TempDir(), "tasks.db")

		out, err := execute(t, "migrate", "--database-url", dsn)
		require.NoError(t, err)
		require.Contains(t, out, "sqlite store is up to date")

		// Re-running is a no-op.
		_, err = execute(t, "migrate", "--database-url", dsn)
		require.NoError(t, err)
	})

	t.Run("missing database url", func(t *testing.T) {
		_, err := execute(t, "migrate")
		require.ErrorIs(t, err, app.ErrMissingDatabaseURL)
	})
}

func TestServeRequiresConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", ":memory:")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("FRONTEND_URL", "http://localhost:3000")
	t.Setenv("PORT", "5000")

	_, err := execute(t, "serve")
	require.ErrorIs(t, err, app.ErrMissingJWTSecret)

	_, err = execute(t)
	require.ErrorIs(t, err, app.ErrMissingJWTSecret)
}

func TestRejectsUnknownArgs(t *testing.T) {
	_, err := execute(t, "bogus")
	require.Error(t, err)
}
