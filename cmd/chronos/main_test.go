package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/chronos-workspace/internal/auth"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chronos dev")
	assert.Contains(t, out, "commit: none")
}

func TestVersionCmdWithCustomValues(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = "1.0.0", "abc123", "2026-01-01"
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chronos 1.0.0")
	assert.Contains(t, out, "built: 2026-01-01")
}

func TestRootCmdHelp(t *testing.T) {
	out, err := run(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"serve", "migrate", "token", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestTokenCmd(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	id := uuid.New()

	out, err := run(t, "token", "--user", id.String(), "--name", "Ana", "--role", "manager")
	require.NoError(t, err)

	claims, err := auth.ValidateJWT(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, id.String(), claims.UserID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "manager", claims.Role)
}

func TestTokenCmd_RejectsBadInput(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")

	_, err := run(t, "token", "--user", "not-a-uuid")
	assert.Error(t, err)

	_, err = run(t, "token", "--user", uuid.NewString(), "--ttl", "-1h")
	assert.Error(t, err)

	_, err = run(t, "token")
	assert.Error(t, err)
}

func TestMigrateCmd_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "chronos.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", dsn)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlite")

	_, err = os.Stat(dsn)
	assert.NoError(t, err)
}

func TestEnvFileLoaded(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("JWT_SECRET=from-dotenv\n"), 0o600))
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--env-file", envFile, "token", "--user", uuid.NewString()})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "from-dotenv", os.Getenv("JWT_SECRET"))
	assert.NotEmpty(t, strings.TrimSpace(buf.String()))
}
