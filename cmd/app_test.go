package cmd_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/sqlvalue/cmd"
)

func runApp(t *testing.T, args []string, options ...cmd.AppOption) (int, string, string) {
	t.Helper()

	stdout := new(strings.Builder)
	stderr := new(strings.Builder)
	options = append([]cmd.AppOption{cmd.WithStdout(stdout), cmd.WithStderr(stderr)}, options...)

	exitCode := cmd.NewApp(options...).Main(context.TODO(), args)
	return exitCode, stdout.String(), stderr.String()
}

func TestAppUsage(t *testing.T) {
	t.Parallel()

	exitCode, stdout, stderr := runApp(t, []string{"a.sql", "b.sql"})
	assert.Equal(t, cmd.ExitUsage, exitCode)
	assert.Empty(t, stdout)
	assert.Equal(t, "ERROR Usage: sqlvalue [script]\n", stderr)
}

func TestAppMissingScript(t *testing.T) {
	t.Parallel()

	exitCode, _, stderr := runApp(t, []string{filepath.Join(t.TempDir(), "missing.sql")})
	assert.Equal(t, cmd.ExitUsage, exitCode)
	assert.Contains(t, stderr, "ERROR ")
}

func TestAppShowKinds(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "kinds.sql")
	require.NoError(t, os.WriteFile(path, []byte("1, 1 + CAST(1 AS BIGINT);"), 0o600))

	config := cmd.DefaultConfig()
	config.ShowKinds = true
	exitCode, stdout, stderr := runApp(t, []string{path}, cmd.WithConfig(config))
	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr)
	assert.Equal(t, "1::INT, 2::LONG\n", stdout)
}

func TestAppColoredErrors(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "overflow.sql")
	require.NoError(t, os.WriteFile(path, []byte("2147483647 + 1;"), 0o600))

	config := cmd.DefaultConfig()
	config.Color = true
	exitCode, _, stderr := runApp(t, []string{path}, cmd.WithConfig(config))
	assert.Equal(t, cmd.ExitUsage, exitCode)
	assert.Contains(t, stderr, "\x1b[")
	assert.Contains(t, stderr, "arithmetic overflow: INT overflow, x=2147483648")
}

func TestAppPrompt(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"SET a = 2147483647;",
		"a + 1;",
		"a + CAST(1 AS BIGINT);",
		".ast 1 + 2 * a",
		".builtins",
		".vars",
		"",
	}, "\n")

	exitCode, stdout, stderr := runApp(t, nil, cmd.WithStdin(io.NopCloser(strings.NewReader(input))))
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stderr, "ERROR [line 1] at +: arithmetic overflow")
	assert.Contains(t, stdout, "2147483648\n")
	assert.Contains(t, stdout, "(row (+ 1 (* 2 a)))\n")
	assert.Contains(t, stdout, "ABS, MOD, SIGN\n")
	assert.Contains(t, stdout, "{a=INT(2147483647)}\n")
}
