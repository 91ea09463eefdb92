package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rfielding/fsmdot/internal/config"
)

const scenarioA = `{"state":{"status":"idle"},"transitions":{"idle":{"start":{"status":"running"}},"running":{"stop":{"status":"idle"}}}}`

var fixedNow = time.Date(2026, time.February, 17, 9, 5, 3, 0, time.UTC)

func newTestApp() *app {
	cfg := config.Config{
		Author:      "Peter Nussey",
		ProgramName: "makeDotFile",
		Renderer:    "dot",
		LogLevel:    "ERROR",
		LogFormat:   "CONSOLE",
	}
	return newApp(cfg, zap.NewNop().Sugar(), func() time.Time { return fixedNow })
}

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(newTestApp())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// workDir returns a temp directory with a trailing separator, the way the
// command line expects its first argument.
func workDir(t *testing.T) string {
	return t.TempDir() + string(os.PathSeparator)
}
