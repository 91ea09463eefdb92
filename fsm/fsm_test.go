package fsm_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rfielding/fsmdot/fsm"
)

const scenarioA = `{"state":{"status":"idle"},"transitions":{"idle":{"start":{"status":"running"}},"running":{"stop":{"status":"idle"}}}}`

var fixedNow = time.Date(2026, time.February, 17, 9, 5, 3, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// parse decodes src as though it were read from path.
func parse(t *testing.T, path, src string) *fsm.Definition {
	t.Helper()
	def, err := fsm.Parse(path, []byte(src))
	require.NoError(t, err)
	return def
}

// writeFile writes src under dir and returns its path.
func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}
