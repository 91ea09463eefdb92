package fsm_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rfielding/fsmdot/fsm"
)

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "door.json", scenarioA)

	core, logs := observer.New(zap.InfoLevel)
	r := fsm.NewRenderer(fsm.WithClock(fixedClock), fsm.WithLogger(zap.New(core).Sugar()))

	path, err := r.Convert(fsm.Request{Name: "door", InputPath: input, Mermaid: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "door_20260217.dot"), path)
	assert.FileExists(t, path)
	assert.FileExists(t, filepath.Join(dir, "door_20260217.mmd"))
	assert.Equal(t, 1, logs.FilterMessage("Wrote DOT file").Len())
}

func TestConvert_ValidationFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "door.json", `{"state":{"status":"idle"},"transitions":{"idle":{"start":{"status":"running"}}}}`)
	target := filepath.Join(dir, "door.dot")

	_, err := fsm.NewRenderer().Convert(fsm.Request{Name: "door", InputPath: input, OutputPath: target})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsm.ErrValidation))

	var verr *fsm.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"Target state 'running' (from 'idle' via 'start') is not defined in transitions"}, verr.Problems)

	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvert_LogsReachabilityWarnings(t *testing.T) {
	input := writeFile(t, t.TempDir(), "islands.json", islandsSrc)
	core, logs := observer.New(zap.WarnLevel)
	r := fsm.NewRenderer(fsm.WithClock(fixedClock), fsm.WithLogger(zap.New(core).Sugar()))

	_, err := r.Convert(fsm.Request{Name: "islands", InputPath: input})
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("State 'island' is not reachable from initial state 'a'").Len())
}

func TestConvert_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	r := fsm.NewRenderer()

	_, err := r.Convert(fsm.Request{Name: "x", InputPath: filepath.Join(dir, "nope.json")})
	assert.True(t, errors.Is(err, fsm.ErrNotFound))

	_, err = r.Convert(fsm.Request{Name: "x", InputPath: writeFile(t, dir, "bad.json", "{")})
	assert.True(t, errors.Is(err, fsm.ErrParse))
}
