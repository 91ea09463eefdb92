package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/fsmdot/fsm"
)

func TestCLI_Convert(t *testing.T) {
	dir := workDir(t)
	writeFile(t, dir, "door.json", scenarioA)

	out, err := run(t, "", dir, "door.json", "door")
	require.NoError(t, err)

	want := filepath.Join(dir, "door_20260217.dot")
	assert.Contains(t, out, "Wrote to file: "+want)

	b, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Contains(t, string(b), "idle -> running [label = \"start\"];\nrunning -> idle [label = \"stop\"];")
	assert.Contains(t, string(b), "Source: door.json\n")
}

func TestCLI_PathsAreConcatenated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prefix-door.json", scenarioA)

	// No separator is inserted between the first two arguments.
	_, err := run(t, "", filepath.Join(dir, "prefix-"), "door.json", "door")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "door_20260217.dot"))
}

func TestCLI_ValidationFailure(t *testing.T) {
	dir := workDir(t)
	writeFile(t, dir, "door.json", `{"state":{"status":"idle"}}`)

	out, err := run(t, "", dir, "door.json", "door")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsm.ErrValidation))
	assert.Contains(t, out, "Validation failed:\n  - Missing top-level key: 'transitions'\n")
	assert.NoFileExists(t, filepath.Join(dir, "door_20260217.dot"))
}

func TestCLI_MissingInput(t *testing.T) {
	_, err := run(t, "", workDir(t), "missing.json", "door")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fsm.ErrNotFound))
}

func TestCLI_WrongArgumentCount(t *testing.T) {
	_, err := run(t, "", "only", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 3 arguments, got 2")
	assert.Contains(t, err.Error(), usage)
}

func TestCLI_Flags(t *testing.T) {
	dir := workDir(t)
	writeFile(t, dir, "door.json", scenarioA)
	notes := writeFile(t, dir, "notes.txt", "Reviewed by \"QA\"\n")
	target := filepath.Join(dir, "custom.dot")

	out, err := run(t, "", dir, "door.json", "door", "--output", target, "--notes-file", notes, "--mermaid", "--print")
	require.NoError(t, err)
	assert.Contains(t, out, "JSON formatted print of : door.json\n")
	assert.Contains(t, out, "Wrote to file: "+target)
	assert.FileExists(t, filepath.Join(dir, "custom.mmd"))

	b, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(b), "---\nReviewed by \\\"QA\\\"\n\"\n}")
	assert.Contains(t, string(b), `dot -Tpdf \"`+target+`\" -o \"`+filepath.Join(dir, "custom.pdf")+`\"`)
}

func TestCLI_NotesFlagsAreExclusive(t *testing.T) {
	dir := workDir(t)
	writeFile(t, dir, "door.json", scenarioA)

	_, err := run(t, "", dir, "door.json", "door", "--notes", "a", "--notes-file", "b")
	assert.Error(t, err)
}

func TestCLI_NoArgumentsStartsInteractive(t *testing.T) {
	out, err := run(t, "7\n")
	require.NoError(t, err)
	assert.Contains(t, out, "=== FSM to DOT File Generator ===")
	assert.Contains(t, out, "Goodbye!")
}

func TestCLI_Scaffold(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defs", "light.json")

	out, err := run(t, "", "scaffold", path, "--example", "traffic-light")
	require.NoError(t, err)
	assert.Contains(t, out, "Created: "+path)

	def, err := fsm.Load(path)
	require.NoError(t, err)
	assert.Empty(t, fsm.Validate(def))
	assert.Equal(t, "red", def.InitialStateName())

	_, err = run(t, "", "scaffold", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, "", "scaffold", path, "--force", "--example", "simple")
	require.NoError(t, err)

	_, err = run(t, "", "scaffold", filepath.Join(dir, "x.json"), "--example", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown example")
}
