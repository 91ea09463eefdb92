package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

// makeDotFile scaffold -e traffic-light machines/light.json
// Writes a starter definition that converts cleanly.

func newScaffoldCmd(a *app) *cobra.Command {
	var (
		exampleName string
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "scaffold <path>",
		Short: "Write a starter FSM definition",
		Long:  "Write one of the built-in FSM definitions (" + strings.Join(exampleNames(), ", ") + ") as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.scaffold(args[0], exampleName, force)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Created:", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&exampleName, "example", "e", "traffic-light", "built-in definition to write")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func (a *app) scaffold(path, exampleName string, force bool) (string, error) {
	build, ok := examples[exampleName]
	if !ok {
		return "", fmt.Errorf("unknown example %q (have %s)", exampleName, strings.Join(exampleNames(), ", "))
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	data, err := json.MarshalIndent(build(), "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", exampleName, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}

	a.log.Infow("Scaffolded definition", "path", path, "example", exampleName)
	return path, nil
}
