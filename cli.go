package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rfielding/fsmdot/fsm"
	"github.com/rfielding/fsmdot/internal/config"
)

const (
	version = "1.1"
	usage   = `Usage: makeDotFile "working_directory" "JSON file name" "FSM name"`
)

const aboutText = `This utility converts the JSON format used by Node-RED to define a Finite
State Machine (FSM) into a Graphviz .dot file that draws its state diagram.

A typical workflow:

1. Write a JSON file to describe the desired FSM.
2. Convert it to a .dot file with this tool.
3. Run the Graphviz dot command shown in the diagram to produce a PDF.
4. Test the FSM, using the diagram to help with debugging.
5. Update the JSON file as required.
6. Repeat steps 2 - 5 until the FSM behaves as intended.`

// app carries the configured collaborators shared by every command.
type app struct {
	cfg      config.Config
	log      *zap.SugaredLogger
	renderer *fsm.Renderer
	now      func() time.Time
}

func newApp(cfg config.Config, log *zap.SugaredLogger, now func() time.Time) *app {
	return &app{
		cfg: cfg,
		log: log,
		now: now,
		renderer: fsm.NewRenderer(
			fsm.WithAuthor(cfg.Author),
			fsm.WithProgramName(cfg.ProgramName),
			fsm.WithRenderer(cfg.Renderer),
			fsm.WithClock(now),
			fsm.WithLogger(log.Named("render")),
		),
	}
}

type convertOptions struct {
	output    string
	notes     string
	notesFile string
	mermaid   bool
	print     bool
}

func newRootCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:     "makeDotFile <working_directory> <json_file_name> <fsm_name>",
		Short:   "Convert a Node-RED FSM definition into a Graphviz .dot file",
		Long:    aboutText + "\n\nRun without arguments for the interactive generator.",
		Version: version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected 3 arguments, got %d\n%s", len(args), usage)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), a)
			}
			return a.convert(cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output .dot path (default <input dir>/<fsm name>_<YYYYMMDD>.dot)")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "notes appended to the diagram label")
	cmd.Flags().StringVar(&opts.notesFile, "notes-file", "", "read diagram notes from a file")
	cmd.Flags().BoolVar(&opts.mermaid, "mermaid", false, "also write a Mermaid state diagram next to the .dot file")
	cmd.Flags().BoolVar(&opts.print, "print", false, "print the parsed definition as indented JSON")
	cmd.MarkFlagsMutuallyExclusive("notes", "notes-file")

	cmd.AddCommand(newScaffoldCmd(a))
	return cmd
}

// convert runs one command-line conversion. The input path is the plain
// concatenation of the working directory and the file name.
func (a *app) convert(out io.Writer, args []string, opts convertOptions) error {
	inputPath := args[0] + args[1]
	name := args[2]
	a.log.Debugw("Converting", "input", inputPath, "name", name, "output", opts.output)

	notes := opts.notes
	if opts.notesFile != "" {
		b, err := os.ReadFile(opts.notesFile)
		if err != nil {
			return fmt.Errorf("read notes: %w", err)
		}
		notes = strings.TrimSpace(string(b))
	}

	if opts.print {
		def, err := fsm.Load(inputPath)
		if err != nil {
			return err
		}
		pretty, err := def.Pretty()
		if err != nil {
			return fmt.Errorf("print definition: %w", err)
		}
		fmt.Fprintf(out, "JSON formatted print of : %s\n%s\n", filepath.Base(inputPath), pretty)
	}

	path, err := a.renderer.Convert(fsm.Request{
		Name:       name,
		InputPath:  inputPath,
		OutputPath: opts.output,
		Notes:      notes,
		Mermaid:    opts.mermaid,
	})
	var verr *fsm.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(out, "Validation failed:")
		for _, p := range verr.Problems {
			fmt.Fprintln(out, "  - "+p)
		}
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote to file: %s\n", path)
	return nil
}
