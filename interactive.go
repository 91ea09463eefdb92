package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rfielding/fsmdot/fsm"
)

// form holds the fields of the interactive generator. Edits flow one way:
// input -> name -> output -> pdf -> command.
type form struct {
	input   string
	name    string
	output  string
	notes   string
	pdf     string
	command string

	// autoOutput is cleared once the user picks an output path by hand.
	autoOutput bool
	renderer   string
	now        func() time.Time
}

func newForm(renderer string, now func() time.Time) *form {
	return &form{autoOutput: true, renderer: renderer, now: now}
}

// setInput fills in the FSM name from the file stem when the file exists.
func (f *form) setInput(path string) {
	f.input = path
	if path != "" && isFile(path) {
		f.setName(fsm.SuggestName(path))
	}
}

func (f *form) setName(name string) {
	f.name = name
	if f.autoOutput {
		f.updateOutput(f.suggestOutput())
	}
}

// chooseOutput sets the output path by hand. An empty path hands control
// back to the suggestion.
func (f *form) chooseOutput(path string) {
	if path == "" {
		f.autoOutput = true
		f.updateOutput(f.suggestOutput())
		return
	}
	f.autoOutput = false
	f.updateOutput(path)
}

func (f *form) suggestOutput() string {
	if f.input == "" || f.name == "" {
		return ""
	}
	return fsm.DefaultOutputPath(f.input, f.name, f.now())
}

func (f *form) updateOutput(path string) {
	f.output = path
	f.pdf = ""
	if path != "" {
		f.pdf = fsm.PDFPath(path)
	}
	f.command = ""
	if f.output != "" && f.pdf != "" {
		f.command = fsm.DotCommand(f.renderer, f.output, f.pdf)
	}
}

// generate checks the fields and runs the conversion. It returns the status
// line and, on validation failure, the problems found.
func (f *form) generate(r *fsm.Renderer) (string, []string) {
	input := strings.TrimSpace(f.input)
	name := strings.TrimSpace(f.name)
	output := strings.TrimSpace(f.output)

	switch {
	case input == "":
		return "Error: No input file specified.", nil
	case !isFile(input):
		return "Error: Input file not found.", nil
	case name == "":
		return "Error: FSM name is empty.", nil
	case output == "":
		return "Error: No output file specified.", nil
	}

	_, err := r.Convert(fsm.Request{
		Name:       name,
		InputPath:  input,
		OutputPath: output,
		Notes:      strings.TrimSpace(f.notes),
	})
	var verr *fsm.ValidationError
	if errors.As(err, &verr) {
		return fmt.Sprintf("Validation failed: %d error(s)", len(verr.Problems)), verr.Problems
	}
	if err != nil {
		return "Error: " + err.Error(), nil
	}
	return "Success: " + output, nil
}

func (f *form) print(w io.Writer) {
	fmt.Fprintf(w, "  Input JSON File: %s\n", f.input)
	fmt.Fprintf(w, "  FSM Name:        %s\n", f.name)
	fmt.Fprintf(w, "  Output DOT File: %s\n", f.output)
	if f.notes != "" {
		fmt.Fprintf(w, "  Notes:           %d line(s)\n", strings.Count(f.notes, "\n")+1)
	}
	fmt.Fprintf(w, "  Output PDF File: %s\n", f.pdf)
	fmt.Fprintf(w, "  Dot Command:     %s\n", f.command)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// runInteractive drives the form from a numbered menu until the user exits
// or the input ends.
func runInteractive(in io.Reader, out io.Writer, a *app) error {
	reader := bufio.NewReader(in)
	f := newForm(a.cfg.Renderer, a.now)
	status := "Ready"

	fmt.Fprintln(out, "=== FSM to DOT File Generator ===")
	fmt.Fprintf(out, "Author: %s, ver%s\n", a.cfg.Author, version)

	for {
		fmt.Fprintln(out)
		f.print(out)
		fmt.Fprintf(out, "  Status: %s\n", status)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fmt.Fprintln(out, "1. Set input JSON file")
		fmt.Fprintln(out, "2. Set FSM name")
		fmt.Fprintln(out, "3. Set output DOT file")
		fmt.Fprintln(out, "4. Enter notes")
		fmt.Fprintln(out, "5. Generate")
		fmt.Fprintln(out, "6. About")
		fmt.Fprintln(out, "7. Exit")
		fmt.Fprint(out, "\nSelect option: ")

		choice, err := readLine(reader)
		if err != nil {
			return eofIsExit(err)
		}

		switch choice {
		case "1":
			fmt.Fprint(out, "Input JSON file: ")
			path, err := readLine(reader)
			if err != nil {
				return eofIsExit(err)
			}
			f.setInput(path)

		case "2":
			fmt.Fprint(out, "FSM name: ")
			name, err := readLine(reader)
			if err != nil {
				return eofIsExit(err)
			}
			f.setName(name)

		case "3":
			fmt.Fprint(out, "Output DOT file (empty for suggested): ")
			path, err := readLine(reader)
			if err != nil {
				return eofIsExit(err)
			}
			f.chooseOutput(path)

		case "4":
			fmt.Fprintln(out, "Notes (finish with an empty line):")
			notes, err := readBlock(reader)
			if err != nil {
				return eofIsExit(err)
			}
			f.notes = notes

		case "5":
			var problems []string
			status, problems = f.generate(a.renderer)
			for _, p := range problems {
				fmt.Fprintln(out, "  - "+p)
			}

		case "6":
			fmt.Fprintln(out)
			fmt.Fprintln(out, aboutText)

		case "7":
			fmt.Fprintln(out, "Goodbye!")
			return nil

		default:
			fmt.Fprintln(out, "Invalid option")
		}
	}
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readBlock reads lines up to the first empty one.
func readBlock(r *bufio.Reader) (string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		text := strings.TrimRight(line, "\r\n")
		if text == "" {
			return strings.Join(lines, "\n"), nil
		}
		lines = append(lines, text)
		if err == io.EOF {
			return strings.Join(lines, "\n"), nil
		}
	}
}

func eofIsExit(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
