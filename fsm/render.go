package fsm

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultAuthor      = "Peter Nussey"
	DefaultProgramName = "makeDotFile"
	DefaultRenderer    = "dot"
)

const preamble = `digraph finite_state_machine {
	node [fontname="Helvetica,Arial,sans-serif", fontcolor=blue, fontsize=7]
	edge [fontname="Times-Italic", fontcolor=red, fontstyle=italic, fontsize=7, arrowsize=0.5]
	rankdir=LR;`

// Renderer writes DOT files. The zero value is not usable; call NewRenderer.
type Renderer struct {
	author      string
	programName string
	renderer    string
	now         func() time.Time
	log         *zap.SugaredLogger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAuthor sets the author line of the diagram header.
func WithAuthor(author string) Option {
	return func(r *Renderer) { r.author = author }
}

// WithProgramName sets the program named in the "Generated by" line.
func WithProgramName(name string) Option {
	return func(r *Renderer) { r.programName = name }
}

// WithRenderer sets the executable shown in the embedded render command.
func WithRenderer(cmd string) Option {
	return func(r *Renderer) { r.renderer = cmd }
}

// WithClock replaces time.Now, for the header timestamp and default file name.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) { r.now = now }
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Renderer) { r.log = log }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		author:      DefaultAuthor,
		programName: DefaultProgramName,
		renderer:    DefaultRenderer,
		now:         time.Now,
		log:         zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the DOT text for def and returns the path it wrote to.
// An empty targetPath selects DefaultOutputPath next to the input file.
// def must already have passed Validate.
func (r *Renderer) Render(def *Definition, name, targetPath, notes string) (string, error) {
	now := r.now()
	dotPath := targetPath
	if dotPath == "" {
		dotPath = DefaultOutputPath(def.Path, name, now)
	}

	text := r.generate(def, name, dotPath, notes, now)
	if err := os.WriteFile(dotPath, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}

	r.log.Infow("Wrote DOT file",
		"path", dotPath,
		"states", def.StateCount(),
		"transitions", def.TransitionCount())
	return dotPath, nil
}

// Generate returns the DOT text Render would write to dotPath.
func (r *Renderer) Generate(def *Definition, name, dotPath, notes string) string {
	return r.generate(def, name, dotPath, notes, r.now())
}

func (r *Renderer) generate(def *Definition, name, dotPath, notes string, now time.Time) string {
	var edges strings.Builder
	for _, e := range def.Edges() {
		edges.WriteString(fmt.Sprintf("\n%s -> %s [label = \"%s\"];", e.Source, e.Target, e.Trigger))
	}

	header := r.header(def, name, now)

	// The command sits inside the label string literal, so its quotes are escaped.
	pdfPath := PDFPath(dotPath)
	command := fmt.Sprintf(`%s -Tpdf \"%s\" -o \"%s\"`, r.renderer, dotPath, pdfPath)

	label := header + command + "\n"
	if notes != "" {
		label += "---\n" + strings.ReplaceAll(notes, `"`, `\"`) + "\n"
	}

	var sb strings.Builder
	sb.WriteString("/*" + header + "*/\n")
	sb.WriteString(preamble + "\n")
	sb.WriteString(edges.String() + "\n")
	sb.WriteString("fontsize=8\nlabel = \"" + label + "\"")
	sb.WriteString("\n}")
	return sb.String()
}

func (r *Renderer) header(def *Definition, name string, now time.Time) string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(name + ": script for rendering FSM diagram in Graphviz (.dot format)\n")
	sb.WriteString("Author: " + r.author + "\n")
	sb.WriteString(fmt.Sprintf("Generated by %s %s on %s\n", r.programName, now.Format("15:04:05"), now.Format("02/01/2006")))
	sb.WriteString("Source: " + sourceName(def.Path) + "\n")
	sb.WriteString(fmt.Sprintf("States: %d  |  Transitions: %d\n", def.StateCount(), def.TransitionCount()))
	sb.WriteString("Initial state: " + def.InitialStateName() + "\n")
	return sb.String()
}
