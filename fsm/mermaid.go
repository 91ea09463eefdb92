package fsm

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteMermaid writes a Mermaid stateDiagram-v2 of def to w, one line per
// trigger, starting from the initial state.
func WriteMermaid(def *Definition, w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	if initial, ok := def.InitialState(); ok {
		sb.WriteString(fmt.Sprintf("  [*] --> %s\n\n", formatValue(initial)))
	}

	for _, e := range def.Edges() {
		sb.WriteString(fmt.Sprintf("  %s --> %s: %s\n", e.Source, e.Target, e.Trigger))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteMermaidFile writes the Mermaid diagram of def to path.
func WriteMermaidFile(def *Definition, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := WriteMermaid(def, f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
