package fsm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// Definition is a loaded FSM document. Root holds whatever JSON value the file
// contained; no shape is assumed until Validate has looked at it.
type Definition struct {
	Path string
	Root any
}

// Edge is one trigger of one source state.
type Edge struct {
	Source  string
	Trigger string
	Target  string
}

// Load reads and parses the JSON document at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes data as if it had been read from path.
func Parse(path string, data []byte) (*Definition, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return &Definition{Path: path, Root: root}, nil
}

// Document returns the top-level object, if the root is one.
func (d *Definition) Document() (*Object, bool) {
	obj, ok := d.Root.(*Object)
	return obj, ok
}

// State returns the raw value of the top-level "state" key.
func (d *Definition) State() (any, bool) {
	doc, ok := d.Document()
	if !ok {
		return nil, false
	}
	return doc.Get("state")
}

// Transitions returns the "transitions" object.
func (d *Definition) Transitions() (*Object, bool) {
	doc, ok := d.Document()
	if !ok {
		return nil, false
	}
	v, _ := doc.Get("transitions")
	t, ok := v.(*Object)
	return t, ok
}

// InitialState returns state.status.
func (d *Definition) InitialState() (any, bool) {
	v, _ := d.State()
	state, ok := v.(*Object)
	if !ok {
		return nil, false
	}
	return state.Get("status")
}

// InitialStateName returns state.status as diagram text, or "unknown".
func (d *Definition) InitialStateName() string {
	v, ok := d.InitialState()
	if !ok {
		return "unknown"
	}
	return formatValue(v)
}

// StateCount is the number of source states in the transitions map.
func (d *Definition) StateCount() int {
	t, _ := d.Transitions()
	return t.Len()
}

// TransitionCount sums the triggers of every source state whose value is an object.
func (d *Definition) TransitionCount() int {
	t, _ := d.Transitions()
	n := 0
	for _, src := range t.Keys() {
		v, _ := t.Get(src)
		if triggers, ok := v.(*Object); ok {
			n += triggers.Len()
		}
	}
	return n
}

// Edges lists every well-formed transition in file order. Triggers without
// a status are left out.
func (d *Definition) Edges() []Edge {
	t, _ := d.Transitions()
	var edges []Edge
	for _, src := range t.Keys() {
		v, _ := t.Get(src)
		triggers, ok := v.(*Object)
		if !ok {
			continue
		}
		for _, trigger := range triggers.Keys() {
			tv, _ := triggers.Get(trigger)
			rec, ok := tv.(*Object)
			if !ok {
				continue
			}
			target, ok := rec.Get("status")
			if !ok {
				continue
			}
			edges = append(edges, Edge{Source: src, Trigger: trigger, Target: formatValue(target)})
		}
	}
	return edges
}

// Pretty returns the document as JSON indented by four spaces, keys in file order.
func (d *Definition) Pretty() (string, error) {
	b, err := json.MarshalIndent(d.Root, "", strings.Repeat(" ", 4))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
