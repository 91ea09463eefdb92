package fsm

import "fmt"

// Reachability over the transitions map. Only used for warnings: a definition
// with unreachable or dead-end states is still valid.

type StateID string

// Graph is the successor relation of a definition: Succ[s] lists the targets
// of every trigger of s, duplicates removed.
type Graph struct {
	States []StateID
	Succ   map[StateID][]StateID
}

// ----- State sets -----

type StateSet map[StateID]struct{}

func NewStateSet() StateSet           { return make(StateSet) }
func (s StateSet) Has(id StateID) bool { _, ok := s[id]; return ok }
func (s StateSet) Add(id StateID)      { s[id] = struct{}{} }
func (s StateSet) Size() int           { return len(s) }

// NewGraph builds the successor graph from the well-formed edges of def.
func NewGraph(def *Definition) *Graph {
	g := &Graph{Succ: make(map[StateID][]StateID)}
	t, _ := def.Transitions()
	for _, src := range t.Keys() {
		g.States = append(g.States, StateID(src))
	}

	seen := make(map[string]bool)
	for _, e := range def.Edges() {
		key := e.Source + "->" + e.Target
		if seen[key] {
			continue
		}
		seen[key] = true
		from := StateID(e.Source)
		g.Succ[from] = append(g.Succ[from], StateID(e.Target))
	}
	return g
}

// Post returns the successors of every state in W:
// Post(W) = { s' | ∃ s ∈ W . R(s,s') }
func Post(W StateSet, g *Graph) StateSet {
	out := NewStateSet()
	for s := range W {
		for _, s2 := range g.Succ[s] {
			out.Add(s2)
		}
	}
	return out
}

// Reachable returns every state reachable from start, start included.
// Least fixpoint: Z = {start} ∪ Post(Z).
func Reachable(g *Graph, start StateID) StateSet {
	z := NewStateSet()
	z.Add(start)
	for {
		grew := false
		for s := range Post(z, g) {
			if !z.Has(s) {
				z.Add(s)
				grew = true
			}
		}
		if !grew {
			return z
		}
	}
}

// DeadEnds lists the states with no outgoing transition, in graph order.
func DeadEnds(g *Graph) []StateID {
	var out []StateID
	for _, s := range g.States {
		if len(g.Succ[s]) == 0 {
			out = append(out, s)
		}
	}
	return out
}

// Analyze reports states that cannot be reached from the initial state and
// states with no way out. It expects a definition that passed Validate.
func Analyze(def *Definition) []string {
	g := NewGraph(def)
	var warnings []string

	if v, ok := def.InitialState(); ok {
		if initial, ok := v.(string); ok {
			reach := Reachable(g, StateID(initial))
			for _, s := range g.States {
				if !reach.Has(s) {
					warnings = append(warnings, fmt.Sprintf("State '%s' is not reachable from initial state '%s'", s, initial))
				}
			}
		}
	}

	for _, s := range DeadEnds(g) {
		warnings = append(warnings, fmt.Sprintf("State '%s' has no outgoing transitions", s))
	}
	return warnings
}
