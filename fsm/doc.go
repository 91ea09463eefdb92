// Package fsm turns Node-RED finite state machine definitions into Graphviz
// DOT diagrams.
//
// A conversion is three steps run once per input file:
//
//	def, err := fsm.Load("machines/door.json")
//	if problems := fsm.Validate(def); len(problems) > 0 {
//		// report and stop, never render an invalid definition
//	}
//	path, err := fsm.NewRenderer().Render(def, "door", "", notes)
//
// Renderer.Convert wraps the three steps for callers that do not need the
// intermediate definition.
package fsm
