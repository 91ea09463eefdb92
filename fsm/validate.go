package fsm

import "fmt"

// Validate checks a loaded definition and returns one message per problem.
// An empty result means the definition can be rendered.
//
// Missing top-level keys and an empty or non-object transitions map stop the
// checks early; malformed triggers are all collected.
func Validate(def *Definition) []string {
	var errs []string

	doc, _ := def.Document()
	if !doc.Has("state") {
		errs = append(errs, "Missing top-level key: 'state'")
	}
	if !doc.Has("transitions") {
		errs = append(errs, "Missing top-level key: 'transitions'")
	}
	if len(errs) > 0 {
		return errs
	}

	initial, hasInitial := def.InitialState()
	if !hasInitial {
		errs = append(errs, "'state' object is missing 'status' key")
	}

	transitions, ok := def.Transitions()
	if !ok || transitions.Len() == 0 {
		return append(errs, "'transitions' must be a non-empty object")
	}

	for _, src := range transitions.Keys() {
		v, _ := transitions.Get(src)
		triggers, ok := v.(*Object)
		if !ok {
			errs = append(errs, fmt.Sprintf("Transitions for state '%s' must be an object", src))
			continue
		}
		for _, trigger := range triggers.Keys() {
			tv, _ := triggers.Get(trigger)
			if rec, ok := tv.(*Object); !ok || !rec.Has("status") {
				errs = append(errs, fmt.Sprintf("Transition '%s' -> '%s' is missing 'status' key", src, trigger))
			}
		}
	}

	if hasInitial && !isStateKey(transitions, initial) {
		errs = append(errs, fmt.Sprintf("Initial state '%s' not found in transitions", formatValue(initial)))
	}

	for _, src := range transitions.Keys() {
		v, _ := transitions.Get(src)
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
			if !isStateKey(transitions, target) {
				errs = append(errs, fmt.Sprintf("Target state '%s' (from '%s' via '%s') is not defined in transitions",
					formatValue(target), src, trigger))
			}
		}
	}

	return errs
}

// isStateKey reports whether v names a source state. Only strings can.
func isStateKey(transitions *Object, v any) bool {
	s, ok := v.(string)
	return ok && transitions.Has(s)
}
