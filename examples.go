package main

import (
	"sort"

	"github.com/rfielding/fsmdot/fsm"
)

// newDefinition builds a definition document from (source, trigger, target)
// triples. States appear in the order they are first used as a source.
func newDefinition(initial string, edges ...[3]string) *fsm.Object {
	transitions := fsm.NewObject()
	for _, e := range edges {
		v, ok := transitions.Get(e[0])
		triggers, _ := v.(*fsm.Object)
		if !ok {
			triggers = fsm.NewObject()
			transitions.Set(e[0], triggers)
		}
		triggers.Set(e[1], fsm.NewObject().Set("status", e[2]))
	}

	return fsm.NewObject().
		Set("state", fsm.NewObject().Set("status", initial)).
		Set("transitions", transitions)
}

// CreateTrafficLightExample creates a simple traffic light cycle
func CreateTrafficLightExample() *fsm.Object {
	return newDefinition("red",
		[3]string{"red", "timer", "green"},
		[3]string{"green", "timer", "yellow"},
		[3]string{"yellow", "timer", "red"},
	)
}

// CreateMutualExclusionExample creates a two-process mutual exclusion protocol.
// n = non-critical, t = trying, c = critical
func CreateMutualExclusionExample() *fsm.Object {
	return newDefinition("n1n2",
		[3]string{"n1n2", "request1", "t1n2"},
		[3]string{"n1n2", "request2", "n1t2"},
		[3]string{"t1n2", "enter1", "c1n2"},
		[3]string{"t1n2", "request2", "t1t2"},
		[3]string{"n1t2", "request1", "t1t2"},
		[3]string{"n1t2", "enter2", "n1c2"},
		[3]string{"c1n2", "exit1", "n1n2"},
		[3]string{"n1c2", "exit2", "n1n2"},
		[3]string{"t1t2", "enter1", "c1t2"},
		[3]string{"t1t2", "enter2", "t1c2"},
		[3]string{"c1t2", "exit1", "n1t2"},
		[3]string{"t1c2", "exit2", "t1n2"},
	)
}

// CreateSimpleExample creates a very simple example for testing
func CreateSimpleExample() *fsm.Object {
	return newDefinition("s0",
		[3]string{"s0", "start", "s1"},
		[3]string{"s1", "next", "s2"},
		[3]string{"s2", "back", "s1"},
	)
}

var examples = map[string]func() *fsm.Object{
	"traffic-light":    CreateTrafficLightExample,
	"mutual-exclusion": CreateMutualExclusionExample,
	"simple":           CreateSimpleExample,
}

func exampleNames() []string {
	names := make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
