// Command gcscenario runs a small object graph against a gc.Engine as
// described by a YAML scenario file, and reports whether the collector's
// behavior matched what the scenario expected. It is meant for exercising
// hand-written graphs that are awkward to express as Go test code, not as
// a replacement for the package's own test suite.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"

	gc "github.com/tracewell/cpgc"
)

// Scenario describes a run: a flat list of named Fixed-layout objects, the
// sub-reference edges between them, which ones start out rooted, and how
// many objects a single collection is expected to reclaim.
type Scenario struct {
	// Name identifies the scenario in output.
	Name string
	// Objects is the list of object names to allocate, each a one-element
	// Fixed array with one sub-reference slot.
	Objects []string
	// Edges wires Object[From].SubRef(0, 0) = Object[To] for each entry.
	Edges []EdgeData
	// Roots lists the object names that should be anchored with a Root
	// before the collection runs.
	Roots []string
	// ExpectFreed is the number of objects the scenario's single Collect
	// call is expected to reclaim.
	ExpectFreed int64
}

// EdgeData is one sub-reference wiring directive.
type EdgeData struct {
	From string
	To   string
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func main() {
	if len(os.Args) != 2 {
		fail(os.Args[0], "scenario.yaml")
	}
	b, err := ioutil.ReadFile(os.Args[1])
	if err != nil {
		fail(err)
	}
	var s Scenario
	if err := yaml.Unmarshal(b, &s); err != nil {
		fail(err)
	}
	if !run(s) {
		os.Exit(1)
	}
}

func run(s Scenario) bool {
	e := gc.NewEngine()
	objs := make(map[string]*gc.Gateway, len(s.Objects))
	desc := gc.Descriptor{Kind: gc.Fixed, ElemSize: 8, Subrefs: 1, Count: 1}
	for _, name := range s.Objects {
		g, err := e.Alloc(desc)
		if err != nil {
			fail("allocating", name, ":", err)
		}
		objs[name] = g
	}
	for _, edge := range s.Edges {
		from, ok := objs[edge.From]
		if !ok {
			fail("unknown object in edge:", edge.From)
		}
		to, ok := objs[edge.To]
		if !ok {
			fail("unknown object in edge:", edge.To)
		}
		from.SetSubRef(0, 0, to)
	}
	var roots []*gc.Root
	for _, name := range s.Roots {
		g, ok := objs[name]
		if !ok {
			fail("unknown object in roots:", name)
		}
		roots = append(roots, e.NewRoot(g))
	}
	_ = roots

	e.Collect()
	freed := e.Stats().Freed
	if freed != s.ExpectFreed {
		fmt.Printf("%s: FAIL freed=%d want=%d\n", s.Name, freed, s.ExpectFreed)
		return false
	}
	fmt.Printf("%s: ok (freed %d)\n", s.Name, freed)
	return true
}
