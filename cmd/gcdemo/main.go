// Command gcdemo allocates a small object graph through a gc.Engine,
// collects it, and prints the resulting statistics. It doubles as a
// manual smoke test and as a place to point a profiler at allocation and
// collection under a configurable memory budget.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	gc "github.com/tracewell/cpgc"
)

func main() {
	var limit int64
	var count int
	var cpuprofile, memprofile string
	flag.Int64Var(&limit, "limit", 0, "byte budget for the engine's arena, 0 for unbounded")
	flag.IntVar(&count, "n", 1000, "number of objects to allocate")
	flag.StringVar(&cpuprofile, "cpuprofile", "", "write a CPU profile to this file")
	flag.StringVar(&memprofile, "memprofile", "", "write a heap profile to this file")
	flag.Parse()

	if cpuprofile != "" {
		f, err := os.Create(cpuprofile)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fail(err)
		}
		defer pprof.StopCPUProfile()
	}

	var opts []gc.Option
	if limit > 0 {
		opts = append(opts, gc.WithMemoryLimit(limit))
	}
	e := gc.NewEngine(opts...)

	desc := gc.Descriptor{Kind: gc.Fixed, ElemSize: 8, Subrefs: 1, Count: 1}
	var last *gc.Gateway
	var root *gc.Root
	for i := 0; i < count; i++ {
		g, err := e.Alloc(desc)
		if err != nil {
			fail(err)
		}
		if last != nil {
			g.SetSubRef(0, 0, last)
		}
		last = g
	}
	root = e.NewRoot(last)
	e.Collect()
	fmt.Println(e.Stats())

	e.FreeRoot(root)
	e.Collect()
	fmt.Println(e.Stats())

	if memprofile != "" {
		f, err := os.Create(memprofile)
		if err != nil {
			fail(err)
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			fail(err)
		}
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
