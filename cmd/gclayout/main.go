// Command gclayout scans a Go package for functions whose signature matches
// gc.TracerFunc or gc.FinalizerFunc, and prints a RegisterTracer/
// RegisterFinalizer call for each one it finds. It exists so that a host
// with dozens of Custom-layout types doesn't have to hand-write and
// hand-order its registration boilerplate.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore, gcpath string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&gcpath, "gc", "github.com/tracewell/cpgc", "import path for package gc")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{gcpath}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	tracer, finalizer, pkgs := getCallbackTypes(pkgs)

	for _, pkg := range pkgs {
		tracers := find(pkg.Types.Scope(), tracer, mre, ire)
		finalizers := find(pkg.Types.Scope(), finalizer, mre, ire)
		sort.Strings(tracers)
		sort.Strings(finalizers)
		for _, name := range tracers {
			fmt.Printf("%sID := e.RegisterTracer(%s)\n", lowerFirst(trimMatch(name, mre)), name)
		}
		for _, name := range finalizers {
			fmt.Printf("%sID := e.RegisterFinalizer(%s)\n", lowerFirst(trimMatch(name, mre)), name)
		}
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func getCallbackTypes(pkgs []*packages.Package) (types.Type, types.Type, []*packages.Package) {
	pkg := pkgs[0].Types
	tr := lookupUnderlying(pkg, "TracerFunc")
	fi := lookupUnderlying(pkg, "FinalizerFunc")
	return tr, fi, pkgs[1:]
}

func lookupUnderlying(pkg *types.Package, name string) types.Type {
	r := pkg.Scope().Lookup(name)
	if r == nil {
		fail(pkg.Name(), "has no definition of", name)
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Name(), "has incorrect definition of", name, ":", r)
	}
	return t.Type().Underlying()
}

func find(scope *types.Scope, want types.Type, mre, ire *regexp.Regexp) []string {
	var names []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		t := scope.Lookup(name).Type()
		if types.AssignableTo(t, want) {
			names = append(names, name)
		}
	}
	return names
}

func trimMatch(name string, mre *regexp.Regexp) string {
	if mre.String() != "." {
		k := mre.FindStringIndex(name)
		name = name[k[1]:]
	}
	return name
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
