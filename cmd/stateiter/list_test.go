package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const fakeStateiter = `package stateiter

type Sequence[T any] struct{}

type Generator[T any] interface {
	Next() bool
}

type Counter struct{}

func Count() *Sequence[int] { return nil }

func Cursor() Generator[string] { return nil }

func ByValue() Sequence[bool] { return Sequence[bool]{} }

func (Counter) Items() *Sequence[int] { return nil }

func Plain() int { return 0 }

func WithError() (*Sequence[int], error) { return nil, nil }

func Nothing() {}
`

func checkFakePackage(t *testing.T) *packages.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "fake.go", fakeStateiter, 0)
	if err != nil {
		t.Fatal(err)
	}
	info := &types.Info{
		Types: make(map[ast.Expr]types.TypeAndValue),
		Defs:  make(map[*ast.Ident]types.Object),
		Uses:  make(map[*ast.Ident]types.Object),
	}
	var conf types.Config
	pkg, err := conf.Check(SequenceType.PkgPath, fset, []*ast.File{f}, info)
	if err != nil {
		t.Fatal(err)
	}
	return &packages.Package{
		Name:      pkg.Name(),
		PkgPath:   pkg.Path(),
		Fset:      fset,
		Syntax:    []*ast.File{f},
		Types:     pkg,
		TypesInfo: info,
	}
}

func TestTypeInfo(t *testing.T) {
	want := TypeInfo{PkgPath: "github.com/tmr232/stateiter", Name: "Sequence"}
	if SequenceType != want {
		t.Errorf("got %v, want %v", SequenceType, want)
	}
	if GeneratorType.Name != "Generator" || GeneratorType.PkgPath != want.PkgPath {
		t.Errorf("unexpected generator type %v", GeneratorType)
	}
}

func TestFindFactories(t *testing.T) {
	pkg := checkFakePackage(t)

	var got []string
	for _, f := range findFactories([]*packages.Package{pkg}) {
		got = append(got, f.Name+" "+f.Result)
	}
	want := []string{
		"Count *stateiter.Sequence[int]",
		"Cursor stateiter.Generator[string]",
		"ByValue stateiter.Sequence[bool]",
		"(Counter).Items *stateiter.Sequence[int]",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindFactoriesSkipsDuplicates(t *testing.T) {
	pkg := checkFakePackage(t)
	factories := findFactories([]*packages.Package{pkg, pkg})
	if len(factories) != 4 {
		t.Errorf("got %d factories, want 4", len(factories))
	}
}

func TestListCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			"examples",
			[]string{"list", "--dir", "../..", "./examples"},
			[]string{
				"NewInfiniteCounter returns *stateiter.Sequence[int]",
				"NewFiniteCounter returns *stateiter.Sequence[int]",
				"NewFibonacci returns *stateiter.Sequence[int]",
				"NewMarquee returns *stateiter.Sequence[[]T]",
				"NewMarqueeFunc returns *stateiter.Sequence[[]T]",
			},
		},
		{
			"default pattern",
			[]string{"list", "--dir", "../.."},
			[]string{
				"FromSlice returns *stateiter.Sequence[T]",
				"FromMap returns *stateiter.Sequence[stateiter.Pair[K, V]]",
				"New returns *stateiter.Sequence[T]",
				"NewStepper returns *stateiter.Sequence[T]",
				"Empty returns *stateiter.Sequence[T]",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := runApp(t, tt.args...)
			if err != nil {
				t.Fatal(err)
			}
			lines := strings.Split(strings.TrimSpace(got), "\n")
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(tt.want), got)
			}
			for i, line := range lines {
				if !strings.HasSuffix(line, ": "+tt.want[i]) {
					t.Errorf("line %d = %q, want suffix %q", i, line, tt.want[i])
				}
			}
		})
	}
}

func TestListCommandTests(t *testing.T) {
	// The test variant of ./examples repeats its non-test files.
	got, err := runApp(t, "list", "--dir", "../..", "--tests", "./examples")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(got, "NewInfiniteCounter returns"); n != 1 {
		t.Errorf("NewInfiniteCounter listed %d times:\n%s", n, got)
	}
}

func TestListCommandMissingPackage(t *testing.T) {
	if _, err := runApp(t, "list", "--dir", "../..", "./nosuchpackage"); err == nil {
		t.Error("expected an error for a missing package")
	}
}

func TestListCommandWriteError(t *testing.T) {
	var stderr bytes.Buffer
	err := newApp(failingWriter{}, &stderr).Run([]string{"stateiter", "list", "--dir", "../..", "./examples"})
	if err == nil || !strings.Contains(err.Error(), "write failed") {
		t.Errorf("got %v, want a write error", err)
	}
}
