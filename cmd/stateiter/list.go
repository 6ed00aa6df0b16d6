package main

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strings"

	"github.com/tmr232/stateiter"
	"github.com/urfave/cli"
	"golang.org/x/tools/go/packages"
	"golang.org/x/xerrors"
)

type TypeInfo struct {
	PkgPath string
	Name    string
}

func (t TypeInfo) String() string {
	return fmt.Sprintf("%s.%s", t.PkgPath, t.Name)
}

var SequenceType TypeInfo
var GeneratorType TypeInfo

func init() {
	SequenceType = typeInfoOf(reflect.TypeOf(new(stateiter.Sequence[struct{}])).Elem())
	GeneratorType = typeInfoOf(reflect.TypeOf(new(stateiter.Generator[struct{}])).Elem())
}

func typeInfoOf(t reflect.Type) TypeInfo {
	name, _, _ := strings.Cut(t.Name(), "[")
	return TypeInfo{PkgPath: t.PkgPath(), Name: name}
}

// factory is a function declaration whose only result is a sequence.
type factory struct {
	Position token.Position
	Name     string
	Result   string
}

func (f factory) String() string {
	return fmt.Sprintf("%s: %s returns %s", f.Position, f.Name, f.Result)
}

// sequenceResult returns the single result type of fdecl if it is a
// stateiter.Sequence (or a pointer to one) or a stateiter.Generator.
func sequenceResult(info *types.Info, fdecl *ast.FuncDecl) (types.Type, bool) {
	results := fdecl.Type.Results
	if results == nil || len(results.List) != 1 || len(results.List[0].Names) > 1 {
		return nil, false
	}

	result := info.TypeOf(results.List[0].Type)
	typ := result
	if ptr, isPtr := typ.(*types.Pointer); isPtr {
		typ = ptr.Elem()
	}
	namedType, isNamed := typ.(*types.Named)
	if !isNamed || namedType.Obj().Pkg() == nil {
		return nil, false
	}

	pkgPath, name := namedType.Obj().Pkg().Path(), namedType.Obj().Name()
	for _, want := range []TypeInfo{SequenceType, GeneratorType} {
		if pkgPath == want.PkgPath && name == want.Name {
			return result, true
		}
	}
	return nil, false
}

func funcName(fdecl *ast.FuncDecl) string {
	if fdecl.Recv == nil || len(fdecl.Recv.List) == 0 {
		return fdecl.Name.Name
	}
	recv := types.ExprString(fdecl.Recv.List[0].Type)
	return fmt.Sprintf("(%s).%s", recv, fdecl.Name.Name)
}

func findFactories(pkgs []*packages.Package) []factory {
	var factories []factory
	seen := make(map[string]bool)
	for _, pkg := range pkgs {
		qualifier := func(p *types.Package) string { return p.Name() }
		for _, f := range pkg.Syntax {
			for _, decl := range f.Decls {
				fdecl, isFunc := decl.(*ast.FuncDecl)
				if !isFunc {
					continue
				}
				result, ok := sequenceResult(pkg.TypesInfo, fdecl)
				if !ok {
					continue
				}
				found := factory{
					Position: pkg.Fset.Position(fdecl.Pos()),
					Name:     funcName(fdecl),
					Result:   types.TypeString(result, qualifier),
				}
				// Test variants repeat the files of the package under test.
				if key := found.String(); !seen[key] {
					seen[key] = true
					factories = append(factories, found)
				}
			}
		}
	}
	return factories
}

func loadPackages(dir string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:  packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedSyntax | packages.NeedName,
		Dir:   dir,
		Tests: tests,
	}
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, xerrors.Errorf("loading packages: %w", err)
	}
	var errs []string
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e.Error())
		}
	})
	if len(errs) > 0 {
		return nil, xerrors.Errorf("loading packages: %s", strings.Join(errs, "; "))
	}
	return pkgs, nil
}

func listCommand(r *runner) cli.Command {
	return cli.Command{
		Name:      "list",
		Usage:     "list functions that return a sequence",
		ArgsUsage: "[packages]",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "dir", Value: ".", Usage: "directory to load packages from"},
			cli.BoolFlag{Name: "tests", Usage: "include test files"},
		},
		Action: func(c *cli.Context) error {
			patterns := []string(c.Args())
			if len(patterns) == 0 {
				patterns = []string{"."}
			}
			r.logger.Debug("loading packages", "dir", c.String("dir"), "patterns", patterns)

			pkgs, err := loadPackages(c.String("dir"), c.Bool("tests"), patterns)
			if err != nil {
				return err
			}
			factories := findFactories(pkgs)
			for _, f := range factories {
				if _, err := fmt.Fprintln(r.out, f); err != nil {
					return xerrors.Errorf("writing factory: %w", err)
				}
			}
			r.logger.Info("done", "packages", len(pkgs), "factories", len(factories))
			return nil
		},
	}
}
