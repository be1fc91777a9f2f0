package rewrite

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"

	"github.com/teranos/askit/dyntype"
)

// Node construction helpers for the rewritten forms. The engine builds only
// literals, calls, map/slice composites and the prologue bindings; anything
// fancier belongs to the host printer.

// calleeParts splits a call's Fun into its base name and explicit type
// arguments. The base name is the identifier itself or the selector's Sel;
// anything else yields "".
func calleeParts(fun ast.Expr) (string, []ast.Expr) {
	inner := fun
	var typeArgs []ast.Expr
	switch f := fun.(type) {
	case *ast.IndexExpr:
		inner, typeArgs = f.X, []ast.Expr{f.Index}
	case *ast.IndexListExpr:
		inner, typeArgs = f.X, f.Indices
	}
	switch f := inner.(type) {
	case *ast.Ident:
		return f.Name, typeArgs
	case *ast.SelectorExpr:
		return f.Sel.Name, typeArgs
	}
	return "", nil
}

// templateLiteral returns the call's first argument when it is a string
// literal. A present-but-non-literal first argument disables rewriting for
// the call.
func templateLiteral(call *ast.CallExpr) (*ast.BasicLit, bool) {
	if len(call.Args) == 0 {
		return nil, false
	}
	lit, ok := call.Args[0].(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return nil, false
	}
	return lit, true
}

func isValueObject(obj types.Object) bool {
	switch obj.(type) {
	case *types.Var, *types.Const:
		return true
	}
	return false
}

func stringLit(s string) *ast.BasicLit {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func identList(names []string) []ast.Expr {
	exprs := make([]ast.Expr, 0, len(names))
	for _, n := range names {
		exprs = append(exprs, ast.NewIdent(n))
	}
	return exprs
}

// emptyAnySlice builds the []any{} literal used when a call omits examples.
func emptyAnySlice() *ast.CompositeLit {
	return &ast.CompositeLit{Type: &ast.ArrayType{Elt: ast.NewIdent("any")}}
}

// varsMapLit builds map[string]any{"x": x, ...} over the resolved variable
// names. Duplicate template references collapsed earlier, so each name maps
// to exactly one entry.
func varsMapLit(names []string) *ast.CompositeLit {
	m := &ast.CompositeLit{
		Type: &ast.MapType{Key: ast.NewIdent("string"), Value: ast.NewIdent("any")},
	}
	for _, n := range names {
		m.Elts = append(m.Elts, &ast.KeyValueExpr{Key: stringLit(n), Value: ast.NewIdent(n)})
	}
	return m
}

// hasBindingsDecl reports whether the unit already carries the prologue
// binding block from an earlier pass. Detection keys on the first vocabulary
// identifier; the block is only ever emitted whole.
func hasBindingsDecl(file *ast.File) bool {
	for _, d := range file.Decls {
		gd, ok := d.(*ast.GenDecl)
		if !ok || gd.Tok != token.VAR {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if ok && len(vs.Names) > 0 && vs.Names[0].Name == dyntype.Bindings[0].Ident {
				return true
			}
		}
	}
	return false
}

// bindingsDecl builds the shared prologue declaration, one binding per
// vocabulary constructor:
//
//	var (
//		dynType  = dyn.Type
//		...
//	)
func bindingsDecl() *ast.GenDecl {
	decl := &ast.GenDecl{Tok: token.VAR, Lparen: token.Pos(1)}
	for _, b := range dyntype.Bindings {
		decl.Specs = append(decl.Specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(b.Ident)},
			Values: []ast.Expr{&ast.SelectorExpr{
				X:   ast.NewIdent(dyntype.RuntimeIdent),
				Sel: ast.NewIdent(b.Constructor),
			}},
		})
	}
	return decl
}
