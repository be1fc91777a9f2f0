package rewrite

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
)

// TypeResolver is the narrow slice of the host type-checker the engine
// consumes: lexical scope lookup at a position, static type at an AST node,
// constant values, and printable type strings. Everything else about the
// checker stays behind this interface.
type TypeResolver interface {
	// LookupParent returns the object bound to name in the innermost lexical
	// scope enclosing pos, or nil.
	LookupParent(name string, pos token.Pos) types.Object

	// TypeOf returns the static type recorded for expr, or nil. Works for
	// both value expressions and type expressions.
	TypeOf(expr ast.Expr) types.Type

	// ConstValue returns the statically known constant value of expr, or nil.
	ConstValue(expr ast.Expr) constant.Value

	// TypeString renders t relative to the unit's package.
	TypeString(t types.Type) string
}

type goResolver struct {
	pkg  *types.Package
	info *types.Info
}

// NewGoResolver adapts a type-checked package to the TypeResolver interface.
func NewGoResolver(pkg *types.Package, info *types.Info) TypeResolver {
	return &goResolver{pkg: pkg, info: info}
}

func (r *goResolver) LookupParent(name string, pos token.Pos) types.Object {
	scope := r.pkg.Scope().Innermost(pos)
	if scope == nil {
		scope = r.pkg.Scope()
	}
	_, obj := scope.LookupParent(name, pos)
	return obj
}

func (r *goResolver) TypeOf(expr ast.Expr) types.Type {
	return r.info.TypeOf(expr)
}

func (r *goResolver) ConstValue(expr ast.Expr) constant.Value {
	if tv, ok := r.info.Types[expr]; ok {
		return tv.Value
	}
	return nil
}

func (r *goResolver) TypeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(r.pkg))
}
