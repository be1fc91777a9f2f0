package rewrite

import (
	"encoding/json"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

var emptyExamples = json.RawMessage("[]")

// examplesJSON derives the metadata examples field from a call's second
// positional argument: an inline literal serialized to JSON, or a bare
// identifier resolved to the statically known value it is bound to. Any
// resolution or conversion failure silently yields the empty list; examples
// are advisory, never a reason to abort a transform.
func (tr *transform) examplesJSON(call *ast.CallExpr) json.RawMessage {
	if len(call.Args) < 2 {
		return emptyExamples
	}
	arg := call.Args[1]

	if ident, ok := arg.(*ast.Ident); ok {
		// Resolve the identifier in scope at the call site first; matching
		// initializers by declaration position keeps shadowed bindings apart.
		if obj := tr.unit.Resolver.LookupParent(ident.Name, call.Pos()); obj != nil {
			if init := findInitializer(tr.unit.File, obj.Pos()); init != nil {
				if s, ok := literalJSON(init, tr.unit.Resolver); ok {
					return json.RawMessage(s)
				}
			}
		}
		// Constants resolve through the checker even without a visible
		// initializer in this unit.
		if s, ok := constJSON(tr.unit.Resolver.ConstValue(arg)); ok {
			return json.RawMessage(s)
		}
		return emptyExamples
	}

	if s, ok := literalJSON(arg, tr.unit.Resolver); ok {
		return json.RawMessage(s)
	}
	return emptyExamples
}

// findInitializer locates the expression bound by the var/const spec or short
// variable declaration whose declared identifier sits at declPos.
func findInitializer(file *ast.File, declPos token.Pos) ast.Expr {
	var found ast.Expr
	ast.Inspect(file, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		switch d := n.(type) {
		case *ast.ValueSpec:
			for i, id := range d.Names {
				if id.Pos() == declPos && i < len(d.Values) {
					found = d.Values[i]
					return false
				}
			}
		case *ast.AssignStmt:
			for i, lhs := range d.Lhs {
				id, ok := lhs.(*ast.Ident)
				if ok && id.Pos() == declPos && i < len(d.Rhs) {
					found = d.Rhs[i]
					return false
				}
			}
		}
		return true
	})
	return found
}

// literalJSON converts a literal expression to its JSON encoding. Element
// order is preserved, which encoding/json would not guarantee for maps.
func literalJSON(expr ast.Expr, r TypeResolver) (string, bool) {
	if s, ok := constJSON(r.ConstValue(expr)); ok {
		return s, true
	}

	switch e := expr.(type) {
	case *ast.ParenExpr:
		return literalJSON(e.X, r)

	case *ast.CompositeLit:
		if isObjectLit(e, r) {
			return objectJSON(e, r)
		}
		return arrayJSON(e, r)
	}
	return "", false
}

// isObjectLit reports whether a composite literal should encode as a JSON
// object (struct or map) rather than an array.
func isObjectLit(e *ast.CompositeLit, r TypeResolver) bool {
	if t := r.TypeOf(e); t != nil {
		switch t.Underlying().(type) {
		case *types.Struct, *types.Map:
			return true
		case *types.Slice, *types.Array:
			return false
		}
	}
	// Untyped inner literal ([]T{{...}} elements): sniff the element form.
	if len(e.Elts) > 0 {
		_, kv := e.Elts[0].(*ast.KeyValueExpr)
		return kv
	}
	return false
}

func objectJSON(e *ast.CompositeLit, r TypeResolver) (string, bool) {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, elt := range e.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			return "", false
		}
		key, ok := keyString(kv.Key, r)
		if !ok {
			return "", false
		}
		val, ok := literalJSON(kv.Value, r)
		if !ok {
			return "", false
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(key))
		sb.WriteByte(':')
		sb.WriteString(val)
	}
	sb.WriteByte('}')
	return sb.String(), true
}

func arrayJSON(e *ast.CompositeLit, r TypeResolver) (string, bool) {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elt := range e.Elts {
		val, ok := literalJSON(elt, r)
		if !ok {
			return "", false
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(val)
	}
	sb.WriteByte(']')
	return sb.String(), true
}

func keyString(key ast.Expr, r TypeResolver) (string, bool) {
	// Struct field keys are bare identifiers; map keys must be constant
	// strings.
	if id, ok := key.(*ast.Ident); ok {
		if v := r.ConstValue(key); v != nil && v.Kind() == constant.String {
			return constant.StringVal(v), true
		}
		return id.Name, true
	}
	if v := r.ConstValue(key); v != nil && v.Kind() == constant.String {
		return constant.StringVal(v), true
	}
	return "", false
}

func constJSON(v constant.Value) (string, bool) {
	if v == nil {
		return "", false
	}
	switch v.Kind() {
	case constant.String:
		b, err := json.Marshal(constant.StringVal(v))
		if err != nil {
			return "", false
		}
		return string(b), true
	case constant.Bool:
		return strconv.FormatBool(constant.BoolVal(v)), true
	case constant.Int:
		return v.ExactString(), true
	case constant.Float:
		f, _ := constant.Float64Val(v)
		return strconv.FormatFloat(f, 'g', -1, 64), true
	}
	return "", false
}
