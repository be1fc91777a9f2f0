package dyntype

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
)

// RuntimeIdent is the import alias under which the vocabulary package is
// injected into rewritten units.
const RuntimeIdent = "dyn"

// DefaultRuntimePath is the import path of the vocabulary package.
const DefaultRuntimePath = "github.com/teranos/askit/dyn"

// Binding pairs an injected prologue identifier with the vocabulary
// constructor it aliases.
type Binding struct {
	Ident       string
	Constructor string
}

// Bindings is the fixed type-constructor vocabulary, in injection order. All
// eight are injected into every transformed unit regardless of use.
var Bindings = []Binding{
	{"dynType", "Type"},
	{"dynArray", "Array"},
	{"dynString", "String"},
	{"dynNumber", "Number"},
	{"dynBoolean", "Boolean"},
	{"dynObject", "Object"},
	{"dynUnion", "Union"},
	{"dynLiteral", "Literal"},
}

// Dynamic produces an expression that reconstructs an equivalent run-time
// descriptor when evaluated in a scope holding the vocabulary bindings.
// Total over Shape; unrepresentable types are rejected earlier by FromGoType.
func Dynamic(s Shape) ast.Expr {
	switch s.Kind {
	case KindPrimitive:
		switch s.Prim {
		case PrimString:
			return vocabCall("dynString")
		case PrimNumber:
			return vocabCall("dynNumber")
		default:
			return vocabCall("dynBoolean")
		}

	case KindArray:
		return vocabCall("dynArray", Dynamic(*s.Elem))

	case KindObject:
		args := make([]ast.Expr, 0, len(s.Fields))
		for _, f := range s.Fields {
			args = append(args, fieldLit(f))
		}
		return vocabCall("dynObject", args...)

	case KindUnion:
		args := make([]ast.Expr, 0, len(s.Members))
		for _, m := range s.Members {
			args = append(args, Dynamic(m))
		}
		return vocabCall("dynUnion", args...)

	case KindLiteral:
		return vocabCall("dynLiteral", valueLit(s.Value))

	case KindNamed:
		return vocabCall("dynType", stringLit(s.Name), Dynamic(*s.Elem))

	default:
		panic(fmt.Sprintf("dyntype: unknown shape kind %d", s.Kind))
	}
}

func vocabCall(binding string, args ...ast.Expr) ast.Expr {
	return &ast.CallExpr{Fun: ast.NewIdent(binding), Args: args}
}

// fieldLit builds dyn.Field{Name: "X", Type: <descriptor>}.
func fieldLit(f FieldShape) ast.Expr {
	return &ast.CompositeLit{
		Type: &ast.SelectorExpr{X: ast.NewIdent(RuntimeIdent), Sel: ast.NewIdent("Field")},
		Elts: []ast.Expr{
			&ast.KeyValueExpr{Key: ast.NewIdent("Name"), Value: stringLit(f.Name)},
			&ast.KeyValueExpr{Key: ast.NewIdent("Type"), Value: Dynamic(f.Shape)},
		},
	}
}

func stringLit(s string) ast.Expr {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func valueLit(v any) ast.Expr {
	switch val := v.(type) {
	case string:
		return stringLit(val)
	case bool:
		return ast.NewIdent(strconv.FormatBool(val))
	case int64:
		return &ast.BasicLit{Kind: token.INT, Value: strconv.FormatInt(val, 10)}
	case float64:
		return &ast.BasicLit{Kind: token.FLOAT, Value: strconv.FormatFloat(val, 'g', -1, 64)}
	default:
		return stringLit(fmt.Sprint(val))
	}
}
