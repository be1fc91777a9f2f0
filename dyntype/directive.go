package dyntype

import (
	"fmt"
	"strconv"
	"strings"
)

// Directive renders the legacy textual type-directive form of a shape.
//
// The active Ask/LLM rewrite path does not consume this encoding; the Define
// call-form and tests do. Kept correct alongside Dynamic so either encoding
// can be retired independently.
func Directive(s Shape) string {
	switch s.Kind {
	case KindPrimitive:
		switch s.Prim {
		case PrimString:
			return "string"
		case PrimNumber:
			return "number"
		default:
			return "boolean"
		}

	case KindArray:
		elem := Directive(*s.Elem)
		if s.Elem.Kind == KindUnion {
			elem = "(" + elem + ")"
		}
		return elem + "[]"

	case KindObject:
		if len(s.Fields) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			parts = append(parts, f.Name+": "+Directive(f.Shape))
		}
		return "{ " + strings.Join(parts, "; ") + " }"

	case KindUnion:
		parts := make([]string, 0, len(s.Members))
		for _, m := range s.Members {
			parts = append(parts, Directive(m))
		}
		return strings.Join(parts, " | ")

	case KindLiteral:
		switch val := s.Value.(type) {
		case string:
			return strconv.Quote(val)
		default:
			return fmt.Sprint(val)
		}

	case KindNamed:
		return s.Name

	default:
		panic(fmt.Sprintf("dyntype: unknown shape kind %d", s.Kind))
	}
}
