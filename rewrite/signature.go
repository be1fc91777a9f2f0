package rewrite

import "strings"

// ResolvedParam is a template variable bound to an enclosing symbol, with
// the printable form of the symbol's static type.
type ResolvedParam struct {
	Name string
	Type string
}

// BuildSignature produces a printable exported function declaration from a
// synthesized name, return type and resolved parameters, e.g.
//
//	func Ask_00c5ae32f1d94b07(x float64, y float64) float64
//
// The declaration has no body; it is printed into metadata and documentation,
// never executed.
func BuildSignature(name, returnType string, params []ResolvedParam) string {
	var sb strings.Builder
	sb.WriteString("func ")
	sb.WriteString(name)
	sb.WriteByte('(')
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteByte(' ')
		sb.WriteString(p.Type)
	}
	sb.WriteString(") ")
	sb.WriteString(returnType)
	return sb.String()
}
