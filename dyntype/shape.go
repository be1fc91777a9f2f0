// Package dyntype synthesizes run-time type descriptors from statically
// resolved Go types.
//
// The package is split in three layers so either output form can be swapped
// or retired without touching traversal logic:
//
//  1. Shape: an abstract tagged variant over primitive/array/object/union/
//     literal (plus a named wrapper), independent of go/types.
//  2. FromGoType: maps a resolved go/types.Type onto a Shape, rejecting
//     shapes the descriptor vocabulary cannot encode.
//  3. Dynamic and Directive: two independent pure functions over Shape, the
//     expression encoding used by the active rewrite path and the legacy
//     textual type-directive form.
package dyntype

// Kind discriminates Shape variants.
type Kind int

const (
	KindPrimitive Kind = iota
	KindArray
	KindObject
	KindUnion
	KindLiteral
	KindNamed
)

// Prim discriminates primitive shapes.
type Prim int

const (
	PrimString Prim = iota
	PrimNumber
	PrimBoolean
)

// Shape is the abstract type-shape representation shared by both descriptor
// encodings.
type Shape struct {
	Kind    Kind
	Prim    Prim         // KindPrimitive
	Name    string       // KindNamed: declared type name
	Elem    *Shape       // KindArray element, KindNamed underlying
	Fields  []FieldShape // KindObject, declaration order
	Members []Shape      // KindUnion
	Value   any          // KindLiteral: string, int64, float64 or bool
}

// FieldShape is one named object field.
type FieldShape struct {
	Name  string
	Shape Shape
}

// Convenience constructors, mirroring the runtime vocabulary.

func StringShape() Shape  { return Shape{Kind: KindPrimitive, Prim: PrimString} }
func NumberShape() Shape  { return Shape{Kind: KindPrimitive, Prim: PrimNumber} }
func BooleanShape() Shape { return Shape{Kind: KindPrimitive, Prim: PrimBoolean} }

func ArrayShape(elem Shape) Shape { return Shape{Kind: KindArray, Elem: &elem} }

func ObjectShape(fields ...FieldShape) Shape { return Shape{Kind: KindObject, Fields: fields} }

func UnionShape(members ...Shape) Shape { return Shape{Kind: KindUnion, Members: members} }

func LiteralShape(value any) Shape { return Shape{Kind: KindLiteral, Value: value} }

func NamedShape(name string, underlying Shape) Shape {
	return Shape{Kind: KindNamed, Name: name, Elem: &underlying}
}
