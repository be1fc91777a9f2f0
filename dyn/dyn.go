// Package dyn is the runtime type-descriptor vocabulary referenced by
// rewritten source units.
//
// The rewriting pass injects one binding per constructor into every unit it
// transforms, so descriptor expressions like
//
//	dynType("Person", dynObject(dyn.Field{Name: "Name", Type: dynString()}))
//
// evaluate without further imports. The package only constructs descriptor
// values; executing the calls they describe is the runtime library's job.
package dyn

// Kind discriminates descriptor values.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindUnion
	KindLiteral
	KindNamed
)

// T is a run-time representation of a statically known type.
type T struct {
	Kind    Kind
	Name    string  // KindNamed: declared type name
	Elem    *T      // KindArray element, KindNamed underlying
	Fields  []Field // KindObject, in declaration order
	Members []T     // KindUnion
	Value   any     // KindLiteral
}

// Field is one named object field. Order is significant.
type Field struct {
	Name string
	Type T
}

// Type wraps a descriptor with a declared type name.
func Type(name string, t T) T { return T{Kind: KindNamed, Name: name, Elem: &t} }

// Array describes a sequence of elem.
func Array(elem T) T { return T{Kind: KindArray, Elem: &elem} }

// String describes the string primitive.
func String() T { return T{Kind: KindString} }

// Number describes any numeric primitive.
func Number() T { return T{Kind: KindNumber} }

// Boolean describes the boolean primitive.
func Boolean() T { return T{Kind: KindBoolean} }

// Object describes a record with the given fields.
func Object(fields ...Field) T { return T{Kind: KindObject, Fields: fields} }

// Union describes a value inhabiting one of members.
func Union(members ...T) T { return T{Kind: KindUnion, Members: members} }

// Literal describes a single-value type.
func Literal(value any) T { return T{Kind: KindLiteral, Value: value} }
