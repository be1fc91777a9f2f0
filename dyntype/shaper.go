package dyntype

import (
	"go/types"

	"github.com/teranos/askit/errors"
)

// ErrUnrepresentable marks type shapes the descriptor vocabulary cannot
// encode. Fatal to the unit being transformed; no partial descriptor is ever
// emitted.
var ErrUnrepresentable = errors.New("unrepresentable type")

// FromGoType maps a statically resolved Go type onto a Shape.
//
// Supported: string/numeric/bool basics, slices and arrays, structs
// (exported fields, declaration order), pointers (unwrapped), named types,
// and interface type sets that are a single union of supported terms.
// Everything else (maps, channels, funcs, complex numbers, recursive types,
// the empty interface) is a hard ErrUnrepresentable.
func FromGoType(t types.Type) (Shape, error) {
	return shapeOf(t, make(map[types.Type]bool))
}

func shapeOf(t types.Type, seen map[types.Type]bool) (Shape, error) {
	if seen[t] {
		return Shape{}, errors.Mark(
			errors.Newf("recursive type %s", types.TypeString(t, nil)),
			ErrUnrepresentable)
	}

	switch u := t.(type) {
	case *types.Basic:
		return basicShape(u)

	case *types.Pointer:
		return shapeOf(u.Elem(), seen)

	case *types.Slice:
		elem, err := shapeOf(u.Elem(), seen)
		if err != nil {
			return Shape{}, err
		}
		return ArrayShape(elem), nil

	case *types.Array:
		elem, err := shapeOf(u.Elem(), seen)
		if err != nil {
			return Shape{}, err
		}
		return ArrayShape(elem), nil

	case *types.Struct:
		return structShape(u, seen)

	case *types.Named:
		seen[t] = true
		defer delete(seen, t)
		under, err := shapeOf(u.Underlying(), seen)
		if err != nil {
			return Shape{}, err
		}
		return NamedShape(u.Obj().Name(), under), nil

	case *types.Alias:
		return shapeOf(types.Unalias(t), seen)

	case *types.Union:
		return unionShape(u, seen)

	case *types.Interface:
		// An interface whose type set is a single embedded union is the only
		// interface form the vocabulary can encode.
		if u.NumEmbeddeds() == 1 && u.NumExplicitMethods() == 0 {
			if union, ok := u.EmbeddedType(0).(*types.Union); ok {
				return unionShape(union, seen)
			}
		}
		return Shape{}, errors.Mark(
			errors.Newf("interface type %s has no encodable type set", types.TypeString(t, nil)),
			ErrUnrepresentable)

	default:
		return Shape{}, errors.Mark(
			errors.Newf("cannot encode type %s", types.TypeString(t, nil)),
			ErrUnrepresentable)
	}
}

func basicShape(b *types.Basic) (Shape, error) {
	info := b.Info()
	switch {
	case info&types.IsString != 0:
		return StringShape(), nil
	case info&types.IsBoolean != 0:
		return BooleanShape(), nil
	case info&types.IsComplex != 0:
		return Shape{}, errors.Mark(
			errors.Newf("cannot encode complex type %s", b.Name()),
			ErrUnrepresentable)
	case info&types.IsNumeric != 0:
		return NumberShape(), nil
	default:
		return Shape{}, errors.Mark(
			errors.Newf("cannot encode basic type %s", b.Name()),
			ErrUnrepresentable)
	}
}

func structShape(s *types.Struct, seen map[types.Type]bool) (Shape, error) {
	var fields []FieldShape
	for i := 0; i < s.NumFields(); i++ {
		f := s.Field(i)
		if !f.Exported() || f.Embedded() {
			continue
		}
		fs, err := shapeOf(f.Type(), seen)
		if err != nil {
			return Shape{}, errors.Wrapf(err, "field %s", f.Name())
		}
		fields = append(fields, FieldShape{Name: f.Name(), Shape: fs})
	}
	return ObjectShape(fields...), nil
}

func unionShape(u *types.Union, seen map[types.Type]bool) (Shape, error) {
	var members []Shape
	for i := 0; i < u.Len(); i++ {
		m, err := shapeOf(u.Term(i).Type(), seen)
		if err != nil {
			return Shape{}, err
		}
		members = append(members, m)
	}
	return UnionShape(members...), nil
}
