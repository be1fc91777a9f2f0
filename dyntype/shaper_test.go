package dyntype

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/askit/errors"
)

// typeOf type-checks a small fixture source and returns the type of the named
// package-level object.
func typeOf(t *testing.T, src, name string) types.Type {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "fixture.go", src, 0)
	require.NoError(t, err)
	conf := types.Config{}
	pkg, err := conf.Check("fixture", fset, []*ast.File{f}, nil)
	require.NoError(t, err)
	obj := pkg.Scope().Lookup(name)
	require.NotNil(t, obj, "object %s not found", name)
	return obj.Type()
}

func TestFromGoType_Primitives(t *testing.T) {
	src := `package fixture
var s string
var n float64
var i int
var b bool
`
	shape, err := FromGoType(typeOf(t, src, "s"))
	require.NoError(t, err)
	assert.Equal(t, StringShape(), shape)

	shape, err = FromGoType(typeOf(t, src, "n"))
	require.NoError(t, err)
	assert.Equal(t, NumberShape(), shape)

	shape, err = FromGoType(typeOf(t, src, "i"))
	require.NoError(t, err)
	assert.Equal(t, NumberShape(), shape)

	shape, err = FromGoType(typeOf(t, src, "b"))
	require.NoError(t, err)
	assert.Equal(t, BooleanShape(), shape)
}

func TestFromGoType_SliceAndArray(t *testing.T) {
	src := `package fixture
var xs []string
var ys [4]int
`
	shape, err := FromGoType(typeOf(t, src, "xs"))
	require.NoError(t, err)
	assert.Equal(t, ArrayShape(StringShape()), shape)

	shape, err = FromGoType(typeOf(t, src, "ys"))
	require.NoError(t, err)
	assert.Equal(t, ArrayShape(NumberShape()), shape)
}

func TestFromGoType_NamedStruct(t *testing.T) {
	src := `package fixture
type Person struct {
	Name string
	Age  int
	note string // unexported, skipped
}
var p Person
`
	shape, err := FromGoType(typeOf(t, src, "p"))
	require.NoError(t, err)

	want := NamedShape("Person", ObjectShape(
		FieldShape{Name: "Name", Shape: StringShape()},
		FieldShape{Name: "Age", Shape: NumberShape()},
	))
	assert.Equal(t, want, shape)
}

func TestFromGoType_PointerUnwraps(t *testing.T) {
	src := `package fixture
var p *string
`
	shape, err := FromGoType(typeOf(t, src, "p"))
	require.NoError(t, err)
	assert.Equal(t, StringShape(), shape)
}

func TestFromGoType_UnionInterface(t *testing.T) {
	src := `package fixture
type StringOrInt interface {
	string | int
}
`
	shape, err := FromGoType(typeOf(t, src, "StringOrInt"))
	require.NoError(t, err)
	assert.Equal(t, "StringOrInt", shape.Name)
	assert.Equal(t, UnionShape(StringShape(), NumberShape()), *shape.Elem)
}

func TestFromGoType_Unrepresentable(t *testing.T) {
	src := `package fixture
var m map[string]int
var c chan int
var f func() error
var x complex128
var e interface{}
`
	for _, name := range []string{"m", "c", "f", "x", "e"} {
		_, err := FromGoType(typeOf(t, src, name))
		require.Error(t, err, "expected error for %s", name)
		assert.True(t, errors.Is(err, ErrUnrepresentable), "error for %s should be marked unrepresentable", name)
	}
}

func TestFromGoType_RecursiveTypeRejected(t *testing.T) {
	src := `package fixture
type Node struct {
	Value    string
	Children []Node
}
var n Node
`
	_, err := FromGoType(typeOf(t, src, "n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrepresentable))
}

func TestFromGoType_UnrepresentableFieldNamesField(t *testing.T) {
	src := `package fixture
type Bad struct {
	Data map[string]int
}
var b Bad
`
	_, err := FromGoType(typeOf(t, src, "b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Data")
}
