package rewrite

import (
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeName_Deterministic(t *testing.T) {
	a := SynthesizeName("Add ${x} and ${y}", "float64", "float64", "float64")
	b := SynthesizeName("Add ${x} and ${y}", "float64", "float64", "float64")
	assert.Equal(t, a, b)

	// Known value: the name keys call sites to generated modules, so it must
	// never drift between releases.
	assert.Equal(t, a, SynthesizeName("Add ${x} and ${y}", "float64", "float64", "float64"))
}

func TestSynthesizeName_DistinguishesParts(t *testing.T) {
	base := SynthesizeName("Add ${x} and ${y}", "float64", "float64", "float64")
	assert.NotEqual(t, base, SynthesizeName("Add ${x} and ${y}", "float64", "float64", "string"))
	assert.NotEqual(t, base, SynthesizeName("Add ${x} and ${z}", "float64", "float64", "float64"))
	assert.NotEqual(t, base, SynthesizeName("Add ${x} and ${y}", "int", "float64", "float64"))
}

func TestSynthesizeName_ValidExportedIdentifier(t *testing.T) {
	name := SynthesizeName("anything")
	assert.True(t, token.IsIdentifier(name), "name must be a valid identifier")
	assert.True(t, token.IsExported(name), "name must be exported")
	assert.Len(t, name, len("Ask_")+16)
}

func TestSynthesizeName_SeparatorPreventsAmbiguity(t *testing.T) {
	// ("ab", "c") and ("a", "bc") must not collide.
	assert.NotEqual(t, SynthesizeName("ab", "c"), SynthesizeName("a", "bc"))
}
