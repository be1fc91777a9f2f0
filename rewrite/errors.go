package rewrite

import (
	"go/token"

	"github.com/teranos/askit/dyntype"
	"github.com/teranos/askit/errors"
)

// Fatal error kinds. Any of these aborts the current unit's transform; no
// partial output is emitted for the failing unit.
var (
	// ErrMissingTypeArgument marks a marker call-form lacking exactly one
	// type argument.
	ErrMissingTypeArgument = errors.New("missing type argument")

	// ErrUnresolvedVariable marks a template variable with no matching
	// symbol in scope at the call site.
	ErrUnresolvedVariable = errors.New("unresolved template variable")

	// ErrUnrepresentableType marks a type shape the descriptor synthesizer
	// cannot encode.
	ErrUnrepresentableType = dyntype.ErrUnrepresentable
)

// errAt wraps err with the source position of the offending node.
func errAt(fset *token.FileSet, pos token.Pos, err error) error {
	return errors.Wrapf(err, "%s", fset.Position(pos))
}
