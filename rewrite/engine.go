// Package rewrite implements the askit compile-time rewriting engine.
//
// The engine traverses the AST of one source unit at a time, detects marker
// call-forms (Ask/LLM and Define), resolves template variables and types
// through a narrow TypeResolver, and rewrites each call in place. Ask/LLM
// calls take one of two strategies:
//
//   - REDIRECT: a previously generated implementation module exists at the
//     conventional path, so the call becomes a direct invocation of its
//     exported symbol and an import is scheduled in the unit's prologue.
//   - INLINE: no module exists; the call keeps its callee but its arguments
//     are rewritten to carry a run-time type descriptor, the original
//     template, the examples, and a map of resolved variables.
//
// Every transformed unit receives a fixed prologue: the runtime vocabulary
// import plus all eight type-constructor bindings, regardless of whether any
// call in the unit needs them. All accumulators are scoped to a single
// Transform call, so the engine is re-entrant across units.
package rewrite

import (
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/teranos/askit/dyntype"
	"github.com/teranos/askit/errors"
	"github.com/teranos/askit/logger"
	"github.com/teranos/askit/template"
)

// Options configures marker names and layout conventions.
type Options struct {
	// InvokeMarkers are callee base names with ask/llm semantics.
	InvokeMarkers []string
	// DefineMarker is the callee base name of the define form.
	DefineMarker string
	// Subdir holds generated implementation modules and metadata sidecars,
	// relative to each unit's directory.
	Subdir string
	// RuntimePath is the import path of the type-constructor vocabulary.
	RuntimePath string
	// SessionFile is the interactive-session pseudo-file base name; it is
	// transformed even though it never exists on disk.
	SessionFile string
}

func (o Options) withDefaults() Options {
	if len(o.InvokeMarkers) == 0 {
		o.InvokeMarkers = []string{"Ask", "LLM"}
	}
	if o.DefineMarker == "" {
		o.DefineMarker = "Define"
	}
	if o.Subdir == "" {
		o.Subdir = "askit"
	}
	if o.RuntimePath == "" {
		o.RuntimePath = dyntype.DefaultRuntimePath
	}
	if o.SessionFile == "" {
		o.SessionFile = "askit_session.go"
	}
	return o
}

// Unit is one compilation input, provided by the host per pass and
// transformed exactly once.
type Unit struct {
	// Path is the unit's backing file on disk.
	Path string
	// ImportPath is the unit's package import path; required for REDIRECT
	// imports. A unit with no import path always takes the INLINE strategy.
	ImportPath string
	Fset       *token.FileSet
	File       *ast.File
	Resolver   TypeResolver
}

// Result is the outcome of transforming one unit.
type Result struct {
	File      *ast.File
	Records   []MetadataRecord
	Rewritten int
	Skipped   bool
}

// Engine drives the per-unit transform. Safe to reuse across units; all
// mutable traversal state lives in per-Transform values.
type Engine struct {
	opts Options
	sink Sink
}

// New creates an Engine. A nil sink defaults to a FileSink writing next to
// each unit.
func New(opts Options, sink Sink) *Engine {
	opts = opts.withDefaults()
	if sink == nil {
		sink = FileSink{Subdir: opts.Subdir}
	}
	return &Engine{opts: opts, sink: sink}
}

// Transform rewrites all marker call-forms in the unit, injects the prologue,
// and flushes accumulated metadata. On error the unit is abandoned with no
// partial output. A unit whose backing file does not exist on disk (and is
// not the session pseudo-file) is returned unmodified: such units were
// materialized in memory by earlier generation steps and must not be
// rewritten again.
func (e *Engine) Transform(u *Unit) (*Result, error) {
	if !fileExists(u.Path) && filepath.Base(u.Path) != e.opts.SessionFile {
		logger.Logger.Debugw("skipping unit without backing file", "path", u.Path)
		return &Result{File: u.File, Skipped: true}, nil
	}

	tr := &transform{eng: e, unit: u}
	astutil.Apply(u.File, tr.visit, nil)
	if tr.err != nil {
		return nil, tr.err
	}

	tr.injectPrologue()

	if err := e.sink.Flush(u.Path, tr.records); err != nil {
		return nil, err
	}

	logger.Logger.Infow("transformed unit",
		"path", u.Path, "rewritten", tr.rewritten, "records", len(tr.records))
	return &Result{File: u.File, Records: tr.records, Rewritten: tr.rewritten}, nil
}

type pendingImport struct {
	alias string
	path  string
}

// transform holds the per-unit accumulators: pending prologue imports and
// metadata records. Discarded when Transform returns.
type transform struct {
	eng       *Engine
	unit      *Unit
	imports   []pendingImport
	records   []MetadataRecord
	rewritten int
	err       error
}

func (tr *transform) visit(c *astutil.Cursor) bool {
	if tr.err != nil {
		return false
	}
	call, ok := c.Node().(*ast.CallExpr)
	if !ok {
		return true
	}

	base, typeArgs := calleeParts(call.Fun)
	switch {
	case slices.Contains(tr.eng.opts.InvokeMarkers, base):
		return tr.rewriteInvoke(c, call, base, typeArgs)
	case base == tr.eng.opts.DefineMarker:
		return tr.rewriteDefine(call, base, typeArgs)
	}
	return true
}

func (tr *transform) rewriteInvoke(c *astutil.Cursor, call *ast.CallExpr, base string, typeArgs []ast.Expr) bool {
	tmplLit, ok := templateLiteral(call)
	if !ok {
		// Non-literal (or absent) template: the call passes through
		// unrewritten. Not an error.
		return true
	}
	if len(typeArgs) != 1 {
		return tr.fail(call.Pos(), errors.Mark(
			errors.Newf("%s requires exactly one type argument, got %d", base, len(typeArgs)),
			ErrMissingTypeArgument))
	}

	tmpl, err := strconv.Unquote(tmplLit.Value)
	if err != nil {
		return true
	}

	names := template.ExtractVariables(tmpl)
	params := make([]ResolvedParam, 0, len(names))
	for _, n := range names {
		obj := tr.unit.Resolver.LookupParent(n, call.Pos())
		if obj == nil || !isValueObject(obj) {
			return tr.fail(call.Pos(), errors.Mark(
				errors.Newf("template variable %q has no symbol in scope", n),
				ErrUnresolvedVariable))
		}
		params = append(params, ResolvedParam{
			Name: n,
			Type: tr.unit.Resolver.TypeString(obj.Type()),
		})
	}

	retType := tr.unit.Resolver.TypeOf(typeArgs[0])
	if retType == nil {
		return tr.fail(typeArgs[0].Pos(), errors.New("cannot resolve type argument"))
	}
	retStr := tr.unit.Resolver.TypeString(retType)

	parts := make([]string, 0, len(params)+2)
	parts = append(parts, tmpl)
	for _, p := range params {
		parts = append(parts, p.Type)
	}
	parts = append(parts, retStr)
	name := SynthesizeName(parts...)

	pairs := make([]Param, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, Param{p.Type, p.Name})
	}
	tr.records = append(tr.records, MetadataRecord{
		Signature: BuildSignature(name, retStr, params),
		Desc:      template.Render(tmpl),
		Params:    pairs,
		Name:      name,
		Examples:  tr.examplesJSON(call),
	})

	ref := ResolveGeneratedModule(tr.unit.Path, tr.eng.opts.Subdir, name)
	if ref.Exists && tr.unit.ImportPath != "" {
		alias := tr.eng.opts.Subdir
		tr.addImport(alias, tr.unit.ImportPath+"/"+tr.eng.opts.Subdir)
		c.Replace(&ast.CallExpr{
			Fun:  &ast.SelectorExpr{X: ast.NewIdent(alias), Sel: ast.NewIdent(name)},
			Args: identList(names),
		})
		logger.Logger.Debugw("rewrote call", "name", name, "strategy", "redirect", "module", ref.Path)
	} else {
		shape, err := dyntype.FromGoType(retType)
		if err != nil {
			return tr.fail(typeArgs[0].Pos(), err)
		}
		examplesArg := ast.Expr(emptyAnySlice())
		if len(call.Args) >= 2 {
			examplesArg = call.Args[1]
		}
		call.Args = []ast.Expr{dyntype.Dynamic(shape), tmplLit, examplesArg, varsMapLit(names)}
		logger.Logger.Debugw("rewrote call", "name", name, "strategy", "inline")
	}

	tr.rewritten++
	return false
}

func (tr *transform) rewriteDefine(call *ast.CallExpr, base string, typeArgs []ast.Expr) bool {
	if len(call.Args) > 0 {
		if _, ok := templateLiteral(call); !ok {
			return true
		}
	}
	if len(typeArgs) != 1 {
		return tr.fail(call.Pos(), errors.Mark(
			errors.Newf("%s requires exactly one type argument, got %d", base, len(typeArgs)),
			ErrMissingTypeArgument))
	}

	retType := tr.unit.Resolver.TypeOf(typeArgs[0])
	if retType == nil {
		return tr.fail(typeArgs[0].Pos(), errors.New("cannot resolve type argument"))
	}
	shape, err := dyntype.FromGoType(retType)
	if err != nil {
		return tr.fail(typeArgs[0].Pos(), err)
	}

	// The define form carries the legacy directive encoding and never
	// branches on module existence or emits metadata.
	directive := dyntype.Directive(shape)
	if lit, ok := templateLiteral(call); ok {
		if s, err := strconv.Unquote(lit.Value); err == nil && s == directive {
			// A first argument equal to the type's directive means an earlier
			// pass already rewrote this call.
			return true
		}
	}
	call.Args = append([]ast.Expr{stringLit(directive)}, call.Args...)
	tr.rewritten++
	return false
}

// fail records the first fatal error, wrapped with source position, and
// halts traversal.
func (tr *transform) fail(pos token.Pos, err error) bool {
	tr.err = errAt(tr.unit.Fset, pos, err)
	return false
}

func (tr *transform) addImport(alias, path string) {
	for _, imp := range tr.imports {
		if imp.path == path {
			return
		}
	}
	tr.imports = append(tr.imports, pendingImport{alias: alias, path: path})
}

// injectPrologue prepends, in fixed order: the runtime vocabulary import and
// any redirect imports accumulated during traversal, then one binding per
// entry of the type-constructor vocabulary (always all eight), then the
// unit's pre-existing declarations unchanged in relative order.
//
// Re-transforming already-rewritten output must not duplicate the prologue:
// AddNamedImport is a no-op for an import that is already present, and the
// binding block is only inserted when the unit does not carry one yet.
func (tr *transform) injectPrologue() {
	astutil.AddNamedImport(tr.unit.Fset, tr.unit.File, dyntype.RuntimeIdent, tr.eng.opts.RuntimePath)
	for _, imp := range tr.imports {
		astutil.AddNamedImport(tr.unit.Fset, tr.unit.File, imp.alias, imp.path)
	}

	if hasBindingsDecl(tr.unit.File) {
		return
	}

	file := tr.unit.File
	idx := 0
	for idx < len(file.Decls) {
		gd, ok := file.Decls[idx].(*ast.GenDecl)
		if !ok || gd.Tok != token.IMPORT {
			break
		}
		idx++
	}
	decls := make([]ast.Decl, 0, len(file.Decls)+1)
	decls = append(decls, file.Decls[:idx]...)
	decls = append(decls, bindingsDecl())
	decls = append(decls, file.Decls[idx:]...)
	file.Decls = decls
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
