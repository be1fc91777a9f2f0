// Package ask declares the marker call-forms recognized by the askit
// rewriting pass.
//
// User code calls Ask[T], LLM[T] or Define[T] with a template string literal;
// the compile-time pass replaces each call with an expanded form carrying a
// type descriptor and resolved template variables, or with a direct call into
// a previously generated implementation module. The declarations below exist
// only so unrewritten code type-checks; reaching one at run time means the
// source was never passed through the rewriter.
package ask

// Ask marks an ask/llm invocation returning a T.
func Ask[T any](args ...any) T {
	panic("askit: ask.Ask call was not rewritten; run the askit pass over this package")
}

// LLM is an alternate spelling of Ask.
func LLM[T any](args ...any) T {
	panic("askit: ask.LLM call was not rewritten; run the askit pass over this package")
}

// Define marks a function definition by prompt.
func Define[T any](args ...any) T {
	panic("askit: ask.Define call was not rewritten; run the askit pass over this package")
}
