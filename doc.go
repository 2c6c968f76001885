// Package tokenizer implements the lexical analysis core of a bilingual
// (English/Japanese) teaching language: a Unicode-aware normalizer, a
// single-pass scanner runnable in either a strict (first-fail) or
// collecting (diagnostic-accumulating) mode, and an incremental re-lexer
// for editor-style source edits.
//
// Current caveats
//   - A Borrowed handle obtained from the pool package may scan repeatedly
//     but must not be shared between goroutines; each goroutine should
//     borrow its own.
//   - The parallel package's chunked tokenizer assumes chunk boundaries
//     land outside string and comment literals; pass a chunk size that is
//     a multiple of the source's line length when in doubt.
//
// A tiny example:
//
//	tokens, err := tokenizer.ScanStrict(normalized)
//	if err != nil {
//	    panic(err)
//	}
//	fmt.Println(tokens[0].Kind) // Output: Variable
package tokenizer

