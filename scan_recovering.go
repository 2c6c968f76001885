package tokenizer

// TokenizerResult is the collecting surface's result triple: tokens,
// diagnostics, and warnings (diagnostics of SeverityWarning, surfaced
// separately for callers that only care about advisories).
type TokenizerResult struct {
	Tokens      []Token
	Diagnostics []Diagnostic
	Warnings    []Diagnostic
}

// Successful reports whether r has no fatal diagnostic. A result with no
// fatal diagnostics is successful; downstream consumers may use its tokens
// directly.
func (r TokenizerResult) Successful() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityFatal {
			return false
		}
	}
	return true
}

// ScanRecovering converts a normalized source into the best token stream it
// can, never halting on a single error. It always terminates with exactly
// one Eof token, even when a fatal diagnostic stops the scan early.
func ScanRecovering(normalizedSource string) TokenizerResult {
	return ScanRecoveringWithOptions(normalizedSource, false)
}

// ScanRecoveringWithOptions is ScanRecovering with trivia preservation
// exposed.
func ScanRecoveringWithOptions(normalizedSource string, preserveTrivia bool) TokenizerResult {
	scanLogger.Debugf("scan_recovering: %d runes", runeLen(normalizedSource))
	collector := NewCollector()
	s := newScanner(normalizedSource, scanOptions{mode: modeRecovering, preserveTrivia: preserveTrivia}, collector)
	s.run()

	diags := collector.Diagnostics()
	var warnings []Diagnostic
	for _, d := range diags {
		if d.Severity == SeverityWarning {
			warnings = append(warnings, d)
		}
	}

	return TokenizerResult{
		Tokens:      s.tokens,
		Diagnostics: diags,
		Warnings:    warnings,
	}
}

// ScanStrictAdapter obtains the strict-surface contract on top of the
// collecting surface: it runs a recovering scan and returns the first
// error-or-worse diagnostic as an error, for legacy callers that only know
// the strict surface.
func ScanStrictAdapter(normalizedSource string) ([]Token, error) {
	result := ScanRecovering(normalizedSource)
	for _, d := range result.Diagnostics {
		if d.Severity >= SeverityError {
			return nil, newScanError(d)
		}
	}
	return result.Tokens, nil
}
