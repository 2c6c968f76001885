package tokenizer

var scanLogger = newComponentLogger("scanner")

// ScanStrict converts a normalized source into a token sequence terminating
// in Eof, failing on the first malformed construct. On success, it returns
// tokens ending in Eof with no error. On failure, the returned error is a
// *Error describing the offending codepoint's position.
func ScanStrict(normalizedSource string) ([]Token, error) {
	scanLogger.Debugf("scan_strict: %d runes", runeLen(normalizedSource))
	s := newScanner(normalizedSource, scanOptions{mode: modeStrict}, nil)
	s.run()
	if s.fatalDiag != nil {
		return nil, newScanError(*s.fatalDiag)
	}
	return s.tokens, nil
}

// ScanStrictWithOptions is ScanStrict with the trivia-preservation option
// exposed.
func ScanStrictWithOptions(normalizedSource string, preserveTrivia bool) ([]Token, error) {
	s := newScanner(normalizedSource, scanOptions{mode: modeStrict, preserveTrivia: preserveTrivia}, nil)
	s.run()
	if s.fatalDiag != nil {
		return nil, newScanError(*s.fatalDiag)
	}
	return s.tokens, nil
}

// ScanStrictInto is ScanStrict but reuses tokenBuf's backing array for the
// result instead of allocating a new one, for callers that scan
// repeatedly (the pool package's Borrowed.ScanStrict).
func ScanStrictInto(tokenBuf []Token, normalizedSource string) ([]Token, error) {
	s := newScannerWithTokens(normalizedSource, scanOptions{mode: modeStrict}, nil, tokenBuf)
	s.run()
	if s.fatalDiag != nil {
		return nil, newScanError(*s.fatalDiag)
	}
	return s.tokens, nil
}
