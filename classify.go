package tokenizer

import "unicode"

// cjkRanges are the CJK codepoint ranges admitted as identifier characters:
// Hiragana, Katakana, CJK Unified Ideographs, CJK Extension A, CJK
// Extension B.
var cjkRanges = []*unicode.RangeTable{
	{R16: []unicode.Range16{{Lo: 0x3040, Hi: 0x309F, Stride: 1}}},       // Hiragana
	{R16: []unicode.Range16{{Lo: 0x30A0, Hi: 0x30FF, Stride: 1}}},       // Katakana
	{R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FAF, Stride: 1}}},       // CJK Unified Ideographs
	{R16: []unicode.Range16{{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}}},       // CJK Extension A
	{R32: []unicode.Range32{{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}}},     // CJK Extension B
}

func isCJK(r rune) bool {
	for _, rt := range cjkRanges {
		if unicode.Is(rt, r) {
			return true
		}
	}
	return false
}

// IsIdentifierStart reports whether r may begin an identifier: a Unicode
// letter, underscore, or a CJK codepoint in the ranges above.
func IsIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || isCJK(r)
}

// IsIdentifierContinue reports whether r may continue an identifier begun
// by IsIdentifierStart: identifier-start, or a digit, or a combining mark.
func IsIdentifierContinue(r rune) bool {
	return IsIdentifierStart(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

// IsHexDigit reports whether r is one of [0-9a-fA-F].
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsBinaryDigit reports whether r is 0 or 1.
func IsBinaryDigit(r rune) bool {
	return r == '0' || r == '1'
}

// IsOctalDigit reports whether r is one of [0-7].
func IsOctalDigit(r rune) bool {
	return r >= '0' && r <= '7'
}

// IsDecimalDigit reports whether r is one of [0-9].
func IsDecimalDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isWhiteSpace reports whether r should be skipped between tokens: any
// codepoint with the Unicode White_Space property, including the fullwidth
// space U+3000 when normalization didn't already fold it to U+0020.
func isWhiteSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '　'
}
