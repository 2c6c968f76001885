package tokenizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizationForm selects which Unicode normalization form, backed by
// golang.org/x/text/unicode/norm, the normalizer applies first.
type NormalizationForm int

const (
	NFC NormalizationForm = iota
	NFD
	NFKC
	NFKD
)

func (f NormalizationForm) textForm() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFKC:
		return norm.NFKC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFC
	}
}

// SecurityConfig toggles the security-hardening passes of the normalizer.
type SecurityConfig struct {
	EnableHomoglyphDetection   bool
	PreventNormalizationAttacks bool
	MaxNormalizedLength        int
	DetectBidiReordering       bool
}

// DefaultSecurityConfig enables every hardening pass with a generous length
// cap, for a teaching tool that will see untrusted student input.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableHomoglyphDetection:    true,
		PreventNormalizationAttacks: true,
		MaxNormalizedLength:         1 << 20, // 1,048,576 scalars
		DetectBidiReordering:        true,
	}
}

// NormalizationStats reports what the normalizer changed, for logging and
// security audit.
type NormalizationStats struct {
	FullwidthConversions int
	NFCRewrites          int
	NFDRewrites          int
	JapaneseRewrites     int
	EmojiRewrites        int
	MathSymbolRewrites   int
	BidiReorderingsRemoved int
	HomoglyphsDetected   int
	SecurityIssuesFound  int
	OriginalLength       int
	NormalizedLength     int
}

// HasSecurityConcerns is true when the normalizer detected or acted on any
// security-relevant condition: bidi overrides, homoglyphs, or truncation.
func (s NormalizationStats) HasSecurityConcerns() bool {
	return s.BidiReorderingsRemoved > 0 || s.HomoglyphsDetected > 0 || s.SecurityIssuesFound > 0
}

// isBidiOverride reports whether r is one of the bidirectional-override or
// isolate control codepoints: U+202A-U+202E and U+2066-U+2069.
func isBidiOverride(r rune) bool {
	return (r >= 0x202A && r <= 0x202E) || (r >= 0x2066 && r <= 0x2069)
}

// homoglyphReplacements maps known-confusable codepoints (Cyrillic/Greek
// look-alikes and math-symbol confusables) to their ASCII/canonical
// equivalent. x/text ships normalization forms and East Asian width
// classification but no confusables table, so this is a hand-rolled lookup
// (see DESIGN.md).
var homoglyphReplacements = map[rune]rune{
	'а': 'a', // Cyrillic а U+0430
	'е': 'e', // Cyrillic е U+0435
	'о': 'o', // Cyrillic о U+043E
	'р': 'p', // Cyrillic р U+0440
	'с': 'c', // Cyrillic с U+0441
	'у': 'y', // Cyrillic у U+0443
	'х': 'x', // Cyrillic х U+0445
	'Α': 'A', // Greek Alpha
	'Β': 'B', // Greek Beta
	'Ε': 'E', // Greek Epsilon
	'Ζ': 'Z', // Greek Zeta
	'Η': 'H', // Greek Eta
	'Ι': 'I', // Greek Iota
	'Κ': 'K', // Greek Kappa
	'Μ': 'M', // Greek Mu
	'Ν': 'N', // Greek Nu
	'Ο': 'O', // Greek Omicron
	'Ρ': 'P', // Greek Rho
	'Τ': 'T', // Greek Tau
	'Υ': 'Y', // Greek Upsilon
	'Χ': 'X', // Greek Chi
	'∕': '/', // Division slash
	'−': '-', // Minus sign U+2212
}

// halfwidthKatakana maps common halfwidth Katakana codepoints (U+FF66-U+FF9D)
// to their fullwidth equivalent. Non-exhaustive — it omits the codepoints
// whose fullwidth form requires combining a separate voicing mark — but
// covers the unvoiced kana a student's source is most likely to contain.
var halfwidthKatakana = map[rune]rune{
	0xFF66: 'ヲ', 0xFF67: 'ァ', 0xFF68: 'ィ', 0xFF69: 'ゥ', 0xFF6A: 'ェ',
	0xFF6B: 'ォ', 0xFF6C: 'ャ', 0xFF6D: 'ュ', 0xFF6E: 'ョ', 0xFF6F: 'ッ',
	0xFF71: 'ア', 0xFF72: 'イ', 0xFF73: 'ウ', 0xFF74: 'エ', 0xFF75: 'オ',
	0xFF76: 'カ', 0xFF77: 'キ', 0xFF78: 'ク', 0xFF79: 'ケ', 0xFF7A: 'コ',
	0xFF7B: 'サ', 0xFF7C: 'シ', 0xFF7D: 'ス', 0xFF7E: 'セ', 0xFF7F: 'ソ',
	0xFF80: 'タ', 0xFF81: 'チ', 0xFF82: 'ツ', 0xFF83: 'テ', 0xFF84: 'ト',
	0xFF85: 'ナ', 0xFF86: 'ニ', 0xFF87: 'ヌ', 0xFF88: 'ネ', 0xFF89: 'ノ',
	0xFF8A: 'ハ', 0xFF8B: 'ヒ', 0xFF8C: 'フ', 0xFF8D: 'ヘ', 0xFF8E: 'ホ',
	0xFF8F: 'マ', 0xFF90: 'ミ', 0xFF91: 'ム', 0xFF92: 'メ', 0xFF93: 'モ',
	0xFF94: 'ヤ', 0xFF95: 'ユ', 0xFF96: 'ヨ', 0xFF97: 'ラ', 0xFF98: 'リ',
	0xFF99: 'ル', 0xFF9A: 'レ', 0xFF9B: 'ロ', 0xFF9C: 'ワ', 0xFF9D: 'ン',
}

// mathSymbolReplacements maps selected mathematical symbols to
// programming-friendly spellings.
var mathSymbolReplacements = map[rune]string{
	'π': "pi",
	'∞': "infinity",
	'×': "*",
	'÷': "/",
	'≈': "~=",
}

// Normalize produces a canonical, security-hardened form of source and a
// statistics record describing what it did. Normalize never fails: security
// concerns are reported via the returned stats, not errors.
func Normalize(source string, form NormalizationForm, cfg SecurityConfig) (string, NormalizationStats) {
	stats := NormalizationStats{OriginalLength: runeLen(source)}

	// Step 1: apply the selected normalization form, counting NFC/NFD
	// rewrites relative to what each form alone would have produced.
	normalized := form.textForm().String(source)
	if normalized != source {
		if form == NFC || form == NFKC {
			stats.NFCRewrites++
		} else {
			stats.NFDRewrites++
		}
	}

	var b strings.Builder
	b.Grow(len(normalized))

	for _, r := range normalized {
		// Step 2: bidi-override stripping.
		if cfg.DetectBidiReordering && isBidiOverride(r) {
			stats.BidiReorderingsRemoved++
			continue
		}

		// Step 3: homoglyph replacement.
		if cfg.EnableHomoglyphDetection {
			if repl, ok := homoglyphReplacements[r]; ok {
				stats.HomoglyphsDetected++
				b.WriteRune(repl)
				continue
			}
		}

		// Step 4: fullwidth ASCII -> ASCII (U+FF01-U+FF5E maps onto
		// U+0021-U+007E with a fixed offset).
		if r >= 0xFF01 && r <= 0xFF5E {
			stats.FullwidthConversions++
			b.WriteRune(r - 0xFEE0)
			continue
		}
		if r == 0x3000 { // ideographic space -> ASCII space
			stats.FullwidthConversions++
			b.WriteRune(' ')
			continue
		}
		if prop := width.LookupRune(r); prop.Kind() == width.EastAsianFullwidth {
			if folded := prop.Folding(); folded != 0 && folded != r {
				stats.FullwidthConversions++
				b.WriteRune(folded)
				continue
			}
		}

		// Japanese-specific rewrite: halfwidth Katakana -> fullwidth.
		if repl, ok := halfwidthKatakana[r]; ok {
			stats.JapaneseRewrites++
			b.WriteRune(repl)
			continue
		}

		// Step 5: math symbol -> identifier/operator spelling.
		if repl, ok := mathSymbolReplacements[r]; ok {
			stats.MathSymbolRewrites++
			b.WriteString(repl)
			continue
		}

		// Step 6: strip emoji variation selectors.
		if r >= 0xFE00 && r <= 0xFE0F {
			stats.EmojiRewrites++
			continue
		}

		b.WriteRune(r)
	}

	result := b.String()

	// Step 7: enforce the length cap without failing.
	if cfg.PreventNormalizationAttacks && cfg.MaxNormalizedLength > 0 {
		if n := runeLen(result); n > cfg.MaxNormalizedLength {
			result = truncateToRunes(result, cfg.MaxNormalizedLength)
			stats.SecurityIssuesFound++
		}
	}

	stats.NormalizedLength = runeLen(result)
	return result, stats
}

func truncateToRunes(s string, n int) string {
	var b strings.Builder
	count := 0
	for _, r := range s {
		if count >= n {
			break
		}
		b.WriteRune(r)
		count++
	}
	return b.String()
}
