package tokenizer

// keywordLexemeKind maps a lexeme to its token kind for O(1) lookup once a
// complete identifier run has been extracted. It is consulted only after
// the longest possible identifier has already been read, so "endif" can
// never mismatch as "end"+"if".
var keywordLexemeKind = map[string]TokenKind{
	"endprocedure": Endprocedure,
	"endfunction":  Endfunction,
	"procedure":    Procedure,
	"endwhile":     Endwhile,
	"function":     Function,
	"return":       Return,
	"endfor":       Endfor,
	"endif":        Endif,
	"break":        Break,
	"while":        While,
	"false":        False,
	"文字列型":         StringType,
	"レコード":         RecordType,
	"true":         True,
	"then":         Then,
	"else":         Else,
	"elif":         Elif,
	"step":         Step,
	"整数型":          IntegerType,
	"実数型":          RealType,
	"文字型":          CharacterType,
	"論理型":          BooleanType,
	"and":          And,
	"not":          Not,
	"for":          For,
	"配列":           ArrayType,
	"or":           Or,
	"to":           To,
	"in":           In,
	"do":           Do,
	"if":           If,
	"変数":           Variable,
	"定数":           Constant,
}

// keywordKindLexeme is the inverse of keywordLexemeKind, used by
// TokenKind.IsKeyword and to round-trip a keyword kind back to its
// canonical spelling.
var keywordKindLexeme = func() map[TokenKind]string {
	m := make(map[TokenKind]string, len(keywordLexemeKind))
	for lexeme, kind := range keywordLexemeKind {
		m[kind] = lexeme
	}
	return m
}()

// keywordsByLengthDescending is the same pairs as keywordLexemeKind, sorted
// by lexeme length (in Unicode scalars) descending. The canonical matcher
// never uses this list — it extracts a whole identifier and looks it up in
// keywordLexemeKind — but it is exposed for any prefix-driven variant a
// caller might build.
var keywordsByLengthDescending = buildKeywordsByLengthDescending()

type keywordEntry struct {
	Lexeme string
	Kind   TokenKind
}

func buildKeywordsByLengthDescending() []keywordEntry {
	entries := make([]keywordEntry, 0, len(keywordLexemeKind))
	for lexeme, kind := range keywordLexemeKind {
		entries = append(entries, keywordEntry{Lexeme: lexeme, Kind: kind})
	}
	// Insertion sort is fine: the table has ~35 entries and is built once.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && runeLen(entries[j].Lexeme) > runeLen(entries[j-1].Lexeme); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	return entries
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// lookupKeyword returns the token kind bound to lexeme, and whether lexeme
// is a keyword at all.
func lookupKeyword(lexeme string) (TokenKind, bool) {
	kind, ok := keywordLexemeKind[lexeme]
	return kind, ok
}

// operatorEntry is one row of the operator table: a lexeme and the token
// kind it produces.
type operatorEntry struct {
	Lexeme string
	Kind   TokenKind
}

// operatorsByLengthDescending is consulted in order at the current scan
// position; the first prefix match wins (longest-match discipline).
var operatorsByLengthDescending = []operatorEntry{
	{"←", Assign},
	{"≠", NotEqual},
	{"≧", GreaterEqual},
	{"≦", LessEqual},
	{"+", Plus},
	{"-", Minus},
	{"*", Multiply},
	{"/", Divide},
	{"%", Modulo},
	{"=", Equal},
	{">", Greater},
	{"<", Less},
}

// delimiterLexemeKind is the single-codepoint delimiter table.
var delimiterLexemeKind = map[rune]TokenKind{
	'(': LParen,
	')': RParen,
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	',': Comma,
	'.': Dot,
	';': Semicolon,
	':': Colon,
}
