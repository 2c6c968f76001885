package tokenizer

import "fmt"

// SourcePosition identifies a single point in a normalized source string.
// Line and Column are 1-based; Offset is a 0-based count of Unicode scalars
// from the start of the source. Columns reset at U+000A; a \r\n pair counts
// as one line break.
type SourcePosition struct {
	Line   int
	Column int
	Offset int
}

func (p SourcePosition) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SourceRange is a half-open [Start, End) span of source positions. A
// "point range" has Start == End.
type SourceRange struct {
	Start SourcePosition
	End   SourcePosition
}

func (r SourceRange) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// TokenKind is the closed tagged set of token classifications produced by
// the scanner.
type TokenKind int

const (
	// Sentinel
	Eof TokenKind = iota

	// Type keywords
	IntegerType
	RealType
	CharacterType
	StringType
	BooleanType
	RecordType
	ArrayType

	// Control-flow keywords
	If
	Then
	Else
	Elif
	Endif
	While
	Do
	Endwhile
	For
	To
	Step
	In
	Endfor
	Function
	Endfunction
	Procedure
	Endprocedure
	Return
	Break

	// Logical keywords
	And
	Or
	Not

	// Boolean literals
	True
	False

	// Declaration keywords
	Variable  // 変数
	Constant  // 定数

	// Literals
	IntegerLiteral
	RealLiteral
	StringLiteral
	CharacterLiteral

	// Identifier
	Identifier

	// Operators
	Plus
	Minus
	Multiply
	Divide
	Modulo
	Assign       // ←
	Equal        // =
	NotEqual     // ≠
	Greater      // >
	GreaterEqual // ≧
	Less         // <
	LessEqual    // ≦

	// Delimiters
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Dot
	Semicolon
	Colon

	// Trivia
	Comment
	Whitespace
	Newline
)

var tokenKindNames = map[TokenKind]string{
	Eof:               "Eof",
	IntegerType:       "IntegerType",
	RealType:          "RealType",
	CharacterType:     "CharacterType",
	StringType:        "StringType",
	BooleanType:       "BooleanType",
	RecordType:        "RecordType",
	ArrayType:         "ArrayType",
	If:                "If",
	Then:              "Then",
	Else:              "Else",
	Elif:              "Elif",
	Endif:             "Endif",
	While:             "While",
	Do:                "Do",
	Endwhile:          "Endwhile",
	For:               "For",
	To:                "To",
	Step:              "Step",
	In:                "In",
	Endfor:            "Endfor",
	Function:          "Function",
	Endfunction:       "Endfunction",
	Procedure:         "Procedure",
	Endprocedure:      "Endprocedure",
	Return:            "Return",
	Break:             "Break",
	And:               "And",
	Or:                "Or",
	Not:               "Not",
	True:              "True",
	False:             "False",
	Variable:          "Variable",
	Constant:          "Constant",
	IntegerLiteral:    "IntegerLiteral",
	RealLiteral:       "RealLiteral",
	StringLiteral:     "StringLiteral",
	CharacterLiteral:  "CharacterLiteral",
	Identifier:        "Identifier",
	Plus:              "Plus",
	Minus:             "Minus",
	Multiply:          "Multiply",
	Divide:            "Divide",
	Modulo:            "Modulo",
	Assign:            "Assign",
	Equal:             "Equal",
	NotEqual:          "NotEqual",
	Greater:           "Greater",
	GreaterEqual:      "GreaterEqual",
	Less:              "Less",
	LessEqual:         "LessEqual",
	LParen:            "LParen",
	RParen:            "RParen",
	LBracket:          "LBracket",
	RBracket:          "RBracket",
	LBrace:            "LBrace",
	RBrace:            "RBrace",
	Comma:             "Comma",
	Dot:               "Dot",
	Semicolon:         "Semicolon",
	Colon:             "Colon",
	Comment:           "Comment",
	Whitespace:        "Whitespace",
	Newline:           "Newline",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// IsKeyword reports whether k is one of the keyword token kinds (including
// boolean literals and type/declaration keywords, all of which round-trip
// through the keyword table).
func (k TokenKind) IsKeyword() bool {
	_, ok := keywordKindLexeme[k]
	return ok
}

// Token is a single lexical element: its kind, the exact normalized source
// substring that produced it, and the position where it starts.
type Token struct {
	Kind     TokenKind
	Lexeme   string
	Position SourcePosition

	// Literal carries the parsed value for literal-kind tokens. It is the
	// zero Literal for every other kind.
	Literal Literal
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Lexeme, t.Position)
}

// LiteralKind is the closed sum-type tag for Literal.
type LiteralKind int

const (
	LiteralNone LiteralKind = iota
	LiteralInteger
	LiteralReal
	LiteralString
	LiteralCharacter
	LiteralBoolean
)

// Literal is the closed, single-variant value carried by literal tokens.
// Exactly one field group is meaningful, selected by Kind: a Literal never
// carries two populated variants at once.
type Literal struct {
	Kind      LiteralKind
	Integer   int64
	Real      float64
	Text      string
	Character rune
	Boolean   bool
}
