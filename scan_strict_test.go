package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanStrictEmptySourceIsJustEof(t *testing.T) {
	tokens, err := ScanStrict("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, Eof, tokens[0].Kind)
}

func TestScanStrictKeywordsAndIdentifiers(t *testing.T) {
	tokens, err := ScanStrict("変数 x ← 10")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Variable, Identifier, Assign, IntegerLiteral, Eof}, kinds(tokens))
}

func TestScanStrictEndifNeverSplitsAsEndPlusIf(t *testing.T) {
	tokens, err := ScanStrict("endif")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, Endif, tokens[0].Kind)
}

func TestScanStrictOperatorsLongestMatchFirst(t *testing.T) {
	tokens, err := ScanStrict("a ≧ b")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Identifier, GreaterEqual, Identifier, Eof}, kinds(tokens))
}

func TestScanStrictHexBinaryOctalIntegers(t *testing.T) {
	tokens, err := ScanStrict("0xFF 0b101 0o17")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, int64(255), tokens[0].Literal.Integer)
	assert.Equal(t, int64(5), tokens[1].Literal.Integer)
	assert.Equal(t, int64(15), tokens[2].Literal.Integer)
}

func TestScanStrictLeadingDotDecimalIsReal(t *testing.T) {
	tokens, err := ScanStrict(".5")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, RealLiteral, tokens[0].Kind)
	assert.Equal(t, 0.5, tokens[0].Literal.Real)
}

func TestScanStrictScientificNotation(t *testing.T) {
	tokens, err := ScanStrict("1.5e2")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, RealLiteral, tokens[0].Kind)
	assert.Equal(t, 150.0, tokens[0].Literal.Real)
}

func TestScanStrictTrailingDotIsDelimiterNotNumber(t *testing.T) {
	tokens, err := ScanStrict("x.y")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Identifier, Dot, Identifier, Eof}, kinds(tokens))
}

func TestScanStrictEIsIdentifierWhenNotExponent(t *testing.T) {
	tokens, err := ScanStrict("1e")
	require.NoError(t, err)
	// "1" then identifier "e" since there's no digit after 'e'.
	assert.Equal(t, []TokenKind{IntegerLiteral, Identifier, Eof}, kinds(tokens))
}

func TestScanStrictStringLiteral(t *testing.T) {
	tokens, err := ScanStrict(`"hello\nworld"`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, StringLiteral, tokens[0].Kind)
	assert.Equal(t, "hello\nworld", tokens[0].Literal.Text)
}

func TestScanStrictCharacterLiteral(t *testing.T) {
	tokens, err := ScanStrict(`'x'`)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, CharacterLiteral, tokens[0].Kind)
	assert.Equal(t, 'x', tokens[0].Literal.Character)
}

func TestScanStrictLineComment(t *testing.T) {
	tokens, err := ScanStrict("x // trailing comment\ny")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{Identifier, Identifier, Eof}, kinds(tokens))
}

func TestScanStrictBlockCommentFirstCloseEnds(t *testing.T) {
	// Not nested: the first "*/" ends the comment, so the trailing "*/"
	// becomes Multiply then Divide.
	tokens, err := ScanStrict("/* outer /* inner */ x */ y")
	require.NoError(t, err)
	assert.Equal(t, Identifier, tokens[0].Kind)
	assert.Equal(t, "x", tokens[0].Lexeme)
}

func TestScanStrictTrueFalsePopulateBooleanLiteral(t *testing.T) {
	tokens, err := ScanStrict("true false")
	require.NoError(t, err)
	assert.Equal(t, true, tokens[0].Literal.Boolean)
	assert.Equal(t, false, tokens[1].Literal.Boolean)
}

func TestScanStrictFailsOnFirstUnexpectedCharacter(t *testing.T) {
	tokens, err := ScanStrict("x ＠ y")
	require.Error(t, err)
	assert.Nil(t, tokens)
	var scanErr *Error
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, UnexpectedCharacter, scanErr.Kind)
}

func TestScanStrictFailsOnUnterminatedString(t *testing.T) {
	_, err := ScanStrict(`"unterminated`)
	require.Error(t, err)
}

func TestScanStrictPreserveTriviaEmitsWhitespaceAndComments(t *testing.T) {
	tokens, err := ScanStrictWithOptions("x // c\n", true)
	require.NoError(t, err)
	assert.Contains(t, kinds(tokens), Whitespace)
	assert.Contains(t, kinds(tokens), Comment)
}

func TestScanStrictBilingualSource(t *testing.T) {
	tokens, err := ScanStrict("整数型 合計 ← 0")
	require.NoError(t, err)
	assert.Equal(t, []TokenKind{IntegerType, Identifier, Assign, IntegerLiteral, Eof}, kinds(tokens))
}
