package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStreamNextAndPeek(t *testing.T) {
	tokens, err := ScanStrict("x ← 1")
	require.NoError(t, err)
	stream := NewTokenStream(tokens)

	assert.Equal(t, Identifier, stream.Peek().Kind)
	assert.Equal(t, Identifier, stream.Next().Kind)
	assert.Equal(t, Assign, stream.Next().Kind)
	assert.Equal(t, IntegerLiteral, stream.Next().Kind)
	assert.Equal(t, Eof, stream.Next().Kind)
	// Calling Next past Eof keeps returning Eof, never panics.
	assert.Equal(t, Eof, stream.Next().Kind)
	assert.Equal(t, Eof, stream.Next().Kind)
}

func TestTokenStreamPosition(t *testing.T) {
	tokens, err := ScanStrict("x ← 1")
	require.NoError(t, err)
	stream := NewTokenStream(tokens)
	assert.Equal(t, SourcePosition{Line: 1, Column: 1, Offset: 0}, stream.Position())
}

func TestFilterSkipsRejectedTokens(t *testing.T) {
	tokens, err := ScanStrict("x ← 1 + 2")
	require.NoError(t, err)
	stream := Filter(NewTokenStream(tokens), func(tok Token) bool {
		return tok.Kind == IntegerLiteral
	})

	assert.Equal(t, IntegerLiteral, stream.Next().Kind)
	assert.Equal(t, IntegerLiteral, stream.Next().Kind)
	assert.Equal(t, Eof, stream.Next().Kind)
}

func TestMapTransformsNonEofTokens(t *testing.T) {
	tokens, err := ScanStrict("x y")
	require.NoError(t, err)
	stream := Map(NewTokenStream(tokens), func(tok Token) Token {
		tok.Lexeme = "<" + tok.Lexeme + ">"
		return tok
	})

	assert.Equal(t, "<x>", stream.Next().Lexeme)
	assert.Equal(t, "<y>", stream.Next().Lexeme)
	eof := stream.Next()
	assert.Equal(t, Eof, eof.Kind)
	assert.Equal(t, "", eof.Lexeme)
}

func TestFilterAndMapCompose(t *testing.T) {
	tokens, err := ScanStrict("1 x 2 y")
	require.NoError(t, err)
	stream := Map(
		Filter(NewTokenStream(tokens), func(tok Token) bool { return tok.Kind == IntegerLiteral }),
		func(tok Token) Token {
			tok.Literal.Integer *= 10
			return tok
		},
	)
	assert.Equal(t, int64(10), stream.Next().Literal.Integer)
	assert.Equal(t, int64(20), stream.Next().Literal.Integer)
	assert.Equal(t, Eof, stream.Next().Kind)
}
