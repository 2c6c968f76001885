package tokenizer

// TokenStream is the pull-based consumption contract: a cursor over a
// finite token sequence that always terminates in exactly one Eof.
type TokenStream interface {
	// Next consumes and returns the token at the cursor, advancing it. It
	// returns the Eof token forever once reached; it never panics past the
	// end of the sequence.
	Next() Token
	// Peek returns the token at the cursor without advancing it.
	Peek() Token
	// Position returns the start position of the token Peek would return.
	Position() SourcePosition
}

// sliceStream is the base TokenStream over a fixed []Token, the concrete
// stream ScanStrict/ScanRecovering/RelexIncremental results are consumed
// through.
type sliceStream struct {
	tokens []Token
	cursor int
}

// NewTokenStream wraps tokens in a TokenStream. tokens must terminate in
// exactly one Eof (every producer in this package guarantees that).
func NewTokenStream(tokens []Token) TokenStream {
	return &sliceStream{tokens: tokens}
}

func (s *sliceStream) Next() Token {
	tok := s.Peek()
	if s.cursor < len(s.tokens)-1 {
		s.cursor++
	}
	return tok
}

func (s *sliceStream) Peek() Token {
	if len(s.tokens) == 0 {
		return Token{Kind: Eof}
	}
	return s.tokens[s.cursor]
}

func (s *sliceStream) Position() SourcePosition {
	return s.Peek().Position
}

// filterStream lazily skips tokens a predicate rejects, still terminating
// in exactly one Eof.
type filterStream struct {
	inner TokenStream
	keep  func(Token) bool
}

// Filter returns a TokenStream over only the tokens of inner for which keep
// returns true; Eof always passes regardless of keep.
func Filter(inner TokenStream, keep func(Token) bool) TokenStream {
	f := &filterStream{inner: inner, keep: keep}
	f.skipRejected()
	return f
}

func (f *filterStream) skipRejected() {
	for {
		tok := f.inner.Peek()
		if tok.Kind == Eof || f.keep(tok) {
			return
		}
		f.inner.Next()
	}
}

func (f *filterStream) Next() Token {
	tok := f.inner.Next()
	f.skipRejected()
	return tok
}

func (f *filterStream) Peek() Token {
	return f.inner.Peek()
}

func (f *filterStream) Position() SourcePosition {
	return f.inner.Position()
}

// mapStream lazily transforms each non-Eof token through fn.
type mapStream struct {
	inner TokenStream
	fn    func(Token) Token
}

// Map returns a TokenStream that applies fn to every token inner produces
// except Eof, which passes through unchanged.
func Map(inner TokenStream, fn func(Token) Token) TokenStream {
	return &mapStream{inner: inner, fn: fn}
}

func (m *mapStream) apply(tok Token) Token {
	if tok.Kind == Eof {
		return tok
	}
	return m.fn(tok)
}

func (m *mapStream) Next() Token {
	return m.apply(m.inner.Next())
}

func (m *mapStream) Peek() Token {
	return m.apply(m.inner.Peek())
}

func (m *mapStream) Position() SourcePosition {
	return m.inner.Position()
}
