// Package pool provides a reusable scanner pool so hot-path callers can
// avoid reallocating scan state per call.
package pool

import (
	"sync"

	tokenizer "github.com/fumiya-kume/felang-tokenizer"
)

// Borrowed is a scan handle obtained from a Pool. It must not be shared
// across goroutines; each goroutine should call Pool.Get on its own. Its
// token buffer is reused across scans made through the same handle, and it
// goes back into the pool with the handle on Release.
type Borrowed struct {
	pool   *Pool
	tokens []tokenizer.Token
}

// ScanStrict runs a strict scan, reusing this handle's token buffer from
// its previous scan instead of allocating a fresh one. The returned slice
// aliases that buffer: it is only valid until the next ScanStrict call on
// this handle (or on another handle the pool later hands back the same
// backing array to after Release). Callers that need to retain tokens past
// the next scan must copy them out first.
func (b *Borrowed) ScanStrict(source string) ([]tokenizer.Token, error) {
	tokens, err := tokenizer.ScanStrictInto(b.tokens, source)
	if err == nil {
		b.tokens = tokens
	}
	return tokens, err
}

// ScanRecovering runs a recovering scan. It does not use the handle's token
// buffer and does not release the handle.
func (b *Borrowed) ScanRecovering(source string) tokenizer.TokenizerResult {
	return tokenizer.ScanRecovering(source)
}

// Release returns b to its pool. Using b after Release is a programming
// error.
func (b *Borrowed) Release() {
	b.pool.sync.Put(b)
}

// Pool is a sync.Pool of reusable scan handles.
type Pool struct {
	sync sync.Pool
}

// New returns an empty Pool ready for use.
func New() *Pool {
	p := &Pool{}
	p.sync.New = func() interface{} {
		return &Borrowed{}
	}
	return p
}

// Get borrows a scan handle from the pool, creating one if the pool is
// empty.
func (p *Pool) Get() *Borrowed {
	b := p.sync.Get().(*Borrowed)
	b.pool = p
	return b
}
