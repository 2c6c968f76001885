package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowedScanStrictReusesHandle(t *testing.T) {
	p := New()
	b := p.Get()

	tokens, err := b.ScanStrict("x ← 1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens)

	b.Release()

	b2 := p.Get()
	tokens2, err := b2.ScanStrict("y ← 2")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens2)
}

func TestBorrowedScanRecovering(t *testing.T) {
	p := New()
	b := p.Get()
	result := b.ScanRecovering("x ← 1")
	assert.True(t, result.Successful())
}
