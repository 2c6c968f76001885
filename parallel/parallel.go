// Package parallel implements the chunked, concurrent tokenizer driver
// the core package's concurrency model describes in the abstract:
// callers wishing to cancel a large scan must partition it into chunks and
// cancel at chunk boundaries, since a single scan is not itself
// preemptible.
package parallel

import (
	"context"

	tokenizer "github.com/fumiya-kume/felang-tokenizer"
	"golang.org/x/sync/errgroup"
)

var chunkLogger = tokenizer.NewComponentLogger("parallel")

// overlapLines is how many trailing lines of the previous chunk a later
// chunk re-includes as leading context, so a construct that nearly spans a
// chunk boundary (a string opened a few lines before the split) still
// scans correctly inside the later chunk. The later chunk's tokens that
// fall inside that re-included region are dropped at merge time since the
// earlier chunk already produced them.
const overlapLines = 2

// Chunk is one contiguous, possibly overlapping slice of a larger source.
// BaseOffset/BaseLine/BaseColumn locate where Text begins in the outer
// source; UniqueFrom is the absolute rune offset at which this chunk's
// tokens should actually be kept — tokens starting before it duplicate the
// previous chunk's tail and are dropped during merge.
type Chunk struct {
	Text       string
	BaseOffset int
	BaseLine   int
	BaseColumn int
	UniqueFrom int
}

// ChunkSource splits source into chunks of approximately target runes,
// breaking only at line boundaries. Every chunk but the first re-includes
// the previous chunk's last overlapLines lines as leading context.
func ChunkSource(source string, target int) []Chunk {
	if target <= 0 {
		target = 1
	}
	runes := []rune(source)
	if len(runes) == 0 {
		return nil
	}

	lineStarts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}

	var chunks []Chunk
	splitAt := []int{0} // rune offsets where a new chunk's unique region begins
	size := 0
	for li := 1; li < len(lineStarts); li++ {
		size = lineStarts[li] - splitAt[len(splitAt)-1]
		if size >= target {
			splitAt = append(splitAt, lineStarts[li])
		}
	}
	splitAt = append(splitAt, len(runes))

	for i := 0; i+1 < len(splitAt); i++ {
		uniqueFrom := splitAt[i]
		textFrom := uniqueFrom
		lineIdx := indexOfLineStart(lineStarts, uniqueFrom)
		if i > 0 {
			overlapLineIdx := lineIdx - overlapLines
			if overlapLineIdx < 0 {
				overlapLineIdx = 0
			}
			textFrom = lineStarts[overlapLineIdx]
			lineIdx = overlapLineIdx
		}
		textTo := splitAt[i+1]
		if textFrom >= textTo {
			continue
		}
		chunks = append(chunks, Chunk{
			Text:       string(runes[textFrom:textTo]),
			BaseOffset: textFrom,
			BaseLine:   lineIdx + 1,
			BaseColumn: 1,
			UniqueFrom: uniqueFrom,
		})
	}
	return chunks
}

func indexOfLineStart(lineStarts []int, offset int) int {
	idx := 0
	for i, ls := range lineStarts {
		if ls <= offset {
			idx = i
		} else {
			break
		}
	}
	return idx
}

// chunkResult pairs one chunk's scan output with its originating chunk.
type chunkResult struct {
	chunk       Chunk
	tokens      []tokenizer.Token
	diagnostics []tokenizer.Diagnostic
}

// TokenizeChunks scans each chunk concurrently via a recovering scan,
// translates every token's position into the outer coordinate space,
// drops tokens that fall in a later chunk's overlap region (already
// produced by the earlier chunk), and merges what remains in input order.
// Cancellation is via ctx; callers that want to cancel a partial scan must
// have partitioned into chunks small enough to honor it promptly.
func TokenizeChunks(ctx context.Context, chunks []Chunk) ([]tokenizer.Token, []tokenizer.Diagnostic, error) {
	results := make([]chunkResult, len(chunks))

	group, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		group.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			scanResult := tokenizer.ScanRecovering(chunk.Text)
			translated := make([]tokenizer.Token, len(scanResult.Tokens))
			for j, tok := range scanResult.Tokens {
				translated[j] = tok
				translated[j].Position = tokenizer.TranslatePosition(tok.Position, chunk.BaseLine-1, chunk.BaseColumn, chunk.BaseOffset)
			}
			results[i] = chunkResult{chunk: chunk, tokens: translated, diagnostics: scanResult.Diagnostics}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	var merged []tokenizer.Token
	var diagnostics []tokenizer.Diagnostic
	for i, r := range results {
		isLast := i == len(results)-1
		for _, tok := range r.tokens {
			if tok.Kind == tokenizer.Eof && !isLast {
				continue
			}
			if tok.Position.Offset < r.chunk.UniqueFrom {
				continue
			}
			merged = append(merged, tok)
		}
		diagnostics = append(diagnostics, r.diagnostics...)
	}
	chunkLogger.Debugf("parallel: merged %d chunks into %d tokens", len(chunks), len(merged))
	return merged, diagnostics, nil
}
