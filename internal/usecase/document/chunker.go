package document

import (
	"strings"
	"unicode/utf8"
)

type Chunker struct {
	chunkSize int
}

// NewChunker creates a new chunker
func NewChunker(chunkSize int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	return &Chunker{chunkSize: chunkSize}
}

// ChunkText splits text into pieces of at most chunkSize characters,
// cutting at the last whitespace at or before the limit so no word is
// split. A run with no whitespace inside the window is cut at the hard
// limit. Empty pieces are dropped.
func (c *Chunker) ChunkText(text string) []string {
	var chunks []string
	start := 0

	for start < len(text) {
		end := start + c.chunkSize
		hardCut := false
		if end < len(text) {
			if ws := lastWhitespace(text, start, end); ws > start {
				// snap back to the nearest word boundary
				end = ws
			} else {
				// no boundary in the window: cut at the limit, stepped
				// back so the cut never lands inside a rune
				for end > start+1 && !utf8.RuneStart(text[end]) {
					end--
				}
				hardCut = true
			}
		} else {
			end = len(text)
		}

		chunk := strings.TrimSpace(text[start:end])
		if len(chunk) > 0 {
			chunks = append(chunks, chunk)
		}

		if hardCut {
			// the cut point starts the next rune, nothing to skip
			start = end
		} else {
			// one past the separator, so start always advances
			start = end + 1
		}
	}

	return chunks
}

// lastWhitespace returns the index of the last whitespace byte in
// text[start+1..end], or -1 when the window contains none.
func lastWhitespace(text string, start, end int) int {
	for i := end; i > start; i-- {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			return i
		}
	}
	return -1
}
