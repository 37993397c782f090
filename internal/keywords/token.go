// Package keywords extracts noun keywords from Japanese text with a lazily built morphological analyzer.
package keywords

import "context"

// Token is one morpheme produced by a Tokenizer.
type Token struct {
	// Surface is the literal span of the input text.
	Surface string
	// POS is the primary part-of-speech tag, e.g. "名詞".
	POS string
	// POSDetail is the first part-of-speech subcategory, e.g. "固有名詞".
	POSDetail string
}

// Tokenizer splits text into tokens. Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokenize(ctx context.Context, text string) ([]Token, error)
}

// Builder constructs a Tokenizer. Construction is expensive (dictionary loading),
// so callers go through a Provider instead of invoking a Builder directly.
type Builder func(ctx context.Context) (Tokenizer, error)
