package keywords

import (
	"context"
	"sync/atomic"
)

// stubTokenizer returns a fixed token sequence, or err when set.
type stubTokenizer struct {
	tokens []Token
	err    error
}

func (s *stubTokenizer) Tokenize(ctx context.Context, text string) ([]Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]Token(nil), s.tokens...), nil
}

// countingBuilder counts constructions and blocks each one until release is closed.
type countingBuilder struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
	result  Tokenizer
	err     error
}

func newCountingBuilder(result Tokenizer, err error) *countingBuilder {
	return &countingBuilder{
		started: make(chan struct{}, 64),
		release: make(chan struct{}),
		result:  result,
		err:     err,
	}
}

func (b *countingBuilder) Build(ctx context.Context) (Tokenizer, error) {
	b.calls.Add(1)
	b.started <- struct{}{}
	<-b.release
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}
