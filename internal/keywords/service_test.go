package keywords

import (
	"context"
	"testing"

	errors "github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, build Builder) *Service {
	t.Helper()
	provider, err := NewProvider(build, nil)
	require.NoError(t, err)
	svc, err := NewService(provider, nil)
	require.NoError(t, err)
	return svc
}

func TestServiceExtract(t *testing.T) {
	t.Parallel()

	tk := &stubTokenizer{tokens: []Token{
		noun(posDetailProperNoun, "東京"),
		{Surface: "都", POS: posNoun, POSDetail: "接尾"},
		{Surface: "の", POS: "助詞", POSDetail: "連体化"},
		noun(posDetailGeneral, "人口"),
		{Surface: "は", POS: "助詞", POSDetail: "係助詞"},
	}}
	svc := newTestService(t, func(ctx context.Context) (Tokenizer, error) { return tk, nil })

	got, err := svc.Extract(context.Background(), "東京都の人口は")
	require.NoError(t, err)
	require.Equal(t, []string{"東京", "人口"}, got)
}

func TestServiceExtractEmptyQuestion(t *testing.T) {
	t.Parallel()

	called := false
	svc := newTestService(t, func(ctx context.Context) (Tokenizer, error) {
		called = true
		return &stubTokenizer{}, nil
	})

	_, err := svc.Extract(context.Background(), "")
	require.True(t, IsKind(err, KindValidation))
	require.False(t, called, "validation must not build the tokenizer")
}

func TestServiceExtractInitializationError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(ctx context.Context) (Tokenizer, error) {
		return nil, errors.New("no dictionary")
	})

	_, err := svc.Extract(context.Background(), "人口")
	require.True(t, IsKind(err, KindInitialization))
}

func TestServiceExtractTokenizationError(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, func(ctx context.Context) (Tokenizer, error) {
		return &stubTokenizer{err: errors.New("lattice overflow")}, nil
	})

	_, err := svc.Extract(context.Background(), "人口")
	require.True(t, IsKind(err, KindTokenization))
	require.Contains(t, err.Error(), "lattice overflow")
}

func TestNewServiceRequiresProvider(t *testing.T) {
	t.Parallel()

	_, err := NewService(nil, nil)
	require.Error(t, err)
}
