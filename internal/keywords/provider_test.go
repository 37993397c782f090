package keywords

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	errors "github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
)

func TestNewProviderRequiresBuilder(t *testing.T) {
	t.Parallel()

	_, err := NewProvider(nil, nil)
	require.Error(t, err)
}

func TestProviderConcurrentFirstAccessBuildsOnce(t *testing.T) {
	t.Parallel()

	want := &stubTokenizer{}
	builder := newCountingBuilder(want, nil)
	provider, err := NewProvider(builder.Build, nil)
	require.NoError(t, err)
	require.Equal(t, StateUninitialized, provider.State())

	const callers = 32
	var (
		wg      sync.WaitGroup
		results = make([]Tokenizer, callers)
		errs    = make([]error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = provider.Get(context.Background())
		}(i)
	}

	<-builder.started
	require.Equal(t, StateInitializing, provider.State())
	// let the other callers pile up on the in-flight construction
	time.Sleep(50 * time.Millisecond)
	close(builder.release)
	wg.Wait()

	require.EqualValues(t, 1, builder.calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Same(t, want, results[i])
	}
	require.Equal(t, StateReady, provider.State())

	// cached: no further constructions
	got, err := provider.Get(context.Background())
	require.NoError(t, err)
	require.Same(t, want, got)
	require.EqualValues(t, 1, builder.calls.Load())
}

func TestProviderFailureIsNotCached(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	want := &stubTokenizer{}
	provider, err := NewProvider(func(ctx context.Context) (Tokenizer, error) {
		if calls.Add(1) == 1 {
			return nil, errors.New("dictionary is corrupt")
		}
		return want, nil
	}, nil)
	require.NoError(t, err)

	_, err = provider.Get(context.Background())
	require.Error(t, err)
	require.True(t, IsKind(err, KindInitialization))
	require.Contains(t, err.Error(), "dictionary is corrupt")
	require.Equal(t, StateFailed, provider.State())
	require.Error(t, provider.LastError())

	got, err := provider.Get(context.Background())
	require.NoError(t, err)
	require.Same(t, want, got)
	require.EqualValues(t, 2, calls.Load())
	require.Equal(t, StateReady, provider.State())
	require.NoError(t, provider.LastError())
}

func TestProviderBuilderPanic(t *testing.T) {
	t.Parallel()

	provider, err := NewProvider(func(ctx context.Context) (Tokenizer, error) {
		panic("dictionary exploded")
	}, nil)
	require.NoError(t, err)

	_, err = provider.Get(context.Background())
	require.Error(t, err)
	require.True(t, IsKind(err, KindInitialization))
	require.Contains(t, err.Error(), "dictionary exploded")
}

func TestProviderNilTokenizer(t *testing.T) {
	t.Parallel()

	provider, err := NewProvider(func(ctx context.Context) (Tokenizer, error) {
		return nil, nil
	}, nil)
	require.NoError(t, err)

	_, err = provider.Get(context.Background())
	require.True(t, IsKind(err, KindInitialization))
}

func TestProviderWaiterCancellationDoesNotAbortBuild(t *testing.T) {
	t.Parallel()

	want := &stubTokenizer{}
	builder := newCountingBuilder(want, nil)
	provider, err := NewProvider(builder.Build, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := provider.Get(ctx)
		done <- err
	}()

	<-builder.started
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	close(builder.release)
	require.Eventually(t, func() bool {
		return provider.State() == StateReady
	}, time.Second, 5*time.Millisecond)

	got, err := provider.Get(context.Background())
	require.NoError(t, err)
	require.Same(t, want, got)
	require.EqualValues(t, 1, builder.calls.Load())
}

func TestProviderWarmup(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	provider, err := NewProvider(func(ctx context.Context) (Tokenizer, error) {
		calls.Add(1)
		return &stubTokenizer{}, nil
	}, nil)
	require.NoError(t, err)

	require.NoError(t, provider.Warmup(context.Background()))
	require.Equal(t, StateReady, provider.State())

	_, err = provider.Get(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, calls.Load())
}
