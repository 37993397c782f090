package keywords

import (
	"context"
	"fmt"
	"sync"
	"time"

	errors "github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"golang.org/x/sync/singleflight"

	"github.com/Laisky/keyword-extractor/library/log"
)

// State is the lifecycle stage of the cached tokenizer.
type State string

const (
	// StateUninitialized means no construction has been attempted yet.
	StateUninitialized State = "uninitialized"
	// StateInitializing means a construction is in flight.
	StateInitializing State = "initializing"
	// StateReady means the tokenizer is cached and will be reused forever.
	StateReady State = "ready"
	// StateFailed means the last construction failed; the next Get retries.
	StateFailed State = "failed"
)

const flightKey = "tokenizer"

// Provider lazily builds one Tokenizer and shares it for the process lifetime.
//
// Concurrent callers that arrive while a construction is in flight wait for
// that construction instead of starting their own. A failed construction is
// not cached.
type Provider struct {
	build  Builder
	logger logSDK.Logger
	flight singleflight.Group

	mu        sync.RWMutex
	state     State
	tokenizer Tokenizer
	lastErr   error
}

// NewProvider creates a Provider that constructs its tokenizer with build.
func NewProvider(build Builder, logger logSDK.Logger) (*Provider, error) {
	if build == nil {
		return nil, errors.New("tokenizer builder is required")
	}
	if logger == nil {
		logger = log.Logger.Named("tokenizer_provider")
	}

	return &Provider{
		build:  build,
		logger: logger,
		state:  StateUninitialized,
	}, nil
}

// Get returns the cached tokenizer, building it on first use.
//
// The construction is detached from ctx so that one caller giving up does not
// fail the others; ctx only bounds how long this caller waits.
func (p *Provider) Get(ctx context.Context) (Tokenizer, error) {
	if tk := p.cached(); tk != nil {
		return tk, nil
	}

	ch := p.flight.DoChan(flightKey, func() (any, error) {
		return p.construct(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "wait for tokenizer")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Tokenizer), nil
	}
}

// Warmup builds the tokenizer ahead of the first request.
func (p *Provider) Warmup(ctx context.Context) error {
	_, err := p.Get(ctx)
	return err
}

// State returns the current lifecycle stage.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// LastError returns the cause of the most recent failed construction, if any.
func (p *Provider) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

func (p *Provider) cached() Tokenizer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tokenizer
}

// construct runs inside the single flight.
func (p *Provider) construct(ctx context.Context) (tk Tokenizer, err error) {
	p.mu.Lock()
	if p.tokenizer != nil {
		// a flight that finished between our cache check and DoChan
		tk = p.tokenizer
		p.mu.Unlock()
		return tk, nil
	}
	p.state = StateInitializing
	p.mu.Unlock()

	startAt := time.Now()
	p.logger.Info("building tokenizer")
	tk, err = p.safeBuild(ctx)
	if err == nil && tk == nil {
		err = errors.New("builder returned nil tokenizer")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = StateFailed
		p.lastErr = err
		p.logger.Error("build tokenizer",
			zap.Error(err),
			zap.Duration("cost", time.Since(startAt)))
		return nil, WrapError(KindInitialization, err, "build tokenizer")
	}

	p.state = StateReady
	p.tokenizer = tk
	p.lastErr = nil
	p.logger.Info("tokenizer ready", zap.Duration("cost", time.Since(startAt)))
	return tk, nil
}

// safeBuild converts a panicking builder into an error,
// singleflight would otherwise re-panic it in a bare goroutine.
func (p *Provider) safeBuild(ctx context.Context) (tk Tokenizer, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("tokenizer builder panic: %s", fmt.Sprint(r))
		}
	}()

	tk, err = p.build(ctx)
	return tk, err
}
