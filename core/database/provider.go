package database

import (
	"context"
	"errors"
	"sync"

	"breezechess/core/apperr"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ErrProviderClosed is returned by DB after Close.
var ErrProviderClosed = errors.New("database provider is closed")

// Provider hands out the database handle used to serve a request.
type Provider interface {
	DB(ctx context.Context) (*gorm.DB, error)
}

// LazyProvider connects on first use and reuses the pool afterwards.
// A failed attempt is not cached; the next call tries again.
//
// Concurrent callers share a single connection attempt, but each one waits
// only as long as its own context allows.
type LazyProvider struct {
	cfg     Config
	connect func(context.Context, Config) (*gorm.DB, error)

	group singleflight.Group

	mu     sync.Mutex
	db     *gorm.DB
	closed bool
}

// NewProvider creates a provider for the given settings. No connection is
// opened until DB is called.
func NewProvider(cfg Config) *LazyProvider {
	return &LazyProvider{cfg: cfg, connect: Connect}
}

// DB returns the shared pool, connecting if needed. Invalid settings are
// reported as configuration errors, anything else as upstream errors.
func (p *LazyProvider) DB(ctx context.Context) (*gorm.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperr.Upstream("database.connect", err)
	}

	if db, err := p.current(); db != nil || err != nil {
		return db, err
	}

	// The attempt outlives any single caller; Connect still bounds it by the
	// configured timeout.
	attemptCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan("connect", func() (any, error) {
		return p.dial(attemptCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, classify(res.Err)
		}
		return res.Val.(*gorm.DB), nil
	case <-ctx.Done():
		return nil, apperr.Upstream("database.connect", ctx.Err())
	}
}

func (p *LazyProvider) current() (*gorm.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, apperr.Upstream("database.connect", ErrProviderClosed)
	}
	return p.db, nil
}

func (p *LazyProvider) dial(ctx context.Context) (*gorm.DB, error) {
	if db, err := p.current(); db != nil || err != nil {
		return db, err
	}

	db, err := p.connect(ctx, p.cfg)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		_ = Close(db)
		return nil, ErrProviderClosed
	}
	p.db = db
	return db, nil
}

func classify(err error) error {
	if errors.Is(err, ErrInvalidDSN) || errors.Is(err, ErrUnsupportedDriver) {
		return apperr.Configuration("database.connect", err)
	}
	return apperr.Upstream("database.connect", err)
}

// Close releases the pool if one was opened. Later calls to DB fail.
func (p *LazyProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	err := Close(p.db)
	p.db = nil
	return err
}
