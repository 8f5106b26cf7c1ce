// Package dashboard refreshes the dashboard view on a fixed interval.
package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	apierrors "github.com/apextrack/go-admin-console/internal/errors"
	"github.com/apextrack/go-admin-console/resources"
	"github.com/apextrack/go-admin-console/session"
)

const defaultInterval = 30 * time.Second

// Poller re-fetches the dashboard periodically and hands each fresh
// snapshot to the onData callback. Polls are not coalesced, but a
// response that resolves after the store epoch changed (logout while the
// request was in flight) is discarded instead of repainting stale
// authenticated data.
type Poller struct {
	client   *resources.DashboardClient
	store    *session.Store
	interval time.Duration
	onData   func(*resources.DashboardData)
	log      zerolog.Logger
}

// PollerOption defines a function type to modify the Poller instance.
type PollerOption func(*Poller)

func WithInterval(interval time.Duration) PollerOption {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

func WithLogger(log zerolog.Logger) PollerOption {
	return func(p *Poller) {
		p.log = log
	}
}

func NewPoller(client *resources.DashboardClient, store *session.Store, onData func(*resources.DashboardData), options ...PollerOption) (*Poller, error) {
	if client == nil {
		return nil, errors.New("[NewPoller] dashboard client is required")
	}
	if store == nil {
		return nil, errors.New("[NewPoller] store is required")
	}
	if onData == nil {
		return nil, errors.New("[NewPoller] onData callback is required")
	}

	poller := &Poller{
		client:   client,
		store:    store,
		interval: defaultInterval,
		onData:   onData,
		log:      zerolog.Nop(),
	}
	for _, opt := range options {
		opt(poller)
	}
	return poller, nil
}

// Run polls until the context is cancelled or the session expires. The
// first fetch happens immediately, matching the original console's
// load-then-poll behavior.
func (p *Poller) Run(ctx context.Context) error {
	if err := p.poll(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.poll(ctx); err != nil {
				return err
			}
		}
	}
}

func (p *Poller) poll(ctx context.Context) error {
	epoch := p.store.Epoch()

	data, err := p.client.Get(ctx)
	if err != nil {
		if apierrors.Is(err, apierrors.ErrSessionExpired) {
			return err
		}
		// Transient failures keep the poller alive; the next tick
		// retries with fresh state.
		p.log.Warn().Err(err).Msg("dashboard poll failed")
		return nil
	}

	if p.store.Epoch() != epoch {
		p.log.Debug().Msg("discarding dashboard response from a stale session")
		return nil
	}

	p.onData(data)
	return nil
}
