package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hdlima/conversor/deploy/config"
	"github.com/hdlima/conversor/internal/converter/metrics"
	"github.com/hdlima/conversor/internal/entities"
	"github.com/pkg/errors"
)

// RateSource owns the single live rate snapshot. One instance per process is
// shared by all request handlers.
//
// The mutex only guards the snapshot pointer; it is not held across the
// upstream call, so concurrent callers past the TTL may fetch in parallel
// and the last write wins.
type RateSource struct {
	client RateClient
	cfg    *config.Config
	now    func() time.Time

	mu       sync.Mutex
	snapshot *entities.RateSnapshot
}

func NewRateSource(client RateClient, cfg *config.Config) *RateSource {
	return &RateSource{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

// GetRates returns the cached snapshot while it is fresh, otherwise fetches
// a new one. force skips the freshness check but changes nothing else. After
// an upstream failure any previously obtained snapshot is served stale; the
// call errors only when no snapshot has ever been obtained.
func (s *RateSource) GetRates(ctx context.Context, force bool) (*entities.RateSnapshot, error) {
	const op = "service.RateSource.GetRates"

	s.mu.Lock()
	cached := s.snapshot
	s.mu.Unlock()

	if cached != nil && !force && s.now().Sub(cached.FetchedAt) < s.cfg.Rates.TTL {
		metrics.RateCacheHits.Inc()
		return cached, nil
	}

	metrics.RateCacheMisses.Inc()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Rates.Timeout)
	defer cancel()

	rates, base, err := s.client.Latest(ctx, s.cfg.Rates.Base)
	if err != nil {
		metrics.UpstreamFailures.WithLabelValues("rates").Inc()

		if cached != nil {
			metrics.RateStaleServes.Inc()
			slog.Warn("rate fetch failed, serving stale snapshot",
				"op", op,
				"age", s.now().Sub(cached.FetchedAt).String(),
				"error", err,
			)
			return cached, nil
		}

		return nil, errors.Wrapf(entities.ErrUpstream, "%s: %v", op, err)
	}

	snap := entities.NewSnapshot(base, rates, s.now())

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	slog.Debug("rate snapshot refreshed", "base", snap.Base, "currencies", len(snap.Rates))

	return snap, nil
}
