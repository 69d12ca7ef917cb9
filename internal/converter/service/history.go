package service

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/hdlima/conversor/deploy/config"
	"github.com/hdlima/conversor/internal/converter/metrics"
	"github.com/hdlima/conversor/internal/entities"
)

// HistorySource produces a daily cross-rate series for a currency pair.
// It never fails: when the time-series provider is unreachable it returns a
// synthetic near-1.0 series marked with FidelitySynthetic.
type HistorySource struct {
	client HistoryClient
	cfg    *config.Config
	now    func() time.Time
}

func NewHistorySource(client HistoryClient, cfg *config.Config) *HistorySource {
	return &HistorySource{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *HistorySource) GetHistory(ctx context.Context, from, to string, days int) entities.RateHistory {
	const op = "service.HistorySource.GetHistory"

	ctx, cancel := context.WithTimeout(ctx, s.cfg.History.Timeout)
	defer cancel()

	end := s.now()
	start := end.AddDate(0, 0, -days)

	rates, err := s.client.Range(ctx, start, end, from, to)
	if err != nil {
		metrics.UpstreamFailures.WithLabelValues("history").Inc()
		metrics.HistoryFallbacks.Inc()
		slog.Warn("history fetch failed, synthesizing fallback series",
			"op", op,
			"from", from,
			"to", to,
			"error", err,
		)
		return s.synthetic(days)
	}

	dates := make([]string, 0, len(rates))
	for date := range rates {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	points := make([]entities.HistoryPoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, entities.HistoryPoint{
			Date: date,
			Rate: rates[date][to],
		})
	}

	return entities.RateHistory{Points: points, Fidelity: entities.FidelityLive}
}

// synthetic walks from days ago up to today, one point per day, each rate
// jittered uniformly within ±0.05 of 1.0. The series is a placeholder, not
// real market data.
func (s *HistorySource) synthetic(days int) entities.RateHistory {
	points := make([]entities.HistoryPoint, 0, days+1)

	for i := days; i >= 0; i-- {
		points = append(points, entities.HistoryPoint{
			Date: s.now().AddDate(0, 0, -i).Format("2006-01-02"),
			Rate: 1 + (rand.Float64()-0.5)*0.1,
		})
	}

	return entities.RateHistory{Points: points, Fidelity: entities.FidelitySynthetic}
}
