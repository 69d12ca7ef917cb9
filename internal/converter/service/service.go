package service

import (
	"context"
	"math"

	"github.com/hdlima/conversor/deploy/config"
	"github.com/hdlima/conversor/internal/entities"
	"github.com/pkg/errors"
)

type Service struct {
	rates   *RateSource
	history *HistorySource
	cfg     *config.Config
}

func NewService(rates *RateSource, history *HistorySource, cfg *config.Config) *Service {
	return &Service{
		rates:   rates,
		history: history,
		cfg:     cfg,
	}
}

func (s *Service) GetRates(ctx context.Context, force bool) (*entities.RateSnapshot, error) {
	return s.rates.GetRates(ctx, force)
}

func (s *Service) GetHistory(ctx context.Context, from, to string, days int) entities.RateHistory {
	return s.history.GetHistory(ctx, from, to, days)
}

// Convert computes amount * (toRate / fromRate) against the current snapshot
// and attaches a recent history series. Result is rounded to 2 decimals and
// the cross rate to 6; the computation itself uses full precision. A history
// failure can never fail the conversion.
func (s *Service) Convert(ctx context.Context, from, to string, amount float64) (*entities.Conversion, error) {
	const op = "service.Convert"

	if from == "" || to == "" {
		return nil, errors.Wrapf(entities.ErrInvalidInput, "%s: empty currency code", op)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, errors.Wrapf(entities.ErrInvalidInput, "%s: amount is not finite", op)
	}

	snap, err := s.rates.GetRates(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	fromRate, ok := snap.Rates[from]
	if !ok {
		return nil, errors.Wrapf(entities.ErrCurrencyNotFound, "%s: %s", op, from)
	}

	toRate, ok := snap.Rates[to]
	if !ok {
		return nil, errors.Wrapf(entities.ErrCurrencyNotFound, "%s: %s", op, to)
	}

	cross := toRate / fromRate

	return &entities.Conversion{
		From:       from,
		To:         to,
		Amount:     amount,
		Result:     math.Round(amount*cross*100) / 100,
		Rate:       math.Round(cross*1e6) / 1e6,
		LastUpdate: snap.FetchedAt,
		History:    s.history.GetHistory(ctx, from, to, s.cfg.History.DefaultDays),
	}, nil
}
