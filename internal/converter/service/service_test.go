package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/hdlima/conversor/deploy/config"
	"github.com/hdlima/conversor/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rateClient RateClient, historyClient HistoryClient) *Service {
	cfg := &config.Config{
		Rates: config.Rates{
			Base:    "USD",
			TTL:     10 * time.Minute,
			Timeout: time.Second,
		},
		History: config.History{
			Timeout:     time.Second,
			DefaultDays: 7,
		},
	}

	return NewService(
		NewRateSource(rateClient, cfg),
		NewHistorySource(historyClient, cfg),
		cfg,
	)
}

func TestService_ConvertUSDToBRL(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{rates: map[string]float64{"USD": 1, "BRL": 5}},
		&fakeHistoryClient{rates: map[string]map[string]float64{"2025-08-27": {"BRL": 5.0}}},
	)

	conversion, err := svc.Convert(context.Background(), "USD", "BRL", 100)
	require.NoError(t, err)

	assert.InDelta(t, 500.00, conversion.Result, 0)
	assert.InDelta(t, 5.000000, conversion.Rate, 0)
	assert.Equal(t, "USD", conversion.From)
	assert.Equal(t, "BRL", conversion.To)
	assert.Equal(t, entities.FidelityLive, conversion.History.Fidelity)
	require.Len(t, conversion.History.Points, 1)
}

func TestService_ConvertRoundTrip(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{rates: map[string]float64{"USD": 1, "EUR": 0.86, "BRL": 5.43}},
		&fakeHistoryClient{rates: map[string]map[string]float64{}},
	)

	const amount = 250.0

	forward, err := svc.Convert(context.Background(), "EUR", "BRL", amount)
	require.NoError(t, err)

	back, err := svc.Convert(context.Background(), "BRL", "EUR", forward.Result)
	require.NoError(t, err)

	assert.InDelta(t, amount, back.Result, 0.01)
}

func TestService_ConvertZeroAmount(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{rates: map[string]float64{"USD": 1, "BRL": 5}},
		&fakeHistoryClient{rates: map[string]map[string]float64{}},
	)

	conversion, err := svc.Convert(context.Background(), "USD", "BRL", 0)
	require.NoError(t, err)
	assert.Zero(t, conversion.Result)
}

func TestService_ConvertUnknownCurrency(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{rates: map[string]float64{"USD": 1}},
		&fakeHistoryClient{rates: map[string]map[string]float64{}},
	)

	_, err := svc.Convert(context.Background(), "USD", "XXX", 10)
	assert.ErrorIs(t, err, entities.ErrCurrencyNotFound)

	_, err = svc.Convert(context.Background(), "XXX", "USD", 10)
	assert.ErrorIs(t, err, entities.ErrCurrencyNotFound)
}

func TestService_ConvertInvalidInput(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{rates: map[string]float64{"USD": 1, "BRL": 5}},
		&fakeHistoryClient{rates: map[string]map[string]float64{}},
	)

	_, err := svc.Convert(context.Background(), "", "BRL", 10)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Convert(context.Background(), "USD", "", 10)
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Convert(context.Background(), "USD", "BRL", math.NaN())
	assert.ErrorIs(t, err, entities.ErrInvalidInput)

	_, err = svc.Convert(context.Background(), "USD", "BRL", math.Inf(1))
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestService_ConvertPropagatesUpstreamError(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{err: errors.New("connection refused")},
		&fakeHistoryClient{rates: map[string]map[string]float64{}},
	)

	_, err := svc.Convert(context.Background(), "USD", "BRL", 10)
	assert.ErrorIs(t, err, entities.ErrUpstream)
}

func TestService_ConvertHistoryFailureDoesNotFail(t *testing.T) {
	svc := newTestService(
		&fakeRateClient{rates: map[string]float64{"USD": 1, "BRL": 5}},
		&fakeHistoryClient{err: errors.New("connection refused")},
	)

	conversion, err := svc.Convert(context.Background(), "USD", "BRL", 100)
	require.NoError(t, err)

	assert.Equal(t, entities.FidelitySynthetic, conversion.History.Fidelity)
	assert.Len(t, conversion.History.Points, 8)
}
