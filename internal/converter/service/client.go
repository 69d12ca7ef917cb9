package service

import (
	"context"
	"time"
)

type RateClient interface {
	Latest(ctx context.Context, base string) (map[string]float64, string, error)
}

type HistoryClient interface {
	Range(ctx context.Context, start, end time.Time, from, to string) (map[string]map[string]float64, error)
}
