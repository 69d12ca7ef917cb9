package public

import (
	"context"

	"github.com/hdlima/conversor/internal/entities"
)

type Service interface {
	GetRates(ctx context.Context, force bool) (*entities.RateSnapshot, error)
	GetHistory(ctx context.Context, from, to string, days int) entities.RateHistory
	Convert(ctx context.Context, from, to string, amount float64) (*entities.Conversion, error)
}
