package rates

import (
	"context"

	"AccelMailBot/internal/domain/errorz"
	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
	"AccelMailBot/internal/domain/service/pricing"
)

// Service exposes the admin-editable pricing tier table.
type Service struct {
	rates repository.RateRepository
}

func New(rates repository.RateRepository) *Service {
	return &Service{rates: rates}
}

func (s *Service) All(ctx context.Context) ([]schema.Rate, error) {
	return s.rates.List(ctx)
}

func (s *Service) ByFormat(ctx context.Context, format string) ([]schema.Rate, error) {
	return s.rates.ListByFormat(ctx, format)
}

// SetPrice updates one tier price in place. Unknown tiers are rejected
// before touching the table.
func (s *Service) SetPrice(ctx context.Context, format, tier string, price float64) (schema.Rate, error) {
	if !pricing.ValidTier(tier) {
		return schema.Rate{}, errorz.ErrNotFound
	}
	if price <= 0 {
		return schema.Rate{}, errorz.Validation("Price must be greater than zero.")
	}
	return s.rates.SetPrice(ctx, format, tier, price)
}
