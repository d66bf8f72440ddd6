package repository

import (
	"AccelMailBot/internal/domain/schema"
	"context"
)

type RateRepository interface {
	Migrate(ctx context.Context) error
	List(ctx context.Context) ([]schema.Rate, error)
	ListByFormat(ctx context.Context, format string) ([]schema.Rate, error)
	SetPrice(ctx context.Context, format, tier string, price float64) (schema.Rate, error)
}

type ConfigFetcher interface {
	Fetch(ctx context.Context) (schema.RemoteConfig, error)
}

type Geocoder interface {
	Search(ctx context.Context, query string) (lat, lng float64, err error)
}
