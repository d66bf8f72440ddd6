package postgres

import (
	"AccelMailBot/internal/domain/errorz"
	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepo struct {
	pool *pgxpool.Pool
}

var _ repository.RateRepository = (*RateRepo)(nil)

func NewRateRepo(pool *pgxpool.Pool) *RateRepo {
	return &RateRepo{pool: pool}
}

// seedRates is the initial tier table; admins edit it in place afterwards.
var seedRates = map[string]map[string]float64{
	`Postcard (4.25" x 6")`: {
		"50-99": 0.75, "100-249": 0.65, "250-499": 0.55, "500-749": 0.50,
		"750-999": 0.45, "1000-1999": 0.40, "2000+": 0.35,
	},
	`Letter (8.5" x 11")`: {
		"50-99": 1.25, "100-249": 1.10, "250-499": 0.95, "500-749": 0.85,
		"750-999": 0.75, "1000-1999": 0.65, "2000+": 0.55,
	},
	`Flyer (8.5" x 11" tri-fold)`: {
		"50-99": 1.50, "100-249": 1.35, "250-499": 1.20, "500-749": 1.10,
		"750-999": 1.00, "1000-1999": 0.90, "2000+": 0.80,
	},
}

func (r *RateRepo) Migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS rates (
			format TEXT NOT NULL,
			tier TEXT NOT NULL,
			price_per_piece NUMERIC(10,2) NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY(format, tier)
		);`,
	}

	for _, q := range queries {
		if _, err := r.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	const seed = `
	INSERT INTO rates (format, tier, price_per_piece)
	VALUES ($1, $2, $3)
	ON CONFLICT (format, tier) DO NOTHING;
	`
	for format, tiers := range seedRates {
		for tier, price := range tiers {
			if _, err := r.pool.Exec(ctx, seed, format, tier, price); err != nil {
				return fmt.Errorf("seed rates: %w", err)
			}
		}
	}
	return nil
}

func (r *RateRepo) List(ctx context.Context) ([]schema.Rate, error) {
	const query = `
	SELECT format, tier, price_per_piece
	FROM rates
	ORDER BY format, price_per_piece DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRates(rows)
}

func (r *RateRepo) ListByFormat(ctx context.Context, format string) ([]schema.Rate, error) {
	const query = `
	SELECT format, tier, price_per_piece
	FROM rates
	WHERE format = $1
	ORDER BY price_per_piece DESC;
	`
	rows, err := r.pool.Query(ctx, query, format)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRates(rows)
}

func (r *RateRepo) SetPrice(ctx context.Context, format, tier string, price float64) (schema.Rate, error) {
	const query = `
	UPDATE rates
	SET price_per_piece = $3, updated_at = NOW()
	WHERE format = $1 AND tier = $2
	RETURNING format, tier, price_per_piece;
	`
	var out schema.Rate
	if err := r.pool.QueryRow(ctx, query, format, tier, price).Scan(
		&out.Format,
		&out.Tier,
		&out.PricePerPiece,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schema.Rate{}, errorz.ErrNotFound
		}
		return schema.Rate{}, err
	}
	return out, nil
}

func scanRates(rows pgx.Rows) ([]schema.Rate, error) {
	var out []schema.Rate
	for rows.Next() {
		var rate schema.Rate
		if err := rows.Scan(&rate.Format, &rate.Tier, &rate.PricePerPiece); err != nil {
			return nil, err
		}
		out = append(out, rate)
	}
	return out, rows.Err()
}
