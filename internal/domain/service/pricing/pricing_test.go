package pricing

import (
	"math"
	"testing"

	"AccelMailBot/internal/domain/schema"
)

func TestEstimateRates(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		quantity int
		wantRate float64
	}{
		{"standard postcard base", "Postcard 4x6", 1000, 0.70},
		{"jumbo postcard base", "Postcard 6x9", 1000, 0.90},
		{"letter base", "Letter", 1000, 1.10},
		{"unknown format prices as postcard", "Door Hanger", 1000, 0.70},
		{"first volume break at 5000", "Postcard 4x6", 5000, 0.65},
		{"just below the break", "Postcard 4x6", 4999, 0.70},
		{"both breaks stack at 10000", "Postcard 4x6", 10000, 0.55},
		{"letter with both breaks", "Letter", 12000, 0.95},
		{"jumbo with first break", "Postcard 6x9", 7500, 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.format, tt.quantity)
			if math.Abs(got.RatePerPiece-tt.wantRate) > 1e-9 {
				t.Fatalf("Estimate(%q, %d).RatePerPiece = %v, want %v", tt.format, tt.quantity, got.RatePerPiece, tt.wantRate)
			}
			if got.Quantity != tt.quantity {
				t.Fatalf("quantity = %d, want %d", got.Quantity, tt.quantity)
			}
		})
	}
}

func TestEstimateTotal(t *testing.T) {
	got := Estimate("Postcard 4x6", 12000)
	if got.Total != 6600.00 {
		t.Fatalf("total = %v, want 6600.00", got.Total)
	}

	got = Estimate("Letter", 250)
	if got.Total != 275.00 {
		t.Fatalf("total = %v, want 275.00", got.Total)
	}
}

func TestEstimateDefaultQuantity(t *testing.T) {
	for _, q := range []int{0, -5} {
		got := Estimate("Postcard 4x6", q)
		if got.Quantity != 1000 {
			t.Fatalf("Estimate(_, %d).Quantity = %d, want 1000", q, got.Quantity)
		}
		if got.Total != 700.00 {
			t.Fatalf("Estimate(_, %d).Total = %v, want 700.00", q, got.Total)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		quantity int
		want     string
	}{
		{10, "50-99"},
		{50, "50-99"},
		{99, "50-99"},
		{100, "100-249"},
		{500, "500-749"},
		{999, "750-999"},
		{1000, "1000-1999"},
		{2000, "2000+"},
		{250000, "2000+"},
	}
	for _, tt := range tests {
		if got := TierFor(tt.quantity); got != tt.want {
			t.Fatalf("TierFor(%d) = %q, want %q", tt.quantity, got, tt.want)
		}
	}
}

func TestValidTier(t *testing.T) {
	for _, tier := range Tiers {
		if !ValidTier(tier.Label) {
			t.Fatalf("ValidTier(%q) = false for a known tier", tier.Label)
		}
	}
	if ValidTier("3000+") {
		t.Fatal("ValidTier accepted an unknown label")
	}
}

func TestTableRate(t *testing.T) {
	rates := []schema.Rate{
		{Format: `Letter (8.5" x 11")`, Tier: "100-249", PricePerPiece: 1.15},
		{Format: `Letter (8.5" x 11")`, Tier: "2000+", PricePerPiece: 0.75},
	}

	if price, ok := TableRate(rates, `Letter (8.5" x 11")`, 150); !ok || price != 1.15 {
		t.Fatalf("TableRate(150) = %v, %v; want 1.15, true", price, ok)
	}
	if price, ok := TableRate(rates, `Letter (8.5" x 11")`, 5000); !ok || price != 0.75 {
		t.Fatalf("TableRate(5000) = %v, %v; want 0.75, true", price, ok)
	}
	if _, ok := TableRate(rates, `Letter (8.5" x 11")`, 600); ok {
		t.Fatal("TableRate reported a price for a missing tier")
	}
	if _, ok := TableRate(rates, "Unknown", 150); ok {
		t.Fatal("TableRate reported a price for an unknown format")
	}
}
