package pricing

import (
	"math"
	"strings"

	"AccelMailBot/internal/domain/schema"
)

// Quote is a display estimate. Nothing is charged at this stage; final
// pricing happens after design review and address validation.
type Quote struct {
	RatePerPiece float64
	Quantity     int
	Total        float64
}

const (
	basePostcard = 0.70
	baseJumbo    = 0.90
	baseLetter   = 1.10

	defaultQuantity = 1000
)

// Estimate maps (format, quantity) to a per-piece rate and total. Volume
// discounts stack: −0.05 at 5000 pieces and a further −0.10 at 10000.
// A non-positive quantity falls back to 1000; an unknown format prices as
// the standard postcard. There is no error path.
func Estimate(format string, quantity int) Quote {
	if quantity <= 0 {
		quantity = defaultQuantity
	}

	rate := basePostcard
	switch {
	case strings.Contains(format, "6x9"):
		rate = baseJumbo
	case strings.Contains(format, "Letter"):
		rate = baseLetter
	}

	if quantity >= 5000 {
		rate -= 0.05
	}
	if quantity >= 10000 {
		rate -= 0.10
	}

	return Quote{
		RatePerPiece: rate,
		Quantity:     quantity,
		Total:        round2(rate * float64(quantity)),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Tier bounds for the admin-editable rate table. The top tier is open-ended.
type Tier struct {
	Label string
	Min   int
	Max   int
}

var Tiers = []Tier{
	{Label: "50-99", Min: 50, Max: 99},
	{Label: "100-249", Min: 100, Max: 249},
	{Label: "250-499", Min: 250, Max: 499},
	{Label: "500-749", Min: 500, Max: 749},
	{Label: "750-999", Min: 750, Max: 999},
	{Label: "1000-1999", Min: 1000, Max: 1999},
	{Label: "2000+", Min: 2000, Max: math.MaxInt},
}

// TierFor buckets a quantity into a rate-table tier. Quantities below the
// lowest bound fall into the first tier.
func TierFor(quantity int) string {
	for _, t := range Tiers {
		if quantity >= t.Min && quantity <= t.Max {
			return t.Label
		}
	}
	return Tiers[0].Label
}

func ValidTier(label string) bool {
	for _, t := range Tiers {
		if t.Label == label {
			return true
		}
	}
	return false
}

// TableRate looks up a tiered per-piece price for a format and quantity.
func TableRate(rates []schema.Rate, format string, quantity int) (float64, bool) {
	tier := TierFor(quantity)
	for _, r := range rates {
		if r.Format == format && r.Tier == tier {
			return r.PricePerPiece, true
		}
	}
	return 0, false
}
