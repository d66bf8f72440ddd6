package schema

import (
	"bytes"
	"encoding/csv"
)

// SurveyCategory names one group of target-segment options.
type SurveyCategory string

const (
	CategoryIndustries SurveyCategory = "industries"
	CategoryRevenue    SurveyCategory = "revenue"
	CategoryEmployees  SurveyCategory = "employees"
	CategoryAges       SurveyCategory = "ages"
	CategoryIncomes    SurveyCategory = "incomes"
	CategoryFamilies   SurveyCategory = "families"
)

var surveyCatalog = map[SurveyMode]map[SurveyCategory][]string{
	SurveyModeB2B: {
		CategoryIndustries: {
			"Construction & Trades", "Manufacturing", "Transportation / Logistics",
			"Professional Services", "Medical / Healthcare", "Restaurants & Food",
			"Retail (Brick-and-Mortar)", "E-commerce", "Real Estate / Property Mgmt", "Nonprofits",
		},
		CategoryRevenue:   {"Under $500k", "$500k–$1M", "$1M–$5M", "$5M–$20M", "$20M+"},
		CategoryEmployees: {"0–2 (Micro)", "3–9 (Small Team)", "10–24 (Growing)", "25–49", "50+"},
	},
	SurveyModeB2C: {
		CategoryAges:     {"18-24 (Gen Z)", "25-34 (Millennials)", "35-44", "45-54", "55-64", "65+ (Seniors)"},
		CategoryIncomes:  {"Any", "Budget Conscious", "Middle Income", "Affluent", "High Net Worth"},
		CategoryFamilies: {"Singles", "Couples", "Parents with Kids", "Empty Nesters"},
	},
}

// surveyCategoryOrder fixes presentation order per mode; maps don't.
var surveyCategoryOrder = map[SurveyMode][]SurveyCategory{
	SurveyModeB2B: {CategoryIndustries, CategoryRevenue, CategoryEmployees},
	SurveyModeB2C: {CategoryAges, CategoryIncomes, CategoryFamilies},
}

func SurveyCategories(mode SurveyMode) []SurveyCategory {
	return surveyCategoryOrder[mode]
}

func SurveyOptions(mode SurveyMode, category SurveyCategory) []string {
	return surveyCatalog[mode][category]
}

// MailerFormats are the offerings on the creative step. Pricing keys off
// these names.
var MailerFormats = []string{"Postcard 4x6", "Postcard 6x9", "Letter"}

const MinOrderQuantity = 100

// MailerSize is one catalog entry from the remote configuration endpoint.
type MailerSize struct {
	Name string `json:"name"`
}

// RemoteConfig is the read-only catalog fetched at wizard start.
type RemoteConfig struct {
	MailerSizes   []MailerSize `json:"mailerSizes"`
	DesignFee     float64      `json:"designFee"`
	BlackoutDates []string     `json:"blackoutDates"`
}

// FallbackRemoteConfig is used whenever the remote endpoint is unreachable.
func FallbackRemoteConfig() RemoteConfig {
	return RemoteConfig{
		MailerSizes: []MailerSize{
			{Name: `Postcard (4.25" x 6")`},
			{Name: `Letter (8.5" x 11")`},
			{Name: `Flyer (8.5" x 11" tri-fold)`},
		},
		DesignFee:     99,
		BlackoutDates: nil,
	}
}

var ListTemplateHeaders = []string{"FirstName", "LastName", "Address1", "Address2", "City", "State", "Zip"}

const ListTemplateFileName = "accelmail-upload-template.csv"

// ListTemplateCSV renders the downloadable upload template: the required
// header row plus one example data row.
func ListTemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(ListTemplateHeaders)
	_ = w.Write([]string{"Jane", "Doe", "123 Main St", "", "Norfolk", "VA", "23510"})
	w.Flush()
	return buf.Bytes()
}
