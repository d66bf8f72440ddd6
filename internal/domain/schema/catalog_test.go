package schema

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"testing"
)

func TestSurveyCategoriesByMode(t *testing.T) {
	if got := SurveyCategories(SurveyModeB2B); !reflect.DeepEqual(got, []SurveyCategory{CategoryIndustries, CategoryRevenue, CategoryEmployees}) {
		t.Fatalf("B2B categories = %v", got)
	}
	if got := SurveyCategories(SurveyModeB2C); !reflect.DeepEqual(got, []SurveyCategory{CategoryAges, CategoryIncomes, CategoryFamilies}) {
		t.Fatalf("B2C categories = %v", got)
	}
}

func TestSurveyOptionsCrossMode(t *testing.T) {
	if opts := SurveyOptions(SurveyModeB2B, CategoryIndustries); len(opts) != 10 {
		t.Fatalf("B2B industries = %d options, want 10", len(opts))
	}
	// Consumer categories don't exist on the business side.
	if opts := SurveyOptions(SurveyModeB2B, CategoryAges); opts != nil {
		t.Fatalf("B2B ages = %v, want nil", opts)
	}
	if opts := SurveyOptions(SurveyModeB2C, CategoryFamilies); len(opts) != 4 {
		t.Fatalf("B2C families = %d options, want 4", len(opts))
	}
}

func TestFallbackRemoteConfig(t *testing.T) {
	cfg := FallbackRemoteConfig()
	if len(cfg.MailerSizes) != 3 {
		t.Fatalf("mailer sizes = %d, want 3", len(cfg.MailerSizes))
	}
	if cfg.DesignFee != 99 {
		t.Fatalf("design fee = %v, want 99", cfg.DesignFee)
	}
	if len(cfg.BlackoutDates) != 0 {
		t.Fatalf("blackout dates = %v, want none", cfg.BlackoutDates)
	}
}

func TestListTemplateCSV(t *testing.T) {
	records, err := csv.NewReader(bytes.NewReader(ListTemplateCSV())).ReadAll()
	if err != nil {
		t.Fatalf("parse template: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("template has %d rows, want header plus example", len(records))
	}
	if !reflect.DeepEqual(records[0], ListTemplateHeaders) {
		t.Fatalf("header = %v, want %v", records[0], ListTemplateHeaders)
	}
	if records[1][0] != "Jane" || records[1][6] != "23510" {
		t.Fatalf("example row = %v", records[1])
	}
}
