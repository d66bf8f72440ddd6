package schema

import (
	"errors"
	"reflect"
	"testing"

	"AccelMailBot/internal/domain/errorz"
)

func TestDefaultDraft(t *testing.T) {
	d := DefaultDraft()

	if d.Source != SourceUnset {
		t.Fatalf("source = %q, want unset", d.Source)
	}
	if d.SurveyMode != SurveyModeB2B {
		t.Fatalf("survey mode = %q, want B2B", d.SurveyMode)
	}
	if d.MapLat != DefaultMapLat || d.MapLng != DefaultMapLng {
		t.Fatalf("map center = %v, %v; want %v, %v", d.MapLat, d.MapLng, DefaultMapLat, DefaultMapLng)
	}
	if d.MapRadius != DefaultMapRadius {
		t.Fatalf("map radius = %v, want %v", d.MapRadius, DefaultMapRadius)
	}
	if d.CreativeType != CreativeUpload {
		t.Fatalf("creative type = %q, want upload", d.CreativeType)
	}
	if d.Cadence != CadenceSingle {
		t.Fatalf("cadence = %q, want single", d.Cadence)
	}
	if d.UploadedList != nil {
		t.Fatal("fresh draft must not carry an uploaded list")
	}
}

func TestApplyEmptyPatchIsIdentity(t *testing.T) {
	d := DefaultDraft()
	d.BusinessName = "Harbor Coffee"
	d.Source = SourceSurvey
	d.SurveySelections = map[SurveyCategory][]string{CategoryIndustries: {"Manufacturing"}}
	before := d

	d.Apply(DraftPatch{})

	if !reflect.DeepEqual(d, before) {
		t.Fatalf("empty patch changed the draft: %+v != %+v", d, before)
	}
}

func TestApplyPartialPatch(t *testing.T) {
	d := DefaultDraft()
	source := SourceUpload
	quantity := 2500
	d.Apply(DraftPatch{Source: &source, Quantity: &quantity})

	if d.Source != SourceUpload {
		t.Fatalf("source = %q, want upload", d.Source)
	}
	if d.Quantity != 2500 {
		t.Fatalf("quantity = %d, want 2500", d.Quantity)
	}
	// Untouched fields keep their defaults.
	if d.Cadence != CadenceSingle || d.MapRadius != DefaultMapRadius {
		t.Fatalf("patch bled into unrelated fields: %+v", d)
	}
}

func TestApplyReplacesCategorySetsWholesale(t *testing.T) {
	d := DefaultDraft()
	d.SurveySelections = map[SurveyCategory][]string{
		CategoryIndustries: {"Manufacturing", "E-commerce"},
		CategoryRevenue:    {"$1M–$5M"},
	}

	d.Apply(DraftPatch{SurveySelections: map[SurveyCategory][]string{
		CategoryIndustries: {"Nonprofits"},
	}})

	if got := d.SurveySelections[CategoryIndustries]; !reflect.DeepEqual(got, []string{"Nonprofits"}) {
		t.Fatalf("industries = %v, want wholesale replacement", got)
	}
	if got := d.SurveySelections[CategoryRevenue]; !reflect.DeepEqual(got, []string{"$1M–$5M"}) {
		t.Fatalf("untouched category changed: %v", got)
	}
}

func TestToggleSurveySelection(t *testing.T) {
	d := DefaultDraft()

	d.ToggleSurveySelection(CategoryIndustries, "Manufacturing")
	d.ToggleSurveySelection(CategoryIndustries, "E-commerce")
	if got := d.SurveySelections[CategoryIndustries]; !reflect.DeepEqual(got, []string{"Manufacturing", "E-commerce"}) {
		t.Fatalf("after two toggles on: %v", got)
	}

	// Toggling an existing item removes only that item.
	d.ToggleSurveySelection(CategoryIndustries, "Manufacturing")
	if got := d.SurveySelections[CategoryIndustries]; !reflect.DeepEqual(got, []string{"E-commerce"}) {
		t.Fatalf("after toggle off: %v", got)
	}

	// Toggling twice returns to the starting set.
	d.ToggleSurveySelection(CategoryIndustries, "Retail (Brick-and-Mortar)")
	d.ToggleSurveySelection(CategoryIndustries, "Retail (Brick-and-Mortar)")
	if got := d.SurveySelections[CategoryIndustries]; !reflect.DeepEqual(got, []string{"E-commerce"}) {
		t.Fatalf("double toggle is not an identity: %v", got)
	}
}

func TestNewCampaignSnapshotsDraft(t *testing.T) {
	d := DefaultDraft()
	d.BusinessName = "Harbor Coffee"
	d.FirstName = "Dana"
	d.LastName = "Reyes"
	d.Email = "dana@harborcoffee.example"
	d.Source = SourceUpload
	d.MailerFormat = "Postcard 6x9"
	d.Quantity = 5000
	d.StartDate = "2026-09-15"
	d.SurveySelections = map[SurveyCategory][]string{CategoryIndustries: {"Restaurants & Food"}}
	d.UploadedList = &UploadedListRef{
		Name:        "customers.csv",
		FileID:      "tg-file-123",
		ContentType: "text/csv",
		Size:        2048,
	}

	c := NewCampaign(d)

	if c.Status != CampaignStatusSubmitted {
		t.Fatalf("status = %q, want submitted", c.Status)
	}
	if c.BusinessName != "Harbor Coffee" || c.Email != "dana@harborcoffee.example" {
		t.Fatalf("profile fields not carried: %+v", c)
	}
	if c.UploadedFileName != "customers.csv" {
		t.Fatalf("uploaded file name = %q, want customers.csv", c.UploadedFileName)
	}
	if c.ListFile != nil {
		t.Fatal("list file metadata must only appear after the upload lands")
	}
	if got := c.SurveySelections["industries"]; !reflect.DeepEqual(got, []string{"Restaurants & Food"}) {
		t.Fatalf("survey selections = %v", got)
	}
}

func TestNewCampaignWithoutList(t *testing.T) {
	c := NewCampaign(DefaultDraft())
	if c.UploadedFileName != "" {
		t.Fatalf("uploaded file name = %q, want empty", c.UploadedFileName)
	}
	if c.SurveySelections != nil {
		t.Fatalf("survey selections = %v, want nil", c.SurveySelections)
	}
}

func TestStepByID(t *testing.T) {
	step, err := StepByID(StepReview)
	if err != nil {
		t.Fatalf("StepByID(review): %v", err)
	}
	if step.Title != "Review" {
		t.Fatalf("title = %q, want Review", step.Title)
	}

	_, err = StepByID("checkout")
	if !errors.Is(err, errorz.ErrNotFound) {
		t.Fatalf("unknown step error = %v, want ErrNotFound", err)
	}
}

func TestStepsReturnsACopy(t *testing.T) {
	steps := Steps()
	steps[0].Title = "mutated"
	if fresh := Steps(); fresh[0].Title == "mutated" {
		t.Fatal("Steps leaked the internal registry")
	}
}
