package schema

import "AccelMailBot/internal/domain/errorz"

type StepID string

const (
	StepProfile  StepID = "profile"
	StepSource   StepID = "source"
	StepUpload   StepID = "upload"
	StepSegments StepID = "segments"
	StepMap      StepID = "map"
	StepCreative StepID = "creative"
	StepCadence  StepID = "cadence"
	StepReview   StepID = "review"
)

// WizardStep is one entry in the fixed step registry. Registry order defines
// the default traversal order; rendering is bound by ID in the controller.
type WizardStep struct {
	ID    StepID
	Title string
}

var stepRegistry = []WizardStep{
	{ID: StepProfile, Title: "Profile"},
	{ID: StepSource, Title: "Source"},
	{ID: StepUpload, Title: "Upload List"},
	{ID: StepSegments, Title: "Segments"},
	{ID: StepMap, Title: "Map"},
	{ID: StepCreative, Title: "Creative"},
	{ID: StepCadence, Title: "Cadence"},
	{ID: StepReview, Title: "Review"},
}

// Steps returns the full registry in declared order.
func Steps() []WizardStep {
	out := make([]WizardStep, len(stepRegistry))
	copy(out, stepRegistry)
	return out
}

func StepByID(id StepID) (WizardStep, error) {
	for _, s := range stepRegistry {
		if s.ID == id {
			return s, nil
		}
	}
	return WizardStep{}, errorz.ErrNotFound
}
