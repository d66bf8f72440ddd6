package flow

import "AccelMailBot/internal/domain/schema"

// Resolve computes the active ordered step sequence for a session: the two
// base steps, a middle segment chosen by the audience source, and the three
// closing steps. Relative registry order is preserved within each segment.
//
// An empty or unrecognized source deliberately takes the survey path
// (segments + map); it is the guided default, not an error.
func Resolve(source schema.SourceKind) []schema.WizardStep {
	base := pick(schema.StepProfile, schema.StepSource)
	end := pick(schema.StepCreative, schema.StepCadence, schema.StepReview)

	var middle []schema.WizardStep
	switch source {
	case schema.SourceUpload:
		middle = pick(schema.StepUpload)
	case schema.SourceEDDM:
		middle = pick(schema.StepMap)
	default:
		middle = pick(schema.StepSegments, schema.StepMap)
	}

	out := make([]schema.WizardStep, 0, len(base)+len(middle)+len(end))
	out = append(out, base...)
	out = append(out, middle...)
	out = append(out, end...)
	return out
}

// IndexOf locates a step ID within an active sequence, -1 when absent.
func IndexOf(steps []schema.WizardStep, id schema.StepID) int {
	for i, s := range steps {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// pick filters the registry down to the given IDs, keeping registry order.
func pick(ids ...schema.StepID) []schema.WizardStep {
	want := make(map[schema.StepID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []schema.WizardStep
	for _, s := range schema.Steps() {
		if _, ok := want[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out
}
