package schema

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionSubmitting SessionStatus = "submitting"
	SessionSubmitted  SessionStatus = "submitted"
	SessionFailed     SessionStatus = "failed"
)

// AdminRateEdit tracks an in-flight price edit from the admin panel.
type AdminRateEdit struct {
	Format string `json:"format"`
	Tier   string `json:"tier"`
}

// Session is the per-user wizard record: the accumulating draft plus
// navigation state. Each user owns exactly one session at a time.
type Session struct {
	Draft     CampaignDraft `json:"draft"`
	StepIndex int           `json:"step_index"`
	Status    SessionStatus `json:"status"`

	// PendingStep holds a deep-link target resolved against the active
	// sequence on the next recompute, then cleared.
	PendingStep StepID `json:"pending_step,omitempty"`

	// ProfileField cursors through the profile step's text inputs.
	ProfileField int `json:"profile_field"`

	AdminEdit *AdminRateEdit `json:"admin_edit,omitempty"`

	CampaignID string `json:"campaign_id,omitempty"`
}

func NewSession() Session {
	return Session{
		Draft:  DefaultDraft(),
		Status: SessionInProgress,
	}
}

// Rate is one row of the admin-editable pricing tier table shown on the
// marketing pricing page.
type Rate struct {
	Format        string
	Tier          string
	PricePerPiece float64
}
