package wizard

import (
	"context"
	"fmt"

	"AccelMailBot/internal/domain/errorz"
	"AccelMailBot/internal/domain/repository"
	"AccelMailBot/internal/domain/schema"
	"AccelMailBot/internal/domain/service/flow"
)

// Submitter persists a finished draft and returns the assigned campaign ID.
type Submitter interface {
	Submit(ctx context.Context, userID int64, draft schema.CampaignDraft) (string, error)
}

// Service drives wizard navigation for one user session at a time: step
// advancement, branch recomputation on source changes, deep-link jumps and
// the final submission handoff.
type Service struct {
	sessions repository.SessionRepository
	gateway  Submitter
}

func New(sessions repository.SessionRepository, gateway Submitter) *Service {
	return &Service{sessions: sessions, gateway: gateway}
}

// StartOptions seeds a session. Zero value starts fresh at the first step.
type StartOptions struct {
	// Reset discards any existing draft instead of resuming it.
	Reset bool
	// Source pre-selects the audience source (entry tiles on the menu).
	Source schema.SourceKind
	// JumpTo requests direct navigation to a named step. IDs absent from
	// the resulting active sequence are silently ignored.
	JumpTo schema.StepID
}

func (s *Service) Start(ctx context.Context, userID int64, opts StartOptions) (schema.Session, error) {
	sess := schema.NewSession()
	if !opts.Reset {
		if existing, ok, err := s.sessions.Get(ctx, userID); err != nil {
			return schema.Session{}, fmt.Errorf("load session: %w", err)
		} else if ok && existing.Status != schema.SessionSubmitted {
			sess.Draft = existing.Draft
		}
	}
	if opts.Source != "" {
		sess.Draft.Source = opts.Source
	}
	if opts.JumpTo != "" {
		sess.PendingStep = opts.JumpTo
		revalidate(&sess)
	}
	if err := s.sessions.Set(ctx, userID, sess); err != nil {
		return schema.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func (s *Service) Get(ctx context.Context, userID int64) (schema.Session, bool, error) {
	return s.sessions.Get(ctx, userID)
}

// Save persists controller-side session mutations (input cursors, admin
// edit markers). Navigation goes through the dedicated operations.
func (s *Service) Save(ctx context.Context, userID int64, sess schema.Session) error {
	return s.sessions.Set(ctx, userID, sess)
}

func (s *Service) Cancel(ctx context.Context, userID int64) error {
	return s.sessions.Delete(ctx, userID)
}

// UpdateDraft shallow-merges a patch into the draft. When the audience
// source changes the active sequence is recomputed and the step index
// re-validated against it; a pending deep-link target is resolved once.
func (s *Service) UpdateDraft(ctx context.Context, userID int64, patch schema.DraftPatch) (schema.Session, error) {
	sess, ok, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return schema.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return schema.Session{}, errorz.ErrNotFound
	}

	prevSource := sess.Draft.Source
	sess.Draft.Apply(patch)
	if sess.Draft.Source != prevSource || sess.PendingStep != "" {
		revalidate(&sess)
	}

	if err := s.sessions.Set(ctx, userID, sess); err != nil {
		return schema.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// ToggleSurvey flips one segment selection in the draft.
func (s *Service) ToggleSurvey(ctx context.Context, userID int64, category schema.SurveyCategory, item string) (schema.Session, error) {
	sess, ok, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return schema.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return schema.Session{}, errorz.ErrNotFound
	}

	sess.Draft.ToggleSurveySelection(category, item)

	if err := s.sessions.Set(ctx, userID, sess); err != nil {
		return schema.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Next advances one step, or submits when the review step is active.
// Submission is guarded: an upload-sourced campaign without an attached
// list blocks with a validation message and the session stays put. On a
// collaborator failure the session lands in the failed state at the last
// step; invoking Next again retries.
func (s *Service) Next(ctx context.Context, userID int64) (schema.Session, error) {
	sess, ok, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return schema.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return schema.Session{}, errorz.ErrNotFound
	}

	switch sess.Status {
	case schema.SessionSubmitting, schema.SessionSubmitted:
		// Nothing to advance; a submission is in flight or done.
		return sess, nil
	case schema.SessionFailed:
		sess.Status = schema.SessionInProgress
	}

	steps := flow.Resolve(sess.Draft.Source)
	last := len(steps) - 1

	if sess.StepIndex < last {
		sess.StepIndex++
		sess.ProfileField = 0
		if err := s.sessions.Set(ctx, userID, sess); err != nil {
			return schema.Session{}, fmt.Errorf("save session: %w", err)
		}
		return sess, nil
	}

	if sess.Draft.Source == schema.SourceUpload && sess.Draft.UploadedList == nil {
		return sess, errorz.Validation("Please attach your mailing list file before submitting.")
	}

	sess.Status = schema.SessionSubmitting
	if err := s.sessions.Set(ctx, userID, sess); err != nil {
		return schema.Session{}, fmt.Errorf("save session: %w", err)
	}

	campaignID, submitErr := s.gateway.Submit(ctx, userID, sess.Draft)
	if submitErr != nil {
		sess.Status = schema.SessionFailed
		sess.StepIndex = last
		if err := s.sessions.Set(ctx, userID, sess); err != nil {
			return schema.Session{}, fmt.Errorf("save session: %w", err)
		}
		return sess, fmt.Errorf("submit campaign: %w", submitErr)
	}

	sess.Status = schema.SessionSubmitted
	sess.CampaignID = campaignID
	if err := s.sessions.Set(ctx, userID, sess); err != nil {
		return schema.Session{}, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

// Back steps backwards; at the first step the session ends and the caller
// returns to the menu (exited reports that).
func (s *Service) Back(ctx context.Context, userID int64) (sess schema.Session, exited bool, err error) {
	sess, ok, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return schema.Session{}, false, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return schema.Session{}, true, nil
	}

	if sess.StepIndex == 0 {
		if err := s.sessions.Delete(ctx, userID); err != nil {
			return schema.Session{}, false, fmt.Errorf("delete session: %w", err)
		}
		return schema.Session{}, true, nil
	}

	sess.StepIndex--
	sess.ProfileField = 0
	if sess.Status == schema.SessionFailed {
		sess.Status = schema.SessionInProgress
	}
	if err := s.sessions.Set(ctx, userID, sess); err != nil {
		return schema.Session{}, false, fmt.Errorf("save session: %w", err)
	}
	return sess, false, nil
}

// ActiveSteps resolves the session's current step sequence.
func ActiveSteps(sess schema.Session) []schema.WizardStep {
	return flow.Resolve(sess.Draft.Source)
}

// CurrentStep returns the step the session points at.
func CurrentStep(sess schema.Session) schema.WizardStep {
	steps := flow.Resolve(sess.Draft.Source)
	i := sess.StepIndex
	if i < 0 {
		i = 0
	}
	if i > len(steps)-1 {
		i = len(steps) - 1
	}
	return steps[i]
}

// revalidate clamps the step index into the active sequence and resolves a
// pending deep-link jump exactly once.
func revalidate(sess *schema.Session) {
	steps := flow.Resolve(sess.Draft.Source)
	if sess.PendingStep != "" {
		if idx := flow.IndexOf(steps, sess.PendingStep); idx >= 0 {
			sess.StepIndex = idx
		}
		sess.PendingStep = ""
	}
	if sess.StepIndex > len(steps)-1 {
		sess.StepIndex = len(steps) - 1
	}
	if sess.StepIndex < 0 {
		sess.StepIndex = 0
	}
}
