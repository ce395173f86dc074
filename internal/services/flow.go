package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/shotbook/internal/config"
	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
)

// FlowService drives the operator flows: start, select, reset, confirm, cancel.
// Adapters pass the operator's GM assertion with each call.
type FlowService struct {
	attendance *AttendanceService
	clock      domain.Clock
	defaults   config.SuggestDefaults
	staging    *StagingService
	suggestion *SuggestionService
}

// NewFlowService creates a new FlowService
func NewFlowService(
	staging *StagingService,
	attendance *AttendanceService,
	suggestion *SuggestionService,
	defaults config.SuggestDefaults,
	clock domain.Clock,
) *FlowService {
	if clock == nil {
		clock = time.Now
	}
	return &FlowService{
		attendance: attendance,
		clock:      clock,
		defaults:   defaults,
		staging:    staging,
		suggestion: suggestion,
	}
}

// StartRecord opens a record flow for a shot on date run by master
func (f *FlowService) StartRecord(isGM bool, key domain.SelectionKey, date string, master domain.Participant) (domain.PendingSelection, error) {
	if !isGM {
		return domain.PendingSelection{}, domain.ErrPermissionDenied
	}
	if !domain.IsValidDate(date) {
		return domain.PendingSelection{}, domain.NewValidationError("date", fmt.Sprintf("invalid date %q, use YYYY-MM-DD", date))
	}
	if master.ID == "" {
		return domain.PendingSelection{}, domain.NewValidationError("master", "master is required")
	}

	return f.staging.Start(key, domain.SelectionParams{
		Date:   date,
		Kind:   domain.FlowRecord,
		Master: domain.Participant{ID: master.ID, Name: master.DisplayName()},
	}), nil
}

// StartSuggest opens a suggest flow. Unset options take the configured defaults.
func (f *FlowService) StartSuggest(isGM bool, key domain.SelectionKey, opts SuggestOptions) (domain.PendingSelection, error) {
	if !isGM {
		return domain.PendingSelection{}, domain.ErrPermissionDenied
	}

	params := domain.SelectionParams{
		IgnoreDays:   f.defaults.IgnoreDays,
		Kind:         domain.FlowSuggest,
		LookbackDays: f.defaults.LookbackDays,
		Slots:        f.defaults.Slots,
	}
	if opts.Slots != nil {
		params.Slots = *opts.Slots
	}
	if opts.LookbackDays != nil {
		params.LookbackDays = *opts.LookbackDays
	}
	if opts.IgnoreDays != nil {
		params.IgnoreDays = *opts.IgnoreDays
	}
	if params.LookbackDays < 0 {
		return domain.PendingSelection{}, domain.NewValidationError("lookback_days", "must not be negative")
	}
	if params.IgnoreDays < 0 {
		return domain.PendingSelection{}, domain.NewValidationError("ignore_days", "must not be negative")
	}

	return f.staging.Start(key, params), nil
}

// Select adds participants to the operator's pending selection
func (f *FlowService) Select(isGM bool, key domain.SelectionKey, participants []domain.Participant) (domain.PendingSelection, error) {
	if !isGM {
		return domain.PendingSelection{}, domain.ErrPermissionDenied
	}
	return f.staging.AddCandidates(key, participants)
}

// Reset clears the selected participants of the pending selection
func (f *FlowService) Reset(key domain.SelectionKey) error {
	return f.staging.Reset(key)
}

// Current returns the pending selection for key
func (f *FlowService) Current(key domain.SelectionKey) (domain.PendingSelection, error) {
	return f.staging.Get(key)
}

// Cancel discards the pending selection. It reports whether one existed.
func (f *FlowService) Cancel(key domain.SelectionKey) bool {
	return f.staging.Cancel(key)
}

// Confirm runs the terminal step of the pending flow: a record flow stores the
// shot, a suggest flow computes the ranking. When that step fails the
// selection is staged again so the operator can retry.
func (f *FlowService) Confirm(ctx context.Context, isGM bool, key domain.SelectionKey, createdByID string) (*ConfirmResult, error) {
	if !isGM {
		return nil, domain.ErrPermissionDenied
	}

	sel, err := f.staging.Commit(key)
	if err != nil {
		return nil, err
	}

	result, err := f.run(ctx, sel, createdByID)
	if err != nil {
		if f.staging.Restore(sel) {
			logging.Logger.Warn("Flow step failed, selection restored",
				"key", key.String(),
				"flow_id", sel.FlowID,
				"error", err)
		}
		return nil, err
	}
	return result, nil
}

func (f *FlowService) run(ctx context.Context, sel domain.PendingSelection, createdByID string) (*ConfirmResult, error) {
	switch sel.Params.Kind {
	case domain.FlowRecord:
		shot, err := f.attendance.RecordShot(ctx, domain.NewShot{
			CreatedAt:   f.clock(),
			CreatedByID: createdByID,
			Date:        sel.Params.Date,
			MasterID:    sel.Params.Master.ID,
			MasterName:  sel.Params.Master.Name,
		}, sel.ParticipantList())
		if err != nil {
			return nil, err
		}
		return &ConfirmResult{Kind: domain.FlowRecord, Shot: shot}, nil

	case domain.FlowSuggest:
		suggestion, err := f.suggestion.Suggest(ctx, SuggestRequest{
			Candidates:   sel.ParticipantList(),
			IgnoreDays:   sel.Params.IgnoreDays,
			LookbackDays: sel.Params.LookbackDays,
			Slots:        sel.Params.Slots,
		})
		if err != nil {
			return nil, err
		}
		return &ConfirmResult{Kind: domain.FlowSuggest, Suggestion: suggestion}, nil

	default:
		return nil, fmt.Errorf("unknown flow kind %q", sel.Params.Kind)
	}
}

// Pending returns how many selections are staged
func (f *FlowService) Pending() int {
	return f.staging.Len()
}
