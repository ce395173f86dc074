package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/shotbook/internal/domain"
	"github.com/renato0307/shotbook/internal/logging"
)

// StagingService holds operators' pending selections in process memory.
// Entries are lost on restart. Concurrent calls on the same key are
// last-writer-wins; the mutex only keeps the map itself consistent.
type StagingService struct {
	clock   domain.Clock
	entries map[domain.SelectionKey]*domain.PendingSelection
	mu      sync.Mutex
	ttl     time.Duration
}

// NewStagingService creates a StagingService. A ttl of 0 keeps entries until
// they are committed or cancelled.
func NewStagingService(ttl time.Duration, clock domain.Clock) *StagingService {
	if clock == nil {
		clock = time.Now
	}
	return &StagingService{
		clock:   clock,
		entries: make(map[domain.SelectionKey]*domain.PendingSelection),
		ttl:     ttl,
	}
}

// Start creates the pending selection for key, replacing any previous one
func (s *StagingService) Start(key domain.SelectionKey, params domain.SelectionParams) domain.PendingSelection {
	now := s.clock()
	sel := &domain.PendingSelection{
		FlowID:       uuid.New().String(),
		Key:          key,
		Params:       params,
		Participants: make(map[string]string),
		StartedAt:    now,
		UpdatedAt:    now,
	}

	s.mu.Lock()
	_, replaced := s.entries[key]
	s.entries[key] = sel
	s.mu.Unlock()

	logging.Logger.Info("Selection started",
		"key", key.String(),
		"kind", params.Kind,
		"flow_id", sel.FlowID,
		"replaced", replaced)
	return sel.Clone()
}

// AddCandidates unions participants into the staged set. In record flows the
// master is never added as a participant.
func (s *StagingService) AddCandidates(key domain.SelectionKey, participants []domain.Participant) (domain.PendingSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.live(key)
	if !ok {
		return domain.PendingSelection{}, domain.NewNotFoundError("selection", key.String())
	}

	for _, p := range participants {
		if p.ID == "" {
			continue
		}
		if sel.Params.Kind == domain.FlowRecord && p.ID == sel.Params.Master.ID {
			continue
		}
		if existing, found := sel.Participants[p.ID]; found && p.Name == "" {
			sel.Participants[p.ID] = existing
			continue
		}
		sel.Participants[p.ID] = p.Name
	}
	sel.UpdatedAt = s.clock()

	logging.Logger.Debug("Candidates added",
		"key", key.String(),
		"selected", len(participants),
		"total", len(sel.Participants))
	return sel.Clone(), nil
}

// Reset empties the staged set and keeps the flow parameters
func (s *StagingService) Reset(key domain.SelectionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.live(key)
	if !ok {
		return domain.NewNotFoundError("selection", key.String())
	}
	sel.Participants = make(map[string]string)
	sel.UpdatedAt = s.clock()
	return nil
}

// Get returns a copy of the pending selection for key
func (s *StagingService) Get(key domain.SelectionKey) (domain.PendingSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.live(key)
	if !ok {
		return domain.PendingSelection{}, domain.NewNotFoundError("selection", key.String())
	}
	return sel.Clone(), nil
}

// Cancel discards the pending selection. It reports whether one existed.
func (s *StagingService) Cancel(key domain.SelectionKey) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.entries[key]
	delete(s.entries, key)
	return ok
}

// Commit removes the pending selection and returns its final contents.
// An empty selection is rejected and stays staged.
func (s *StagingService) Commit(key domain.SelectionKey) (domain.PendingSelection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.live(key)
	if !ok {
		return domain.PendingSelection{}, domain.NewNotFoundError("selection", key.String())
	}
	if len(sel.Participants) == 0 {
		return domain.PendingSelection{}, domain.NewValidationError("participants", "no participants selected")
	}

	delete(s.entries, key)
	return sel.Clone(), nil
}

// Restore puts a committed selection back after its downstream step failed.
// It does nothing if the operator already started a newer flow on the key.
func (s *StagingService) Restore(sel domain.PendingSelection) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.entries[sel.Key]; ok && current.FlowID != sel.FlowID {
		return false
	}
	restored := sel.Clone()
	restored.UpdatedAt = s.clock()
	s.entries[sel.Key] = &restored
	return true
}

// live returns the entry for key, evicting it first if it outlived the TTL.
// Callers hold s.mu.
func (s *StagingService) live(key domain.SelectionKey) (*domain.PendingSelection, bool) {
	sel, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.expired(sel, s.clock()) {
		delete(s.entries, key)
		logging.Logger.Info("Selection expired", "key", key.String(), "flow_id", sel.FlowID)
		return nil, false
	}
	return sel, true
}

func (s *StagingService) expired(sel *domain.PendingSelection, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sel.UpdatedAt) > s.ttl
}

// Sweep drops selections untouched for longer than the TTL and returns how many
func (s *StagingService) Sweep(now time.Time) int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for key, sel := range s.entries {
		if s.expired(sel, now) {
			delete(s.entries, key)
			evicted++
		}
	}
	return evicted
}

// SweepExpired is Sweep at the service clock's current time
func (s *StagingService) SweepExpired() int {
	return s.Sweep(s.clock())
}

// Len returns the number of pending selections
func (s *StagingService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
