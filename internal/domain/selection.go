package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// FlowKind identifies which operator flow a pending selection belongs to
type FlowKind string

const (
	FlowRecord  FlowKind = "record"
	FlowSuggest FlowKind = "suggest"
)

// Defaults of the suggest flow when the operator leaves a field empty
const (
	DefaultIgnoreDays   = 0
	DefaultLookbackDays = 30
	DefaultSlots        = 4
)

// SelectionKey identifies a pending selection: one per operator per conversation
type SelectionKey struct {
	ContextID  string
	OperatorID string
}

func (k SelectionKey) String() string {
	return fmt.Sprintf("%s:%s", k.ContextID, k.OperatorID)
}

// SelectionParams are the request parameters fixed when a flow starts
type SelectionParams struct {
	Kind FlowKind

	// record flow
	Date   string
	Master Participant

	// suggest flow
	IgnoreDays   int
	LookbackDays int
	Slots        int
}

// PendingSelection is an operator's in-progress participant set
type PendingSelection struct {
	FlowID       string
	Key          SelectionKey
	Params       SelectionParams
	Participants map[string]string // id -> display name
	StartedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy
func (p PendingSelection) Clone() PendingSelection {
	out := p
	out.Participants = make(map[string]string, len(p.Participants))
	for id, name := range p.Participants {
		out.Participants[id] = name
	}
	return out
}

// ParticipantList returns the staged participants ordered by id
func (p PendingSelection) ParticipantList() []Participant {
	list := make([]Participant, 0, len(p.Participants))
	for id, name := range p.Participants {
		list = append(list, Participant{ID: id, Name: name})
	}
	slices.SortFunc(list, func(a, b Participant) int {
		return strings.Compare(a.ID, b.ID)
	})
	return list
}
