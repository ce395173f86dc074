package domain

import (
	"fmt"
	"time"
)

// Participant is a chat member as resolved by the adapter
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FallbackName is the display form used when an id cannot be resolved to a name
func FallbackName(id string) string {
	return fmt.Sprintf("user:%s", id)
}

// DisplayName returns the participant name or the fallback form
func (p Participant) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return FallbackName(p.ID)
}

// Shot is one recorded game occurrence. It is immutable once stored.
type Shot struct {
	CreatedAt    time.Time
	CreatedByID  string
	Date         string
	ID           int64
	MasterID     string
	MasterName   string
	Participants []Participant
}

// NewShot carries the fields needed to create a shot
type NewShot struct {
	CreatedAt   time.Time
	CreatedByID string
	Date        string
	MasterID    string
	MasterName  string
}

// Validate checks the shot date
func (n NewShot) Validate() error {
	if !IsValidDate(n.Date) {
		return NewValidationError("date", fmt.Sprintf("invalid date %q, use YYYY-MM-DD", n.Date))
	}
	if n.MasterID == "" {
		return NewValidationError("master", "master is required")
	}
	return nil
}

// ParticipantSummary is one row of the attendance report
type ParticipantSummary struct {
	LastDate        string
	ParticipantID   string
	ParticipantName string
	SessionCount    int
}

// LastPlayed is the most recent shot date of a participant, or never.
// The zero value means the participant never played.
type LastPlayed struct {
	Date  string
	Valid bool
}

// Never is the LastPlayed of a participant with no attendance
var Never = LastPlayed{}

// PlayedOn returns a LastPlayed set to date
func PlayedOn(date string) LastPlayed {
	return LastPlayed{Date: date, Valid: true}
}

func (l LastPlayed) String() string {
	if !l.Valid {
		return "never"
	}
	return l.Date
}

// LastPlayedRecord is what the store knows about a participant's latest shot
type LastPlayedRecord struct {
	LastDate string
	Name     string
}
