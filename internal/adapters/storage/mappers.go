package storage

import (
	"github.com/renato0307/shotbook/internal/domain"
)

// shotModelToDomain converts a ShotModel (GORM) to domain.Shot
func shotModelToDomain(m ShotModel) domain.Shot {
	participants := make([]domain.Participant, len(m.Attendance))
	for i, a := range m.Attendance {
		participants[i] = domain.Participant{ID: a.PlayerID, Name: a.PlayerName}
	}

	return domain.Shot{
		CreatedAt:    m.CreatedAt,
		CreatedByID:  m.CreatedByID,
		Date:         m.ShotDate,
		ID:           m.ID,
		MasterID:     m.MasterID,
		MasterName:   m.MasterName,
		Participants: participants,
	}
}

// newShotToModel converts a domain.NewShot to ShotModel (GORM)
func newShotToModel(s domain.NewShot) ShotModel {
	return ShotModel{
		CreatedAt:   s.CreatedAt.UTC(),
		CreatedByID: s.CreatedByID,
		MasterID:    s.MasterID,
		MasterName:  s.MasterName,
		ShotDate:    s.Date,
	}
}
