package storage

import "time"

// ShotModel is the GORM model for shots table
type ShotModel struct {
	Attendance  []AttendanceModel `gorm:"foreignKey:ShotID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time         `gorm:"not null"`
	CreatedByID string            `gorm:"not null"`
	ID          int64             `gorm:"primaryKey;autoIncrement"`
	MasterID    string            `gorm:"not null"`
	MasterName  string            `gorm:"not null"`
	ShotDate    string            `gorm:"not null;index:idx_shots_date"`
}

// TableName specifies the table name for GORM
func (ShotModel) TableName() string { return "shots" }

// AttendanceModel is the GORM model for attendance table
type AttendanceModel struct {
	PlayerID   string `gorm:"primaryKey;index:idx_attendance_player"`
	PlayerName string `gorm:"not null"`
	ShotID     int64  `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the table name for GORM
func (AttendanceModel) TableName() string { return "attendance" }

// summaryRow is the scan target of the attendance summary query
type summaryRow struct {
	LastDate      string
	ParticipantID string
	SessionCount  int
}

// latestRow is the scan target of the last played query
type latestRow struct {
	PlayerID   string
	PlayerName string
	ShotDate   string
}

// countRow is the scan target of the recent count query
type countRow struct {
	PlayerID     string
	SessionCount int
}
