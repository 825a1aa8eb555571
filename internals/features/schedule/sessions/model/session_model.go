package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSessionModel = occurrence yang sudah dimaterialisasi (punya override).
// Occurrence virtual tidak pernah disimpan; baris di tabel ini hanya ada
// kalau occurrence pernah disentuh (catatan / roster).
type ClassSessionModel struct {
	ClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`

	// Canonical id 4 bagian: <slug>__<YYYY-MM-DD>__<HH:MM>__<trainer_id>.
	// Harus identik dengan id occurrence virtual supaya merge-by-key jalan.
	ClassSessionCanonicalID string `gorm:"uniqueIndex;not null;column:class_session_canonical_id" json:"class_session_canonical_id"`

	ClassSessionSeriesID  uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_series_id"  json:"class_session_series_id"`
	ClassSessionTrainerID uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_trainer_id" json:"class_session_trainer_id"`

	ClassSessionName    string    `gorm:"not null;column:class_session_name"          json:"class_session_name"`
	ClassSessionStartAt time.Time `gorm:"not null;index;column:class_session_start_at" json:"class_session_start_at"`
	ClassSessionEndAt   time.Time `gorm:"not null;column:class_session_end_at"         json:"class_session_end_at"`

	ClassSessionNotes *string `gorm:"column:class_session_notes" json:"class_session_notes,omitempty"`

	// Sekali true tidak pernah di-clear lagi.
	ClassSessionIsOverridden bool `gorm:"not null;default:false;column:class_session_is_overridden" json:"class_session_is_overridden"`

	ClassSessionCreatedAt time.Time      `gorm:"column:class_session_created_at;autoCreateTime" json:"class_session_created_at"`
	ClassSessionUpdatedAt *time.Time     `gorm:"column:class_session_updated_at;autoUpdateTime" json:"class_session_updated_at,omitempty"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index"          json:"class_session_deleted_at,omitempty"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }
