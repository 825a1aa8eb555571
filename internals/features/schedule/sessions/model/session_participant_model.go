package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSessionParticipantModel = entri roster pada session yang sudah
// dimaterialisasi. Maksimal satu baris aktif per (session, student).
type ClassSessionParticipantModel struct {
	ClassSessionParticipantID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_participant_id" json:"class_session_participant_id"`

	ClassSessionParticipantSessionID uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_participant_session_id" json:"class_session_participant_session_id"`
	ClassSessionParticipantStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:class_session_participant_student_id" json:"class_session_participant_student_id"`

	ClassSessionParticipantIsPresent bool `gorm:"not null;default:false;column:class_session_participant_is_present" json:"class_session_participant_is_present"`

	ClassSessionParticipantCreatedAt time.Time      `gorm:"column:class_session_participant_created_at;autoCreateTime" json:"class_session_participant_created_at"`
	ClassSessionParticipantDeletedAt gorm.DeletedAt `gorm:"column:class_session_participant_deleted_at;index"          json:"class_session_participant_deleted_at,omitempty"`
}

func (ClassSessionParticipantModel) TableName() string { return "class_session_participants" }
