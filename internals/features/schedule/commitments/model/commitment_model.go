package model

import (
	"time"

	"github.com/google/uuid"
)

// Status kehadiran pada sebuah series.
const (
	CommitmentStatusAttending    = "ATTENDING"
	CommitmentStatusNotAttending = "NOT_ATTENDING"
	CommitmentStatusTentative    = "TENTATIVE"
)

func IsValidCommitmentStatus(s string) bool {
	switch s {
	case CommitmentStatusAttending, CommitmentStatusNotAttending, CommitmentStatusTentative:
		return true
	}
	return false
}

// ClassCommitmentModel = log append-only. Baris tidak pernah di-update
// atau di-delete; "mengubah" commitment = insert baris baru dengan
// effective_from lebih baru. Status yang berlaku pada waktu T adalah baris
// dengan effective_from terbesar yang <= T; default NOT_ATTENDING.
type ClassCommitmentModel struct {
	ClassCommitmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_commitment_id" json:"class_commitment_id"`

	ClassCommitmentStudentID uuid.UUID `gorm:"type:uuid;not null;index:idx_class_commitments_student_series,priority:1;column:class_commitment_student_id" json:"class_commitment_student_id"`
	ClassCommitmentSeriesID  uuid.UUID `gorm:"type:uuid;not null;index:idx_class_commitments_student_series,priority:2;column:class_commitment_series_id"  json:"class_commitment_series_id"`

	ClassCommitmentStatus        string    `gorm:"type:varchar(16);not null;column:class_commitment_status"  json:"class_commitment_status"`
	ClassCommitmentEffectiveFrom time.Time `gorm:"not null;index;column:class_commitment_effective_from"     json:"class_commitment_effective_from"`

	ClassCommitmentCreatedAt time.Time `gorm:"column:class_commitment_created_at;autoCreateTime" json:"class_commitment_created_at"`
}

func (ClassCommitmentModel) TableName() string { return "class_commitments" }
