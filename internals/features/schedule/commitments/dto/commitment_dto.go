// file: internals/features/schedule/commitments/dto/commitment_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gymku_backend/internals/features/schedule/commitments/model"
)

var validate = validator.New()

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type UpdateCommitmentRequest struct {
	Status string `json:"class_commitment_status" validate:"required,oneof=ATTENDING NOT_ATTENDING TENTATIVE"`

	// Kosong = berlaku sekarang.
	EffectiveFrom *time.Time `json:"class_commitment_effective_from" validate:"omitempty"`
}

func (r UpdateCommitmentRequest) Validate() error { return validate.Struct(r) }

type BulkUpdateCommitmentRequest struct {
	SeriesIDs []uuid.UUID `json:"class_series_ids"        validate:"required,min=1,dive,required"`
	Status    string      `json:"class_commitment_status" validate:"required,oneof=ATTENDING NOT_ATTENDING TENTATIVE"`

	EffectiveFrom *time.Time `json:"class_commitment_effective_from" validate:"omitempty"`
}

func (r BulkUpdateCommitmentRequest) Validate() error { return validate.Struct(r) }

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type CommitmentResponse struct {
	ID            uuid.UUID `json:"class_commitment_id"`
	StudentID     uuid.UUID `json:"class_commitment_student_id"`
	SeriesID      uuid.UUID `json:"class_commitment_series_id"`
	Status        string    `json:"class_commitment_status"`
	EffectiveFrom time.Time `json:"class_commitment_effective_from"`
	CreatedAt     time.Time `json:"class_commitment_created_at"`
}

func FromModel(m model.ClassCommitmentModel) CommitmentResponse {
	return CommitmentResponse{
		ID:            m.ClassCommitmentID,
		StudentID:     m.ClassCommitmentStudentID,
		SeriesID:      m.ClassCommitmentSeriesID,
		Status:        m.ClassCommitmentStatus,
		EffectiveFrom: m.ClassCommitmentEffectiveFrom,
		CreatedAt:     m.ClassCommitmentCreatedAt,
	}
}

func FromModels(ms []model.ClassCommitmentModel) []CommitmentResponse {
	out := make([]CommitmentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
