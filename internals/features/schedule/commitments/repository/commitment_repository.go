// file: internals/features/schedule/commitments/repository/commitment_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/schedule/commitments/model"
	"gymku_backend/internals/features/schedule/commitments/service"
)

// CommitmentRepository implement service.CommitmentStore + service.Atomic.
// Log commitment insert-only: tidak ada Update/Delete di sini, sengaja.
type CommitmentRepository struct {
	DB *gorm.DB
}

func NewCommitmentRepository(db *gorm.DB) *CommitmentRepository {
	return &CommitmentRepository{DB: db}
}

func (r *CommitmentRepository) Append(ctx context.Context, rec *model.ClassCommitmentModel) error {
	return r.DB.WithContext(ctx).Create(rec).Error
}

func (r *CommitmentRepository) ByStudent(ctx context.Context, studentID uuid.UUID) ([]model.ClassCommitmentModel, error) {
	var rows []model.ClassCommitmentModel
	err := r.DB.WithContext(ctx).
		Where("class_commitment_student_id = ?", studentID).
		Find(&rows).Error
	return rows, err
}

func (r *CommitmentRepository) ByStudentSeriesUntil(ctx context.Context, studentID, seriesID uuid.UUID, until time.Time) ([]model.ClassCommitmentModel, error) {
	var rows []model.ClassCommitmentModel
	err := r.DB.WithContext(ctx).
		Where("class_commitment_student_id = ?", studentID).
		Where("class_commitment_series_id = ?", seriesID).
		Where("class_commitment_effective_from <= ?", until).
		Order("class_commitment_effective_from DESC").
		Find(&rows).Error
	return rows, err
}

func (r *CommitmentRepository) BySeries(ctx context.Context, seriesID uuid.UUID) ([]model.ClassCommitmentModel, error) {
	var rows []model.ClassCommitmentModel
	err := r.DB.WithContext(ctx).
		Where("class_commitment_series_id = ?", seriesID).
		Find(&rows).Error
	return rows, err
}

// InTx menjalankan fn dengan store yang terikat ke transaction; validasi
// kuota + append jadi atomik per request.
func (r *CommitmentRepository) InTx(ctx context.Context, fn func(store service.CommitmentStore) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CommitmentRepository{DB: tx})
	})
}
