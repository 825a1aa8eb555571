// file: internals/features/membership/plans/repository/plan_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/membership/plans/model"
)

type PlanRepository struct {
	DB *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

/* =========================
   Plans
   ========================= */

// ByID hanya plan yang belum soft-delete (untuk assignment baru).
func (r *PlanRepository) ByID(ctx context.Context, planID uuid.UUID) (*model.MembershipPlanModel, error) {
	var row model.MembershipPlanModel
	err := r.DB.WithContext(ctx).
		Where("membership_plan_id = ?", planID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// PlanByID termasuk plan soft-deleted: assignment lama tetap butuh
// max_days-nya untuk hitung kuota.
func (r *PlanRepository) PlanByID(ctx context.Context, planID uuid.UUID) (*model.MembershipPlanModel, error) {
	var row model.MembershipPlanModel
	err := r.DB.WithContext(ctx).Unscoped().
		Where("membership_plan_id = ?", planID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *PlanRepository) ListActive(ctx context.Context, offset, limit int) ([]model.MembershipPlanModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.MembershipPlanModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.MembershipPlanModel
	err := q.Order("membership_plan_max_days ASC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

/* =========================
   Assignments
   ========================= */

// ActiveByStudent: assignment dengan start <= at < start + duration.
// End date dihitung dari kolom, jadi filter range dilakukan di memory
// setelah narrowing by start.
func (r *PlanRepository) ActiveByStudent(ctx context.Context, studentID uuid.UUID, at time.Time) (*model.MembershipPlanAssignmentModel, error) {
	var rows []model.MembershipPlanAssignmentModel
	err := r.DB.WithContext(ctx).
		Where("membership_plan_assignment_student_id = ?", studentID).
		Where("membership_plan_assignment_start_date <= ?", at).
		Order("membership_plan_assignment_start_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if rows[i].ActiveAt(at) {
			return &rows[i], nil
		}
	}
	return nil, nil
}

func (r *PlanRepository) Create(ctx context.Context, asg *model.MembershipPlanAssignmentModel) error {
	return r.DB.WithContext(ctx).Create(asg).Error
}

func (r *PlanRepository) Save(ctx context.Context, asg *model.MembershipPlanAssignmentModel) error {
	return r.DB.WithContext(ctx).Save(asg).Error
}

// ActiveAssignment dipakai quota validator (interface PlanDirectory).
func (r *PlanRepository) ActiveAssignment(ctx context.Context, studentID uuid.UUID, at time.Time) (*model.MembershipPlanAssignmentModel, error) {
	return r.ActiveByStudent(ctx, studentID, at)
}
