package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/users/students/model"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) Exists(ctx context.Context, studentID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("student_id = ?", studentID).
		Count(&count).Error
	return count > 0, err
}
