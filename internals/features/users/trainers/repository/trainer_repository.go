package repository

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/users/trainers/model"
)

type TrainerRepository struct {
	DB *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) *TrainerRepository {
	return &TrainerRepository{DB: db}
}

// NameByID resolve trainer id → nama display (untuk response occurrence).
func (r *TrainerRepository) NameByID(ctx context.Context, trainerID uuid.UUID) (string, error) {
	var row model.TrainerModel
	err := r.DB.WithContext(ctx).
		Select("trainer_name").
		Where("trainer_id = ?", trainerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fiber.NewError(fiber.StatusNotFound, "Trainer tidak ditemukan")
	}
	if err != nil {
		return "", err
	}
	return row.TrainerName, nil
}
