// file: internals/features/schedule/series/repository/series_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymku_backend/internals/features/schedule/series/model"
)

type SeriesRepository struct {
	DB *gorm.DB
}

func NewSeriesRepository(db *gorm.DB) *SeriesRepository {
	return &SeriesRepository{DB: db}
}

// ActiveByWeekday: semua versi template untuk weekday tsb yang sudah
// berlaku pada effectiveAt. Pemilihan versi terbaru per trainer ada di
// service, bukan di query.
func (r *SeriesRepository) ActiveByWeekday(ctx context.Context, weekday int, effectiveAt time.Time) ([]model.ClassSeriesModel, error) {
	var rows []model.ClassSeriesModel
	err := r.DB.WithContext(ctx).
		Where("class_series_day_of_week = ?", weekday).
		Where("class_series_effective_from <= ?", effectiveAt).
		Find(&rows).Error
	return rows, err
}

func (r *SeriesRepository) ActiveByTrainer(ctx context.Context, trainerID uuid.UUID) ([]model.ClassSeriesModel, error) {
	var rows []model.ClassSeriesModel
	err := r.DB.WithContext(ctx).
		Where("class_series_trainer_id = ?", trainerID).
		Find(&rows).Error
	return rows, err
}

func (r *SeriesRepository) ByID(ctx context.Context, id uuid.UUID) (*model.ClassSeriesModel, error) {
	var row model.ClassSeriesModel
	err := r.DB.WithContext(ctx).
		Where("class_series_id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Series tidak ditemukan")
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// WeekdayByID = metadata fetch eksplisit series id → weekday; dipakai
// quota validator supaya tidak menebak weekday dari payload.
func (r *SeriesRepository) WeekdayByID(ctx context.Context, seriesID uuid.UUID) (int, error) {
	row, err := r.ByID(ctx, seriesID)
	if err != nil {
		return 0, err
	}
	return row.ClassSeriesDayOfWeek, nil
}

/* =========================
   CRUD (admin)
   ========================= */

func (r *SeriesRepository) Create(ctx context.Context, row *model.ClassSeriesModel) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

func (r *SeriesRepository) Save(ctx context.Context, row *model.ClassSeriesModel) error {
	return r.DB.WithContext(ctx).Save(row).Error
}

func (r *SeriesRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	res := r.DB.WithContext(ctx).
		Where("class_series_id = ?", id).
		Delete(&model.ClassSeriesModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Series tidak ditemukan")
	}
	return nil
}

func (r *SeriesRepository) List(ctx context.Context, trainerID *uuid.UUID, weekday *int, offset, limit int) ([]model.ClassSeriesModel, int64, error) {
	q := r.DB.WithContext(ctx).Model(&model.ClassSeriesModel{})
	if trainerID != nil {
		q = q.Where("class_series_trainer_id = ?", *trainerID)
	}
	if weekday != nil {
		q = q.Where("class_series_day_of_week = ?", *weekday)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.ClassSeriesModel
	err := q.Order("class_series_day_of_week ASC, class_series_start_time ASC").
		Offset(offset).Limit(limit).
		Find(&rows).Error
	return rows, total, err
}
