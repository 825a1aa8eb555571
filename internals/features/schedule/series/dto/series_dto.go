// file: internals/features/schedule/series/dto/series_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gymku_backend/internals/features/schedule/series/model"
)

var validate = validator.New()

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateClassSeriesRequest struct {
	TrainerID   uuid.UUID `json:"class_series_trainer_id"    validate:"required"`
	Name        string    `json:"class_series_name"          validate:"required,max=120"`
	DayOfWeek   *int      `json:"class_series_day_of_week"   validate:"required,min=0,max=6"`
	StartTime   string    `json:"class_series_start_time"    validate:"required,datetime=15:04"`
	DurationMin int       `json:"class_series_duration_min"  validate:"required,min=15,max=480"`

	// Kosong = berlaku sekarang.
	EffectiveFrom *time.Time `json:"class_series_effective_from" validate:"omitempty"`
}

func (r CreateClassSeriesRequest) Validate() error { return validate.Struct(r) }

func (r CreateClassSeriesRequest) ToModel(now time.Time) model.ClassSeriesModel {
	eff := now
	if r.EffectiveFrom != nil {
		eff = *r.EffectiveFrom
	}
	return model.ClassSeriesModel{
		ClassSeriesTrainerID:     r.TrainerID,
		ClassSeriesName:          r.Name,
		ClassSeriesDayOfWeek:     *r.DayOfWeek,
		ClassSeriesStartTime:     r.StartTime,
		ClassSeriesDurationMin:   r.DurationMin,
		ClassSeriesEffectiveFrom: eff,
	}
}

// Update = versi baru secara logis; field identitas tidak boleh berubah.
type UpdateClassSeriesRequest struct {
	Name          *string    `json:"class_series_name"           validate:"omitempty,max=120"`
	StartTime     *string    `json:"class_series_start_time"     validate:"omitempty,datetime=15:04"`
	DurationMin   *int       `json:"class_series_duration_min"   validate:"omitempty,min=15,max=480"`
	EffectiveFrom *time.Time `json:"class_series_effective_from" validate:"omitempty"`
}

func (r UpdateClassSeriesRequest) Validate() error { return validate.Struct(r) }

func (r UpdateClassSeriesRequest) Apply(m *model.ClassSeriesModel) {
	if r.Name != nil {
		m.ClassSeriesName = *r.Name
	}
	if r.StartTime != nil {
		m.ClassSeriesStartTime = *r.StartTime
	}
	if r.DurationMin != nil {
		m.ClassSeriesDurationMin = *r.DurationMin
	}
	if r.EffectiveFrom != nil {
		m.ClassSeriesEffectiveFrom = *r.EffectiveFrom
	}
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type ClassSeriesResponse struct {
	ID            uuid.UUID  `json:"class_series_id"`
	TrainerID     uuid.UUID  `json:"class_series_trainer_id"`
	Name          string     `json:"class_series_name"`
	DayOfWeek     int        `json:"class_series_day_of_week"`
	StartTime     string     `json:"class_series_start_time"`
	DurationMin   int        `json:"class_series_duration_min"`
	EffectiveFrom time.Time  `json:"class_series_effective_from"`
	CreatedAt     time.Time  `json:"class_series_created_at"`
	UpdatedAt     *time.Time `json:"class_series_updated_at,omitempty"`
}

func FromModel(m model.ClassSeriesModel) ClassSeriesResponse {
	return ClassSeriesResponse{
		ID:            m.ClassSeriesID,
		TrainerID:     m.ClassSeriesTrainerID,
		Name:          m.ClassSeriesName,
		DayOfWeek:     m.ClassSeriesDayOfWeek,
		StartTime:     m.ClassSeriesStartTime,
		DurationMin:   m.ClassSeriesDurationMin,
		EffectiveFrom: m.ClassSeriesEffectiveFrom,
		CreatedAt:     m.ClassSeriesCreatedAt,
		UpdatedAt:     m.ClassSeriesUpdatedAt,
	}
}

func FromModels(ms []model.ClassSeriesModel) []ClassSeriesResponse {
	out := make([]ClassSeriesResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
