package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassSeriesModel = definisi slot kelas mingguan (template).
// Satu baris = satu versi; versi yang dipakai generator adalah baris
// dengan class_series_effective_from paling baru yang <= instant evaluasi.
type ClassSeriesModel struct {
	ClassSeriesID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_series_id" json:"class_series_id"`
	ClassSeriesTrainerID uuid.UUID `gorm:"type:uuid;not null;index;column:class_series_trainer_id"               json:"class_series_trainer_id"`

	ClassSeriesName string `gorm:"not null;column:class_series_name" json:"class_series_name"`

	// 0=Minggu .. 6=Sabtu (selaras time.Weekday)
	ClassSeriesDayOfWeek int `gorm:"not null;index;column:class_series_day_of_week" json:"class_series_day_of_week"`

	// Jam mulai "HH:MM" (24 jam) + durasi menit; jam selesai diturunkan.
	ClassSeriesStartTime   string `gorm:"type:varchar(5);not null;column:class_series_start_time" json:"class_series_start_time"`
	ClassSeriesDurationMin int    `gorm:"not null;column:class_series_duration_min"               json:"class_series_duration_min"`

	ClassSeriesEffectiveFrom time.Time `gorm:"not null;index;column:class_series_effective_from" json:"class_series_effective_from"`

	ClassSeriesCreatedAt time.Time      `gorm:"column:class_series_created_at;autoCreateTime" json:"class_series_created_at"`
	ClassSeriesUpdatedAt *time.Time     `gorm:"column:class_series_updated_at;autoUpdateTime" json:"class_series_updated_at,omitempty"`
	ClassSeriesDeletedAt gorm.DeletedAt `gorm:"column:class_series_deleted_at;index"          json:"class_series_deleted_at,omitempty"`
}

func (ClassSeriesModel) TableName() string { return "class_series" }
