package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainerModel struct {
	TrainerID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:trainer_id" json:"trainer_id"`
	TrainerName  string    `gorm:"not null;column:trainer_name"                                     json:"trainer_name"`
	TrainerEmail string    `gorm:"uniqueIndex;not null;column:trainer_email"                        json:"trainer_email"`

	TrainerCreatedAt time.Time      `gorm:"column:trainer_created_at;autoCreateTime" json:"trainer_created_at"`
	TrainerUpdatedAt *time.Time     `gorm:"column:trainer_updated_at;autoUpdateTime" json:"trainer_updated_at,omitempty"`
	TrainerDeletedAt gorm.DeletedAt `gorm:"column:trainer_deleted_at;index"          json:"trainer_deleted_at,omitempty"`
}

func (TrainerModel) TableName() string { return "trainers" }
