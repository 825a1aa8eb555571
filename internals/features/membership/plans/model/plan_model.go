package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MembershipPlanModel = paket keanggotaan. Soft-delete tidak membatalkan
// assignment lama yang masih mereferensikan plan ini; kuota tetap dihitung
// dari max_days yang tersimpan.
type MembershipPlanModel struct {
	MembershipPlanID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:membership_plan_id" json:"membership_plan_id"`
	MembershipPlanName string    `gorm:"not null;column:membership_plan_name"                                     json:"membership_plan_name"`
	MembershipPlanSlug string    `gorm:"uniqueIndex;not null;column:membership_plan_slug"                         json:"membership_plan_slug"`

	// Maksimum jumlah HARI BERBEDA per minggu dengan commitment ATTENDING,
	// bukan maksimum jumlah series.
	MembershipPlanMaxDays int `gorm:"not null;column:membership_plan_max_days" json:"membership_plan_max_days"`

	// Durasi nominal assignment dalam hari.
	MembershipPlanDurationDays int `gorm:"not null;column:membership_plan_duration_days" json:"membership_plan_duration_days"`

	// Harga dalam rupiah; 0 = gratis, tidak bikin invoice.
	MembershipPlanPrice int64 `gorm:"not null;default:0;column:membership_plan_price" json:"membership_plan_price"`

	MembershipPlanPerks pq.StringArray `gorm:"type:text[];column:membership_plan_perks" json:"membership_plan_perks,omitempty"`
	MembershipPlanMeta  datatypes.JSON `gorm:"column:membership_plan_meta"              json:"membership_plan_meta,omitempty"`

	MembershipPlanCreatedAt time.Time      `gorm:"column:membership_plan_created_at;autoCreateTime" json:"membership_plan_created_at"`
	MembershipPlanUpdatedAt *time.Time     `gorm:"column:membership_plan_updated_at;autoUpdateTime" json:"membership_plan_updated_at,omitempty"`
	MembershipPlanDeletedAt gorm.DeletedAt `gorm:"column:membership_plan_deleted_at;index"          json:"membership_plan_deleted_at,omitempty"`
}

func (MembershipPlanModel) TableName() string { return "membership_plans" }
