package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipPlanAssignmentModel = plan yang sedang/pernah dipegang student.
// Aktif jika start <= today < start + duration (end eksklusif). Maksimal
// satu assignment aktif per student; assignment baru yang mulai di tengah
// range lama memotong durasi yang lama.
type MembershipPlanAssignmentModel struct {
	MembershipPlanAssignmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:membership_plan_assignment_id" json:"membership_plan_assignment_id"`

	MembershipPlanAssignmentStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:membership_plan_assignment_student_id" json:"membership_plan_assignment_student_id"`
	MembershipPlanAssignmentPlanID    uuid.UUID `gorm:"type:uuid;not null;index;column:membership_plan_assignment_plan_id"    json:"membership_plan_assignment_plan_id"`

	MembershipPlanAssignmentStartDate    time.Time `gorm:"type:date;not null;column:membership_plan_assignment_start_date" json:"membership_plan_assignment_start_date"`
	MembershipPlanAssignmentDurationDays int       `gorm:"not null;column:membership_plan_assignment_duration_days"        json:"membership_plan_assignment_duration_days"`

	MembershipPlanAssignmentCreatedAt time.Time      `gorm:"column:membership_plan_assignment_created_at;autoCreateTime" json:"membership_plan_assignment_created_at"`
	MembershipPlanAssignmentUpdatedAt *time.Time     `gorm:"column:membership_plan_assignment_updated_at;autoUpdateTime" json:"membership_plan_assignment_updated_at,omitempty"`
	MembershipPlanAssignmentDeletedAt gorm.DeletedAt `gorm:"column:membership_plan_assignment_deleted_at;index"          json:"membership_plan_assignment_deleted_at,omitempty"`
}

func (MembershipPlanAssignmentModel) TableName() string { return "membership_plan_assignments" }

// EndDate = start + duration (eksklusif).
func (m MembershipPlanAssignmentModel) EndDate() time.Time {
	return m.MembershipPlanAssignmentStartDate.AddDate(0, 0, m.MembershipPlanAssignmentDurationDays)
}

// ActiveAt cek start <= at < end.
func (m MembershipPlanAssignmentModel) ActiveAt(at time.Time) bool {
	return !at.Before(m.MembershipPlanAssignmentStartDate) && at.Before(m.EndDate())
}
