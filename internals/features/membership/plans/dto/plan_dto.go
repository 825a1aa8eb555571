// file: internals/features/membership/plans/dto/plan_dto.go
package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"gymku_backend/internals/features/membership/plans/model"
)

var validate = validator.New()

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type AssignPlanRequest struct {
	PlanID uuid.UUID `json:"membership_plan_id" validate:"required"`

	// "YYYY-MM-DD"; kosong = mulai hari ini.
	StartDate string `json:"membership_plan_assignment_start_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r AssignPlanRequest) Validate() error { return validate.Struct(r) }

func (r AssignPlanRequest) ResolveStartDate(now time.Time) time.Time {
	if r.StartDate == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	d, _ := time.Parse("2006-01-02", r.StartDate) // sudah lolos validasi format
	return d
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

type PlanResponse struct {
	ID           uuid.UUID `json:"membership_plan_id"`
	Name         string    `json:"membership_plan_name"`
	Slug         string    `json:"membership_plan_slug"`
	MaxDays      int       `json:"membership_plan_max_days"`
	DurationDays int       `json:"membership_plan_duration_days"`
	Price        int64     `json:"membership_plan_price"`
	Perks        []string  `json:"membership_plan_perks,omitempty"`
}

func FromPlanModel(m model.MembershipPlanModel) PlanResponse {
	return PlanResponse{
		ID:           m.MembershipPlanID,
		Name:         m.MembershipPlanName,
		Slug:         m.MembershipPlanSlug,
		MaxDays:      m.MembershipPlanMaxDays,
		DurationDays: m.MembershipPlanDurationDays,
		Price:        m.MembershipPlanPrice,
		Perks:        m.MembershipPlanPerks,
	}
}

func FromPlanModels(ms []model.MembershipPlanModel) []PlanResponse {
	out := make([]PlanResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPlanModel(m))
	}
	return out
}

type PlanAssignmentResponse struct {
	ID           uuid.UUID `json:"membership_plan_assignment_id"`
	StudentID    uuid.UUID `json:"membership_plan_assignment_student_id"`
	PlanID       uuid.UUID `json:"membership_plan_assignment_plan_id"`
	StartDate    time.Time `json:"membership_plan_assignment_start_date"`
	DurationDays int       `json:"membership_plan_assignment_duration_days"`
	EndDate      time.Time `json:"membership_plan_assignment_end_date"`
	InvoiceURL   string    `json:"invoice_url,omitempty"`
}

func FromAssignmentModel(m model.MembershipPlanAssignmentModel, invoiceURL string) PlanAssignmentResponse {
	return PlanAssignmentResponse{
		ID:           m.MembershipPlanAssignmentID,
		StudentID:    m.MembershipPlanAssignmentStudentID,
		PlanID:       m.MembershipPlanAssignmentPlanID,
		StartDate:    m.MembershipPlanAssignmentStartDate,
		DurationDays: m.MembershipPlanAssignmentDurationDays,
		EndDate:      m.EndDate(),
		InvoiceURL:   invoiceURL,
	}
}
