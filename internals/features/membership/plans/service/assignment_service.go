// file: internals/features/membership/plans/service/assignment_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gymku_backend/internals/features/membership/plans/model"
)

/* =========================
   Store contracts
   ========================= */

type AssignmentStore interface {
	// nil, nil kalau tidak ada assignment dengan start <= at < end.
	ActiveByStudent(ctx context.Context, studentID uuid.UUID, at time.Time) (*model.MembershipPlanAssignmentModel, error)
	Create(ctx context.Context, asg *model.MembershipPlanAssignmentModel) error
	Save(ctx context.Context, asg *model.MembershipPlanAssignmentModel) error
}

type PlanStore interface {
	// Hanya plan yang belum soft-delete; assign ke plan terhapus = 404.
	ByID(ctx context.Context, planID uuid.UUID) (*model.MembershipPlanModel, error)
}

type StudentDirectory interface {
	Exists(ctx context.Context, studentID uuid.UUID) (bool, error)
}

// Diimplementasikan oleh commitment service.
type QuotaResetter interface {
	ResetIfExceeds(ctx context.Context, studentID uuid.UUID, newMaxDays int) error
}

// Opsional; nil = tidak bikin invoice.
type InvoiceCreator interface {
	CreateInvoice(ctx context.Context, studentID uuid.UUID, plan *model.MembershipPlanModel) (string, error)
}

/* =========================
   Service
   ========================= */

type AssignmentService struct {
	Assignments AssignmentStore
	Plans       PlanStore
	Students    StudentDirectory
	Quota       QuotaResetter
	Invoices    InvoiceCreator
	Now         func() time.Time
}

func (s *AssignmentService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type AssignResult struct {
	Assignment *model.MembershipPlanAssignmentModel
	InvoiceURL string
}

// Assign memasang plan baru untuk student mulai startDate.
// Kalau startDate jatuh di dalam range assignment aktif, assignment lama
// dipotong supaya berakhir tepat di startDate, dan SISA durasinya dibawa
// jadi durasi assignment baru (bukan durasi nominal plan). Setelah itu
// kuota dievaluasi ulang lewat ResetIfExceeds.
func (s *AssignmentService) Assign(ctx context.Context, studentID, planID uuid.UUID, startDate time.Time) (*AssignResult, error) {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())

	ok, err := s.Students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
	}

	plan, err := s.Plans.ByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Plan tidak ditemukan")
	}

	duration := plan.MembershipPlanDurationDays

	cur, err := s.Assignments.ActiveByStudent(ctx, studentID, s.now())
	if err != nil {
		return nil, err
	}
	if cur != nil && !start.Before(cur.MembershipPlanAssignmentStartDate) && start.Before(cur.EndDate()) {
		// Carryover: sisa hari assignment lama jadi durasi yang baru.
		remaining := daysBetween(start, cur.EndDate())
		cur.MembershipPlanAssignmentDurationDays = daysBetween(cur.MembershipPlanAssignmentStartDate, start)
		if err := s.Assignments.Save(ctx, cur); err != nil {
			return nil, err
		}
		duration = remaining
	}

	asg := &model.MembershipPlanAssignmentModel{
		MembershipPlanAssignmentStudentID:    studentID,
		MembershipPlanAssignmentPlanID:       planID,
		MembershipPlanAssignmentStartDate:    start,
		MembershipPlanAssignmentDurationDays: duration,
	}
	if err := s.Assignments.Create(ctx, asg); err != nil {
		return nil, err
	}

	if err := s.Quota.ResetIfExceeds(ctx, studentID, plan.MembershipPlanMaxDays); err != nil {
		return nil, err
	}

	res := &AssignResult{Assignment: asg}
	if s.Invoices != nil && plan.MembershipPlanPrice > 0 {
		// Best effort: gagal bikin invoice tidak membatalkan assignment.
		url, err := s.Invoices.CreateInvoice(ctx, studentID, plan)
		if err != nil {
			log.Printf("[WARN] gagal membuat invoice plan %s untuk student %s: %v", planID, studentID, err)
		} else {
			res.InvoiceURL = url
		}
	}
	return res, nil
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
