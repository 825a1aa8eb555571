// file: internals/features/membership/plans/controller/plan_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "gymku_backend/internals/features/membership/plans/dto"
	"gymku_backend/internals/features/membership/plans/repository"
	"gymku_backend/internals/features/membership/plans/service"
	helper "gymku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type PlanController struct {
	Repo    *repository.PlanRepository
	Service *service.AssignmentService
}

func NewPlanController(repo *repository.PlanRepository, svc *service.AssignmentService) *PlanController {
	return &PlanController{Repo: repo, Service: svc}
}

/* =========================
   Read
   ========================= */

// GET /plans
func (ctl *PlanController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Repo.ListActive(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Daftar plan", d.FromPlanModels(rows),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}

// GET /plans/:id (termasuk soft-deleted, untuk audit kuota)
func (ctl *PlanController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Plan id tidak valid")
	}
	row, err := ctl.Repo.PlanByID(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if row == nil {
		return helper.Error(c, fiber.StatusNotFound, "Plan tidak ditemukan")
	}
	return helper.JsonOK(c, "Detail plan", d.FromPlanModel(*row))
}

/* =========================
   Assign (carryover + reset kuota)
   ========================= */

// POST /students/:studentId/plan
func (ctl *PlanController) Assign(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Student id tidak valid")
	}

	var req d.AssignPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ctl.Service.Assign(c.UserContext(), studentID, req.PlanID, req.ResolveStartDate(time.Now()))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Plan berhasil di-assign",
		d.FromAssignmentModel(*res.Assignment, res.InvoiceURL))
}
