// file: internals/features/schedule/commitments/controller/commitment_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	d "gymku_backend/internals/features/schedule/commitments/dto"
	"gymku_backend/internals/features/schedule/commitments/service"
	helper "gymku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type CommitmentController struct {
	Service *service.CommitmentService
}

func NewCommitmentController(svc *service.CommitmentService) *CommitmentController {
	return &CommitmentController{Service: svc}
}

// student id dari token (route member) atau :studentId (route admin).
func (ctl *CommitmentController) studentID(c *fiber.Ctx) (uuid.UUID, error) {
	if s := c.Params("studentId"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Student id tidak valid")
		}
		return id, nil
	}
	return helper.GetUserIDFromLocals(c)
}

/* =========================
   Read
   ========================= */

// GET /commitments/:seriesId/status?at=RFC3339
func (ctl *CommitmentController) GetStatus(c *fiber.Ctx) error {
	studentID, err := ctl.studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	seriesID, err := uuid.Parse(c.Params("seriesId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Series id tidak valid")
	}

	at := time.Now()
	if s := strings.TrimSpace(c.Query("at")); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "at invalid (RFC3339)")
		}
		at = parsed
	}

	status, err := ctl.Service.CurrentStatus(c.UserContext(), studentID, seriesID, at)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Status commitment", fiber.Map{
		"class_series_id":         seriesID,
		"class_commitment_status": status,
		"at":                      at,
	})
}

// GET /commitments/:seriesId/history
func (ctl *CommitmentController) History(c *fiber.Ctx) error {
	studentID, err := ctl.studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	seriesID, err := uuid.Parse(c.Params("seriesId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Series id tidak valid")
	}

	rows, err := ctl.Service.History(c.UserContext(), studentID, seriesID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Riwayat commitment", d.FromModels(rows))
}

/* =========================
   Write
   ========================= */

// PUT /commitments/:seriesId
func (ctl *CommitmentController) UpdateSingle(c *fiber.Ctx) error {
	studentID, err := ctl.studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	seriesID, err := uuid.Parse(c.Params("seriesId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Series id tidak valid")
	}

	var req d.UpdateCommitmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := ctl.Service.UpdateSingle(c.UserContext(), studentID, seriesID, req.Status, req.EffectiveFrom)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Commitment tersimpan", d.FromModel(*rec))
}

// PUT /commitments (bulk, all-or-nothing)
func (ctl *CommitmentController) UpdateBulk(c *fiber.Ctx) error {
	studentID, err := ctl.studentID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.BulkUpdateCommitmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	recs, err := ctl.Service.UpdateBulk(c.UserContext(), studentID, req.SeriesIDs, req.Status, req.EffectiveFrom)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Commitment batch tersimpan", d.FromModels(recs))
}
