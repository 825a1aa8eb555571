// file: internals/features/schedule/sessions/controller/session_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	d "gymku_backend/internals/features/schedule/sessions/dto"
	"gymku_backend/internals/features/schedule/sessions/service"
	helper "gymku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SessionController struct {
	Service *service.OccurrenceService
}

func NewSessionController(svc *service.OccurrenceService) *SessionController {
	return &SessionController{Service: svc}
}

func parseDateParam(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "Tanggal kosong")
	}
	return time.Parse("2006-01-02", s)
}

/* =========================
   List occurrence (virtual + override)
   ========================= */

// GET /sessions?from=YYYY-MM-DD&to=YYYY-MM-DD
func (ctl *SessionController) List(c *fiber.Ctx) error {
	from, err := parseDateParam(c.Query("from"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "from invalid (YYYY-MM-DD)")
	}
	to, err := parseDateParam(c.Query("to"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "to invalid (YYYY-MM-DD)")
	}

	occs, err := ctl.Service.ListOccurrences(c.UserContext(), from, to)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Jadwal kelas", d.FromOccurrences(occs))
}

/* =========================
   Update notes
   ========================= */

// PUT /sessions/:id/notes
func (ctl *SessionController) UpdateNotes(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	var req d.UpdateSessionNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Service.UpdateNotes(c.UserContext(), sessionID, req.Notes)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Catatan session tersimpan", row)
}

/* =========================
   Replace roster
   ========================= */

// PUT /sessions/:id/roster
func (ctl *SessionController) ReplaceRoster(c *fiber.Ctx) error {
	sessionID := c.Params("id")

	var req d.ReplaceRosterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Service.ReplaceRoster(c.UserContext(), sessionID, req.ToEntries())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Roster session diganti", row)
}
