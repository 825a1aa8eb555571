// file: internals/features/schedule/series/controller/series_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "gymku_backend/internals/features/schedule/series/dto"
	"gymku_backend/internals/features/schedule/series/repository"
	helper "gymku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SeriesController struct {
	Repo *repository.SeriesRepository
}

func NewSeriesController(db *gorm.DB) *SeriesController {
	return &SeriesController{Repo: repository.NewSeriesRepository(db)}
}

/* =========================
   Create
   ========================= */

func (ctl *SeriesController) Create(c *fiber.Ctx) error {
	var req d.CreateClassSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel(time.Now())
	if err := ctl.Repo.Create(c.UserContext(), &row); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Series berhasil dibuat", d.FromModel(row))
}

/* =========================
   Update (versi baru logis)
   ========================= */

func (ctl *SeriesController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Series id tidak valid")
	}

	var req d.UpdateClassSeriesRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := req.Validate(); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctl.Repo.ByID(c.UserContext(), id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	req.Apply(row)
	if err := ctl.Repo.Save(c.UserContext(), row); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Series berhasil diubah", d.FromModel(*row))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *SeriesController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Series id tidak valid")
	}
	if err := ctl.Repo.SoftDelete(c.UserContext(), id); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Series berhasil dihapus", fiber.Map{"class_series_id": id})
}

/* =========================
   List
   ========================= */

func (ctl *SeriesController) List(c *fiber.Ctx) error {
	var trainerID *uuid.UUID
	if s := c.Query("trainer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "trainer_id tidak valid")
		}
		trainerID = &id
	}

	var weekday *int
	if s := c.Query("dow"); s != "" {
		wd := c.QueryInt("dow", -1)
		if wd < 0 || wd > 6 {
			return helper.Error(c, fiber.StatusBadRequest, "dow harus 0..6")
		}
		weekday = &wd
	}

	paging := helper.ResolvePaging(c, 20, 100)
	rows, total, err := ctl.Repo.List(c.UserContext(), trainerID, weekday, paging.Offset, paging.Limit)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Daftar series", d.FromModels(rows),
		helper.BuildPaginationFromOffset(total, paging.Offset, paging.Limit))
}
