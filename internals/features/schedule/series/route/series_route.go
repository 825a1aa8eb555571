// file: internals/features/schedule/series/route/series_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	seriesController "gymku_backend/internals/features/schedule/series/controller"
)

/*
Admin routes: CRUD template kelas mingguan.
Mount contoh: SeriesAdminRoutes(app.Group("/api/a"), ctl)
*/
func SeriesAdminRoutes(r fiber.Router, ctl *seriesController.SeriesController) {
	series := r.Group("/class-series")
	series.Post("/", ctl.Create)      // POST   /api/a/class-series
	series.Put("/:id", ctl.Update)    // PUT    /api/a/class-series/:id
	series.Delete("/:id", ctl.Delete) // DELETE /api/a/class-series/:id (soft delete)
}

// User routes: read-only.
func SeriesUserRoutes(r fiber.Router, ctl *seriesController.SeriesController) {
	series := r.Group("/class-series")
	series.Get("/", ctl.List) // GET /api/u/class-series?trainer_id=&dow=
}
