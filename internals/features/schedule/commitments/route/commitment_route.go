// file: internals/features/schedule/commitments/route/commitment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	commitmentController "gymku_backend/internals/features/schedule/commitments/controller"
	"gymku_backend/internals/middlewares"
)

// User routes: student mengelola commitment-nya sendiri (id dari token).
func CommitmentUserRoutes(r fiber.Router, ctl *commitmentController.CommitmentController) {
	com := r.Group("/commitments")
	com.Get("/:seriesId/status", ctl.GetStatus)  // GET /api/u/commitments/:seriesId/status?at=
	com.Get("/:seriesId/history", ctl.History)   // GET /api/u/commitments/:seriesId/history
	com.Put("/", middlewares.CommitmentRateLimiter(), ctl.UpdateBulk)      // PUT /api/u/commitments (bulk)
	com.Put("/:seriesId", middlewares.CommitmentRateLimiter(), ctl.UpdateSingle) // PUT /api/u/commitments/:seriesId
}

// Admin routes: atas nama student manapun.
func CommitmentAdminRoutes(r fiber.Router, ctl *commitmentController.CommitmentController) {
	com := r.Group("/students/:studentId/commitments")
	com.Get("/:seriesId/status", ctl.GetStatus)
	com.Get("/:seriesId/history", ctl.History)
	com.Put("/", ctl.UpdateBulk)
	com.Put("/:seriesId", ctl.UpdateSingle)
}
