// file: internals/features/membership/plans/route/plan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	planController "gymku_backend/internals/features/membership/plans/controller"
)

// User routes: lihat katalog plan.
func PlanUserRoutes(r fiber.Router, ctl *planController.PlanController) {
	plans := r.Group("/plans")
	plans.Get("/", ctl.List)       // GET /api/u/plans
	plans.Get("/:id", ctl.Detail)  // GET /api/u/plans/:id
}

/*
Admin routes: assign plan ke student (dengan carryover + reset kuota).
*/
func PlanAdminRoutes(r fiber.Router, ctl *planController.PlanController) {
	r.Post("/students/:studentId/plan", ctl.Assign) // POST /api/a/students/:studentId/plan
}
