// file: internals/features/schedule/sessions/route/session_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	sessionController "gymku_backend/internals/features/schedule/sessions/controller"
)

// User routes: lihat jadwal (occurrence virtual + override).
func SessionUserRoutes(r fiber.Router, ctl *sessionController.SessionController) {
	sessions := r.Group("/sessions")
	sessions.Get("/", ctl.List) // GET /api/u/sessions?from=&to=
}

/*
Admin/trainer routes: write ke satu occurrence (materialize dulu).
*/
func SessionAdminRoutes(r fiber.Router, ctl *sessionController.SessionController) {
	sessions := r.Group("/sessions")
	sessions.Put("/:id/notes", ctl.UpdateNotes)    // PUT /api/a/sessions/:id/notes
	sessions.Put("/:id/roster", ctl.ReplaceRoster) // PUT /api/a/sessions/:id/roster
}
