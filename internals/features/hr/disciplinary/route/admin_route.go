package route

import (
	disciplinaryController "daycareku_backend/internals/features/hr/disciplinary/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: catatan disiplin
Mount contoh: DisciplinaryAdminRoutes(app.Group("/admin"), db)
*/
func DisciplinaryAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := disciplinaryController.NewDisciplinaryController(db)
	actions := r.Group("/disciplinary-actions")
	actions.Post("/", ctl.CreateAction)      // POST   /admin/disciplinary-actions
	actions.Get("/", ctl.ListActions)        // GET    /admin/disciplinary-actions?employee_id=
	actions.Delete("/:id", ctl.DeleteAction) // DELETE /admin/disciplinary-actions/:id (soft delete)
}
