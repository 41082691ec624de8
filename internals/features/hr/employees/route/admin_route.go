package route

import (
	employeeController "daycareku_backend/internals/features/hr/employees/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD pegawai
Mount contoh: EmployeeAdminRoutes(app.Group("/admin"), db)
*/
func EmployeeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := employeeController.NewEmployeeController(db)
	employees := r.Group("/employees")
	employees.Post("/", ctl.CreateEmployee)      // POST   /admin/employees
	employees.Get("/", ctl.ListEmployees)        // GET    /admin/employees?role=&active=&search=
	employees.Get("/:id", ctl.GetEmployee)       // GET    /admin/employees/:id
	employees.Put("/:id", ctl.UpdateEmployee)    // PUT    /admin/employees/:id
	employees.Delete("/:id", ctl.DeleteEmployee) // DELETE /admin/employees/:id (soft delete)
}
