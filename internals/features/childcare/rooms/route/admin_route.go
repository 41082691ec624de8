package route

import (
	roomController "daycareku_backend/internals/features/childcare/rooms/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/*
Admin routes: full CRUD ruang
Mount contoh: RoomAdminRoutes(app.Group("/admin"), db)
*/
func RoomAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := roomController.NewRoomController(db)
	rooms := r.Group("/rooms")
	rooms.Post("/", ctl.CreateRoom)      // POST   /admin/rooms
	rooms.Get("/", ctl.ListRooms)        // GET    /admin/rooms
	rooms.Put("/:id", ctl.UpdateRoom)    // PUT    /admin/rooms/:id
	rooms.Delete("/:id", ctl.DeleteRoom) // DELETE /admin/rooms/:id (soft delete)
}
