package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"daycareku_backend/internals/features/childcare/rooms/dto"
	"daycareku_backend/internals/features/childcare/rooms/model"
	helper "daycareku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

var validate = validator.New()

/* ===================== CREATE ===================== */
// POST /admin/rooms
func (ctrl *RoomController) CreateRoom(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat ruang")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Ruang dibuat", dto.FromModel(row))
}

/* ===================== LIST ===================== */
// GET /admin/rooms?active=true
func (ctrl *RoomController) ListRooms(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.RoomModel{})
	if c.Query("active") == "true" {
		q = q.Where("room_is_active IS TRUE")
	}
	if g := c.Query("age_group"); g != "" {
		q = q.Where("room_age_group = ?", g)
	}

	var rows []model.RoomModel
	if err := q.Order("room_name").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar ruang")
	}

	items := make([]dto.RoomResponse, 0, len(rows))
	for i := range rows {
		items = append(items, dto.FromModel(&rows[i]))
	}
	return helper.Success(c, "OK", items)
}

/* ===================== UPDATE ===================== */
// PUT /admin/rooms/:id
func (ctrl *RoomController) UpdateRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID ruang tidak valid")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.RoomModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&row, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Ruang tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	req.Apply(&row)
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&row).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui ruang")
	}
	return helper.Success(c, "Ruang diperbarui", dto.FromModel(&row))
}

/* ===================== DELETE ===================== */
// DELETE /admin/rooms/:id (soft delete)
func (ctrl *RoomController) DeleteRoom(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID ruang tidak valid")
	}
	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.RoomModel{}, "room_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus ruang")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Ruang tidak ditemukan")
	}
	return helper.Success(c, "Ruang dihapus", nil)
}
