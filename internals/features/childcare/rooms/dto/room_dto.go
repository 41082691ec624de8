package dto

import (
	"time"

	"github.com/google/uuid"

	m "daycareku_backend/internals/features/childcare/rooms/model"
)

/* ===================== REQUESTS ===================== */

type CreateRoomRequest struct {
	RoomName     string `json:"room_name" validate:"required,min=1,max=100"`
	RoomAgeGroup string `json:"room_age_group" validate:"required,oneof=infant toddler preschool school_age"`
	RoomCapacity int    `json:"room_capacity" validate:"gte=0,lte=200"`
	RoomIsActive *bool  `json:"room_is_active" validate:"omitempty"`
}

func (r CreateRoomRequest) ToModel() *m.RoomModel {
	active := true
	if r.RoomIsActive != nil {
		active = *r.RoomIsActive
	}
	return &m.RoomModel{
		RoomName:     r.RoomName,
		RoomAgeGroup: r.RoomAgeGroup,
		RoomCapacity: r.RoomCapacity,
		RoomIsActive: active,
	}
}

type UpdateRoomRequest struct {
	RoomName     *string `json:"room_name" validate:"omitempty,min=1,max=100"`
	RoomAgeGroup *string `json:"room_age_group" validate:"omitempty,oneof=infant toddler preschool school_age"`
	RoomCapacity *int    `json:"room_capacity" validate:"omitempty,gte=0,lte=200"`
	RoomIsActive *bool   `json:"room_is_active" validate:"omitempty"`
}

func (r UpdateRoomRequest) Apply(row *m.RoomModel) {
	if r.RoomName != nil {
		row.RoomName = *r.RoomName
	}
	if r.RoomAgeGroup != nil {
		row.RoomAgeGroup = *r.RoomAgeGroup
	}
	if r.RoomCapacity != nil {
		row.RoomCapacity = *r.RoomCapacity
	}
	if r.RoomIsActive != nil {
		row.RoomIsActive = *r.RoomIsActive
	}
}

/* ===================== RESPONSES ===================== */

type RoomResponse struct {
	RoomID       uuid.UUID  `json:"room_id"`
	RoomName     string     `json:"room_name"`
	RoomAgeGroup string     `json:"room_age_group"`
	RoomCapacity int        `json:"room_capacity"`
	RoomIsActive bool       `json:"room_is_active"`
	RoomCreated  time.Time  `json:"room_created_at"`
	RoomUpdated  *time.Time `json:"room_updated_at,omitempty"`
}

func FromModel(row *m.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:       row.RoomID,
		RoomName:     row.RoomName,
		RoomAgeGroup: row.RoomAgeGroup,
		RoomCapacity: row.RoomCapacity,
		RoomIsActive: row.RoomIsActive,
		RoomCreated:  row.RoomCreatedAt,
		RoomUpdated:  row.RoomUpdatedAt,
	}
}
