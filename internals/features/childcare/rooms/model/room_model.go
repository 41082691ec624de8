package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RoomModel struct {
	RoomID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:room_id" json:"room_id"`

	RoomName     string `gorm:"uniqueIndex;not null;column:room_name"  json:"room_name"`
	RoomAgeGroup string `gorm:"not null;column:room_age_group"         json:"room_age_group"`
	RoomCapacity int    `gorm:"not null;default:0;column:room_capacity" json:"room_capacity"`
	RoomIsActive bool   `gorm:"not null;default:true;column:room_is_active" json:"room_is_active"`

	RoomCreatedAt time.Time      `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
	RoomUpdatedAt *time.Time     `gorm:"column:room_updated_at;autoUpdateTime" json:"room_updated_at,omitempty"`
	RoomDeletedAt gorm.DeletedAt `gorm:"column:room_deleted_at;index"          json:"room_deleted_at,omitempty"`
}

func (RoomModel) TableName() string { return "rooms" }
