// internals/features/childcare/rooms/service/room_lister_service.go
package service

import (
	"context"

	"gorm.io/gorm"

	roomModel "daycareku_backend/internals/features/childcare/rooms/model"
	ratioService "daycareku_backend/internals/features/compliance/ratio/service"
)

// RoomLister menyuplai dimensi by_room ke snapshot recorder.
type RoomLister struct {
	DB *gorm.DB
}

func NewRoomLister(db *gorm.DB) *RoomLister { return &RoomLister{DB: db} }

func (s *RoomLister) ActiveRooms(ctx context.Context) ([]ratioService.RoomInfo, error) {
	var rows []roomModel.RoomModel
	err := s.DB.WithContext(ctx).
		Where("room_is_active IS TRUE").
		Order("room_name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]ratioService.RoomInfo, 0, len(rows))
	for _, r := range rows {
		g, err := ratioService.ParseAgeGroup(r.RoomAgeGroup)
		if err != nil {
			// ruang dengan kelompok usia rusak dilewati, jangan gagalkan pass
			continue
		}
		out = append(out, ratioService.RoomInfo{Name: r.RoomName, AgeGroup: g})
	}
	return out, nil
}
