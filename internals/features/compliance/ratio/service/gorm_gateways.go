// internals/features/compliance/ratio/service/gorm_gateways.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"daycareku_backend/internals/constants"
	"daycareku_backend/internals/features/compliance/ratio/model"
)

/* ===================== SNAPSHOT STORE (GORM) ===================== */

type GormSnapshotStore struct {
	DB *gorm.DB
}

func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore { return &GormSnapshotStore{DB: db} }

func (s *GormSnapshotStore) Insert(ctx context.Context, snap *model.RatioSnapshotModel) error {
	return s.DB.WithContext(ctx).Create(snap).Error
}

func (s *GormSnapshotStore) LastAlertedOnDate(ctx context.Context, bucket Bucket, date time.Time) (*model.RatioSnapshotModel, error) {
	q := s.DB.WithContext(ctx).
		Where("ratio_snapshot_age_group = ?", string(bucket.AgeGroup)).
		Where("ratio_snapshot_date = ?", datatypes.Date(date)).
		Where("ratio_snapshot_alert_sent = ?", model.AlertSentYes)
	if bucket.RoomName == "" {
		q = q.Where("ratio_snapshot_room_name IS NULL")
	} else {
		q = q.Where("ratio_snapshot_room_name = ?", bucket.RoomName)
	}

	var row model.RatioSnapshotModel
	err := q.Order("ratio_snapshot_alert_sent_time DESC").First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkAlertSent: hanya transisi N → Y yang diizinkan (set sekali).
func (s *GormSnapshotStore) MarkAlertSent(ctx context.Context, snapshotID uuid.UUID, at time.Time) error {
	return s.DB.WithContext(ctx).Model(&model.RatioSnapshotModel{}).
		Where("ratio_snapshot_id = ? AND ratio_snapshot_alert_sent = ?", snapshotID, model.AlertSentNo).
		Updates(map[string]any{
			"ratio_snapshot_alert_sent":      model.AlertSentYes,
			"ratio_snapshot_alert_sent_time": at,
		}).Error
}

/* ===================== SETTINGS SOURCE (GORM) ===================== */

type GormSettingsSource struct {
	DB *gorm.DB
}

func NewGormSettingsSource(db *gorm.DB) *GormSettingsSource { return &GormSettingsSource{DB: db} }

// Load membaca baris settings fasilitas; kalau belum ada, dibuat
// dengan nilai default (idempotent).
func (s *GormSettingsSource) Load(ctx context.Context) (ThresholdConfig, error) {
	row, err := s.LoadRow(ctx)
	if err != nil {
		return ThresholdConfig{}, err
	}
	return ThresholdConfig{
		RequiredRatios: map[AgeGroup]int{
			AgeGroupInfant:    row.ComplianceSettingInfantRatio,
			AgeGroupToddler:   row.ComplianceSettingToddlerRatio,
			AgeGroupPreschool: row.ComplianceSettingPreschoolRatio,
			AgeGroupSchoolAge: row.ComplianceSettingSchoolAgeRatio,
		},
		WarningPercent:          row.ComplianceSettingWarningPercent,
		SnapshotIntervalMinutes: row.ComplianceSettingSnapshotIntervalMinutes,
		OperatingStartHour:      row.ComplianceSettingOperatingStartHour,
		OperatingEndHour:        row.ComplianceSettingOperatingEndHour,
		AlertRecipientRoles:     append([]string(nil), row.ComplianceSettingAlertRecipientRoles...),
		ActiveSchoolYearID:      row.ComplianceSettingActiveSchoolYearID,
	}, nil
}

func (s *GormSettingsSource) LoadRow(ctx context.Context) (*model.ComplianceSettingModel, error) {
	var row model.ComplianceSettingModel
	err := s.DB.WithContext(ctx).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = model.ComplianceSettingModel{
			ComplianceSettingInfantRatio:             AgeGroupInfant.DefaultRatio(),
			ComplianceSettingToddlerRatio:            AgeGroupToddler.DefaultRatio(),
			ComplianceSettingPreschoolRatio:          AgeGroupPreschool.DefaultRatio(),
			ComplianceSettingSchoolAgeRatio:          AgeGroupSchoolAge.DefaultRatio(),
			ComplianceSettingWarningPercent:          90,
			ComplianceSettingSnapshotIntervalMinutes: 30,
			ComplianceSettingOperatingStartHour:      6,
			ComplianceSettingOperatingEndHour:        19,
			ComplianceSettingAlertRecipientRoles:     constants.DefaultAlertRecipientRoles,
		}
		if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
			return nil, err
		}
		return &row, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
