package record

import (
	"context"
	"errors"
	"moodbite/entities"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Keys of the persisted records.
const (
	KeyFavorites = "favoriteRecipes"
	KeyCompleted = "completedRecipes"
	KeyPet       = "petData"
	KeyMissions  = "missionProgress"
)

type (
	// RecordRepository is a synchronous key-value store of JSON strings.
	// Get reports found=false when the key was never written.
	RecordRepository interface {
		Get(ctx context.Context, key string) (value string, found bool, err error)
		Set(ctx context.Context, key, value string) error
	}

	recordRepository struct {
		db *gorm.DB
	}
)

func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var rec entities.Record
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return rec.Value, true, nil
}

func (r *recordRepository) Set(ctx context.Context, key, value string) error {
	now := time.Now()
	rec := entities.Record{
		Key:   key,
		Value: value,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}
