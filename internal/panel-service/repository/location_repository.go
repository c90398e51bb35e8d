package repository

import (
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"Panel_Sync_Service/internal/panel-service/model"
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LocationRepository interface {
	UpsertByExternalID(ctx context.Context, location model.Location) (model.Location, error)
	GetByExternalID(ctx context.Context, externalID int64) (model.Location, error)
	GetAll(ctx context.Context) ([]model.Location, error)
	DeleteByID(ctx context.Context, id int64) error
}

type locationRepository struct {
	db *gorm.DB
}

func (r *locationRepository) UpsertByExternalID(ctx context.Context, location model.Location) (model.Location, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"short_code", "description", "data", "updated_at"}),
	}).Clauses(clause.Returning{}).Create(&location)
	if result.Error != nil {
		return location, fmt.Errorf("LocationRepository.UpsertByExternalID: %w", result.Error)
	}
	return location, nil
}

func (r *locationRepository) GetByExternalID(ctx context.Context, externalID int64) (model.Location, error) {
	var location model.Location
	result := r.db.WithContext(ctx).First(&location, "external_id = ?", externalID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return location, fmt.Errorf("LocationRepository.GetByExternalID: %w", apperrors.ErrLocationNotFound)
		}
		return location, fmt.Errorf("LocationRepository.GetByExternalID: %w", result.Error)
	}
	return location, nil
}

func (r *locationRepository) GetAll(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	result := r.db.WithContext(ctx).Find(&locations)
	if result.Error != nil {
		return nil, fmt.Errorf("LocationRepository.GetAll: %w", result.Error)
	}
	return locations, nil
}

func (r *locationRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Location{})
	if result.Error != nil {
		return fmt.Errorf("LocationRepository.DeleteByID: %w", result.Error)
	}
	return nil
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{
		db: db,
	}
}
