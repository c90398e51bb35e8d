package repository

import (
	"Panel_Sync_Service/internal/panel-service/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

type ActivityRepository interface {
	CreateActivity(ctx context.Context, activity model.ServerActivity) (model.ServerActivity, error)
	GetByServerID(ctx context.Context, panelServerID int64) ([]model.ServerActivity, error)
}

type activityRepository struct {
	db *gorm.DB
}

func (r *activityRepository) CreateActivity(ctx context.Context, activity model.ServerActivity) (model.ServerActivity, error) {
	result := r.db.WithContext(ctx).Create(&activity)
	if result.Error != nil {
		return activity, fmt.Errorf("ActivityRepository.CreateActivity: %w", result.Error)
	}
	return activity, nil
}

func (r *activityRepository) GetByServerID(ctx context.Context, panelServerID int64) ([]model.ServerActivity, error) {
	var activities []model.ServerActivity
	result := r.db.WithContext(ctx).Where("panel_server_id = ?", panelServerID).Order("created_at asc").Find(&activities)
	if result.Error != nil {
		return nil, fmt.Errorf("ActivityRepository.GetByServerID: %w", result.Error)
	}
	return activities, nil
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{
		db: db,
	}
}
