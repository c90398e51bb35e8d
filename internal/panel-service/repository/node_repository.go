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

type NodeRepository interface {
	UpsertByExternalID(ctx context.Context, node model.Node) (model.Node, error)
	GetByExternalID(ctx context.Context, externalID int64) (model.Node, error)
	GetAll(ctx context.Context) ([]model.Node, error)
	GetDistinctLocationIDs(ctx context.Context) ([]int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type nodeRepository struct {
	db *gorm.DB
}

func (r *nodeRepository) UpsertByExternalID(ctx context.Context, node model.Node) (model.Node, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"panel_location_id", "external_location_id", "name", "uuid", "description", "data", "server_count", "updated_at",
		}),
	}).Clauses(clause.Returning{}).Create(&node)
	if result.Error != nil {
		return node, fmt.Errorf("NodeRepository.UpsertByExternalID: %w", result.Error)
	}
	return node, nil
}

func (r *nodeRepository) GetByExternalID(ctx context.Context, externalID int64) (model.Node, error) {
	var node model.Node
	result := r.db.WithContext(ctx).First(&node, "external_id = ?", externalID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return node, fmt.Errorf("NodeRepository.GetByExternalID: %w", apperrors.ErrNodeNotFound)
		}
		return node, fmt.Errorf("NodeRepository.GetByExternalID: %w", result.Error)
	}
	return node, nil
}

func (r *nodeRepository) GetAll(ctx context.Context) ([]model.Node, error) {
	var nodes []model.Node
	result := r.db.WithContext(ctx).Find(&nodes)
	if result.Error != nil {
		return nil, fmt.Errorf("NodeRepository.GetAll: %w", result.Error)
	}
	return nodes, nil
}

// GetDistinctLocationIDs returns the set of local location row ids still
// referenced by at least one node.
func (r *nodeRepository) GetDistinctLocationIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	result := r.db.WithContext(ctx).Model(&model.Node{}).Distinct("panel_location_id").Pluck("panel_location_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("NodeRepository.GetDistinctLocationIDs: %w", result.Error)
	}
	return ids, nil
}

func (r *nodeRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Node{})
	if result.Error != nil {
		return fmt.Errorf("NodeRepository.DeleteByID: %w", result.Error)
	}
	return nil
}

func NewNodeRepository(db *gorm.DB) NodeRepository {
	return &nodeRepository{
		db: db,
	}
}
