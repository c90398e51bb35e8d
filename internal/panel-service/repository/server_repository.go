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

type ServerRepository interface {
	CreateServer(ctx context.Context, server model.Server) (model.Server, error)
	UpsertByServerID(ctx context.Context, server model.Server) (model.Server, error)
	GetByID(ctx context.Context, id int64) (model.Server, error)
	GetByServerID(ctx context.Context, serverID int64) (model.Server, error)
	GetAll(ctx context.Context) ([]model.Server, error)
	UpdateServer(ctx context.Context, updatedData model.Server) (model.Server, error)
	GetDistinctNodeIDs(ctx context.Context) ([]int64, error)
	DeleteByID(ctx context.Context, id int64) error
}

type serverRepository struct {
	db *gorm.DB
}

func (r *serverRepository) CreateServer(ctx context.Context, server model.Server) (model.Server, error) {
	result := r.db.WithContext(ctx).Create(&server)
	if result.Error != nil {
		return server, fmt.Errorf("ServerRepository.CreateServer: %w", result.Error)
	}
	return server, nil
}

// UpsertByServerID inserts or overwrites the record keyed by the external
// panel server id. The lifecycle status is deliberately not part of the
// update set; sync never rewinds a locally tracked transition.
func (r *serverRepository) UpsertByServerID(ctx context.Context, server model.Server) (model.Server, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "server_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"panel_node_id", "name", "uuid", "data", "steam_login_token", "steam_id_64", "rcon_password", "ip", "port", "suspended", "updated_at",
		}),
	}).Clauses(clause.Returning{}).Create(&server)
	if result.Error != nil {
		return server, fmt.Errorf("ServerRepository.UpsertByServerID: %w", result.Error)
	}
	return server, nil
}

func (r *serverRepository) GetByID(ctx context.Context, id int64) (model.Server, error) {
	var server model.Server
	result := r.db.WithContext(ctx).First(&server, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetByID: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetByID: %w", result.Error)
	}
	return server, nil
}

func (r *serverRepository) GetByServerID(ctx context.Context, serverID int64) (model.Server, error) {
	var server model.Server
	result := r.db.WithContext(ctx).First(&server, "server_id = ?", serverID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return server, fmt.Errorf("ServerRepository.GetByServerID: %w", apperrors.ErrServerNotFound)
		}
		return server, fmt.Errorf("ServerRepository.GetByServerID: %w", result.Error)
	}
	return server, nil
}

func (r *serverRepository) GetAll(ctx context.Context) ([]model.Server, error) {
	var servers []model.Server
	result := r.db.WithContext(ctx).Find(&servers)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetAll: %w", result.Error)
	}
	return servers, nil
}

func (r *serverRepository) UpdateServer(ctx context.Context, updatedData model.Server) (model.Server, error) {
	var server model.Server
	result := r.db.WithContext(ctx).Model(&server).Clauses(clause.Returning{}).Where("id = ?", updatedData.ID).Updates(updatedData)
	if result.Error != nil {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return server, fmt.Errorf("ServerRepository.UpdateServer: %w", apperrors.ErrServerNotFound)
	}
	return server, nil
}

// GetDistinctNodeIDs returns the set of local node row ids still referenced
// by at least one server.
func (r *serverRepository) GetDistinctNodeIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	result := r.db.WithContext(ctx).Model(&model.Server{}).Distinct("panel_node_id").Pluck("panel_node_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("ServerRepository.GetDistinctNodeIDs: %w", result.Error)
	}
	return ids, nil
}

// DeleteByID is a hard delete; no hooks, no soft-delete column.
func (r *serverRepository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Server{})
	if result.Error != nil {
		return fmt.Errorf("ServerRepository.DeleteByID: %w", result.Error)
	}
	return nil
}

func NewServerRepository(db *gorm.DB) ServerRepository {
	return &serverRepository{
		db: db,
	}
}
