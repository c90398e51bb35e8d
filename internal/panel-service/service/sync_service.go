package service

import (
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"Panel_Sync_Service/internal/panel-service/model"
	"Panel_Sync_Service/internal/panel-service/pterodactyl"
	"Panel_Sync_Service/internal/panel-service/repository"
	"Panel_Sync_Service/internal/panel-service/steam"
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SyncService reconciles the panel's authoritative state into the local
// store. A full pass runs Locations, Nodes and Servers first, then removes
// orphans in reverse dependency order so a still-referenced node or location
// is never dropped.
type SyncService interface {
	SyncAll(ctx context.Context) error
	SyncLocations(ctx context.Context) error
	SyncNodes(ctx context.Context) error
	SyncServers(ctx context.Context) error
	DeleteNotExistsServers(ctx context.Context) error
	DeleteUnusedNodes(ctx context.Context) error
	DeleteUnusedLocations(ctx context.Context) error
}

type syncService struct {
	panel        pterodactyl.Client
	tokens       steam.TokenService
	locationRepo repository.LocationRepository
	nodeRepo     repository.NodeRepository
	serverRepo   repository.ServerRepository
	owner        Owner
	logger       *zap.Logger
}

// itemResult classifies one item's outcome inside a batch pass. The loop,
// not a catch-all, decides that a skip is survivable.
type itemResult int

const (
	itemApplied itemResult = iota
	itemSkipped
)

// matchAccountID scans the fetched steam account list for the record whose
// login token equals the server's embedded token. No match returns false and
// callers keep whatever account id they already hold; the account listing is
// best-effort and must not destroy known-good state.
func matchAccountID(loginToken string, accounts []steam.Account) (string, bool) {
	if loginToken == "" {
		return "", false
	}
	for _, account := range accounts {
		if account.LoginToken == loginToken {
			return account.SteamID, true
		}
	}
	return "", false
}

func envString(environment map[string]any, key string) (string, bool) {
	v, ok := environment[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (s *syncService) SyncAll(ctx context.Context) error {
	logger := s.logger.With(zap.String("sync_run_id", uuid.NewString()))
	logger.Info("full panel reconciliation started")
	stages := []struct {
		name string
		run  func(context.Context) error
	}{
		{"sync locations", s.SyncLocations},
		{"sync nodes", s.SyncNodes},
		{"sync servers", s.SyncServers},
		{"delete missing servers", s.DeleteNotExistsServers},
		{"delete unused nodes", s.DeleteUnusedNodes},
		{"delete unused locations", s.DeleteUnusedLocations},
	}
	for _, stage := range stages {
		if err := stage.run(ctx); err != nil {
			logger.Error("reconciliation stage failed", zap.String("stage", stage.name), zap.Error(err))
			return fmt.Errorf("SyncService.SyncAll: %s: %w", stage.name, err)
		}
		logger.Info("reconciliation stage finished", zap.String("stage", stage.name))
	}
	return nil
}

func (s *syncService) SyncLocations(ctx context.Context) error {
	locations, err := s.panel.ListLocations(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.SyncLocations: %w", err)
	}
	for _, location := range locations {
		_, err = s.locationRepo.UpsertByExternalID(ctx, model.Location{
			ExternalID:  location.ID,
			ShortCode:   location.Short,
			Description: location.Long,
			Data:        model.JSONMap(location.Raw),
		})
		if err != nil {
			s.logger.Error("location synchronization: upsert failed", zap.Int64("external_id", location.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *syncService) SyncNodes(ctx context.Context) error {
	// The server list is fetched once and shared across all nodes.
	servers, err := s.panel.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.SyncNodes: %w", err)
	}
	nodes, err := s.panel.ListNodes(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.SyncNodes: %w", err)
	}
	for _, node := range nodes {
		// server_count reflects current panel state for the node across all
		// accounts; the ownership filter applies to server sync only.
		count := 0
		for _, server := range servers {
			if server.Node == node.ID {
				count++
			}
		}
		location, err := s.locationRepo.GetByExternalID(ctx, node.LocationID)
		if err != nil {
			s.logger.Error("node synchronization: local location missing, node not upserted",
				zap.Int64("node_external_id", node.ID),
				zap.Int64("location_external_id", node.LocationID),
				zap.Error(err))
			continue
		}
		_, err = s.nodeRepo.UpsertByExternalID(ctx, model.Node{
			ExternalID:         node.ID,
			PanelLocationID:    location.ID,
			ExternalLocationID: node.LocationID,
			Name:               node.Name,
			UUID:               node.UUID,
			Description:        node.Description,
			Data:               model.JSONMap(node.Raw),
			ServerCount:        count,
		})
		if err != nil {
			s.logger.Error("node synchronization: upsert failed", zap.Int64("external_id", node.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *syncService) SyncServers(ctx context.Context) error {
	s.logger.Info("panel server synchronization started")
	servers, err := s.panel.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.SyncServers: %w", err)
	}
	accounts, err := s.tokens.GetAccountList(ctx)
	accountsAvailable := err == nil
	if err != nil {
		s.logger.Warn("server synchronization: failed to load steam account list, keeping persisted account ids", zap.Error(err))
		accounts = nil
	}
	if !s.owner.Resolved {
		s.logger.Warn("server synchronization: owner account unresolved, no panel server is authoritative")
		return nil
	}
	for _, server := range servers {
		if server.User != s.owner.ID {
			continue
		}
		result, err := s.syncOneServer(ctx, server, accounts, accountsAvailable)
		if result == itemSkipped {
			s.logger.Error("server synchronization: server skipped",
				zap.Int64("server_external_id", server.ID),
				zap.String("server_name", server.Name),
				zap.Error(err))
		}
	}
	return nil
}

func (s *syncService) syncOneServer(ctx context.Context, server pterodactyl.Server, accounts []steam.Account, accountsAvailable bool) (itemResult, error) {
	node, err := s.nodeRepo.GetByExternalID(ctx, server.Node)
	if err != nil {
		return itemSkipped, fmt.Errorf("resolving local node %d: %w", server.Node, err)
	}

	// Fallback defaults come from the already persisted record, if any.
	var ip string
	var port int
	var steamID string
	if existing, err := s.serverRepo.GetByServerID(ctx, server.ID); err == nil {
		ip = existing.IP
		port = existing.Port
		steamID = existing.SteamID64
	}

	loginToken, tokenOK := envString(server.Container.Environment, "STEAM_ACC")
	rconPassword, rconOK := envString(server.Container.Environment, "RCON_PASSWORD")
	if !tokenOK || !rconOK {
		s.logger.Info("server synchronization: incomplete environment data", zap.String("server_name", server.Name))
	}
	allocationResolved := false
	if server.Allocation != nil && server.Allocation.IPAlias != "" {
		ip = server.Allocation.IPAlias
		port = server.Allocation.Port
		allocationResolved = true
	}
	if accountsAvailable {
		if id, ok := matchAccountID(loginToken, accounts); ok {
			steamID = id
		}
	}

	serverID := server.ID
	record, err := s.serverRepo.UpsertByServerID(ctx, model.Server{
		ServerID:        &serverID,
		Status:          model.ServerStatusProvisioned,
		PanelNodeID:     node.ID,
		Name:            server.Name,
		UUID:            server.UUID,
		Data:            model.JSONMap(server.Raw),
		SteamLoginToken: loginToken,
		SteamID64:       steamID,
		RconPassword:    rconPassword,
		IP:              ip,
		Port:            port,
		Suspended:       server.Suspended,
	})
	if err != nil {
		return itemSkipped, fmt.Errorf("upserting server %d: %w", server.ID, err)
	}

	if !allocationResolved {
		if err = s.enrichServerAllocation(ctx, server.Identifier, record); err != nil {
			// Secondary best-effort enrichment; never fatal to the sync.
			s.logger.Info("server synchronization: failed to get allocation data",
				zap.String("server_name", server.Name), zap.Error(err))
		}
	}
	return itemApplied, nil
}

// enrichServerAllocation performs the direct per-server network-allocation
// query and merges the first allocation object into the stored payload.
func (s *syncService) enrichServerAllocation(ctx context.Context, identifier string, record model.Server) error {
	allocations, err := s.panel.GetClientServerAllocations(ctx, identifier)
	if err != nil {
		return err
	}
	if len(allocations) == 0 {
		return nil
	}
	data := record.Data
	if data == nil {
		data = model.JSONMap{}
	}
	data["allocationObject"] = allocations[0]
	_, err = s.serverRepo.UpdateServer(ctx, model.Server{ID: record.ID, Data: data})
	return err
}

func (s *syncService) DeleteNotExistsServers(ctx context.Context) error {
	// With the owner unresolved every local server would look missing and the
	// whole table would be wiped; refuse instead of guessing.
	if !s.owner.Resolved {
		return fmt.Errorf("SyncService.DeleteNotExistsServers: %w", apperrors.ErrOwnerUnresolved)
	}
	servers, err := s.panel.ListServers(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.DeleteNotExistsServers: %w", err)
	}
	owned := make(map[int64]struct{}, len(servers))
	for _, server := range servers {
		if server.User == s.owner.ID {
			owned[server.ID] = struct{}{}
		}
	}
	locals, err := s.serverRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.DeleteNotExistsServers: %w", err)
	}
	for _, local := range locals {
		exists := false
		if local.ServerID != nil {
			_, exists = owned[*local.ServerID]
		}
		if exists {
			continue
		}
		if err = s.serverRepo.DeleteByID(ctx, local.ID); err != nil {
			s.logger.Error("delete missing servers: delete failed", zap.Int64("id", local.ID), zap.Error(err))
			continue
		}
		s.logger.Info("deleted local server missing from panel", zap.Int64("id", local.ID), zap.String("name", local.Name))
	}
	return nil
}

func (s *syncService) DeleteUnusedNodes(ctx context.Context) error {
	nodes, err := s.nodeRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.DeleteUnusedNodes: %w", err)
	}
	usedIDs, err := s.serverRepo.GetDistinctNodeIDs(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.DeleteUnusedNodes: %w", err)
	}
	used := make(map[int64]struct{}, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = struct{}{}
	}
	for _, node := range nodes {
		if _, ok := used[node.ID]; ok {
			continue
		}
		if err = s.nodeRepo.DeleteByID(ctx, node.ID); err != nil {
			s.logger.Error("delete unused nodes: delete failed", zap.Int64("id", node.ID), zap.Error(err))
			continue
		}
		s.logger.Info("deleted unreferenced node", zap.Int64("id", node.ID), zap.String("name", node.Name))
	}
	return nil
}

func (s *syncService) DeleteUnusedLocations(ctx context.Context) error {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.DeleteUnusedLocations: %w", err)
	}
	usedIDs, err := s.nodeRepo.GetDistinctLocationIDs(ctx)
	if err != nil {
		return fmt.Errorf("SyncService.DeleteUnusedLocations: %w", err)
	}
	used := make(map[int64]struct{}, len(usedIDs))
	for _, id := range usedIDs {
		used[id] = struct{}{}
	}
	for _, location := range locations {
		if _, ok := used[location.ID]; ok {
			continue
		}
		if err = s.locationRepo.DeleteByID(ctx, location.ID); err != nil {
			s.logger.Error("delete unused locations: delete failed", zap.Int64("id", location.ID), zap.Error(err))
			continue
		}
		s.logger.Info("deleted unreferenced location", zap.Int64("id", location.ID), zap.String("short_code", location.ShortCode))
	}
	return nil
}

func NewSyncService(
	panel pterodactyl.Client,
	tokens steam.TokenService,
	locationRepo repository.LocationRepository,
	nodeRepo repository.NodeRepository,
	serverRepo repository.ServerRepository,
	owner Owner,
	logger *zap.Logger,
) SyncService {
	return &syncService{
		panel:        panel,
		tokens:       tokens,
		locationRepo: locationRepo,
		nodeRepo:     nodeRepo,
		serverRepo:   serverRepo,
		owner:        owner,
		logger:       logger,
	}
}
