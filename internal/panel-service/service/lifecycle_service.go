package service

import (
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"Panel_Sync_Service/internal/panel-service/events"
	"Panel_Sync_Service/internal/panel-service/model"
	"Panel_Sync_Service/internal/panel-service/pterodactyl"
	"Panel_Sync_Service/internal/panel-service/repository"
	"Panel_Sync_Service/internal/panel-service/steam"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultNestID = 5
	defaultEggID  = 15
	steamAppID    = 730

	rconPasswordLength = 16
	rconPasswordChars  = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

const (
	PowerSignalStart   = "start"
	PowerSignalStop    = "stop"
	PowerSignalRestart = "restart"
	PowerSignalKill    = "kill"
)

// Resource probe states. Unknown and Installing are deliberately not errors;
// the probe is also used as a non-fatal poll inside the power wait.
const (
	ResourceStateRunning    = "running"
	ResourceStateOffline    = "offline"
	ResourceStateInstalling = "installing"
	ResourceStateUnknown    = "unknown"
)

const installInProgressMessage = "has not yet completed its installation process"

type LifecycleService interface {
	CreateServer(ctx context.Context, nodeID int64, extraData map[string]any) (model.Server, error)
	PowerServer(ctx context.Context, server model.Server, signal string, skipWait bool) error
	SuspendServer(ctx context.Context, server model.Server) error
	DeleteServer(ctx context.Context, serverID int64, steamID string) error
	UpdateEnvironment(ctx context.Context, server model.Server, key string, value string) error
	SendConsoleCommand(ctx context.Context, server model.Server, command string) error
	GetResourceUsage(ctx context.Context, server model.Server) (pterodactyl.ResourceUsage, string)
	GetLatestLogContents(ctx context.Context, server model.Server) (string, error)
	GetServerAllocation(ctx context.Context, server model.Server) (map[string]any, error)
	GetServers(ctx context.Context) ([]model.Server, error)
	GetServer(ctx context.Context, id int64) (model.Server, error)
	GetServerActivities(ctx context.Context, id int64) ([]model.ServerActivity, error)
	RemoveServer(ctx context.Context, server model.Server) error
}

type lifecycleService struct {
	panel        pterodactyl.Client
	tokens       steam.TokenService
	nodeRepo     repository.NodeRepository
	serverRepo   repository.ServerRepository
	activityRepo repository.ActivityRepository
	producer     events.ActivityProducer
	owner        Owner
	waitAttempts int
	waitInterval time.Duration
	logger       *zap.Logger
}

// findAvailableAllocation scans the node's allocations in fetch order and
// returns the first unassigned one, or nil when the node is exhausted.
func (s *lifecycleService) findAvailableAllocation(ctx context.Context, nodeID int64) (*pterodactyl.Allocation, error) {
	allocations, err := s.panel.ListNodeAllocations(ctx, nodeID)
	if err != nil {
		return nil, err
	}
	for i := range allocations {
		if !allocations[i].Assigned {
			return &allocations[i], nil
		}
	}
	return nil, nil
}

// gotvPort derives the spectator port from the game port: "28" prefixed onto
// the game port's trailing digits (27016 -> 2816).
func gotvPort(port int) string {
	digits := strconv.Itoa(port)
	if len(digits) <= 3 {
		return "28" + digits
	}
	return "28" + digits[3:]
}

func generateRconPassword(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generateRconPassword: %w", err)
	}
	for i := range b {
		b[i] = rconPasswordChars[int(b[i])%len(rconPasswordChars)]
	}
	return string(b), nil
}

func (s *lifecycleService) CreateServer(ctx context.Context, nodeID int64, extraData map[string]any) (model.Server, error) {
	node, err := s.panel.GetNode(ctx, nodeID)
	if err != nil {
		if apperrors.IsPanelNotFound(err) {
			return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", apperrors.ErrNodeNotFound)
		}
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	allocation, err := s.findAvailableAllocation(ctx, nodeID)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	if allocation == nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", apperrors.ErrAllocationNotFound)
	}
	if !s.owner.Resolved {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", apperrors.ErrOwnerUnresolved)
	}
	localNode, err := s.nodeRepo.GetByExternalID(ctx, nodeID)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	user, err := s.panel.GetUser(ctx, s.owner.ID)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	egg, err := s.panel.GetEgg(ctx, defaultNestID, defaultEggID)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}

	name := fmt.Sprintf("%s-%d", node.Name, allocation.Port)
	account, err := s.tokens.CreateAccount(ctx, steamAppID, name)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	rconPassword, err := generateRconPassword(rconPasswordLength)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}

	// The local row is created first so its primary key can travel in the
	// creation payload as the correlation token.
	row, err := s.serverRepo.CreateServer(ctx, model.Server{Status: model.ServerStatusPendingInstall})
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	s.recordActivity(ctx, row.ID, model.ActivityActionCreate, model.ServerStatusPendingInstall)

	payload := map[string]any{
		"name":         name,
		"external_id":  strconv.FormatInt(row.ID, 10),
		"user":         user.ID,
		"egg":          egg.ID,
		"docker_image": egg.DockerImage,
		"skip_scripts": true,
		"environment": map[string]any{
			"SRCDS_MAP":     "de_dust2",
			"STEAM_ACC":     account.LoginToken,
			"SRCDS_APPID":   "740",
			"GOTV_PORT":     gotvPort(allocation.Port),
			"STARTUP":       egg.Startup,
			"GAME_MODE":     "2",
			"GAME_TYPE":     "0",
			"RCON_PASSWORD": rconPassword,
		},
		"limits": map[string]any{
			"memory":  0,
			"swap":    0,
			"disk":    0,
			"io":      1000,
			"cpu":     0,
			"backups": 0,
		},
		"feature_limits": map[string]any{
			"databases": 0,
			"backups":   0,
		},
		"allocation": map[string]any{
			"default": allocation.ID,
		},
		"startup":             egg.Startup,
		"description":         fmt.Sprintf("server with %d port on %s node", allocation.Port, node.Name),
		"start_on_completion": false,
	}
	for k, v := range extraData {
		payload[k] = v
	}

	created, err := s.panel.CreateServer(ctx, payload)
	if err != nil {
		// No compensating delete: the pending-install row stays behind as the
		// record of the failed attempt (known gap, see DESIGN.md).
		s.logger.Warn("server creation failed, pending-install row left in place",
			zap.Int64("id", row.ID), zap.Error(err))
		var validationErr *apperrors.PanelValidationError
		if errors.As(err, &validationErr) {
			return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", validationErr)
		}
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	s.logger.Info("panel server created", zap.String("name", created.Name), zap.Int64("server_id", created.ID))

	serverID := created.ID
	updated, err := s.serverRepo.UpdateServer(ctx, model.Server{
		ID:              row.ID,
		ServerID:        &serverID,
		Status:          model.ServerStatusProvisioned,
		PanelNodeID:     localNode.ID,
		Name:            created.Name,
		UUID:            created.UUID,
		Data:            model.JSONMap(created.Raw),
		SteamLoginToken: account.LoginToken,
		SteamID64:       account.SteamID,
		RconPassword:    rconPassword,
		IP:              allocation.IPAlias,
		Port:            allocation.Port,
	})
	if err != nil {
		// The remote server exists but the local row still says
		// pending-install; surfaced, not silently repaired.
		return model.Server{}, fmt.Errorf("LifecycleService.CreateServer: %w", err)
	}
	s.recordActivity(ctx, row.ID, model.ActivityActionUpdate, model.ServerStatusProvisioned)
	return updated, nil
}

func (s *lifecycleService) PowerServer(ctx context.Context, server model.Server, signal string, skipWait bool) error {
	if server.Suspended {
		return fmt.Errorf("LifecycleService.PowerServer: %w", apperrors.ErrServerSuspended)
	}
	if server.ServerID == nil {
		return fmt.Errorf("LifecycleService.PowerServer: %w", apperrors.ErrServerNotProvisioned)
	}
	external, err := s.resolveExternal(ctx, server)
	if err != nil {
		return fmt.Errorf("LifecycleService.PowerServer: %w", err)
	}
	if err = s.panel.PowerServer(ctx, external.Identifier, signal); err != nil {
		return fmt.Errorf("LifecycleService.PowerServer: %w", err)
	}
	if (signal == PowerSignalStart || signal == PowerSignalRestart) && !skipWait {
		return s.waitForRunning(ctx, server, signal)
	}
	if signal == PowerSignalStop || signal == PowerSignalKill {
		s.transitionStatus(ctx, server.ID, model.ServerStatusOffline)
	}
	return nil
}

// waitForRunning polls the resource-usage probe until the server reports
// running or the attempt budget is spent. Offline, installing and unknown
// probes are all transient while waiting; only running ends the wait early.
func (s *lifecycleService) waitForRunning(ctx context.Context, server model.Server, signal string) error {
	timer := time.NewTimer(s.waitInterval)
	defer timer.Stop()
	for attempt := 1; attempt <= s.waitAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("LifecycleService.PowerServer: %w", ctx.Err())
		case <-timer.C:
		}
		if _, state := s.GetResourceUsage(ctx, server); state == ResourceStateRunning {
			s.transitionStatus(ctx, server.ID, model.ServerStatusRunning)
			return nil
		}
		timer.Reset(s.waitInterval)
	}
	return fmt.Errorf("LifecycleService.PowerServer: signal %s: %w", signal, apperrors.ErrPowerTimeout)
}

func (s *lifecycleService) SuspendServer(ctx context.Context, server model.Server) error {
	if server.ServerID == nil {
		return fmt.Errorf("LifecycleService.SuspendServer: %w", apperrors.ErrServerNotProvisioned)
	}
	if err := s.panel.SuspendServer(ctx, *server.ServerID); err != nil {
		return fmt.Errorf("LifecycleService.SuspendServer: %w", err)
	}
	s.transitionStatus(ctx, server.ID, model.ServerStatusSuspended)
	return nil
}

func (s *lifecycleService) DeleteServer(ctx context.Context, serverID int64, steamID string) error {
	if serverID == 0 {
		return nil
	}
	if _, err := s.panel.GetServer(ctx, serverID); err != nil {
		return fmt.Errorf("LifecycleService.DeleteServer: %w", err)
	}
	if err := s.panel.ForceDeleteServer(ctx, serverID); err != nil {
		return fmt.Errorf("LifecycleService.DeleteServer: %w", err)
	}
	if steamID != "" {
		if err := s.tokens.DeleteAccount(ctx, steamID); err != nil {
			return fmt.Errorf("LifecycleService.DeleteServer: %w", err)
		}
	}
	return nil
}

func (s *lifecycleService) UpdateEnvironment(ctx context.Context, server model.Server, key string, value string) error {
	external, err := s.resolveExternal(ctx, server)
	if err != nil {
		return fmt.Errorf("LifecycleService.UpdateEnvironment: %w", err)
	}
	if err = s.panel.UpdateStartupVariable(ctx, external.Identifier, key, value); err != nil {
		return fmt.Errorf("LifecycleService.UpdateEnvironment: %w", err)
	}
	return nil
}

func (s *lifecycleService) SendConsoleCommand(ctx context.Context, server model.Server, command string) error {
	external, err := s.resolveExternal(ctx, server)
	if err != nil {
		return fmt.Errorf("LifecycleService.SendConsoleCommand: %w", err)
	}
	if err = s.panel.SendCommand(ctx, external.Identifier, command); err != nil {
		return fmt.Errorf("LifecycleService.SendConsoleCommand: %w", err)
	}
	return nil
}

// GetResourceUsage never returns an error: it is also the probe inside the
// power wait, where a failed fetch is just another transient state.
func (s *lifecycleService) GetResourceUsage(ctx context.Context, server model.Server) (pterodactyl.ResourceUsage, string) {
	if server.ServerID == nil {
		return pterodactyl.ResourceUsage{}, ResourceStateUnknown
	}
	external, err := s.panel.GetServer(ctx, *server.ServerID)
	if err != nil {
		return pterodactyl.ResourceUsage{}, classifyResourceError(err)
	}
	usage, err := s.panel.GetResourceUsage(ctx, external.Identifier)
	if err != nil {
		return pterodactyl.ResourceUsage{}, classifyResourceError(err)
	}
	return usage, usage.CurrentState
}

func classifyResourceError(err error) string {
	if strings.Contains(err.Error(), installInProgressMessage) {
		return ResourceStateInstalling
	}
	return ResourceStateUnknown
}

func (s *lifecycleService) GetLatestLogContents(ctx context.Context, server model.Server) (string, error) {
	external, err := s.resolveExternal(ctx, server)
	if err != nil {
		return "", fmt.Errorf("LifecycleService.GetLatestLogContents: %w", err)
	}
	files, err := s.panel.ListFiles(ctx, external.Identifier, "csgo/logs")
	if err != nil {
		return "", fmt.Errorf("LifecycleService.GetLatestLogContents: %w", err)
	}
	if len(files) == 0 {
		return "", nil
	}
	contents, err := s.panel.GetFileContents(ctx, external.Identifier, "csgo/logs/"+files[0].Name)
	if err != nil {
		return "", fmt.Errorf("LifecycleService.GetLatestLogContents: %w", err)
	}
	return contents, nil
}

func (s *lifecycleService) GetServerAllocation(ctx context.Context, server model.Server) (map[string]any, error) {
	external, err := s.resolveExternal(ctx, server)
	if err != nil {
		return nil, fmt.Errorf("LifecycleService.GetServerAllocation: %w", err)
	}
	allocations, err := s.panel.GetClientServerAllocations(ctx, external.Identifier)
	if err != nil {
		return nil, fmt.Errorf("LifecycleService.GetServerAllocation: %w", err)
	}
	if len(allocations) == 0 {
		return nil, nil
	}
	return allocations[0], nil
}

func (s *lifecycleService) GetServers(ctx context.Context) ([]model.Server, error) {
	servers, err := s.serverRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("LifecycleService.GetServers: %w", err)
	}
	return servers, nil
}

func (s *lifecycleService) GetServer(ctx context.Context, id int64) (model.Server, error) {
	server, err := s.serverRepo.GetByID(ctx, id)
	if err != nil {
		return model.Server{}, fmt.Errorf("LifecycleService.GetServer: %w", err)
	}
	return server, nil
}

func (s *lifecycleService) GetServerActivities(ctx context.Context, id int64) ([]model.ServerActivity, error) {
	activities, err := s.activityRepo.GetByServerID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("LifecycleService.GetServerActivities: %w", err)
	}
	return activities, nil
}

// RemoveServer tears a server down on both sides: the panel server and its
// login token first, then the local row. A panel 404 is tolerated so a
// half-deleted server can still be cleaned up locally.
func (s *lifecycleService) RemoveServer(ctx context.Context, server model.Server) error {
	var externalID int64
	if server.ServerID != nil {
		externalID = *server.ServerID
	}
	if err := s.DeleteServer(ctx, externalID, server.SteamID64); err != nil {
		if !apperrors.IsPanelNotFound(err) {
			return fmt.Errorf("LifecycleService.RemoveServer: %w", err)
		}
		s.logger.Warn("panel server already gone, removing local row only", zap.Int64("id", server.ID))
	}
	if err := s.serverRepo.DeleteByID(ctx, server.ID); err != nil {
		return fmt.Errorf("LifecycleService.RemoveServer: %w", err)
	}
	s.recordActivity(ctx, server.ID, model.ActivityActionDelete, server.Status)
	return nil
}

func (s *lifecycleService) resolveExternal(ctx context.Context, server model.Server) (pterodactyl.Server, error) {
	if server.ServerID == nil {
		return pterodactyl.Server{}, apperrors.ErrServerNotProvisioned
	}
	external, err := s.panel.GetServer(ctx, *server.ServerID)
	if err != nil {
		if apperrors.IsPanelNotFound(err) {
			return pterodactyl.Server{}, apperrors.ErrServerNotFound
		}
		return pterodactyl.Server{}, err
	}
	return external, nil
}

// transitionStatus mirrors an observed lifecycle transition into the local
// row and the activity log. Best-effort: the external operation already
// succeeded, a bookkeeping failure is logged rather than surfaced.
func (s *lifecycleService) transitionStatus(ctx context.Context, panelServerID int64, status string) {
	if panelServerID == 0 {
		return
	}
	if _, err := s.serverRepo.UpdateServer(ctx, model.Server{ID: panelServerID, Status: status}); err != nil {
		s.logger.Error("failed to update server status", zap.Int64("id", panelServerID), zap.String("status", status), zap.Error(err))
	}
	s.recordActivity(ctx, panelServerID, model.ActivityActionUpdate, status)
}

func (s *lifecycleService) recordActivity(ctx context.Context, panelServerID int64, action string, status string) {
	_, err := s.activityRepo.CreateActivity(ctx, model.ServerActivity{
		PanelServerID: panelServerID,
		Action:        action,
		Status:        status,
	})
	if err != nil {
		s.logger.Error("failed to append server activity", zap.Int64("id", panelServerID), zap.Error(err))
	}
	if err = s.producer.PublishStatusChange(ctx, panelServerID, action, status); err != nil {
		s.logger.Error("failed to publish server activity event", zap.Int64("id", panelServerID), zap.Error(err))
	}
}

func NewLifecycleService(
	panel pterodactyl.Client,
	tokens steam.TokenService,
	nodeRepo repository.NodeRepository,
	serverRepo repository.ServerRepository,
	activityRepo repository.ActivityRepository,
	producer events.ActivityProducer,
	owner Owner,
	waitAttempts int,
	waitInterval time.Duration,
	logger *zap.Logger,
) LifecycleService {
	return &lifecycleService{
		panel:        panel,
		tokens:       tokens,
		nodeRepo:     nodeRepo,
		serverRepo:   serverRepo,
		activityRepo: activityRepo,
		producer:     producer,
		owner:        owner,
		waitAttempts: waitAttempts,
		waitInterval: waitInterval,
		logger:       logger,
	}
}
