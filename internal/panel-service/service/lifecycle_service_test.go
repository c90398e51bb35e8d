package service

import (
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	mockevents "Panel_Sync_Service/internal/panel-service/mocks/events"
	mockpterodactyl "Panel_Sync_Service/internal/panel-service/mocks/pterodactyl"
	mockrepository "Panel_Sync_Service/internal/panel-service/mocks/repository"
	mocksteam "Panel_Sync_Service/internal/panel-service/mocks/steam"
	"Panel_Sync_Service/internal/panel-service/model"
	"Panel_Sync_Service/internal/panel-service/pterodactyl"
	"Panel_Sync_Service/internal/panel-service/steam"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type lifecycleMocks struct {
	panel        *mockpterodactyl.MockClient
	tokens       *mocksteam.MockTokenService
	nodeRepo     *mockrepository.MockNodeRepository
	serverRepo   *mockrepository.MockServerRepository
	activityRepo *mockrepository.MockActivityRepository
	producer     *mockevents.MockActivityProducer
}

func newLifecycleServiceForTest(t *testing.T, owner Owner, waitAttempts int, waitInterval time.Duration) (LifecycleService, lifecycleMocks) {
	ctrl := gomock.NewController(t)
	m := lifecycleMocks{
		panel:        mockpterodactyl.NewMockClient(ctrl),
		tokens:       mocksteam.NewMockTokenService(ctrl),
		nodeRepo:     mockrepository.NewMockNodeRepository(ctrl),
		serverRepo:   mockrepository.NewMockServerRepository(ctrl),
		activityRepo: mockrepository.NewMockActivityRepository(ctrl),
		producer:     mockevents.NewMockActivityProducer(ctrl),
	}
	s := NewLifecycleService(m.panel, m.tokens, m.nodeRepo, m.serverRepo, m.activityRepo, m.producer, owner, waitAttempts, waitInterval, zap.NewNop())
	return s, m
}

func TestGotvPort(t *testing.T) {
	testCases := []struct {
		port     int
		expected string
	}{
		{27015, "2815"},
		{27016, "2816"},
		{27025, "2825"},
		{951, "28951"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, gotvPort(tc.port))
	}
}

func TestGenerateRconPassword(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		password, err := generateRconPassword(rconPasswordLength)
		require.NoError(t, err)
		require.Len(t, password, rconPasswordLength)
		for _, r := range password {
			assert.Contains(t, rconPasswordChars, string(r))
		}
		seen[password] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestLifecycleService_findAvailableAllocation(t *testing.T) {
	ctx := context.Background()
	t.Run("Success First unassigned allocation wins", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return([]pterodactyl.Allocation{
			{ID: 31, Port: 27015, Assigned: true},
			{ID: 32, Port: 27016, Assigned: false},
			{ID: 33, Port: 27017, Assigned: false},
		}, nil)
		allocation, err := s.(*lifecycleService).findAvailableAllocation(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, allocation)
		assert.Equal(t, int64(32), allocation.ID)
	})
	t.Run("Success Exhausted node returns nil", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return([]pterodactyl.Allocation{
			{ID: 31, Port: 27015, Assigned: true},
		}, nil)
		allocation, err := s.(*lifecycleService).findAvailableAllocation(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, allocation)
	})
}

func TestLifecycleService_CreateServer(t *testing.T) {
	ctx := context.Background()
	node := pterodactyl.Node{ID: 1, Name: "node-a"}
	allocations := []pterodactyl.Allocation{
		{ID: 31, IPAlias: "203.0.113.10", Port: 27016, Assigned: false},
	}
	user := pterodactyl.User{ID: 5, Username: "fleet-owner"}
	egg := pterodactyl.Egg{ID: 15, DockerImage: "quay.io/pterodactyl/core:source", Startup: "./srcds_run"}
	account := steam.Account{SteamID: "7656119000000001", LoginToken: "AAAA1111"}

	t.Run("Success Remote server created and local row promoted", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetNode(gomock.Any(), int64(1)).Return(node, nil)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return(allocations, nil)
		m.nodeRepo.EXPECT().GetByExternalID(gomock.Any(), int64(1)).Return(model.Node{ID: 101}, nil)
		m.panel.EXPECT().GetUser(gomock.Any(), int64(5)).Return(user, nil)
		m.panel.EXPECT().GetEgg(gomock.Any(), int64(5), int64(15)).Return(egg, nil)
		m.tokens.EXPECT().CreateAccount(gomock.Any(), 730, "node-a-27016").Return(account, nil)
		m.serverRepo.EXPECT().CreateServer(gomock.Any(), model.Server{Status: model.ServerStatusPendingInstall}).
			Return(model.Server{ID: 201, Status: model.ServerStatusPendingInstall}, nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil).Times(2)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.panel.EXPECT().CreateServer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload map[string]any) (pterodactyl.Server, error) {
				assert.Equal(t, "node-a-27016", payload["name"])
				assert.Equal(t, "201", payload["external_id"])
				assert.Equal(t, true, payload["skip_scripts"])
				assert.Equal(t, false, payload["start_on_completion"])
				env, ok := payload["environment"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "de_dust2", env["SRCDS_MAP"])
				assert.Equal(t, "740", env["SRCDS_APPID"])
				assert.Equal(t, "2", env["GAME_MODE"])
				assert.Equal(t, "0", env["GAME_TYPE"])
				assert.Equal(t, "AAAA1111", env["STEAM_ACC"])
				assert.Equal(t, "2816", env["GOTV_PORT"])
				assert.Len(t, env["RCON_PASSWORD"], rconPasswordLength)
				limits, ok := payload["limits"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, 1000, limits["io"])
				allocation, ok := payload["allocation"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, int64(31), allocation["default"])
				return pterodactyl.Server{ID: 10, Name: "node-a-27016", UUID: "uuid-10"}, nil
			})
		m.serverRepo.EXPECT().UpdateServer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, server model.Server) (model.Server, error) {
				assert.Equal(t, int64(201), server.ID)
				require.NotNil(t, server.ServerID)
				assert.Equal(t, int64(10), *server.ServerID)
				assert.Equal(t, model.ServerStatusProvisioned, server.Status)
				assert.Equal(t, int64(101), server.PanelNodeID)
				assert.Equal(t, "203.0.113.10", server.IP)
				assert.Equal(t, 27016, server.Port)
				assert.Equal(t, account.SteamID, server.SteamID64)
				return server, nil
			})
		created, err := s.CreateServer(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, model.ServerStatusProvisioned, created.Status)
	})

	t.Run("Success Extra data overrides payload keys", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetNode(gomock.Any(), int64(1)).Return(node, nil)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return(allocations, nil)
		m.nodeRepo.EXPECT().GetByExternalID(gomock.Any(), int64(1)).Return(model.Node{ID: 101}, nil)
		m.panel.EXPECT().GetUser(gomock.Any(), int64(5)).Return(user, nil)
		m.panel.EXPECT().GetEgg(gomock.Any(), int64(5), int64(15)).Return(egg, nil)
		m.tokens.EXPECT().CreateAccount(gomock.Any(), 730, "node-a-27016").Return(account, nil)
		m.serverRepo.EXPECT().CreateServer(gomock.Any(), gomock.Any()).Return(model.Server{ID: 201}, nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil).Times(2)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.panel.EXPECT().CreateServer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload map[string]any) (pterodactyl.Server, error) {
				assert.Equal(t, "custom-name", payload["name"])
				return pterodactyl.Server{ID: 10, Name: "custom-name"}, nil
			})
		m.serverRepo.EXPECT().UpdateServer(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, server model.Server) (model.Server, error) {
				return server, nil
			})
		_, err := s.CreateServer(ctx, 1, map[string]any{"name": "custom-name"})
		require.NoError(t, err)
	})

	t.Run("Failure Remote create failure keeps pending-install row", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetNode(gomock.Any(), int64(1)).Return(node, nil)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return(allocations, nil)
		m.nodeRepo.EXPECT().GetByExternalID(gomock.Any(), int64(1)).Return(model.Node{ID: 101}, nil)
		m.panel.EXPECT().GetUser(gomock.Any(), int64(5)).Return(user, nil)
		m.panel.EXPECT().GetEgg(gomock.Any(), int64(5), int64(15)).Return(egg, nil)
		m.tokens.EXPECT().CreateAccount(gomock.Any(), 730, "node-a-27016").Return(account, nil)
		m.serverRepo.EXPECT().CreateServer(gomock.Any(), gomock.Any()).Return(model.Server{ID: 201}, nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), gomock.Any(), gomock.Any()).Return(nil)
		m.panel.EXPECT().CreateServer(gomock.Any(), gomock.Any()).Return(pterodactyl.Server{}, &apperrors.PanelValidationError{
			Messages: []string{"The name field is required."},
		})
		// No DeleteByID expectation: the pending row must survive.
		_, err := s.CreateServer(ctx, 1, nil)
		require.Error(t, err)
		var validationErr *apperrors.PanelValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("Failure Node missing on panel", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetNode(gomock.Any(), int64(1)).Return(pterodactyl.Node{}, &apperrors.PanelAPIError{StatusCode: 404, Detail: "Not Found"})
		_, err := s.CreateServer(ctx, 1, nil)
		assert.ErrorIs(t, err, apperrors.ErrNodeNotFound)
	})

	t.Run("Failure Node exhausted", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetNode(gomock.Any(), int64(1)).Return(node, nil)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return([]pterodactyl.Allocation{
			{ID: 31, Assigned: true},
		}, nil)
		_, err := s.CreateServer(ctx, 1, nil)
		assert.ErrorIs(t, err, apperrors.ErrAllocationNotFound)
	})

	t.Run("Failure Unresolved owner", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{}, 1, time.Millisecond)
		m.panel.EXPECT().GetNode(gomock.Any(), int64(1)).Return(node, nil)
		m.panel.EXPECT().ListNodeAllocations(gomock.Any(), int64(1)).Return(allocations, nil)
		_, err := s.CreateServer(ctx, 1, nil)
		assert.ErrorIs(t, err, apperrors.ErrOwnerUnresolved)
	})
}

func TestLifecycleService_PowerServer(t *testing.T) {
	ctx := context.Background()
	externalID := int64(10)
	server := model.Server{ID: 201, ServerID: &externalID, Status: model.ServerStatusOffline}
	external := pterodactyl.Server{ID: 10, Identifier: "abcd1234"}

	t.Run("Success Start reaches running after three polls", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().PowerServer(gomock.Any(), "abcd1234", "start").Return(nil)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil).Times(3)
		// First two polls see the install-in-progress conflict, which the wait
		// loop treats as transient.
		installErr := &apperrors.PanelAPIError{
			StatusCode: 409,
			Detail:     "Server \"abcd1234\" has not yet completed its installation process.",
		}
		gomock.InOrder(
			m.panel.EXPECT().GetResourceUsage(gomock.Any(), "abcd1234").Return(pterodactyl.ResourceUsage{}, installErr),
			m.panel.EXPECT().GetResourceUsage(gomock.Any(), "abcd1234").Return(pterodactyl.ResourceUsage{}, installErr),
			m.panel.EXPECT().GetResourceUsage(gomock.Any(), "abcd1234").Return(pterodactyl.ResourceUsage{CurrentState: "running"}, nil),
		)
		m.serverRepo.EXPECT().UpdateServer(gomock.Any(), model.Server{ID: 201, Status: model.ServerStatusRunning}).Return(model.Server{}, nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), model.ActivityActionUpdate, model.ServerStatusRunning).Return(nil)
		assert.NoError(t, s.PowerServer(ctx, server, PowerSignalStart, false))
	})

	t.Run("Failure Start never reaches running within attempt budget", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().PowerServer(gomock.Any(), "abcd1234", "start").Return(nil)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil).Times(24)
		m.panel.EXPECT().GetResourceUsage(gomock.Any(), "abcd1234").Return(pterodactyl.ResourceUsage{CurrentState: "offline"}, nil).Times(24)
		err := s.PowerServer(ctx, server, PowerSignalStart, false)
		assert.ErrorIs(t, err, apperrors.ErrPowerTimeout)
	})

	t.Run("Success Start with skipWait sends signal only", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().PowerServer(gomock.Any(), "abcd1234", "start").Return(nil)
		assert.NoError(t, s.PowerServer(ctx, server, PowerSignalStart, true))
	})

	t.Run("Success Stop records offline without waiting", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().PowerServer(gomock.Any(), "abcd1234", "stop").Return(nil)
		m.serverRepo.EXPECT().UpdateServer(gomock.Any(), model.Server{ID: 201, Status: model.ServerStatusOffline}).Return(model.Server{}, nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), model.ActivityActionUpdate, model.ServerStatusOffline).Return(nil)
		assert.NoError(t, s.PowerServer(ctx, server, PowerSignalStop, false))
	})

	t.Run("Failure Wait cancelled by context", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Hour)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().PowerServer(gomock.Any(), "abcd1234", "start").Return(nil)
		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()
		err := s.PowerServer(cancelCtx, server, PowerSignalStart, false)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Failure Suspended server refuses signals", func(t *testing.T) {
		s, _ := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Millisecond)
		suspended := server
		suspended.Suspended = true
		err := s.PowerServer(ctx, suspended, PowerSignalStart, false)
		assert.ErrorIs(t, err, apperrors.ErrServerSuspended)
	})

	t.Run("Failure Unprovisioned server has nothing to signal", func(t *testing.T) {
		s, _ := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 24, time.Millisecond)
		err := s.PowerServer(ctx, model.Server{ID: 201}, PowerSignalStart, false)
		assert.ErrorIs(t, err, apperrors.ErrServerNotProvisioned)
	})
}

func TestLifecycleService_GetResourceUsage(t *testing.T) {
	ctx := context.Background()
	externalID := int64(10)
	server := model.Server{ID: 201, ServerID: &externalID}
	external := pterodactyl.Server{ID: 10, Identifier: "abcd1234"}

	t.Run("Success Running state passed through", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().GetResourceUsage(gomock.Any(), "abcd1234").Return(pterodactyl.ResourceUsage{
			CurrentState: "running",
			Resources:    map[string]any{"memory_bytes": float64(1024)},
		}, nil)
		usage, state := s.GetResourceUsage(ctx, server)
		assert.Equal(t, ResourceStateRunning, state)
		assert.Equal(t, float64(1024), usage.Resources["memory_bytes"])
	})

	t.Run("Success Install-in-progress error classified as installing", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().GetResourceUsage(gomock.Any(), "abcd1234").Return(pterodactyl.ResourceUsage{}, &apperrors.PanelAPIError{
			StatusCode: 409,
			Detail:     "This server has not yet completed its installation process.",
		})
		_, state := s.GetResourceUsage(ctx, server)
		assert.Equal(t, ResourceStateInstalling, state)
	})

	t.Run("Success Other failures classified as unknown", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(pterodactyl.Server{}, errors.New("connection refused"))
		_, state := s.GetResourceUsage(ctx, server)
		assert.Equal(t, ResourceStateUnknown, state)
	})

	t.Run("Success Unprovisioned server is unknown", func(t *testing.T) {
		s, _ := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		_, state := s.GetResourceUsage(ctx, model.Server{ID: 201})
		assert.Equal(t, ResourceStateUnknown, state)
	})
}

func TestLifecycleService_SuspendServer(t *testing.T) {
	ctx := context.Background()
	externalID := int64(10)
	server := model.Server{ID: 201, ServerID: &externalID}

	t.Run("Success Suspension recorded locally", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().SuspendServer(gomock.Any(), int64(10)).Return(nil)
		m.serverRepo.EXPECT().UpdateServer(gomock.Any(), model.Server{ID: 201, Status: model.ServerStatusSuspended}).Return(model.Server{}, nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), model.ActivityActionUpdate, model.ServerStatusSuspended).Return(nil)
		assert.NoError(t, s.SuspendServer(ctx, server))
	})

	t.Run("Failure Unprovisioned server", func(t *testing.T) {
		s, _ := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		err := s.SuspendServer(ctx, model.Server{ID: 201})
		assert.ErrorIs(t, err, apperrors.ErrServerNotProvisioned)
	})
}

func TestLifecycleService_DeleteServer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Zero id is a no-op", func(t *testing.T) {
		s, _ := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		assert.NoError(t, s.DeleteServer(ctx, 0, "7656119000000001"))
	})

	t.Run("Success Force delete and token cleanup", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(pterodactyl.Server{ID: 10}, nil)
		m.panel.EXPECT().ForceDeleteServer(gomock.Any(), int64(10)).Return(nil)
		m.tokens.EXPECT().DeleteAccount(gomock.Any(), "7656119000000001").Return(nil)
		assert.NoError(t, s.DeleteServer(ctx, 10, "7656119000000001"))
	})

	t.Run("Success Empty steam id skips token cleanup", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(pterodactyl.Server{ID: 10}, nil)
		m.panel.EXPECT().ForceDeleteServer(gomock.Any(), int64(10)).Return(nil)
		assert.NoError(t, s.DeleteServer(ctx, 10, ""))
	})
}

func TestLifecycleService_RemoveServer(t *testing.T) {
	ctx := context.Background()
	externalID := int64(10)
	server := model.Server{ID: 201, ServerID: &externalID, SteamID64: "7656119000000001", Status: model.ServerStatusOffline}

	t.Run("Success Remote and local rows removed", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(pterodactyl.Server{ID: 10}, nil)
		m.panel.EXPECT().ForceDeleteServer(gomock.Any(), int64(10)).Return(nil)
		m.tokens.EXPECT().DeleteAccount(gomock.Any(), "7656119000000001").Return(nil)
		m.serverRepo.EXPECT().DeleteByID(gomock.Any(), int64(201)).Return(nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), model.ActivityActionDelete, model.ServerStatusOffline).Return(nil)
		assert.NoError(t, s.RemoveServer(ctx, server))
	})

	t.Run("Success Panel 404 still removes the local row", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(pterodactyl.Server{}, &apperrors.PanelAPIError{StatusCode: 404, Detail: "Not Found"})
		m.serverRepo.EXPECT().DeleteByID(gomock.Any(), int64(201)).Return(nil)
		m.activityRepo.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).Return(model.ServerActivity{}, nil)
		m.producer.EXPECT().PublishStatusChange(gomock.Any(), int64(201), model.ActivityActionDelete, model.ServerStatusOffline).Return(nil)
		assert.NoError(t, s.RemoveServer(ctx, server))
	})
}

func TestLifecycleService_GetLatestLogContents(t *testing.T) {
	ctx := context.Background()
	externalID := int64(10)
	server := model.Server{ID: 201, ServerID: &externalID}
	external := pterodactyl.Server{ID: 10, Identifier: "abcd1234"}

	t.Run("Success First log file fetched", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().ListFiles(gomock.Any(), "abcd1234", "csgo/logs").Return([]pterodactyl.FileObject{
			{Name: "L0829001.log", File: true},
			{Name: "L0828001.log", File: true},
		}, nil)
		m.panel.EXPECT().GetFileContents(gomock.Any(), "abcd1234", "csgo/logs/L0829001.log").Return("log line", nil)
		contents, err := s.GetLatestLogContents(ctx, server)
		require.NoError(t, err)
		assert.Equal(t, "log line", contents)
	})

	t.Run("Success No log files yet", func(t *testing.T) {
		s, m := newLifecycleServiceForTest(t, Owner{ID: 5, Resolved: true}, 1, time.Millisecond)
		m.panel.EXPECT().GetServer(gomock.Any(), int64(10)).Return(external, nil)
		m.panel.EXPECT().ListFiles(gomock.Any(), "abcd1234", "csgo/logs").Return([]pterodactyl.FileObject{}, nil)
		contents, err := s.GetLatestLogContents(ctx, server)
		require.NoError(t, err)
		assert.Empty(t, contents)
	})
}
