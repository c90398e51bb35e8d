package handler

import (
	"Panel_Sync_Service/internal/panel-service/api/dto/request"
	"Panel_Sync_Service/internal/panel-service/api/dto/response"
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"Panel_Sync_Service/internal/panel-service/lock"
	"Panel_Sync_Service/internal/panel-service/model"
	"Panel_Sync_Service/internal/panel-service/service"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type ServerHandler interface {
	CreateServer() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	GetServerActivities() gin.HandlerFunc
	PowerServer() gin.HandlerFunc
	SuspendServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	UpdateEnvironment() gin.HandlerFunc
	SendCommand() gin.HandlerFunc
	GetResourceUsage() gin.HandlerFunc
	GetLatestLog() gin.HandlerFunc
	GetAllocation() gin.HandlerFunc
}

type serverHandler struct {
	logger           Logger
	lifecycleService service.LifecycleService
	serverLocker     lock.ServerLocker
}

func (*serverHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (s *serverHandler) toServerInfoResponse(server model.Server) response.ServerInfoResponse {
	return response.ServerInfoResponse{
		ID:          server.ID,
		ServerID:    server.ServerID,
		Status:      server.Status,
		PanelNodeID: server.PanelNodeID,
		Name:        server.Name,
		UUID:        server.UUID,
		IP:          server.IP,
		Port:        server.Port,
		SteamID64:   server.SteamID64,
		Suspended:   server.Suspended,
		CreatedAt:   server.CreatedAt,
		UpdatedAt:   server.UpdatedAt,
	}
}

// loadServer resolves the :id path parameter to a local server row. A false
// return means the response has already been written.
func (s *serverHandler) loadServer(c *gin.Context) (model.Server, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Id must be an integer",
		})
		return model.Server{}, false
	}
	server, err := s.lifecycleService.GetServer(c, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrServerNotFound) {
			c.JSON(http.StatusNotFound, response.Response{
				Message: "Server not found",
			})
			return model.Server{}, false
		}
		err = fmt.Errorf("ServerHandler.loadServer: %w", err)
		s.logger.LoggingError(c, err, fmt.Sprintf("failed to load server %d", id), zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
		return model.Server{}, false
	}
	return server, true
}

// lockServer serializes mutating operations per server. A false return means
// the response has already been written; the caller must defer the returned
// unlock when true.
func (s *serverHandler) lockServer(c *gin.Context, panelServerID int64) (func(), bool) {
	acquired, err := s.serverLocker.TryLock(c, panelServerID)
	if err != nil {
		err = fmt.Errorf("ServerHandler.lockServer: %w", err)
		s.logger.LoggingError(c, err, fmt.Sprintf("failed to lock server %d", panelServerID), zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
		return nil, false
	}
	if !acquired {
		c.JSON(http.StatusConflict, response.Response{
			Message: "Server is locked by another operation",
		})
		return nil, false
	}
	return func() {
		if unlockErr := s.serverLocker.Unlock(c, panelServerID); unlockErr != nil {
			s.logger.LoggingError(c, unlockErr, fmt.Sprintf("failed to unlock server %d", panelServerID), zap.WarnLevel)
		}
	}, true
}

func (s *serverHandler) CreateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CreateServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		res, err := s.lifecycleService.CreateServer(c, req.NodeID, req.ExtraData)
		if err != nil {
			var validationErr *apperrors.PanelValidationError
			switch {
			case errors.Is(err, apperrors.ErrNodeNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Node not found",
				})
			case errors.Is(err, apperrors.ErrAllocationNotFound):
				c.JSON(http.StatusConflict, response.Response{
					Message: "No free allocation on node",
				})
			case errors.Is(err, apperrors.ErrOwnerUnresolved):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Panel owner account is unresolved",
				})
			case errors.As(err, &validationErr):
				c.JSON(http.StatusUnprocessableEntity, response.Response{
					Message: validationErr.Error(),
				})
			default:
				err = fmt.Errorf("ServerHandler.CreateServer: %w", err)
				s.logger.LoggingError(c, err, "failed to create server", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusCreated, s.toServerInfoResponse(res))
	}
}

func (s *serverHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := s.lifecycleService.GetServers(c)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServers: %w", err)
			s.logger.LoggingError(c, err, "failed to get servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		serversRes := make([]response.ServerInfoResponse, 0)
		for _, server := range servers {
			serversRes = append(serversRes, s.toServerInfoResponse(server))
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (s *serverHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.toServerInfoResponse(server))
	}
}

func (s *serverHandler) GetServerActivities() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		activities, err := s.lifecycleService.GetServerActivities(c, server.ID)
		if err != nil {
			err = fmt.Errorf("ServerHandler.GetServerActivities: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to get activities of server %d", server.ID), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		activitiesRes := make([]response.ActivityResponse, 0)
		for _, activity := range activities {
			activitiesRes = append(activitiesRes, response.ActivityResponse{
				ID:            activity.ID,
				PanelServerID: activity.PanelServerID,
				Action:        activity.Action,
				Status:        activity.Status,
				CreatedAt:     activity.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, activitiesRes)
	}
}

func (s *serverHandler) PowerServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.PowerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		unlock, ok := s.lockServer(c, server.ID)
		if !ok {
			return
		}
		defer unlock()
		err := s.lifecycleService.PowerServer(c, server, req.Signal, req.SkipWait)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerSuspended):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server is suspended",
				})
			case errors.Is(err, apperrors.ErrServerNotProvisioned):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server has no panel server yet",
				})
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Panel server not found",
				})
			case errors.Is(err, apperrors.ErrPowerTimeout):
				c.JSON(http.StatusGatewayTimeout, response.Response{
					Message: fmt.Sprintf("Server did not reach running state after %s signal", req.Signal),
				})
			default:
				err = fmt.Errorf("ServerHandler.PowerServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to send %s signal to server %d", req.Signal, server.ID), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: fmt.Sprintf("Signal %s sent", req.Signal),
		})
	}
}

func (s *serverHandler) SuspendServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		unlock, ok := s.lockServer(c, server.ID)
		if !ok {
			return
		}
		defer unlock()
		err := s.lifecycleService.SuspendServer(c, server)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotProvisioned):
				c.JSON(http.StatusConflict, response.Response{
					Message: "Server has no panel server yet",
				})
			default:
				err = fmt.Errorf("ServerHandler.SuspendServer: %w", err)
				s.logger.LoggingError(c, err, fmt.Sprintf("failed to suspend server %d", server.ID), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server suspended",
		})
	}
}

func (s *serverHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		unlock, ok := s.lockServer(c, server.ID)
		if !ok {
			return
		}
		defer unlock()
		err := s.lifecycleService.RemoveServer(c, server)
		if err != nil {
			err = fmt.Errorf("ServerHandler.DeleteServer: %w", err)
			s.logger.LoggingError(c, err, fmt.Sprintf("failed to delete server %d", server.ID), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted",
		})
	}
}

func (s *serverHandler) UpdateEnvironment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.EnvironmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		err := s.lifecycleService.UpdateEnvironment(c, server, req.Key, req.Value)
		if err != nil {
			s.writeClientOperationError(c, err, fmt.Sprintf("failed to update environment of server %d", server.ID))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Environment updated",
		})
	}
}

func (s *serverHandler) SendCommand() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.CommandRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: s.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		err := s.lifecycleService.SendConsoleCommand(c, server, req.Command)
		if err != nil {
			s.writeClientOperationError(c, err, fmt.Sprintf("failed to send command to server %d", server.ID))
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Command sent",
		})
	}
}

func (s *serverHandler) GetResourceUsage() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		usage, state := s.lifecycleService.GetResourceUsage(c, server)
		c.JSON(http.StatusOK, response.ResourceUsageResponse{
			State:     state,
			Resources: usage.Resources,
		})
	}
}

func (s *serverHandler) GetLatestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		contents, err := s.lifecycleService.GetLatestLogContents(c, server)
		if err != nil {
			s.writeClientOperationError(c, err, fmt.Sprintf("failed to get latest log of server %d", server.ID))
			return
		}
		c.JSON(http.StatusOK, response.LogResponse{
			Contents: contents,
		})
	}
}

func (s *serverHandler) GetAllocation() gin.HandlerFunc {
	return func(c *gin.Context) {
		server, ok := s.loadServer(c)
		if !ok {
			return
		}
		allocation, err := s.lifecycleService.GetServerAllocation(c, server)
		if err != nil {
			s.writeClientOperationError(c, err, fmt.Sprintf("failed to get allocation of server %d", server.ID))
			return
		}
		c.JSON(http.StatusOK, response.AllocationResponse{
			Allocation: allocation,
		})
	}
}

// writeClientOperationError maps the shared failure modes of the
// client-API-backed operations to responses.
func (s *serverHandler) writeClientOperationError(c *gin.Context, err error, errDescription string) {
	switch {
	case errors.Is(err, apperrors.ErrServerNotProvisioned):
		c.JSON(http.StatusConflict, response.Response{
			Message: "Server has no panel server yet",
		})
	case errors.Is(err, apperrors.ErrServerNotFound):
		c.JSON(http.StatusNotFound, response.Response{
			Message: "Panel server not found",
		})
	default:
		s.logger.LoggingError(c, err, errDescription, zap.ErrorLevel)
		c.JSON(http.StatusInternalServerError, response.Response{
			Message: "Internal server error",
		})
	}
}

func NewServerHandler(logger Logger, lifecycleService service.LifecycleService, serverLocker lock.ServerLocker) ServerHandler {
	return &serverHandler{
		logger:           logger,
		lifecycleService: lifecycleService,
		serverLocker:     serverLocker,
	}
}
