package handler

import (
	"Panel_Sync_Service/internal/panel-service/api/dto/response"
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"Panel_Sync_Service/internal/panel-service/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SyncHandler interface {
	TriggerSync() gin.HandlerFunc
}

type syncHandler struct {
	logger      Logger
	syncService service.SyncService
}

func (s *syncHandler) TriggerSync() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := s.syncService.SyncAll(c)
		if err != nil {
			if errors.Is(err, apperrors.ErrOwnerUnresolved) {
				c.JSON(http.StatusConflict, response.Response{
					Message: "Panel owner account is unresolved",
				})
				return
			}
			err = fmt.Errorf("SyncHandler.TriggerSync: %w", err)
			s.logger.LoggingError(c, err, "sync run failed", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Sync completed",
		})
	}
}

func NewSyncHandler(logger Logger, syncService service.SyncService) SyncHandler {
	return &syncHandler{
		logger:      logger,
		syncService: syncService,
	}
}
