package routes

import (
	"Panel_Sync_Service/internal/panel-service/api/handler"
	"Panel_Sync_Service/pkg/middleware"

	"github.com/gin-gonic/gin"
)

const (
	ScopeServersRead    = "panel-servers:read"
	ScopeServersCreate  = "panel-servers:create"
	ScopeServersControl = "panel-servers:control"
	ScopeServersDelete  = "panel-servers:delete"
	ScopeSyncTrigger    = "panel-sync:trigger"
)

func AddServerRoutes(r *gin.Engine, serverHandler handler.ServerHandler, syncHandler handler.SyncHandler, m middleware.AuthMiddleware) {
	serverRoutes := r.Group("/servers")
	serverRoutes.POST("", m.CheckUserPermission(ScopeServersCreate), serverHandler.CreateServer())
	serverRoutes.GET("", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServers())
	serverRoutes.GET("/:id", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServer())
	serverRoutes.DELETE("/:id", m.CheckUserPermission(ScopeServersDelete), serverHandler.DeleteServer())
	serverRoutes.GET("/:id/activities", m.CheckUserPermission(ScopeServersRead), serverHandler.GetServerActivities())
	serverRoutes.POST("/:id/power", m.CheckUserPermission(ScopeServersControl), serverHandler.PowerServer())
	serverRoutes.POST("/:id/suspend", m.CheckUserPermission(ScopeServersControl), serverHandler.SuspendServer())
	serverRoutes.PATCH("/:id/environment", m.CheckUserPermission(ScopeServersControl), serverHandler.UpdateEnvironment())
	serverRoutes.POST("/:id/command", m.CheckUserPermission(ScopeServersControl), serverHandler.SendCommand())
	serverRoutes.GET("/:id/resources", m.CheckUserPermission(ScopeServersRead), serverHandler.GetResourceUsage())
	serverRoutes.GET("/:id/logs/latest", m.CheckUserPermission(ScopeServersRead), serverHandler.GetLatestLog())
	serverRoutes.GET("/:id/allocation", m.CheckUserPermission(ScopeServersRead), serverHandler.GetAllocation())

	r.POST("/sync", m.CheckUserPermission(ScopeSyncTrigger), syncHandler.TriggerSync())
}
