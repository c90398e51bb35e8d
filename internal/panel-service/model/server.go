package model

import "time"

const (
	ServerStatusPendingInstall = "pending_install"
	ServerStatusProvisioned    = "provisioned"
	ServerStatusInstalling     = "installing"
	ServerStatusRunning        = "running"
	ServerStatusOffline        = "offline"
	ServerStatusSuspended      = "suspended"
)

// Server mirrors one panel server instance. ServerID stays nil until the
// remote object has been created; the local ID is embedded in the creation
// payload as a correlation token.
type Server struct {
	ID              int64  `gorm:"primaryKey"`
	ServerID        *int64 `gorm:"uniqueIndex"`
	Status          string
	PanelNodeID     int64
	Name            string
	UUID            string
	Data            JSONMap
	SteamLoginToken string
	SteamID64       string
	RconPassword    string
	IP              string
	Port            int
	Suspended       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Server) TableName() string {
	return "panel_servers"
}
