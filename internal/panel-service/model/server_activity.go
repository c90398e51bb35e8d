package model

import "time"

const (
	ActivityActionCreate = "create"
	ActivityActionUpdate = "update"
	ActivityActionDelete = "delete"
)

// ServerActivity is an append-only record of lifecycle status transitions.
type ServerActivity struct {
	ID            int64 `gorm:"primaryKey"`
	PanelServerID int64
	Action        string
	Status        string
	CreatedAt     time.Time
}

func (ServerActivity) TableName() string {
	return "panel_server_activities"
}
