package model

import "time"

type Node struct {
	ID                 int64 `gorm:"primaryKey"`
	ExternalID         int64 `gorm:"uniqueIndex"`
	PanelLocationID    int64
	ExternalLocationID int64
	Name               string
	UUID               string
	Description        string
	Data               JSONMap
	ServerCount        int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Node) TableName() string {
	return "panel_nodes"
}
