package model

import "time"

type Location struct {
	ID          int64 `gorm:"primaryKey"`
	ExternalID  int64 `gorm:"uniqueIndex"`
	ShortCode   string
	Description string
	Data        JSONMap
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Location) TableName() string {
	return "panel_locations"
}
