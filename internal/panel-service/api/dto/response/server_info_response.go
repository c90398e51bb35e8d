package response

import "time"

type ServerInfoResponse struct {
	ID          int64     `json:"id"`
	ServerID    *int64    `json:"server_id"`
	Status      string    `json:"status"`
	PanelNodeID int64     `json:"panel_node_id"`
	Name        string    `json:"name"`
	UUID        string    `json:"uuid"`
	IP          string    `json:"ip"`
	Port        int       `json:"port"`
	SteamID64   string    `json:"steam_id_64"`
	Suspended   bool      `json:"suspended"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
