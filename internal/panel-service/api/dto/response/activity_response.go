package response

import "time"

type ActivityResponse struct {
	ID            int64     `json:"id"`
	PanelServerID int64     `json:"panel_server_id"`
	Action        string    `json:"action"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
