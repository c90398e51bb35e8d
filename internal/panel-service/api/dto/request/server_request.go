package request

type CreateServerRequest struct {
	NodeID    int64          `json:"node_id" binding:"required,gte=1" validate:"required,gte=1"`
	ExtraData map[string]any `json:"extra_data"`
}

type PowerRequest struct {
	Signal   string `json:"signal" binding:"required,oneof=start stop restart kill" validate:"required,oneof=start stop restart kill"`
	SkipWait bool   `json:"skip_wait"`
}

type CommandRequest struct {
	Command string `json:"command" binding:"required" validate:"required"`
}

type EnvironmentRequest struct {
	Key   string `json:"key" binding:"required" validate:"required"`
	Value string `json:"value" binding:"required" validate:"required"`
}
