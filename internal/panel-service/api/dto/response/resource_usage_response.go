package response

type ResourceUsageResponse struct {
	State     string         `json:"state"`
	Resources map[string]any `json:"resources"`
}

type LogResponse struct {
	Contents string `json:"contents"`
}

type AllocationResponse struct {
	Allocation map[string]any `json:"allocation"`
}
