package pterodactyl

import "encoding/json"

// External resource shapes. Only the fields the sync and lifecycle logic
// interpret are typed; the full attribute set is kept in Raw so callers can
// persist the opaque payload untouched.

type Location struct {
	ID    int64          `json:"id"`
	Short string         `json:"short"`
	Long  string         `json:"long"`
	Raw   map[string]any `json:"-"`
}

type Node struct {
	ID          int64          `json:"id"`
	LocationID  int64          `json:"location_id"`
	Name        string         `json:"name"`
	UUID        string         `json:"uuid"`
	Description string         `json:"description"`
	Raw         map[string]any `json:"-"`
}

type Container struct {
	Environment map[string]any `json:"environment"`
}

type AllocationRef struct {
	ID      int64  `json:"id"`
	IP      string `json:"ip"`
	IPAlias string `json:"ip_alias"`
	Port    int    `json:"port"`
}

type Server struct {
	ID         int64          `json:"id"`
	ExternalID string         `json:"external_id"`
	UUID       string         `json:"uuid"`
	Identifier string         `json:"identifier"`
	Name       string         `json:"name"`
	Node       int64          `json:"node"`
	User       int64          `json:"user"`
	Suspended  bool           `json:"suspended"`
	Container  Container      `json:"container"`
	Allocation *AllocationRef `json:"allocation_object"`
	Raw        map[string]any `json:"-"`
}

type Allocation struct {
	ID       int64  `json:"id"`
	IP       string `json:"ip"`
	IPAlias  string `json:"ip_alias"`
	Port     int    `json:"port"`
	Assigned bool   `json:"assigned"`
}

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Egg struct {
	ID          int64  `json:"id"`
	DockerImage string `json:"docker_image"`
	Startup     string `json:"startup"`
}

type ResourceUsage struct {
	CurrentState string         `json:"current_state"`
	Resources    map[string]any `json:"resources"`
}

type FileObject struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	File bool   `json:"file"`
}

type page struct {
	Items []json.RawMessage `json:"items"`
	Meta  struct {
		Pagination struct {
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}
