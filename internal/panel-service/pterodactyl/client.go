package pterodactyl

import (
	apperrors "Panel_Sync_Service/internal/panel-service/errors"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// authMode selects which credential a request is signed with. Management
// operations (list/create/suspend/delete) use the application key, end-user
// operations (power/command/resources/files/network) use the client key.
type authMode int

const (
	authApplication authMode = iota
	authClient
)

type Client interface {
	ListLocations(ctx context.Context) ([]Location, error)
	ListNodes(ctx context.Context) ([]Node, error)
	ListServers(ctx context.Context) ([]Server, error)
	ListUsers(ctx context.Context) ([]User, error)
	ListNodeAllocations(ctx context.Context, nodeID int64) ([]Allocation, error)
	GetNode(ctx context.Context, nodeID int64) (Node, error)
	GetServer(ctx context.Context, serverID int64) (Server, error)
	GetUser(ctx context.Context, userID int64) (User, error)
	GetEgg(ctx context.Context, nestID int64, eggID int64) (Egg, error)
	CreateServer(ctx context.Context, payload map[string]any) (Server, error)
	SuspendServer(ctx context.Context, serverID int64) error
	ForceDeleteServer(ctx context.Context, serverID int64) error
	PowerServer(ctx context.Context, identifier string, signal string) error
	SendCommand(ctx context.Context, identifier string, command string) error
	GetResourceUsage(ctx context.Context, identifier string) (ResourceUsage, error)
	UpdateStartupVariable(ctx context.Context, identifier string, key string, value string) error
	ListFiles(ctx context.Context, identifier string, directory string) ([]FileObject, error)
	GetFileContents(ctx context.Context, identifier string, file string) (string, error)
	GetClientServerAllocations(ctx context.Context, identifier string) ([]map[string]any, error)
}

type client struct {
	httpClient *http.Client
	baseURI    string
	appKey     string
	clientKey  string
}

func NewClient(baseURI string, appKey string, clientKey string, requestTimeout time.Duration) Client {
	return &client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURI:   baseURI,
		appKey:    appKey,
		clientKey: clientKey,
	}
}

func (c *client) do(ctx context.Context, mode authMode, method string, path string, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURI+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	key := c.appKey
	if mode == authClient {
		key = c.clientKey
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func parseAPIError(statusCode int, body []byte) error {
	var errResp struct {
		Errors []struct {
			Code   string `json:"code"`
			Detail string `json:"detail"`
		} `json:"errors"`
	}
	var details []string
	if err := json.Unmarshal(body, &errResp); err == nil {
		for _, e := range errResp.Errors {
			details = append(details, e.Detail)
		}
	}
	if statusCode == http.StatusUnprocessableEntity && len(details) > 0 {
		return &apperrors.PanelValidationError{Messages: details}
	}
	detail := string(body)
	if len(details) > 0 {
		detail = details[0]
	}
	return &apperrors.PanelAPIError{StatusCode: statusCode, Detail: detail}
}

// listResource drains a paginated application endpoint. assignRaw, when not
// nil, receives the undecoded attribute map of each item so callers can keep
// the opaque payload alongside the typed fields.
func listResource[T any](ctx context.Context, c *client, path string, assignRaw func(*T, map[string]any)) ([]T, error) {
	return fetchAllPages(ctx, func(ctx context.Context, pageNum int) ([]T, int, error) {
		body, err := c.do(ctx, authApplication, http.MethodGet, fmt.Sprintf("%s?page=%d", path, pageNum), nil)
		if err != nil {
			return nil, 0, err
		}
		var p page
		if err = json.Unmarshal(body, &p); err != nil {
			return nil, 0, fmt.Errorf("decoding %s page: %w", path, err)
		}
		items := make([]T, 0, len(p.Items))
		for _, item := range p.Items {
			var v T
			if err = json.Unmarshal(item, &v); err != nil {
				return nil, 0, fmt.Errorf("decoding %s item: %w", path, err)
			}
			if assignRaw != nil {
				var raw map[string]any
				if err = json.Unmarshal(item, &raw); err != nil {
					return nil, 0, fmt.Errorf("decoding %s item payload: %w", path, err)
				}
				assignRaw(&v, raw)
			}
			items = append(items, v)
		}
		return items, p.Meta.Pagination.TotalPages, nil
	})
}

func (c *client) ListLocations(ctx context.Context) ([]Location, error) {
	locations, err := listResource(ctx, c, "/api/application/locations", func(l *Location, raw map[string]any) {
		l.Raw = raw
	})
	if err != nil {
		return nil, fmt.Errorf("Client.ListLocations: %w", err)
	}
	return locations, nil
}

func (c *client) ListNodes(ctx context.Context) ([]Node, error) {
	nodes, err := listResource(ctx, c, "/api/application/nodes", func(n *Node, raw map[string]any) {
		n.Raw = raw
	})
	if err != nil {
		return nil, fmt.Errorf("Client.ListNodes: %w", err)
	}
	return nodes, nil
}

func (c *client) ListServers(ctx context.Context) ([]Server, error) {
	servers, err := listResource(ctx, c, "/api/application/servers", func(s *Server, raw map[string]any) {
		s.Raw = raw
	})
	if err != nil {
		return nil, fmt.Errorf("Client.ListServers: %w", err)
	}
	return servers, nil
}

func (c *client) ListUsers(ctx context.Context) ([]User, error) {
	users, err := listResource[User](ctx, c, "/api/application/users", nil)
	if err != nil {
		return nil, fmt.Errorf("Client.ListUsers: %w", err)
	}
	return users, nil
}

func (c *client) ListNodeAllocations(ctx context.Context, nodeID int64) ([]Allocation, error) {
	allocations, err := listResource[Allocation](ctx, c, fmt.Sprintf("/api/application/nodes/%d/allocations", nodeID), nil)
	if err != nil {
		return nil, fmt.Errorf("Client.ListNodeAllocations: %w", err)
	}
	return allocations, nil
}

func (c *client) GetNode(ctx context.Context, nodeID int64) (Node, error) {
	var node Node
	body, err := c.do(ctx, authApplication, http.MethodGet, fmt.Sprintf("/api/application/nodes/%d", nodeID), nil)
	if err != nil {
		return node, fmt.Errorf("Client.GetNode: %w", err)
	}
	if err = json.Unmarshal(body, &node); err != nil {
		return node, fmt.Errorf("Client.GetNode: %w", err)
	}
	_ = json.Unmarshal(body, &node.Raw)
	return node, nil
}

func (c *client) GetServer(ctx context.Context, serverID int64) (Server, error) {
	var server Server
	body, err := c.do(ctx, authApplication, http.MethodGet, fmt.Sprintf("/api/application/servers/%d", serverID), nil)
	if err != nil {
		return server, fmt.Errorf("Client.GetServer: %w", err)
	}
	if err = json.Unmarshal(body, &server); err != nil {
		return server, fmt.Errorf("Client.GetServer: %w", err)
	}
	_ = json.Unmarshal(body, &server.Raw)
	return server, nil
}

func (c *client) GetUser(ctx context.Context, userID int64) (User, error) {
	var user User
	body, err := c.do(ctx, authApplication, http.MethodGet, fmt.Sprintf("/api/application/users/%d", userID), nil)
	if err != nil {
		return user, fmt.Errorf("Client.GetUser: %w", err)
	}
	if err = json.Unmarshal(body, &user); err != nil {
		return user, fmt.Errorf("Client.GetUser: %w", err)
	}
	return user, nil
}

func (c *client) GetEgg(ctx context.Context, nestID int64, eggID int64) (Egg, error) {
	var egg Egg
	body, err := c.do(ctx, authApplication, http.MethodGet, fmt.Sprintf("/api/application/nests/%d/eggs/%d", nestID, eggID), nil)
	if err != nil {
		return egg, fmt.Errorf("Client.GetEgg: %w", err)
	}
	if err = json.Unmarshal(body, &egg); err != nil {
		return egg, fmt.Errorf("Client.GetEgg: %w", err)
	}
	return egg, nil
}

func (c *client) CreateServer(ctx context.Context, payload map[string]any) (Server, error) {
	var server Server
	body, err := c.do(ctx, authApplication, http.MethodPost, "/api/application/servers", payload)
	if err != nil {
		return server, fmt.Errorf("Client.CreateServer: %w", err)
	}
	if err = json.Unmarshal(body, &server); err != nil {
		return server, fmt.Errorf("Client.CreateServer: %w", err)
	}
	_ = json.Unmarshal(body, &server.Raw)
	return server, nil
}

func (c *client) SuspendServer(ctx context.Context, serverID int64) error {
	_, err := c.do(ctx, authApplication, http.MethodPost, fmt.Sprintf("/api/application/servers/%d/suspend", serverID), nil)
	if err != nil {
		return fmt.Errorf("Client.SuspendServer: %w", err)
	}
	return nil
}

func (c *client) ForceDeleteServer(ctx context.Context, serverID int64) error {
	_, err := c.do(ctx, authApplication, http.MethodDelete, fmt.Sprintf("/api/application/servers/%d/force", serverID), nil)
	if err != nil {
		return fmt.Errorf("Client.ForceDeleteServer: %w", err)
	}
	return nil
}

func (c *client) PowerServer(ctx context.Context, identifier string, signal string) error {
	_, err := c.do(ctx, authClient, http.MethodPost, fmt.Sprintf("/api/client/servers/%s/power", identifier), map[string]any{
		"signal": signal,
	})
	if err != nil {
		return fmt.Errorf("Client.PowerServer: %w", err)
	}
	return nil
}

func (c *client) SendCommand(ctx context.Context, identifier string, command string) error {
	_, err := c.do(ctx, authClient, http.MethodPost, fmt.Sprintf("/api/client/servers/%s/command", identifier), map[string]any{
		"command": command,
	})
	if err != nil {
		return fmt.Errorf("Client.SendCommand: %w", err)
	}
	return nil
}

func (c *client) GetResourceUsage(ctx context.Context, identifier string) (ResourceUsage, error) {
	var usage ResourceUsage
	body, err := c.do(ctx, authClient, http.MethodGet, fmt.Sprintf("/api/client/servers/%s/resources", identifier), nil)
	if err != nil {
		return usage, fmt.Errorf("Client.GetResourceUsage: %w", err)
	}
	if err = json.Unmarshal(body, &usage); err != nil {
		return usage, fmt.Errorf("Client.GetResourceUsage: %w", err)
	}
	return usage, nil
}

func (c *client) UpdateStartupVariable(ctx context.Context, identifier string, key string, value string) error {
	_, err := c.do(ctx, authClient, http.MethodPut, fmt.Sprintf("/api/client/servers/%s/startup/variable", identifier), map[string]any{
		"key":   key,
		"value": value,
	})
	if err != nil {
		return fmt.Errorf("Client.UpdateStartupVariable: %w", err)
	}
	return nil
}

func (c *client) ListFiles(ctx context.Context, identifier string, directory string) ([]FileObject, error) {
	path := fmt.Sprintf("/api/client/servers/%s/files/list?directory=%s", identifier, url.QueryEscape(directory))
	body, err := c.do(ctx, authClient, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("Client.ListFiles: %w", err)
	}
	var resp struct {
		Items []FileObject `json:"items"`
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("Client.ListFiles: %w", err)
	}
	return resp.Items, nil
}

func (c *client) GetFileContents(ctx context.Context, identifier string, file string) (string, error) {
	path := fmt.Sprintf("/api/client/servers/%s/files/contents?file=%s", identifier, url.QueryEscape(file))
	body, err := c.do(ctx, authClient, http.MethodGet, path, nil)
	if err != nil {
		return "", fmt.Errorf("Client.GetFileContents: %w", err)
	}
	return string(body), nil
}

func (c *client) GetClientServerAllocations(ctx context.Context, identifier string) ([]map[string]any, error) {
	body, err := c.do(ctx, authClient, http.MethodGet, fmt.Sprintf("/api/client/servers/%s/network/allocations", identifier), nil)
	if err != nil {
		return nil, fmt.Errorf("Client.GetClientServerAllocations: %w", err)
	}
	var resp struct {
		Items []map[string]any `json:"items"`
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("Client.GetClientServerAllocations: %w", err)
	}
	return resp.Items, nil
}
