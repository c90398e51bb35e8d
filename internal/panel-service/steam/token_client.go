package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Account is a game-server login-token record issued by the Steam
// IGameServersService API. SteamID doubles as the account id for deletion.
type Account struct {
	SteamID    string `json:"steamid"`
	LoginToken string `json:"login_token"`
	Memo       string `json:"memo"`
	IsDeleted  bool   `json:"is_deleted"`
	IsExpired  bool   `json:"is_expired"`
}

type TokenService interface {
	CreateAccount(ctx context.Context, appID int, memo string) (Account, error)
	GetAccountList(ctx context.Context) ([]Account, error)
	DeleteAccount(ctx context.Context, steamID string) error
}

type tokenService struct {
	httpClient *http.Client
	baseURI    string
	apiKey     string
}

func NewTokenService(baseURI string, apiKey string, requestTimeout time.Duration) TokenService {
	return &tokenService{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseURI: baseURI,
		apiKey:  apiKey,
	}
}

func (s *tokenService) CreateAccount(ctx context.Context, appID int, memo string) (Account, error) {
	params := url.Values{}
	params.Set("appid", strconv.Itoa(appID))
	params.Set("memo", memo)
	var resp struct {
		Response Account `json:"response"`
	}
	err := s.call(ctx, http.MethodPost, "/IGameServersService/CreateAccount/v1/", params, &resp)
	if err != nil {
		return Account{}, fmt.Errorf("TokenService.CreateAccount: %w", err)
	}
	return resp.Response, nil
}

func (s *tokenService) GetAccountList(ctx context.Context) ([]Account, error) {
	var resp struct {
		Response struct {
			Servers []Account `json:"servers"`
		} `json:"response"`
	}
	err := s.call(ctx, http.MethodGet, "/IGameServersService/GetAccountList/v1/", url.Values{}, &resp)
	if err != nil {
		return nil, fmt.Errorf("TokenService.GetAccountList: %w", err)
	}
	return resp.Response.Servers, nil
}

func (s *tokenService) DeleteAccount(ctx context.Context, steamID string) error {
	params := url.Values{}
	params.Set("steamid", steamID)
	err := s.call(ctx, http.MethodPost, "/IGameServersService/DeleteAccount/v1/", params, nil)
	if err != nil {
		return fmt.Errorf("TokenService.DeleteAccount: %w", err)
	}
	return nil
}

func (s *tokenService) call(ctx context.Context, method string, path string, params url.Values, out any) error {
	params.Set("key", s.apiKey)
	requestURL := s.baseURI + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("steam api error [%d]: %s", resp.StatusCode, string(body))
	}
	if out != nil {
		if err = json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
