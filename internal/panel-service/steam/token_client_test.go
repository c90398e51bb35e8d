package steam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, handler http.Handler) TokenService {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTokenService(srv.URL, "steam-api-key", 5*time.Second)
}

func TestTokenService_CreateAccount(t *testing.T) {
	service := newTestTokenService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/IGameServersService/CreateAccount/v1/", r.URL.Path)
		assert.Equal(t, "steam-api-key", r.URL.Query().Get("key"))
		assert.Equal(t, "730", r.URL.Query().Get("appid"))
		assert.Equal(t, "node-a-27015", r.URL.Query().Get("memo"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"response": map[string]any{
				"steamid":     "7656119000000001",
				"login_token": "AAAA1111",
				"memo":        "node-a-27015",
			},
		})
	}))
	account, err := service.CreateAccount(context.Background(), 730, "node-a-27015")
	require.NoError(t, err)
	assert.Equal(t, "7656119000000001", account.SteamID)
	assert.Equal(t, "AAAA1111", account.LoginToken)
}

func TestTokenService_GetAccountList(t *testing.T) {
	t.Run("Success Servers list decoded", func(t *testing.T) {
		service := newTestTokenService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/IGameServersService/GetAccountList/v1/", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"response": map[string]any{
					"servers": []map[string]any{
						{"steamid": "7656119000000001", "login_token": "AAAA1111"},
						{"steamid": "7656119000000002", "login_token": "BBBB2222", "is_expired": true},
					},
				},
			})
		}))
		accounts, err := service.GetAccountList(context.Background())
		require.NoError(t, err)
		require.Len(t, accounts, 2)
		assert.Equal(t, "AAAA1111", accounts[0].LoginToken)
		assert.True(t, accounts[1].IsExpired)
	})

	t.Run("Failure Non-2xx surfaces as error", func(t *testing.T) {
		service := newTestTokenService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		_, err := service.GetAccountList(context.Background())
		assert.Error(t, err)
	})
}

func TestTokenService_DeleteAccount(t *testing.T) {
	service := newTestTokenService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/IGameServersService/DeleteAccount/v1/", r.URL.Path)
		assert.Equal(t, "7656119000000001", r.URL.Query().Get("steamid"))
		w.WriteHeader(http.StatusOK)
	}))
	assert.NoError(t, service.DeleteAccount(context.Background(), "7656119000000001"))
}
