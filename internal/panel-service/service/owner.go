package service

import (
	"Panel_Sync_Service/internal/panel-service/pterodactyl"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Owner identifies the panel account whose servers this service is allowed
// to manage. Resolved=false means startup resolution failed; every branch
// that depends on ownership checks this flag explicitly.
type Owner struct {
	ID       int64
	Resolved bool
}

// ResolveOwner looks the configured username up in the panel's user list.
// Resolution failure degrades to an unresolved Owner instead of failing
// startup; sync and deletion decisions then refuse to act on ownership.
func ResolveOwner(ctx context.Context, panel pterodactyl.Client, username string, logger *zap.Logger) Owner {
	users, err := panel.ListUsers(ctx)
	if err != nil {
		logger.Warn("failed to resolve panel owner account", zap.String("username", username), zap.Error(err))
		return Owner{}
	}
	for _, user := range users {
		if user.Username == username {
			return Owner{ID: user.ID, Resolved: true}
		}
	}
	logger.Warn(fmt.Sprintf("panel owner account %q not found in user list", username))
	return Owner{}
}
