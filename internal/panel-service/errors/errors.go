package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrLocationNotFound     = errors.New("location not found")
	ErrNodeNotFound         = errors.New("node not found")
	ErrAllocationNotFound   = errors.New("allocation not found")
	ErrServerNotFound       = errors.New("server not found")
	ErrServerSuspended      = errors.New("server is suspended")
	ErrServerNotProvisioned = errors.New("server has no panel server id")
	ErrOwnerUnresolved      = errors.New("panel owner account is unresolved")
	ErrPowerTimeout         = errors.New("server power wait timed out")
)

// PanelAPIError carries a non-2xx response from the panel API.
type PanelAPIError struct {
	StatusCode int
	Detail     string
}

func (e *PanelAPIError) Error() string {
	return fmt.Sprintf("panel api error [%d]: %s", e.StatusCode, e.Detail)
}

// PanelValidationError joins the panel's per-field rejection messages for a
// create payload into a single message.
type PanelValidationError struct {
	Messages []string
}

func (e *PanelValidationError) Error() string {
	return strings.Join(e.Messages, ";")
}

// IsPanelNotFound reports whether err is a panel 404 response.
func IsPanelNotFound(err error) bool {
	var apiErr *PanelAPIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
