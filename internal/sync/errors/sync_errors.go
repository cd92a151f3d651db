package syncerrors

import (
	"net/http"

	"careflow-sync/internal/shared/apperror"
)

// The sync contract surfaces every request-level failure as HTTP 400, so
// the auth errors here carry StatusBadRequest rather than 401/403.
var (
	ErrUnauthorized = apperror.New(
		apperror.CodeUnauthorized,
		"Unauthorized",
		http.StatusBadRequest,
	)
	ErrInsufficientPermissions = apperror.New(
		apperror.CodeForbidden,
		"Insufficient permissions",
		http.StatusBadRequest,
	)
	ErrInvalidTenantID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid tenant ID",
		http.StatusBadRequest,
	)
	ErrCareFlowDisabled = apperror.New(
		apperror.CodeInvalidState,
		"CareFlow sync is not enabled for this tenant",
		http.StatusBadRequest,
	)
	ErrTargetUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"CareFlow target store is unavailable",
		http.StatusServiceUnavailable,
	)
)
