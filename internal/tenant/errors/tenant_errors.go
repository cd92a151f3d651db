package tenanterrors

import (
	"net/http"

	"careflow-sync/internal/shared/apperror"
)

var (
	ErrTenantNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tenant not found",
		http.StatusNotFound,
	)
	ErrInvalidTenantSettings = apperror.New(
		apperror.CodeInvalidState,
		"Tenant settings could not be parsed",
		http.StatusBadRequest,
	)
)
