package employeeerrors

import (
	"net/http"

	"careflow-sync/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found in this tenant",
		http.StatusNotFound,
	)
)
