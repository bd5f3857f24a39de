package projecterrors

import (
	"net/http"

	"go-workhub/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
	ErrWrongOrganisation = apperror.New(
		apperror.CodeForbidden,
		"Project belongs to a different organisation",
		http.StatusForbidden,
	)
)
