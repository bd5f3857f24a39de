package employeeerrors

import (
	"net/http"

	"go-workhub/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A user with the same email already exists",
		http.StatusConflict,
	)
	ErrWrongOrganisation = apperror.New(
		apperror.CodeForbidden,
		"Employee belongs to a different organisation",
		http.StatusForbidden,
	)
	ErrBootstrapUserProtected = apperror.New(
		apperror.CodeForbidden,
		"The bootstrap administrator cannot be deleted",
		http.StatusForbidden,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHourlyRate = apperror.New(
		apperror.CodeInvalidInput,
		"hourly_rate must be numeric",
		http.StatusBadRequest,
	)
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
)
