package socialerrors

import (
	"net/http"

	"go-workhub/internal/shared/apperror"
)

var (
	ErrUnsupportedProvider = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported social provider",
		http.StatusBadRequest,
	)
	ErrMissingExternalID = apperror.New(
		apperror.CodeInvalidInput,
		"External profile id is required",
		http.StatusBadRequest,
	)
)
