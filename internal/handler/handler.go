package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"sofa-shop/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a service error onto an HTTP response. Domain
// errors surface their verbatim message; anything else becomes a generic
// 500 with the detail kept server-side.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("handler error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error: "Something went wrong. Please try again.",
			Code:  model.ErrCodeInternalError,
		})
		return
	}

	status := statusFor(domainErr.Code)
	logger.Warn().
		Str("code", domainErr.Code).
		Int("status", status).
		Str("error", domainErr.Message).
		Msg("request rejected")
	writeJSON(w, status, model.ErrorResponse{Error: domainErr.Message, Code: domainErr.Code})
}

// statusFor maps a domain error code to its HTTP status.
func statusFor(code string) int {
	switch code {
	case model.ErrCodeValidation, model.ErrCodeInvalidJSON, model.ErrCodeInvalidReference, model.ErrCodeInvalidStatus:
		return http.StatusBadRequest
	case model.ErrCodeOrderNotFound, model.ErrCodeProductNotFound, model.ErrCodeCategoryNotFound,
		model.ErrCodeVariantNotFound, model.ErrCodeReviewNotFound:
		return http.StatusNotFound
	case model.ErrCodeDuplicateSlug, model.ErrCodeCategoryInUse, model.ErrCodeProductOrdered:
		return http.StatusConflict
	case model.ErrCodeBadCredentials, model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	case model.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes a request body into dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid request body.")
	}
	return nil
}
