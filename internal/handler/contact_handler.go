package handler

import (
	"net/http"
	"net/mail"
	"strings"

	"sofa-shop/internal/mailer"
	"sofa-shop/internal/model"

	"github.com/rs/zerolog"
)

// ContactHandler relays contact-form submissions to the shop inbox.
type ContactHandler struct {
	mailer mailer.Mailer
	logger zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(m mailer.Mailer, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		mailer: m,
		logger: logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests. Unlike order notifications,
// a relay failure here is surfaced to the caller: the message would
// otherwise be silently lost.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Message == "" {
		writeDomainError(w, model.ErrMissingFields, h.logger)
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		writeDomainError(w, model.ErrInvalidEmail, h.logger)
		return
	}

	if err := h.mailer.SendContactMessage(r.Context(), &req); err != nil {
		h.logger.Error().Err(err).Str("from", req.Email).Msg("failed to relay contact message")
		writeError(w, http.StatusInternalServerError, "Failed to send your message. Please try again later.", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
