package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    Mailer
}

func newContactHandler(mailer Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

type contactPayload struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// contactResponse reports receipt and delivery separately: a message is
// received even when relaying it to the owner's inbox fails, and Ok only
// reflects delivery.
type contactResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// submitMessage validates a contact-form submission and relays it via the
// mailer. Validation failures are 400s before any delivery attempt; delivery
// failures still return 200 with ok=false and a delivery-specific message.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeContactPayload(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload.Name = strings.TrimSpace(payload.Name)
		payload.Email = strings.TrimSpace(payload.Email)
		payload.Message = strings.TrimSpace(payload.Message)

		if err := validate.Struct(payload); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		h.logger.Info().
			Str("name", payload.Name).
			Str("email", payload.Email).
			Msg("Received contact message")

		response := contactResponse{
			Name:  payload.Name,
			Email: payload.Email,
		}

		switch sendErr := h.mailer.SendContact(r.Context(), payload.Name, payload.Email, payload.Message); {
		case sendErr == nil:
			response.Ok = true
			response.Message = "Email sent successfully"
		case errs.IsEmailNotConfigured(sendErr):
			h.logger.Warn().Msg("Contact message received but email is not configured")
			response.Message = "Message received (email not configured)"
		default:
			h.logger.Error().Err(sendErr).Msg("Contact message received but delivery failed")
			response.Message = "Message received but email failed: " + sendErr.Error()
		}

		h.responder.WriteJSON(w, response)
	}
}

func decodeContactPayload(r *http.Request) (contactPayload, error) {
	var payload contactPayload

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/json") {
		err := json.NewDecoder(r.Body).Decode(&payload)
		return payload, err
	}

	// The contact form posts url-encoded or multipart form data.
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return payload, err
		}
	} else if err := r.ParseForm(); err != nil {
		return payload, err
	}

	payload.Name = r.PostFormValue("name")
	payload.Email = r.PostFormValue("email")
	payload.Message = r.PostFormValue("message")
	return payload, nil
}
