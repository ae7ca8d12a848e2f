package api

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxAvatarBytes = 8 << 20

type heroHandler struct {
	responder Responder
	logger    zerolog.Logger
	heroRepo  *database.HeroRepo
}

func newHeroHandler(heroRepo *database.HeroRepo) heroHandler {
	logger := log.With().Str("handlerName", "heroHandler").Logger()

	return heroHandler{
		responder: NewResponder(logger),
		logger:    logger,
		heroRepo:  heroRepo,
	}
}

// heroUpdatePayload is the partial hero payload. A provided avatar must be a
// data URL or empty (empty falls back to the placeholder); the short
// description is truncated during the merge rather than rejected.
type heroUpdatePayload struct {
	Avatar           *string `json:"avatar" validate:"omitnil,omitempty,startswith=data:"`
	FullName         *string `json:"fullName" validate:"omitnil,max=200"`
	ShortDescription *string `json:"shortDescription"`
	LongDescription  *string `json:"longDescription" validate:"omitnil,max=5000"`
}

// getHero returns the singleton profile record
func (h heroHandler) getHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hero, err := h.heroRepo.Get()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "hero", err))
			return
		}
		// Startup seeding makes this unreachable in practice, but the
		// accessor has to tolerate an empty table.
		if hero == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("hero not found"))
			return
		}

		h.responder.WriteJSON(w, hero)
	}
}

// updateHero merge-upserts the hero record. Accepts JSON or the multipart
// form the dashboard posts; an uploaded avatarFile part is converted to a
// data URL before the merge, overriding any avatar field.
func (h heroHandler) updateHero() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := h.decodeHeroPayload(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := validate.Struct(payload); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		hero, dbErr := h.heroRepo.Upsert(models.HeroUpdate{
			Avatar:           payload.Avatar,
			FullName:         payload.FullName,
			ShortDescription: payload.ShortDescription,
			LongDescription:  payload.LongDescription,
		})
		if dbErr != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("upsert", "hero", dbErr))
			return
		}

		h.logger.Info().
			Str("heroID", hero.ID.String()).
			Str("userID", ctxGetUserID(r.Context())).
			Msg("hero updated")

		h.responder.WriteJSON(w, hero)
	}
}

func (h heroHandler) decodeHeroPayload(r *http.Request) (heroUpdatePayload, *errs.ApiErr) {
	var payload heroUpdatePayload

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode hero update body")
			return payload, errs.NewBadRequestError("malformed request body")
		}
		return payload, nil
	}

	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse hero multipart form")
		return payload, errs.NewBadRequestError("malformed multipart form")
	}

	formValue := func(key string) *string {
		if values, ok := r.MultipartForm.Value[key]; ok && len(values) > 0 {
			return &values[0]
		}
		return nil
	}

	payload.Avatar = formValue("avatar")
	payload.FullName = formValue("fullName")
	payload.ShortDescription = formValue("shortDescription")
	payload.LongDescription = formValue("longDescription")

	// An uploaded file wins over the avatar form field.
	if file, header, err := r.FormFile("avatarFile"); err == nil {
		defer file.Close()

		dataURL, convErr := fileToDataURL(file, header.Header.Get("Content-Type"))
		if convErr != nil {
			h.logger.Error().Err(convErr).Msg("Failed to read avatar upload")
			return payload, errs.NewInvalidFieldError("avatarFile", "could not read uploaded image")
		}
		payload.Avatar = &dataURL
	}

	return payload, nil
}

func fileToDataURL(file io.Reader, declaredType string) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxAvatarBytes {
		return "", fmt.Errorf("avatar exceeds %d bytes", maxAvatarBytes)
	}

	mimeType := declaredType
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("avatar must be an image, got %s", mimeType)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
