package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// projectPayload is the create payload. The img/link URL rules and the title
// and description length bounds mirror what the site's forms enforce.
type projectPayload struct {
	Title       string               `json:"title" validate:"required,min=2,max=200"`
	Description string               `json:"description" validate:"required,min=2,max=200"`
	Img         string               `json:"img" validate:"required,url"`
	Link        string               `json:"link" validate:"required,url"`
	Keywords    models.KeywordsInput `json:"keywords"`
}

// projectUpdatePayload is the partial update payload. omitnil keeps the
// omitted-vs-explicitly-empty distinction: a nil field is skipped, a provided
// empty string still fails its rule.
type projectUpdatePayload struct {
	Title       *string               `json:"title" validate:"omitnil,min=2,max=200"`
	Description *string               `json:"description" validate:"omitnil,min=2,max=200"`
	Img         *string               `json:"img" validate:"omitnil,url"`
	Link        *string               `json:"link" validate:"omitnil,url"`
	Keywords    *models.KeywordsInput `json:"keywords"`
}

// ProjectCollection is the list response shape
type ProjectCollection struct {
	Projects []*models.Project `json:"projects"`
	Total    int               `json:"total"`
}

// getAllProjects returns every project, most recent first
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, ProjectCollection{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// getProject returns a single project by id. A malformed id is a 400, a
// missing row a 404.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject validates the payload and inserts a new project. Accepts
// JSON or the multipart form the dashboard posts (with repeated keyword
// fields).
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodeProjectPayload(r)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		payload.Title = strings.TrimSpace(payload.Title)
		payload.Description = strings.TrimSpace(payload.Description)
		payload.Img = strings.TrimSpace(payload.Img)
		payload.Link = strings.TrimSpace(payload.Link)

		if err := validate.Struct(payload); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		project := models.Project{
			Title:       payload.Title,
			Description: payload.Description,
			Img:         payload.Img,
			Link:        payload.Link,
			Keywords:    models.NormalizeKeywords(payload.Keywords),
		}

		if err := h.projectRepo.Insert(&project); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "project", err))
			return
		}

		h.logger.Info().
			Str("projectID", project.ID.String()).
			Str("userID", ctxGetUserID(r.Context())).
			Msg("project created")

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject merges a partial payload onto the stored project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		var payload projectUpdatePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project update body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validate.Struct(payload); err != nil {
			h.responder.WriteError(w, validationError(err))
			return
		}

		project, err := h.projectRepo.Update(projectID, models.ProjectUpdate{
			Title:       payload.Title,
			Description: payload.Description,
			Img:         payload.Img,
			Link:        payload.Link,
			Keywords:    payload.Keywords,
		})
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.logger.Info().
			Str("projectID", project.ID.String()).
			Str("userID", ctxGetUserID(r.Context())).
			Msg("project updated")

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject removes a project and returns the removed row
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, apiErr := parseProjectID(r)
		if apiErr != nil {
			h.responder.WriteError(w, apiErr)
			return
		}

		project, err := h.projectRepo.Delete(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.logger.Info().
			Str("projectID", project.ID.String()).
			Str("userID", ctxGetUserID(r.Context())).
			Msg("project deleted")

		h.responder.WriteJSON(w, project)
	}
}

func parseProjectID(r *http.Request) (uuid.UUID, *errs.ApiErr) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}

func decodeProjectPayload(r *http.Request) (projectPayload, error) {
	var payload projectPayload

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return payload, err
		}
		payload.Title = r.PostFormValue("title")
		payload.Description = r.PostFormValue("description")
		payload.Img = r.PostFormValue("img")
		payload.Link = r.PostFormValue("link")
		payload.Keywords = models.KeywordList(r.PostForm["keywords"]...)
		return payload, nil
	}

	err := json.NewDecoder(r.Body).Decode(&payload)
	return payload, err
}
