package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jblavisse/scriptalium/internal/application/project"
	"github.com/jblavisse/scriptalium/internal/domain"
	domerrors "github.com/jblavisse/scriptalium/internal/domain/errors"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/middleware"
)

const MsgProjectNotFound = "Projet non trouvé"

// ProjectsHandler serves the project CRUD surface. Listing and creation run
// behind optional auth (anonymous list gets an empty array, anonymous create
// gets 401); by-id operations require the owner. The per-user listing is
// public and performs no ownership check.
type ProjectsHandler struct {
	create     *project.Create
	list       *project.List
	get        *project.Get
	update     *project.Update
	deleteProj *project.Delete
	validate   *validator.Validate
	log        zerolog.Logger
}

func NewProjectsHandler(create *project.Create, list *project.List, get *project.Get, update *project.Update, deleteProj *project.Delete, log zerolog.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		create:     create,
		list:       list,
		get:        get,
		update:     update,
		deleteProj: deleteProj,
		validate:   newValidator(),
		log:        log,
	}
}

type projectRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Description   string `json:"description"`
	EditorContent string `json:"editor_content"`
}

type projectResponse struct {
	ID            string  `json:"id"`
	Owner         *string `json:"owner"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	EditorContent string  `json:"editor_content"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func toProjectResponse(p *domain.Project) projectResponse {
	var owner *string
	if p.OwnerID != nil {
		s := p.OwnerID.String()
		owner = &s
	}
	return projectResponse{
		ID:            p.ID.String(),
		Owner:         owner,
		Title:         p.Title,
		Description:   p.Description,
		EditorContent: p.EditorContent,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

func toProjectList(projects []*domain.Project) []projectResponse {
	items := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, toProjectResponse(p))
	}
	return items
}

// List returns the caller's own projects, newest first. Unauthenticated
// callers get an empty array, never a 401.
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeJSON(w, http.StatusOK, []projectResponse{})
		return
	}
	projects, err := h.list.Execute(r.Context(), identity.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("list projects failed")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, toProjectList(projects))
}

// Create creates a project owned by the caller. The owner always comes from
// the access cookie; a client-supplied owner field is ignored.
func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeDetail(w, http.StatusUnauthorized, middleware.MsgTokenInvalid)
		return
	}
	var body projectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeFieldErrors(w, fieldErrorsFromValidator(err))
		return
	}
	result, err := h.create.Execute(r.Context(), project.CreateInput{
		OwnerID:       identity.UserID,
		Title:         body.Title,
		Description:   body.Description,
		EditorContent: body.EditorContent,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("create project failed")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(result.Project))
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeDetail(w, http.StatusUnauthorized, middleware.MsgTokenInvalid)
		return
	}
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	p, err := h.get.Execute(r.Context(), projectID, identity.UserID)
	if err != nil {
		h.writeProjectError(w, err, "get project failed")
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeDetail(w, http.StatusUnauthorized, middleware.MsgTokenInvalid)
		return
	}
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	var body projectRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeFieldErrors(w, fieldErrorsFromValidator(err))
		return
	}
	p, err := h.update.Execute(r.Context(), project.UpdateInput{
		ProjectID:     projectID,
		RequesterID:   identity.UserID,
		Title:         body.Title,
		Description:   body.Description,
		EditorContent: body.EditorContent,
	})
	if err != nil {
		h.writeProjectError(w, err, "update project failed")
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeDetail(w, http.StatusUnauthorized, middleware.MsgTokenInvalid)
		return
	}
	projectID, ok := parseProjectID(w, r)
	if !ok {
		return
	}
	if err := h.deleteProj.Execute(r.Context(), projectID, identity.UserID); err != nil {
		h.writeProjectError(w, err, "delete project failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"detail": "Projet supprimé"})
}

// ListForUser is the public per-user listing. No ownership check: any caller
// may enumerate any user's projects.
func (h *ProjectsHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, MsgProjectNotFound)
		return
	}
	projects, err := h.list.Execute(r.Context(), domain.NewUserID(userID))
	if err != nil {
		h.log.Error().Err(err).Msg("list projects for user failed")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusOK, toProjectList(projects))
}

func (h *ProjectsHandler) writeProjectError(w http.ResponseWriter, err error, logMsg string) {
	if errors.Is(err, domerrors.ErrProjectNotFound) {
		writeDetail(w, http.StatusNotFound, MsgProjectNotFound)
		return
	}
	h.log.Error().Err(err).Msg(logMsg)
	writeInternal(w)
}

func parseProjectID(w http.ResponseWriter, r *http.Request) (domain.ProjectID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeDetail(w, http.StatusNotFound, MsgProjectNotFound)
		return domain.ProjectID{}, false
	}
	return domain.NewProjectID(id), true
}
