package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jblavisse/scriptalium/internal/application/text"
	"github.com/jblavisse/scriptalium/internal/domain"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/middleware"
)

// MsgInvalidData is the annotation endpoint's 400 body, kept as a bare
// {"error": ...} envelope for compatibility with the existing frontend.
const MsgInvalidData = "Invalid data"

// TextsHandler serves text creation and the combined text+annotation flow.
// Neither endpoint requires authentication; when a valid access cookie is
// present the annotation is attributed to the caller.
type TextsHandler struct {
	createText    *text.CreateText
	addAnnotation *text.AddAnnotation
	log           zerolog.Logger
}

func NewTextsHandler(createText *text.CreateText, addAnnotation *text.AddAnnotation, log zerolog.Logger) *TextsHandler {
	return &TextsHandler{
		createText:    createText,
		addAnnotation: addAnnotation,
		log:           log,
	}
}

func (h *TextsHandler) CreateText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	result, err := h.createText.Execute(r.Context(), text.CreateTextInput{Content: body.Content})
	if err != nil {
		h.log.Error().Err(err).Msg("create text failed")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":         result.Text.ID.String(),
		"content":    result.Text.Content,
		"created_at": result.Text.CreatedAt.Format(time.RFC3339Nano),
	})
}

// AddAnnotation creates a fresh Text from the selection plus an Annotation
// over it. selected_text, start_index and end_index must all be present;
// index ordering and bounds are not checked (stored as submitted).
func (h *TextsHandler) AddAnnotation(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SelectedText *string `json:"selected_text"`
		StartIndex   *int    `json:"start_index"`
		EndIndex     *int    `json:"end_index"`
		Title        string  `json:"title"`
		Description  string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": MsgInvalidData})
		return
	}
	if body.SelectedText == nil || body.StartIndex == nil || body.EndIndex == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": MsgInvalidData})
		return
	}
	var ownerID *domain.UserID
	if identity := middleware.IdentityFromContext(r.Context()); identity != nil {
		id := identity.UserID
		ownerID = &id
	}
	result, err := h.addAnnotation.Execute(r.Context(), text.AddAnnotationInput{
		SelectedText: *body.SelectedText,
		StartIndex:   *body.StartIndex,
		EndIndex:     *body.EndIndex,
		Title:        body.Title,
		Description:  body.Description,
		OwnerID:      ownerID,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("add annotation failed")
		writeInternal(w)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"text_id":       result.Text.ID.String(),
		"annotation_id": result.Annotation.ID.String(),
	})
}
