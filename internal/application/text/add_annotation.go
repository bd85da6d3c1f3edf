package text

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
)

type AddAnnotationInput struct {
	SelectedText string
	StartIndex   int
	EndIndex     int
	Title        string
	Description  string
	// OwnerID is nil for unauthenticated callers; the annotation is then
	// ownerless.
	OwnerID *domain.UserID
}

type AddAnnotationResult struct {
	Text       *domain.Text
	Annotation *domain.Annotation
}

// AddAnnotation creates a fresh Text from the selection and an Annotation
// referencing it. Every call creates a new Text row, even for an identical
// selection. Index ordering and bounds against the content are not checked;
// the stored values are whatever the client sent.
type AddAnnotation struct {
	texts ports.TextRepository
}

func NewAddAnnotation(texts ports.TextRepository) *AddAnnotation {
	return &AddAnnotation{texts: texts}
}

func (uc *AddAnnotation) Execute(ctx context.Context, input AddAnnotationInput) (*AddAnnotationResult, error) {
	now := time.Now()
	t := &domain.Text{
		ID:        domain.NewTextID(uuid.New()),
		Content:   input.SelectedText,
		CreatedAt: now,
	}
	a := &domain.Annotation{
		ID:           domain.NewAnnotationID(uuid.New()),
		TextID:       t.ID,
		OwnerID:      input.OwnerID,
		Title:        input.Title,
		Description:  input.Description,
		StartIndex:   input.StartIndex,
		EndIndex:     input.EndIndex,
		SelectedText: input.SelectedText,
		CreatedAt:    now,
	}
	if err := uc.texts.CreateWithAnnotation(ctx, t, a); err != nil {
		return nil, err
	}
	return &AddAnnotationResult{Text: t, Annotation: a}, nil
}
