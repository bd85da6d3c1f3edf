package text

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
)

type CreateTextInput struct {
	Content string
}

type CreateTextResult struct {
	Text *domain.Text
}

// CreateText stores a new immutable text blob. No authentication required.
type CreateText struct {
	texts ports.TextRepository
}

func NewCreateText(texts ports.TextRepository) *CreateText {
	return &CreateText{texts: texts}
}

func (uc *CreateText) Execute(ctx context.Context, input CreateTextInput) (*CreateTextResult, error) {
	t := &domain.Text{
		ID:        domain.NewTextID(uuid.New()),
		Content:   input.Content,
		CreatedAt: time.Now(),
	}
	if err := uc.texts.CreateText(ctx, t); err != nil {
		return nil, err
	}
	return &CreateTextResult{Text: t}, nil
}
