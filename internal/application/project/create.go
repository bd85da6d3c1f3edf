package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
)

type CreateInput struct {
	// OwnerID comes from the authenticated identity, never from the client.
	OwnerID       domain.UserID
	Title         string
	Description   string
	EditorContent string
}

type CreateResult struct {
	Project *domain.Project
}

// Create creates a project owned by the requesting user.
type Create struct {
	projects ports.ProjectRepository
}

func NewCreate(projects ports.ProjectRepository) *Create {
	return &Create{projects: projects}
}

func (uc *Create) Execute(ctx context.Context, input CreateInput) (*CreateResult, error) {
	now := time.Now()
	ownerID := input.OwnerID
	p := &domain.Project{
		ID:            domain.NewProjectID(uuid.New()),
		OwnerID:       &ownerID,
		Title:         input.Title,
		Description:   input.Description,
		EditorContent: input.EditorContent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return &CreateResult{Project: p}, nil
}
