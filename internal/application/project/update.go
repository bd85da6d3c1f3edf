package project

import (
	"context"
	"time"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
	"github.com/jblavisse/scriptalium/internal/domain/errors"
)

type UpdateInput struct {
	ProjectID     domain.ProjectID
	RequesterID   domain.UserID
	Title         string
	Description   string
	EditorContent string
}

// Update overwrites a project's fields. Only the owner may update; the
// storage layer's default isolation applies, so concurrent updates are
// last-writer-wins.
type Update struct {
	projects ports.ProjectRepository
}

func NewUpdate(projects ports.ProjectRepository) *Update {
	return &Update{projects: projects}
}

func (uc *Update) Execute(ctx context.Context, input UpdateInput) (*domain.Project, error) {
	p, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OwnerID == nil || *p.OwnerID != input.RequesterID {
		return nil, errors.ErrProjectNotFound
	}
	p.Title = input.Title
	p.Description = input.Description
	p.EditorContent = input.EditorContent
	p.UpdatedAt = time.Now()
	if err := uc.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
