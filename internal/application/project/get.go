package project

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
	"github.com/jblavisse/scriptalium/internal/domain/errors"
)

// Get retrieves a project by id for its owner. A project owned by someone
// else is reported as not found, so callers cannot probe for existence.
type Get struct {
	projects ports.ProjectRepository
}

func NewGet(projects ports.ProjectRepository) *Get {
	return &Get{projects: projects}
}

func (uc *Get) Execute(ctx context.Context, projectID domain.ProjectID, requesterID domain.UserID) (*domain.Project, error) {
	p, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p == nil || p.OwnerID == nil || *p.OwnerID != requesterID {
		return nil, errors.ErrProjectNotFound
	}
	return p, nil
}
