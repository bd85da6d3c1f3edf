package project

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
	"github.com/jblavisse/scriptalium/internal/domain/errors"
)

// Delete removes a project. Only the owner may delete.
type Delete struct {
	projects ports.ProjectRepository
}

func NewDelete(projects ports.ProjectRepository) *Delete {
	return &Delete{projects: projects}
}

func (uc *Delete) Execute(ctx context.Context, projectID domain.ProjectID, requesterID domain.UserID) error {
	p, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p == nil || p.OwnerID == nil || *p.OwnerID != requesterID {
		return errors.ErrProjectNotFound
	}
	return uc.projects.Delete(ctx, projectID)
}
