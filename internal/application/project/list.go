package project

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
)

// List returns a user's projects, newest first. It backs both the
// owner-scoped listing and the public per-user listing; the latter
// deliberately performs no ownership check (any caller may enumerate any
// user's projects, matching the by-design public endpoint).
type List struct {
	projects ports.ProjectRepository
}

func NewList(projects ports.ProjectRepository) *List {
	return &List{projects: projects}
}

func (uc *List) Execute(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	return uc.projects.ListByOwner(ctx, ownerID)
}
