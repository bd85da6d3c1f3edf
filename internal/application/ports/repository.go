package ports

import (
	"context"

	"github.com/jblavisse/scriptalium/internal/domain"
)

// UserRepository defines persistence for users. Lookups return (nil, nil)
// when no row matches. Create returns domain/errors.ErrUsernameTaken or
// ErrEmailTaken on a uniqueness conflict.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
}

// ProjectRepository defines persistence for projects. ListByOwner returns
// newest first.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, projectID domain.ProjectID) error
}

// TextRepository defines persistence for texts and their annotations.
// CreateWithAnnotation writes both rows atomically: a failed annotation
// insert must not leave an orphan text behind.
type TextRepository interface {
	CreateText(ctx context.Context, text *domain.Text) error
	GetText(ctx context.Context, textID domain.TextID) (*domain.Text, error)
	CreateWithAnnotation(ctx context.Context, text *domain.Text, annotation *domain.Annotation) error
	ListAnnotations(ctx context.Context, textID domain.TextID) ([]*domain.Annotation, error)
}
