package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// Project is a user-owned editor document. OwnerID is nil for unowned
// records. Mutated only by its owner; UpdatedAt is refreshed on every write.
type Project struct {
	ID            ProjectID
	OwnerID       *UserID
	Title         string
	Description   string
	EditorContent string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
