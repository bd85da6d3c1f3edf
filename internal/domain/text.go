package domain

import (
	"time"

	"github.com/google/uuid"
)

// TextID is a value object for text identity.
type TextID struct{ uuid.UUID }

// NewTextID creates a new TextID from uuid.
func NewTextID(id uuid.UUID) TextID { return TextID{UUID: id} }

// String returns the canonical string form.
func (t TextID) String() string { return t.UUID.String() }

// Text is an immutable blob of annotated content.
type Text struct {
	ID        TextID
	Content   string
	CreatedAt time.Time
}

// AnnotationID is a value object for annotation identity.
type AnnotationID struct{ uuid.UUID }

// NewAnnotationID creates a new AnnotationID from uuid.
func NewAnnotationID(id uuid.UUID) AnnotationID { return AnnotationID{UUID: id} }

// String returns the canonical string form.
func (a AnnotationID) String() string { return a.UUID.String() }

// Annotation marks a range over a Text. OwnerID is nil when the annotation
// was created without authentication. StartIndex/EndIndex are stored as
// submitted; bounds against the text content are not checked.
type Annotation struct {
	ID           AnnotationID
	TextID       TextID
	OwnerID      *UserID
	Title        string
	Description  string
	StartIndex   int
	EndIndex     int
	SelectedText string
	CreatedAt    time.Time
}
