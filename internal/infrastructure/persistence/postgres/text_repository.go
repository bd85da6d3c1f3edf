package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
)

const (
	insertTextSQL = `INSERT INTO texts (id, content, created_at) VALUES ($1, $2, $3)`
	selectTextSQL = `SELECT id, content, created_at FROM texts WHERE id = $1`

	insertAnnotationSQL = `INSERT INTO annotations
		(id, text_id, owner_id, title, description, start_index, end_index, selected_text, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	selectAnnotationsSQL = `SELECT id, text_id, owner_id, title, description, start_index, end_index, selected_text, created_at
		FROM annotations WHERE text_id = $1 ORDER BY created_at`
)

// TextRepository implements ports.TextRepository on postgres.
type TextRepository struct {
	pool *pgxpool.Pool
}

func NewTextRepository(pool *pgxpool.Pool) *TextRepository {
	return &TextRepository{pool: pool}
}

func (r *TextRepository) CreateText(ctx context.Context, text *domain.Text) error {
	_, err := r.pool.Exec(ctx, insertTextSQL, text.ID.UUID, text.Content, text.CreatedAt)
	return err
}

func (r *TextRepository) GetText(ctx context.Context, textID domain.TextID) (*domain.Text, error) {
	var t domain.Text
	err := r.pool.QueryRow(ctx, selectTextSQL, textID.UUID).Scan(&t.ID.UUID, &t.Content, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// CreateWithAnnotation inserts the text and its annotation in one
// transaction so a failed annotation never leaves an orphan text.
func (r *TextRepository) CreateWithAnnotation(ctx context.Context, text *domain.Text, annotation *domain.Annotation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, insertTextSQL, text.ID.UUID, text.Content, text.CreatedAt); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, insertAnnotationSQL,
		annotation.ID.UUID, annotation.TextID.UUID, ownerUUID(annotation.OwnerID),
		annotation.Title, annotation.Description, annotation.StartIndex, annotation.EndIndex,
		annotation.SelectedText, annotation.CreatedAt); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TextRepository) ListAnnotations(ctx context.Context, textID domain.TextID) ([]*domain.Annotation, error) {
	rows, err := r.pool.Query(ctx, selectAnnotationsSQL, textID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*domain.Annotation
	for rows.Next() {
		var a domain.Annotation
		var ownerID *uuid.UUID
		if err := rows.Scan(&a.ID.UUID, &a.TextID.UUID, &ownerID, &a.Title, &a.Description,
			&a.StartIndex, &a.EndIndex, &a.SelectedText, &a.CreatedAt); err != nil {
			return nil, err
		}
		if ownerID != nil {
			id := domain.NewUserID(*ownerID)
			a.OwnerID = &id
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Ensure TextRepository implements ports.TextRepository.
var _ ports.TextRepository = (*TextRepository)(nil)
