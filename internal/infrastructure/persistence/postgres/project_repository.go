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
	insertProjectSQL = `INSERT INTO projects (id, owner_id, title, description, editor_content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	selectProjectSQL = `SELECT id, owner_id, title, description, editor_content, created_at, updated_at FROM projects`
	updateProjectSQL = `UPDATE projects SET title = $2, description = $3, editor_content = $4, updated_at = $5 WHERE id = $1`
	deleteProjectSQL = `DELETE FROM projects WHERE id = $1`
)

// ProjectRepository implements ports.ProjectRepository on postgres.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.pool.Exec(ctx, insertProjectSQL,
		project.ID.UUID, ownerUUID(project.OwnerID), project.Title, project.Description,
		project.EditorContent, project.CreatedAt, project.UpdatedAt)
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	row := r.pool.QueryRow(ctx, selectProjectSQL+` WHERE id = $1`, projectID.UUID)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID domain.UserID) ([]*domain.Project, error) {
	rows, err := r.pool.Query(ctx, selectProjectSQL+` WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID.UUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	_, err := r.pool.Exec(ctx, updateProjectSQL,
		project.ID.UUID, project.Title, project.Description, project.EditorContent, project.UpdatedAt)
	return err
}

func (r *ProjectRepository) Delete(ctx context.Context, projectID domain.ProjectID) error {
	_, err := r.pool.Exec(ctx, deleteProjectSQL, projectID.UUID)
	return err
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var ownerID *uuid.UUID
	err := row.Scan(&p.ID.UUID, &ownerID, &p.Title, &p.Description, &p.EditorContent, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if ownerID != nil {
		id := domain.NewUserID(*ownerID)
		p.OwnerID = &id
	}
	return &p, nil
}

func ownerUUID(ownerID *domain.UserID) *uuid.UUID {
	if ownerID == nil {
		return nil
	}
	return &ownerID.UUID
}

// Ensure ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)
