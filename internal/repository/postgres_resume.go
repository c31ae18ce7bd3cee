package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/jobmatch/internal/domain"
)

type PostgresResumeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresResumeRepository(db *pgxpool.Pool) *PostgresResumeRepository {
	return &PostgresResumeRepository{
		db: db,
	}
}

func (p *PostgresResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (user_id, original_text, skills, experience, object_key)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		resume.UserID,
		resume.OriginalText,
		resume.Skills,
		resume.Experience,
		resume.ObjectKey,
	).Scan(&resume.ID, &resume.CreatedAt)
}

func (p *PostgresResumeRepository) GetLatestByUserId(ctx context.Context, userId uuid.UUID) (*domain.Resume, error) {
	query := `
		SELECT id, user_id, original_text, skills, experience, object_key, created_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var resume domain.Resume

	err := p.db.QueryRow(ctx, query, userId).Scan(
		&resume.ID,
		&resume.UserID,
		&resume.OriginalText,
		&resume.Skills,
		&resume.Experience,
		&resume.ObjectKey,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &resume, nil
}
