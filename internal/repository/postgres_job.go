package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/jobmatch/internal/domain"
)

type PostgresJobRepository struct {
	db *pgxpool.Pool
}

func NewPostgresJobRepository(db *pgxpool.Pool) *PostgresJobRepository {
	return &PostgresJobRepository{
		db: db,
	}
}

func (p *PostgresJobRepository) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (employer_id, title, description, requirements, salary_range, location)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, boosted, created_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		job.EmployerID,
		job.Title,
		job.Description,
		job.Requirements,
		job.SalaryRange,
		job.Location,
	).Scan(&job.ID, &job.Boosted, &job.CreatedAt)
}

func (p *PostgresJobRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Job, error) {
	query := `
		SELECT id, employer_id, title, description, requirements, salary_range, location, boosted, created_at
		FROM jobs
		WHERE id = $1
	`

	var job domain.Job

	err := p.db.QueryRow(ctx, query, id).Scan(jobFields(&job)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &job, nil
}

func (p *PostgresJobRepository) GetAll(ctx context.Context) ([]*domain.Job, error) {
	query := `
		SELECT id, employer_id, title, description, requirements, salary_range, location, boosted, created_at
		FROM jobs
		ORDER BY boosted DESC, created_at DESC
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []*domain.Job{}

	for rows.Next() {
		var job domain.Job

		err := rows.Scan(jobFields(&job)...)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, &job)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}

func (p *PostgresJobRepository) SetBoosted(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE jobs SET boosted = TRUE WHERE id = $1`

	tag, err := p.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func jobFields(job *domain.Job) []any {
	return []any{
		&job.ID,
		&job.EmployerID,
		&job.Title,
		&job.Description,
		&job.Requirements,
		&job.SalaryRange,
		&job.Location,
		&job.Boosted,
		&job.CreatedAt,
	}
}
