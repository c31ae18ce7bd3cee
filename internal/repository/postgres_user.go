package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/jobmatch/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, premium, subscription_status, created_at`

	err := p.db.QueryRow(ctx,
		query,
		user.Email,
		user.Password.Hash).Scan(&user.ID, &user.Premium, &user.SubscriptionStatus, &user.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, email, password_hash, premium, subscription_status, subscription_ref, created_at, updated_at
		FROM users
		WHERE id = $1`

	return scanUser(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, premium, subscription_status, subscription_ref, created_at, updated_at
		FROM users
		WHERE email = $1`

	return scanUser(p.db.QueryRow(ctx, query, email))
}

func (p *PostgresUserRepository) ActivateSubscription(ctx context.Context, id uuid.UUID, subscriptionRef string) error {
	query := `UPDATE users
		SET premium = TRUE, subscription_status = 'active', subscription_ref = $1, updated_at = NOW()
		WHERE id = $2`

	tag, err := p.db.Exec(ctx, query, subscriptionRef, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresUserRepository) LinkSubscription(ctx context.Context, email, providerRef string) (bool, error) {
	query := `UPDATE users
		SET provider_subscription_ref = $1, updated_at = NOW()
		WHERE lower(email) = lower($2)`

	tag, err := p.db.Exec(ctx, query, providerRef, email)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (p *PostgresUserRepository) CancelSubscription(ctx context.Context, subscriptionRef string) (bool, error) {
	query := `UPDATE users
		SET premium = FALSE, subscription_status = 'cancelled', updated_at = NOW()
		WHERE subscription_ref = $1 OR provider_subscription_ref = $1`

	tag, err := p.db.Exec(ctx, query, subscriptionRef)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password.Hash,
		&user.Premium,
		&user.SubscriptionStatus,
		&user.SubscriptionRef,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}
