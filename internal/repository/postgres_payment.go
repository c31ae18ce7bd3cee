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

const paymentColumns = `id, user_id, amount, currency, status, kind, provider, external_ref,
	job_id, description, effect_applied_at, created_at, updated_at`

type PostgresPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPaymentRepository(db *pgxpool.Pool) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{
		db: db,
	}
}

func (p *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (
			user_id,
			amount,
			currency,
			status,
			kind,
			provider,
			external_ref,
			job_id,
			description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		payment.UserID,
		payment.Amount,
		payment.Currency,
		payment.Status,
		payment.Kind,
		payment.Provider,
		payment.ExternalRef,
		payment.JobID,
		payment.Description,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateExternalRef
		}

		return err
	}

	return nil
}

func (p *PostgresPaymentRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	return scanPayment(p.db.QueryRow(ctx, query, id))
}

func (p *PostgresPaymentRepository) GetByExternalRef(ctx context.Context, externalRef string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE external_ref = $1`

	return scanPayment(p.db.QueryRow(ctx, query, externalRef))
}

func (p *PostgresPaymentRepository) TransitionStatus(
	ctx context.Context,
	externalRef string,
	status domain.PaymentStatus) (bool, error) {

	query := `
		UPDATE payments
		SET status = $1, updated_at = NOW()
		WHERE external_ref = $2 AND status = 'pending'
	`

	tag, err := p.db.Exec(ctx, query, status, externalRef)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() == 1, nil
}

func (p *PostgresPaymentRepository) MarkEffectApplied(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE payments
		SET effect_applied_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status = 'completed' AND effect_applied_at IS NULL
	`

	_, err := p.db.Exec(ctx, query, id)
	return err
}

func (p *PostgresPaymentRepository) ListUnappliedCompleted(ctx context.Context, limit int) ([]*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE status = 'completed' AND effect_applied_at IS NULL
		ORDER BY created_at
		LIMIT $1`

	rows, err := p.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)

	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}

		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

func (p *PostgresPaymentRepository) GetAllByUserId(
	ctx context.Context,
	userId uuid.UUID,
	pagination domain.Pagination) ([]*domain.Payment, *domain.Metadata, error) {

	query := `SELECT count(*) OVER(), ` + paymentColumns + `
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, userId, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	payments := []*domain.Payment{}

	for rows.Next() {
		var payment domain.Payment

		err := rows.Scan(append([]any{&totalRecords}, paymentFields(&payment)...)...)
		if err != nil {
			return nil, nil, err
		}

		payments = append(payments, &payment)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return payments, domain.NewMetadata(totalRecords, pagination), nil
}

func paymentFields(payment *domain.Payment) []any {
	return []any{
		&payment.ID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.Status,
		&payment.Kind,
		&payment.Provider,
		&payment.ExternalRef,
		&payment.JobID,
		&payment.Description,
		&payment.EffectAppliedAt,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	}
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var payment domain.Payment

	err := row.Scan(paymentFields(&payment)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &payment, nil
}
