package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"admin-auth/internal/domain"
)

// PgOTPRepository implementa OTPRepository usando pgxpool.
type PgOTPRepository struct {
	pool *pgxpool.Pool
}

func NewPgOTPRepository(pool *pgxpool.Pool) *PgOTPRepository {
	return &PgOTPRepository{pool: pool}
}

func (r *PgOTPRepository) Insert(ctx context.Context, code domain.OneTimeCode) error {
	const query = `
		INSERT INTO otp_codes (email, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.pool.Exec(ctx, query,
		code.Email,
		code.CodeHash,
		code.ExpiresAt,
		code.CreatedAt,
	)
	return err
}

func (r *PgOTPRepository) FindByEmailAndHash(ctx context.Context, email, codeHash string) (domain.OneTimeCode, error) {
	const query = `
		SELECT email, code_hash, expires_at, created_at
		FROM otp_codes
		WHERE email = $1 AND code_hash = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	var c domain.OneTimeCode
	err := r.pool.QueryRow(ctx, query, email, codeHash).Scan(
		&c.Email,
		&c.CodeHash,
		&c.ExpiresAt,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.OneTimeCode{}, ErrNotFound
	}
	return c, err
}

func (r *PgOTPRepository) DeleteAllForEmail(ctx context.Context, email string) (int64, error) {
	const query = `DELETE FROM otp_codes WHERE email = $1`
	tag, err := r.pool.Exec(ctx, query, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
