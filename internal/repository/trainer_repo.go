package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitcoach/internal/domain"
)

// TrainerRepository define el contrato de persistencia para entrenadores.
type TrainerRepository interface {
	Create(ctx context.Context, trainer domain.Trainer) error
	GetByID(ctx context.Context, id string) (domain.Trainer, error)
	GetByEmail(ctx context.Context, email string) (domain.Trainer, error)
}

// PgTrainerRepository implementa TrainerRepository usando pgxpool.
type PgTrainerRepository struct {
	pool *pgxpool.Pool
}

func NewPgTrainerRepository(pool *pgxpool.Pool) *PgTrainerRepository {
	return &PgTrainerRepository{pool: pool}
}

func (r *PgTrainerRepository) Create(ctx context.Context, trainer domain.Trainer) error {
	const query = `
		INSERT INTO trainers (id, email, name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		trainer.ID,
		trainer.Email,
		trainer.Name,
		trainer.PasswordHash,
		trainer.CreatedAt,
	)
	return err
}

func (r *PgTrainerRepository) GetByID(ctx context.Context, id string) (domain.Trainer, error) {
	const query = `
		SELECT id, email, name, password_hash, created_at
		FROM trainers
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *PgTrainerRepository) GetByEmail(ctx context.Context, email string) (domain.Trainer, error) {
	const query = `
		SELECT id, email, name, password_hash, created_at
		FROM trainers
		WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *PgTrainerRepository) scanOne(row pgx.Row) (domain.Trainer, error) {
	var t domain.Trainer
	err := row.Scan(
		&t.ID,
		&t.Email,
		&t.Name,
		&t.PasswordHash,
		&t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Trainer{}, err
	}
	return t, err
}
