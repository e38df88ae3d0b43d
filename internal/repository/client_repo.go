package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"fitcoach/internal/domain"
)

// ClientRepository define el contrato de persistencia para clientes.
type ClientRepository interface {
	Create(ctx context.Context, client domain.Client) error
	GetByID(ctx context.Context, id string) (domain.Client, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]domain.Client, error)
	UpdateScoreProfile(ctx context.Context, clientID, profileName string, confidence float64, vector pgvector.Vector, calculatedAt time.Time) error
	FindSimilar(ctx context.Context, clientID string, k int) ([]domain.SimilarClient, error)
}

// PgClientRepository implementa ClientRepository usando pgxpool.
type PgClientRepository struct {
	pool *pgxpool.Pool
}

func NewPgClientRepository(pool *pgxpool.Pool) *PgClientRepository {
	return &PgClientRepository{pool: pool}
}

func (r *PgClientRepository) Create(ctx context.Context, client domain.Client) error {
	const query = `
		INSERT INTO clients (id, trainer_id, name, email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		client.ID,
		client.TrainerID,
		client.Name,
		client.Email,
		client.CreatedAt,
	)
	return err
}

func (r *PgClientRepository) GetByID(ctx context.Context, id string) (domain.Client, error) {
	const query = `
		SELECT id, trainer_id, name, email, calculated_profile, profile_confidence, calculated_at, created_at
		FROM clients
		WHERE id = $1
	`
	c, err := scanClient(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Client{}, err
	}
	return c, err
}

// scanClient lee una fila de clients. Los campos de perfil calculado son NULL
// hasta el primer scoring, por eso se leen con tipos nullable.
func scanClient(row pgx.Row) (domain.Client, error) {
	var (
		c          domain.Client
		profile    sql.NullString
		confidence sql.NullFloat64
	)
	err := row.Scan(
		&c.ID,
		&c.TrainerID,
		&c.Name,
		&c.Email,
		&profile,
		&confidence,
		&c.CalculatedAt,
		&c.CreatedAt,
	)
	if err != nil {
		return domain.Client{}, err
	}
	c.CalculatedProfile = profile.String
	c.ProfileConfidence = confidence.Float64
	return c, nil
}

func (r *PgClientRepository) ListByTrainer(ctx context.Context, trainerID string) ([]domain.Client, error) {
	const query = `
		SELECT id, trainer_id, name, email, calculated_profile, profile_confidence, calculated_at, created_at
		FROM clients
		WHERE trainer_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// UpdateScoreProfile escribe la copia desnormalizada del perfil calculado,
// incluyendo el vector de dimensiones que alimenta la busqueda de similares.
func (r *PgClientRepository) UpdateScoreProfile(ctx context.Context, clientID, profileName string, confidence float64, vector pgvector.Vector, calculatedAt time.Time) error {
	const query = `
		UPDATE clients SET
			calculated_profile = $2,
			profile_confidence = $3,
			score_vector = $4,
			calculated_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, clientID, profileName, confidence, vector, calculatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// FindSimilar devuelve los k clientes del mismo entrenador mas cercanos en el
// espacio de dimensiones, usando distancia L2 de pgvector.
func (r *PgClientRepository) FindSimilar(ctx context.Context, clientID string, k int) ([]domain.SimilarClient, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT c.id, c.trainer_id, c.name, c.email, c.calculated_profile, c.profile_confidence,
			c.calculated_at, c.created_at, c.score_vector <-> t.score_vector AS distance
		FROM clients c
		JOIN clients t ON t.trainer_id = c.trainer_id
		WHERE t.id = $1
			AND c.id <> t.id
			AND c.score_vector IS NOT NULL
			AND t.score_vector IS NOT NULL
		ORDER BY distance
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, clientID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SimilarClient
	for rows.Next() {
		var (
			s          domain.SimilarClient
			profile    sql.NullString
			confidence sql.NullFloat64
		)
		if err := rows.Scan(
			&s.Client.ID,
			&s.Client.TrainerID,
			&s.Client.Name,
			&s.Client.Email,
			&profile,
			&confidence,
			&s.Client.CalculatedAt,
			&s.Client.CreatedAt,
			&s.Distance,
		); err != nil {
			return nil, err
		}
		s.Client.CalculatedProfile = profile.String
		s.Client.ProfileConfidence = confidence.Float64
		result = append(result, s)
	}
	return result, rows.Err()
}
