package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fitcoach/internal/domain"
)

// AnamnesisRepository define el contrato de persistencia para anamnesis.
type AnamnesisRepository interface {
	Upsert(ctx context.Context, a domain.Anamnesis) error
	GetByClientID(ctx context.Context, clientID string) (domain.Anamnesis, error)
	UpdateCalculatedProfile(ctx context.Context, clientID string, result domain.ScoringResult) error
}

// PgAnamnesisRepository implementa AnamnesisRepository usando pgxpool.
type PgAnamnesisRepository struct {
	pool *pgxpool.Pool
}

func NewPgAnamnesisRepository(pool *pgxpool.Pool) *PgAnamnesisRepository {
	return &PgAnamnesisRepository{pool: pool}
}

func (r *PgAnamnesisRepository) Upsert(ctx context.Context, a domain.Anamnesis) error {
	const query = `
		INSERT INTO anamneses (
			client_id, weight_kg, height_cm, diet_quality, water_intake, motivation,
			priority, deadline, sleep_hours, stress_level, daily_sitting_hours,
			has_joint_pain, pain_scale, has_injury_or_surgery, medical_restriction,
			training_history_types, current_frequency, time_without_training,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (client_id) DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			diet_quality = EXCLUDED.diet_quality,
			water_intake = EXCLUDED.water_intake,
			motivation = EXCLUDED.motivation,
			priority = EXCLUDED.priority,
			deadline = EXCLUDED.deadline,
			sleep_hours = EXCLUDED.sleep_hours,
			stress_level = EXCLUDED.stress_level,
			daily_sitting_hours = EXCLUDED.daily_sitting_hours,
			has_joint_pain = EXCLUDED.has_joint_pain,
			pain_scale = EXCLUDED.pain_scale,
			has_injury_or_surgery = EXCLUDED.has_injury_or_surgery,
			medical_restriction = EXCLUDED.medical_restriction,
			training_history_types = EXCLUDED.training_history_types,
			current_frequency = EXCLUDED.current_frequency,
			time_without_training = EXCLUDED.time_without_training,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		a.ClientID,
		a.WeightKg,
		a.HeightCm,
		a.DietQuality,
		a.WaterIntake,
		a.Motivation,
		a.Priority,
		a.Deadline,
		a.SleepHours,
		a.StressLevel,
		a.DailySittingHours,
		a.HasJointPain,
		a.PainScale,
		a.HasInjuryOrSurgery,
		a.MedicalRestriction,
		a.TrainingHistoryTypes,
		a.CurrentFrequency,
		a.TimeWithoutTraining,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *PgAnamnesisRepository) GetByClientID(ctx context.Context, clientID string) (domain.Anamnesis, error) {
	const query = `
		SELECT client_id, weight_kg, height_cm, diet_quality, water_intake, motivation,
			priority, deadline, sleep_hours, stress_level, daily_sitting_hours,
			has_joint_pain, pain_scale, has_injury_or_surgery, medical_restriction,
			training_history_types, current_frequency, time_without_training,
			calculated_profile, calculated_at, created_at, updated_at
		FROM anamneses
		WHERE client_id = $1
	`
	a, err := scanAnamnesis(r.pool.QueryRow(ctx, query, clientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Anamnesis{}, err
	}
	return a, err
}

// scanAnamnesis lee una fila de anamneses. calculated_profile es NULL hasta el
// primer scoring, por eso se lee con un tipo nullable.
func scanAnamnesis(row pgx.Row) (domain.Anamnesis, error) {
	var (
		a       domain.Anamnesis
		profile sql.NullString
	)
	err := row.Scan(
		&a.ClientID,
		&a.WeightKg,
		&a.HeightCm,
		&a.DietQuality,
		&a.WaterIntake,
		&a.Motivation,
		&a.Priority,
		&a.Deadline,
		&a.SleepHours,
		&a.StressLevel,
		&a.DailySittingHours,
		&a.HasJointPain,
		&a.PainScale,
		&a.HasInjuryOrSurgery,
		&a.MedicalRestriction,
		&a.TrainingHistoryTypes,
		&a.CurrentFrequency,
		&a.TimeWithoutTraining,
		&profile,
		&a.CalculatedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return domain.Anamnesis{}, err
	}
	a.CalculatedProfile = profile.String
	return a, nil
}

// UpdateCalculatedProfile sobreescribe los campos calculados de la anamnesis.
// Es la escritura primaria del scoring: si falla, la operacion completa falla.
func (r *PgAnamnesisRepository) UpdateCalculatedProfile(ctx context.Context, clientID string, result domain.ScoringResult) error {
	scoresJSON, err := json.Marshal(result.DimensionScores)
	if err != nil {
		return err
	}

	var imcValor, imcCategoria *string
	if result.IMC != nil {
		imcValor = &result.IMC.Valor
		imcCategoria = &result.IMC.Categoria
	}

	const query = `
		UPDATE anamneses SET
			calculated_profile = $2,
			similarity_score = $3,
			confidence = $4,
			dimension_scores = $5,
			imc_valor = $6,
			imc_categoria = $7,
			nivel_experiencia = $8,
			calculated_at = $9,
			updated_at = $9
		WHERE client_id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		clientID,
		result.Profile,
		result.SimilarityScore,
		result.Confidence,
		scoresJSON,
		imcValor,
		imcCategoria,
		result.NivelExperiencia,
		result.CalculatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
