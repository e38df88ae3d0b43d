package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"fitcoach/internal/domain"
)

// CatalogRepository define el contrato de persistencia para el catalogo de
// arquetipos. ListAll devuelve las entradas en orden estable (sort_order,
// created_at): el desempate del matcher depende de ese orden.
type CatalogRepository interface {
	ListAll(ctx context.Context) ([]domain.ArchetypeProfile, error)
	Create(ctx context.Context, profile domain.ArchetypeProfile) error
}

// PgCatalogRepository implementa CatalogRepository usando pgxpool.
type PgCatalogRepository struct {
	pool *pgxpool.Pool
}

func NewPgCatalogRepository(pool *pgxpool.Pool) *PgCatalogRepository {
	return &PgCatalogRepository{pool: pool}
}

func (r *PgCatalogRepository) ListAll(ctx context.Context) ([]domain.ArchetypeProfile, error) {
	const query = `
		SELECT id, name, typical_combination, sort_order, created_at
		FROM archetype_profiles
		ORDER BY sort_order, created_at
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.ArchetypeProfile
	for rows.Next() {
		var p domain.ArchetypeProfile
		if err := rows.Scan(&p.ID, &p.Name, &p.TypicalCombination, &p.SortOrder, &p.CreatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *PgCatalogRepository) Create(ctx context.Context, profile domain.ArchetypeProfile) error {
	const query = `
		INSERT INTO archetype_profiles (id, name, typical_combination, sort_order, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.TypicalCombination,
		profile.SortOrder,
		profile.CreatedAt,
	)
	return err
}
