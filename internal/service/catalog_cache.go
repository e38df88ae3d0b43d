package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
	"fitcoach/internal/repository"
)

const catalogCacheKey = "catalog:archetypes"

// CachedCatalog sirve el catalogo de arquetipos desde redis con fallback al
// repositorio. El cache guarda el arreglo JSON completo, asi el orden de
// iteracion (y con el, el desempate del matcher) se preserva.
type CachedCatalog struct {
	client *redis.Client
	repo   repository.CatalogRepository
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedCatalog(client *redis.Client, repo repository.CatalogRepository, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedCatalog{
		client: client,
		repo:   repo,
		ttl:    ttl,
		logger: logger,
	}
}

// ListAll intenta redis primero; ante miss o error cae al repositorio y
// repuebla el cache. Errores de redis nunca fallan la lectura.
func (c *CachedCatalog) ListAll(ctx context.Context) ([]domain.ArchetypeProfile, error) {
	if c.client != nil {
		data, err := c.client.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var profiles []domain.ArchetypeProfile
			if jsonErr := json.Unmarshal(data, &profiles); jsonErr == nil {
				return profiles, nil
			}
		} else if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Warn("catalog cache read failed", zap.Error(err))
		}
	}

	profiles, err := c.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if data, err := json.Marshal(profiles); err == nil {
			if err := c.client.Set(ctx, catalogCacheKey, data, c.ttl).Err(); err != nil && c.logger != nil {
				c.logger.Warn("catalog cache write failed", zap.Error(err))
			}
		}
	}

	return profiles, nil
}

// Invalidate borra la entrada cacheada; se llama al modificar el catalogo.
func (c *CachedCatalog) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, catalogCacheKey).Err(); err != nil && c.logger != nil {
		c.logger.Warn("catalog cache invalidate failed", zap.Error(err))
	}
}
