package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
	"fitcoach/internal/repository"
	"fitcoach/internal/service"
)

// CatalogHandler mantiene dependencias para administrar el catalogo de
// arquetipos.
type CatalogHandler struct {
	logger  *zap.Logger
	catalog repository.CatalogRepository
	cache   *service.CachedCatalog
}

func NewCatalogHandler(logger *zap.Logger, catalog repository.CatalogRepository, cache *service.CachedCatalog) *CatalogHandler {
	return &CatalogHandler{
		logger:  logger,
		catalog: catalog,
		cache:   cache,
	}
}

// ListProfiles maneja GET /profiles.
func (h *CatalogHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error("list archetype profiles failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list profiles"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// CreateProfile maneja POST /profiles e invalida el cache del catalogo.
func (h *CatalogHandler) CreateProfile(c *gin.Context) {
	var req struct {
		Name               string             `json:"name" binding:"required"`
		TypicalCombination map[string]float64 `json:"typical_combination" binding:"required"`
		SortOrder          int                `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	for key, value := range req.TypicalCombination {
		if !isDimensionKey(key) || value < 0 || value > 10 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "typical_combination must map dimension keys to values in [0,10]"})
			return
		}
	}

	profile := domain.ArchetypeProfile{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		TypicalCombination: req.TypicalCombination,
		SortOrder:          req.SortOrder,
		CreatedAt:          time.Now().UTC(),
	}

	if err := h.catalog.Create(c.Request.Context(), profile); err != nil {
		h.logger.Error("create archetype profile failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile"})
		return
	}

	if h.cache != nil {
		h.cache.Invalidate(c.Request.Context())
	}

	c.JSON(http.StatusCreated, gin.H{"profile": profile})
}

func isDimensionKey(key string) bool {
	for _, k := range domain.DimensionKeys {
		if k == key {
			return true
		}
	}
	return false
}
