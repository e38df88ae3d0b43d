package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
	"fitcoach/internal/repository"
)

// maxSimilarResults acota el parametro k de la busqueda de similares.
const maxSimilarResults = 50

// ClientHandler mantiene dependencias para endpoints de clientes.
type ClientHandler struct {
	logger  *zap.Logger
	clients repository.ClientRepository
}

func NewClientHandler(logger *zap.Logger, clients repository.ClientRepository) *ClientHandler {
	return &ClientHandler{
		logger:  logger,
		clients: clients,
	}
}

// CreateClient maneja POST /clients.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create client request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	client := domain.Client{
		ID:        uuid.NewString(),
		TrainerID: claims.TrainerID,
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.clients.Create(c.Request.Context(), client); err != nil {
		h.logger.Error("create client failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create client"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"client": client})
}

// ListClients maneja GET /clients y lista los clientes del entrenador autenticado.
func (h *ClientHandler) ListClients(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	clients, err := h.clients.ListByTrainer(c.Request.Context(), claims.TrainerID)
	if err != nil {
		h.logger.Error("list clients failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// GetClient maneja GET /clients/:id.
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, ok := fetchOwnedClient(c, h.logger, h.clients)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

// SimilarClients maneja GET /clients/:id/similar y devuelve los clientes mas
// cercanos en el espacio de dimensiones.
func (h *ClientHandler) SimilarClients(c *gin.Context) {
	client, ok := fetchOwnedClient(c, h.logger, h.clients)
	if !ok {
		return
	}

	k := 5
	if raw := c.Query("k"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			k = parsed
		}
	}
	if k > maxSimilarResults {
		k = maxSimilarResults
	}

	similar, err := h.clients.FindSimilar(c.Request.Context(), client.ID, k)
	if err != nil {
		h.logger.Error("find similar clients failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not find similar clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"similar": similar})
}

// fetchOwnedClient carga el cliente de :id y verifica que pertenezca al
// entrenador autenticado. Un cliente ajeno responde 404, no 403: no se revela
// la existencia de clientes de otros entrenadores.
func fetchOwnedClient(c *gin.Context, logger *zap.Logger, clients repository.ClientRepository) (domain.Client, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return domain.Client{}, false
	}

	clientID := c.Param("id")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client id required"})
		return domain.Client{}, false
	}

	client, err := clients.GetByID(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return domain.Client{}, false
		}
		logger.Error("get client failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch client"})
		return domain.Client{}, false
	}

	if client.TrainerID != claims.TrainerID {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return domain.Client{}, false
	}

	return client, true
}
