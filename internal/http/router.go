package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcoach/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	jwtSvc *service.JWTService,
	trainerH *TrainerHandler,
	clientH *ClientHandler,
	anamnesisH *AnamnesisHandler,
	catalogH *CatalogHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	// Rutas publicas.
	r.POST("/trainers", trainerH.Register)

	auth := r.Group("/auth")
	auth.POST("/login", trainerH.Login)
	auth.POST("/refresh", trainerH.RefreshToken)
	auth.POST("/logout", trainerH.Logout)

	// Todo lo demas exige un access token valido.
	protected := r.Group("", JWTAuthMiddleware(jwtSvc))

	clients := protected.Group("/clients")
	clients.POST("", clientH.CreateClient)
	clients.GET("", clientH.ListClients)
	clients.GET("/:id", clientH.GetClient)
	clients.GET("/:id/similar", clientH.SimilarClients)
	clients.PUT("/:id/anamnesis", anamnesisH.UpsertAnamnesis)
	clients.GET("/:id/anamnesis", anamnesisH.GetAnamnesis)
	clients.POST("/:id/profile/calculate", anamnesisH.CalculateProfile)
	clients.POST("/:id/workout-suggestion", anamnesisH.SuggestWorkout)

	profiles := protected.Group("/profiles")
	profiles.GET("", catalogH.ListProfiles)
	profiles.POST("", catalogH.CreateProfile)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
