package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
	"fitcoach/internal/repository"
	"fitcoach/internal/service"
)

// AnamnesisHandler mantiene dependencias para la anamnesis y el scoring.
type AnamnesisHandler struct {
	logger        *zap.Logger
	clients       repository.ClientRepository
	anamneses     repository.AnamnesisRepository
	scoringSvc    *service.ScoringService
	suggestionSvc *service.SuggestionService
}

func NewAnamnesisHandler(
	logger *zap.Logger,
	clients repository.ClientRepository,
	anamneses repository.AnamnesisRepository,
	scoringSvc *service.ScoringService,
	suggestionSvc *service.SuggestionService,
) *AnamnesisHandler {
	return &AnamnesisHandler{
		logger:        logger,
		clients:       clients,
		anamneses:     anamneses,
		scoringSvc:    scoringSvc,
		suggestionSvc: suggestionSvc,
	}
}

// UpsertAnamnesis maneja PUT /clients/:id/anamnesis. Solo acepta campos del
// cuestionario; los campos calculados los escribe unicamente el scoring.
func (h *AnamnesisHandler) UpsertAnamnesis(c *gin.Context) {
	client, ok := fetchOwnedClient(c, h.logger, h.clients)
	if !ok {
		return
	}

	var req struct {
		WeightKg             *float64 `json:"weight_kg"`
		HeightCm             *float64 `json:"height_cm"`
		DietQuality          string   `json:"diet_quality"`
		WaterIntake          string   `json:"water_intake"`
		Motivation           string   `json:"motivation"`
		Priority             *int     `json:"priority"`
		Deadline             string   `json:"deadline"`
		SleepHours           string   `json:"sleep_hours"`
		StressLevel          string   `json:"stress_level"`
		DailySittingHours    *int     `json:"daily_sitting_hours"`
		HasJointPain         bool     `json:"has_joint_pain"`
		PainScale            int      `json:"pain_scale"`
		HasInjuryOrSurgery   bool     `json:"has_injury_or_surgery"`
		MedicalRestriction   string   `json:"medical_restriction"`
		TrainingHistoryTypes []string `json:"training_history_types"`
		CurrentFrequency     string   `json:"current_frequency"`
		TimeWithoutTraining  string   `json:"time_without_training"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid anamnesis request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	now := time.Now().UTC()
	anamnesis := domain.Anamnesis{
		ClientID:             client.ID,
		WeightKg:             req.WeightKg,
		HeightCm:             req.HeightCm,
		DietQuality:          req.DietQuality,
		WaterIntake:          req.WaterIntake,
		Motivation:           req.Motivation,
		Priority:             req.Priority,
		Deadline:             req.Deadline,
		SleepHours:           req.SleepHours,
		StressLevel:          req.StressLevel,
		DailySittingHours:    req.DailySittingHours,
		HasJointPain:         req.HasJointPain,
		PainScale:            req.PainScale,
		HasInjuryOrSurgery:   req.HasInjuryOrSurgery,
		MedicalRestriction:   req.MedicalRestriction,
		TrainingHistoryTypes: req.TrainingHistoryTypes,
		CurrentFrequency:     req.CurrentFrequency,
		TimeWithoutTraining:  req.TimeWithoutTraining,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := h.anamneses.Upsert(c.Request.Context(), anamnesis); err != nil {
		h.logger.Error("upsert anamnesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save anamnesis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"anamnesis": anamnesis})
}

// GetAnamnesis maneja GET /clients/:id/anamnesis.
func (h *AnamnesisHandler) GetAnamnesis(c *gin.Context) {
	client, ok := fetchOwnedClient(c, h.logger, h.clients)
	if !ok {
		return
	}

	anamnesis, err := h.anamneses.GetByClientID(c.Request.Context(), client.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "anamnesis not found"})
			return
		}
		h.logger.Error("get anamnesis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch anamnesis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"anamnesis": anamnesis})
}

// CalculateProfile maneja POST /clients/:id/profile/calculate: ejecuta el
// pipeline de scoring y devuelve el resultado completo.
func (h *AnamnesisHandler) CalculateProfile(c *gin.Context) {
	client, ok := fetchOwnedClient(c, h.logger, h.clients)
	if !ok {
		return
	}

	result, err := h.scoringSvc.CalculateProfile(c.Request.Context(), client.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientIDRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "client id required"})
		case errors.Is(err, service.ErrAnamnesisNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "client must complete the intake before scoring"})
		case errors.Is(err, service.ErrNoProfilesConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "no archetype profiles configured"})
		default:
			h.logger.Error("calculate profile failed", zap.String("client_id", client.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not calculate profile"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// SuggestWorkout maneja POST /clients/:id/workout-suggestion.
func (h *AnamnesisHandler) SuggestWorkout(c *gin.Context) {
	client, ok := fetchOwnedClient(c, h.logger, h.clients)
	if !ok {
		return
	}

	suggestion, err := h.suggestionSvc.SuggestWorkout(c.Request.Context(), client.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnamnesisNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "client must complete the intake first"})
		case errors.Is(err, service.ErrProfileNotCalculated):
			c.JSON(http.StatusConflict, gin.H{"error": "profile must be calculated first"})
		default:
			h.logger.Error("workout suggestion failed", zap.String("client_id", client.ID), zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not generate workout suggestion"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}
