package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	pgvector "github.com/pgvector/pgvector-go"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
	"fitcoach/internal/email"
	"fitcoach/internal/repository"
)

var (
	ErrClientIDRequired     = errors.New("client id required")
	ErrAnamnesisNotFound    = errors.New("anamnesis not found")
	ErrNoProfilesConfigured = errors.New("no archetype profiles configured")
)

// CatalogProvider abstrae el origen del catalogo de arquetipos; puede ser el
// repositorio directo o la version cacheada en redis.
type CatalogProvider interface {
	ListAll(ctx context.Context) ([]domain.ArchetypeProfile, error)
}

// ScoringService orquesta el calculo del perfil de anamnesis: lee la anamnesis
// y el catalogo, corre el scoring puro y persiste el resultado.
type ScoringService struct {
	logger    *zap.Logger
	anamneses repository.AnamnesisRepository
	catalog   CatalogProvider
	clients   repository.ClientRepository
	sender    email.Sender
}

func NewScoringService(
	logger *zap.Logger,
	anamneses repository.AnamnesisRepository,
	catalog CatalogProvider,
	clients repository.ClientRepository,
	sender email.Sender,
) *ScoringService {
	return &ScoringService{
		logger:    logger,
		anamneses: anamneses,
		catalog:   catalog,
		clients:   clients,
		sender:    sender,
	}
}

// CalculateProfile ejecuta el pipeline completo para un cliente. Es
// deterministico e idempotente: reinvocarlo con los mismos datos produce y
// persiste el mismo resultado. No hay reintentos internos.
func (s *ScoringService) CalculateProfile(ctx context.Context, clientID string) (domain.ScoringResult, error) {
	if strings.TrimSpace(clientID) == "" {
		return domain.ScoringResult{}, ErrClientIDRequired
	}

	anamnesis, err := s.anamneses.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ScoringResult{}, ErrAnamnesisNotFound
		}
		return domain.ScoringResult{}, fmt.Errorf("get anamnesis for client %s: %w", clientID, err)
	}

	catalog, err := s.catalog.ListAll(ctx)
	if err != nil {
		return domain.ScoringResult{}, fmt.Errorf("list archetype profiles: %w", err)
	}
	if len(catalog) == 0 {
		return domain.ScoringResult{}, ErrNoProfilesConfigured
	}

	scores := ScoreDimensions(anamnesis)
	match := MatchProfile(scores, catalog)
	bmi := ComputeBMI(anamnesis.WeightKg, anamnesis.HeightCm)
	level := InferExperienceLevel(anamnesis.TrainingHistoryTypes, anamnesis.CurrentFrequency)

	result := domain.ScoringResult{
		Success:          true,
		Profile:          match.ProfileName,
		Confidence:       match.Confidence,
		SimilarityScore:  match.SimilarityScore,
		DimensionScores:  scores,
		IMC:              bmi.IMC(),
		NivelExperiencia: level,
		CalculatedAt:     time.Now().UTC(),
	}

	// Escritura primaria: si falla, la operacion completa falla aunque el
	// calculo haya terminado, porque el resultado no quedo registrado.
	if err := s.anamneses.UpdateCalculatedProfile(ctx, clientID, result); err != nil {
		return domain.ScoringResult{}, fmt.Errorf("persist scoring result for client %s: %w", clientID, err)
	}

	// Copia desnormalizada en el cliente: mejor esfuerzo, solo se loggea.
	vec := scores.Vector()
	v32 := make([]float32, len(vec))
	for i, val := range vec {
		v32[i] = float32(val)
	}
	if err := s.clients.UpdateScoreProfile(ctx, clientID, match.ProfileName, match.Confidence, pgvector.NewVector(v32), result.CalculatedAt); err != nil {
		s.logger.Warn("update client score profile failed",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
	}

	s.notifyClient(ctx, clientID, result)

	return result, nil
}

// notifyClient envia el resumen del perfil por correo cuando hay sender y el
// cliente tiene email. Mejor esfuerzo: nunca afecta el resultado.
func (s *ScoringService) notifyClient(ctx context.Context, clientID string, result domain.ScoringResult) {
	if s.sender == nil {
		return
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil || strings.TrimSpace(client.Email) == "" {
		return
	}
	if err := s.sender.SendProfileSummary(ctx, client.Email, client.Name, result.Profile, result.Confidence); err != nil {
		s.logger.Warn("profile summary email failed",
			zap.String("client_id", clientID),
			zap.Error(err),
		)
	}
}
