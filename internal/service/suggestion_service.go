package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
	"fitcoach/internal/llm"
	"fitcoach/internal/repository"
)

var (
	ErrProfileNotCalculated = errors.New("profile not calculated")
	ErrSuggestionEmpty      = errors.New("suggestion has no sessions")
)

// SuggestionService genera un borrador de plan de entrenamiento con el LLM a
// partir del perfil ya calculado del cliente.
type SuggestionService struct {
	logger    *zap.Logger
	llmClient llm.LLMClient
	anamneses repository.AnamnesisRepository
}

func NewSuggestionService(logger *zap.Logger, llmClient llm.LLMClient, anamneses repository.AnamnesisRepository) *SuggestionService {
	return &SuggestionService{
		logger:    logger,
		llmClient: llmClient,
		anamneses: anamneses,
	}
}

// SuggestWorkout exige un perfil calculado previamente. Las metricas derivadas
// se recomputan de la anamnesis: el scoring es deterministico, asi que coincide
// con lo persistido sin releer columnas calculadas.
func (s *SuggestionService) SuggestWorkout(ctx context.Context, clientID string) (domain.WorkoutSuggestion, error) {
	if strings.TrimSpace(clientID) == "" {
		return domain.WorkoutSuggestion{}, ErrClientIDRequired
	}

	anamnesis, err := s.anamneses.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.WorkoutSuggestion{}, ErrAnamnesisNotFound
		}
		return domain.WorkoutSuggestion{}, fmt.Errorf("get anamnesis for client %s: %w", clientID, err)
	}
	if strings.TrimSpace(anamnesis.CalculatedProfile) == "" {
		return domain.WorkoutSuggestion{}, ErrProfileNotCalculated
	}

	prompt := buildWorkoutPrompt(anamnesis)

	raw, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		return domain.WorkoutSuggestion{}, fmt.Errorf("generate workout suggestion: %w", err)
	}

	jsonText := extractFirstJSONObject(raw)
	if jsonText == "" {
		s.logger.Warn("no json object in llm reply", zap.String("client_id", clientID))
		return domain.WorkoutSuggestion{}, fmt.Errorf("parse workout suggestion: no json object in reply")
	}

	var suggestion domain.WorkoutSuggestion
	if err := json.Unmarshal([]byte(jsonText), &suggestion); err != nil {
		return domain.WorkoutSuggestion{}, fmt.Errorf("parse workout suggestion: %w", err)
	}
	if len(suggestion.Sessions) == 0 {
		return domain.WorkoutSuggestion{}, ErrSuggestionEmpty
	}

	return suggestion, nil
}

func buildWorkoutPrompt(a domain.Anamnesis) string {
	scores := ScoreDimensions(a)
	level := InferExperienceLevel(a.TrainingHistoryTypes, a.CurrentFrequency)

	var b strings.Builder
	b.WriteString("You are a personal trainer assistant. Draft a weekly workout plan for a client.\n")
	fmt.Fprintf(&b, "Matched profile: %s\n", a.CalculatedProfile)
	fmt.Fprintf(&b, "Experience level: %s\n", level)
	if bmi := ComputeBMI(a.WeightKg, a.HeightCm); bmi != nil {
		fmt.Fprintf(&b, "BMI: %.1f (%s)\n", bmi.Value, bmi.Category)
	}
	fmt.Fprintf(&b, "Dimension scores (0-10): discipline=%.1f resilience=%.1f recovery=%.1f constraints=%.1f mobility=%.1f\n",
		scores.Discipline, scores.Resilience, scores.Recovery, scores.Constraints, scores.Mobility)
	if a.HasJointPain {
		fmt.Fprintf(&b, "The client reports joint pain (scale %d/10); avoid high-impact loading.\n", a.PainScale)
	}
	if a.HasInjuryOrSurgery {
		b.WriteString("The client has a past injury or surgery; prefer conservative progressions.\n")
	}
	b.WriteString("Reply with ONLY a JSON object: {\"title\": string, \"focus\": string, \"notes\": string, ")
	b.WriteString("\"sessions\": [{\"name\": string, \"exercises\": [{\"name\": string, \"sets\": number, \"reps\": string, \"rest\": string}]}]}\n")
	return b.String()
}
