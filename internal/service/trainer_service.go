package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fitcoach/internal/domain"
	"fitcoach/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrWeakPassword       = errors.New("password too short")
	ErrRateLimited        = errors.New("rate limited")
)

const minPasswordLength = 8

// TrainerService coordina registro y autenticacion de entrenadores.
type TrainerService struct {
	logger       *zap.Logger
	trainers     repository.TrainerRepository
	loginLimiter LoginRateLimiter
}

func NewTrainerService(logger *zap.Logger, trainers repository.TrainerRepository, loginLimiter LoginRateLimiter) *TrainerService {
	if loginLimiter == nil {
		loginLimiter = NewLoginRateLimiter(10*time.Minute, 5)
	}
	return &TrainerService{
		logger:       logger,
		trainers:     trainers,
		loginLimiter: loginLimiter,
	}
}

type RegisterTrainerInput struct {
	Email    string
	Name     string
	Password string
}

func (s *TrainerService) Register(ctx context.Context, input RegisterTrainerInput) (domain.Trainer, error) {
	email := normalizeEmail(input.Email)
	if email == "" {
		return domain.Trainer{}, ErrInvalidEmail
	}
	password := strings.TrimSpace(input.Password)
	if len(password) < minPasswordLength {
		return domain.Trainer{}, ErrWeakPassword
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Trainer{}, err
	}

	trainer := domain.Trainer{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.trainers.Create(ctx, trainer); err != nil {
		return domain.Trainer{}, err
	}

	return trainer, nil
}

func (s *TrainerService) Authenticate(ctx context.Context, emailAddr, password string) (domain.Trainer, error) {
	email := normalizeEmail(emailAddr)
	if email == "" || strings.TrimSpace(password) == "" {
		return domain.Trainer{}, ErrInvalidCredentials
	}

	if s.loginLimiter != nil && !s.loginLimiter.Allow(email) {
		return domain.Trainer{}, ErrRateLimited
	}

	trainer, err := s.trainers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trainer{}, ErrInvalidCredentials
		}
		return domain.Trainer{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(trainer.PasswordHash), []byte(password)) != nil {
		return domain.Trainer{}, ErrInvalidCredentials
	}

	return trainer, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}
