package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fitcoach/internal/domain"
	"fitcoach/internal/service"
)

type stubTrainerRepo struct {
	trainer domain.Trainer
	getErr  error
	created []domain.Trainer
}

func (s *stubTrainerRepo) Create(_ context.Context, trainer domain.Trainer) error {
	s.created = append(s.created, trainer)
	return nil
}

func (s *stubTrainerRepo) GetByID(_ context.Context, id string) (domain.Trainer, error) {
	if s.getErr != nil {
		return domain.Trainer{}, s.getErr
	}
	return s.trainer, nil
}

func (s *stubTrainerRepo) GetByEmail(_ context.Context, email string) (domain.Trainer, error) {
	if s.getErr != nil {
		return domain.Trainer{}, s.getErr
	}
	return s.trainer, nil
}

type permissiveLimiter struct{}

func (permissiveLimiter) Allow(string) bool { return true }

func newAuthRouter(repo *stubTrainerRepo) (*gin.Engine, *service.JWTService) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	trainerSvc := service.NewTrainerService(logger, repo, permissiveLimiter{})
	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour)
	handler := NewTrainerHandler(logger, trainerSvc, jwtSvc)

	r := gin.New()
	r.POST("/trainers", handler.Register)
	r.POST("/auth/login", handler.Login)
	r.POST("/auth/refresh", handler.RefreshToken)
	r.POST("/auth/logout", handler.Logout)
	return r, jwtSvc
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterTrainer_HTTP(t *testing.T) {
	repo := &stubTrainerRepo{}
	r, _ := newAuthRouter(repo)

	w := postJSON(r, "/trainers", `{"email": "coach@example.com", "name": "Coach", "password": "supersecret"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one create, got %d", len(repo.created))
	}
	if repo.created[0].PasswordHash == "supersecret" {
		t.Fatalf("password must not be stored in plain text")
	}
}

func TestRegisterTrainer_HTTPWeakPassword(t *testing.T) {
	r, _ := newAuthRouter(&stubTrainerRepo{})

	w := postJSON(r, "/trainers", `{"email": "coach@example.com", "password": "short"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLogin_HTTPIssuesTokenPair(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &stubTrainerRepo{trainer: domain.Trainer{
		ID:           "t1",
		Email:        "coach@example.com",
		PasswordHash: string(hash),
	}}
	r, jwtSvc := newAuthRouter(repo)

	w := postJSON(r, "/auth/login", `{"email": "coach@example.com", "password": "supersecret"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Tokens.AccessToken == "" || body.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", body.Tokens)
	}

	claims, err := jwtSvc.ParseAccessToken(body.Tokens.AccessToken)
	if err != nil {
		t.Fatalf("issued access token should parse: %v", err)
	}
	if claims.TrainerID != "t1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLogin_HTTPInvalidCredentials(t *testing.T) {
	r, _ := newAuthRouter(&stubTrainerRepo{getErr: pgx.ErrNoRows})

	w := postJSON(r, "/auth/login", `{"email": "ghost@example.com", "password": "supersecret"}`)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRefreshAndLogout_HTTP(t *testing.T) {
	r, jwtSvc := newAuthRouter(&stubTrainerRepo{})

	pair, err := jwtSvc.GeneratePair(domain.Trainer{ID: "t1", Email: "coach@example.com"})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	w := postJSON(r, "/auth/refresh", fmt.Sprintf(`{"refresh_token": %q}`, pair.RefreshToken))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	w = postJSON(r, "/auth/logout", fmt.Sprintf(`{"refresh_token": %q}`, body.Tokens.RefreshToken))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	// Tras el logout el refresh ya no sirve.
	w = postJSON(r, "/auth/refresh", fmt.Sprintf(`{"refresh_token": %q}`, body.Tokens.RefreshToken))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}
