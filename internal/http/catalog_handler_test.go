package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fitcoach/internal/domain"
)

type stubCatalogRepo struct {
	profiles []domain.ArchetypeProfile
	listErr  error
	created  []domain.ArchetypeProfile
}

func (s *stubCatalogRepo) ListAll(_ context.Context) ([]domain.ArchetypeProfile, error) {
	return s.profiles, s.listErr
}

func (s *stubCatalogRepo) Create(_ context.Context, profile domain.ArchetypeProfile) error {
	s.created = append(s.created, profile)
	return nil
}

func newCatalogRouter(repo *stubCatalogRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewCatalogHandler(zap.NewNop(), repo, nil)

	r := gin.New()
	r.GET("/profiles", handler.ListProfiles)
	r.POST("/profiles", handler.CreateProfile)
	return r
}

func TestListProfiles_HTTP(t *testing.T) {
	repo := &stubCatalogRepo{profiles: matchingCatalog()}
	r := newCatalogRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Profiles []domain.ArchetypeProfile `json:"profiles"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Profiles) != 1 || body.Profiles[0].Name != "Atleta constante" {
		t.Fatalf("unexpected profiles: %+v", body.Profiles)
	}
}

func TestListProfiles_HTTPRepoError(t *testing.T) {
	r := newCatalogRouter(&stubCatalogRepo{listErr: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/profiles", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestCreateProfile_HTTP(t *testing.T) {
	repo := &stubCatalogRepo{}
	r := newCatalogRouter(repo)

	w := postJSON(r, "/profiles", `{
		"name": "Recuperacion primero",
		"typical_combination": {"discipline": 4, "recovery": 9},
		"sort_order": 2
	}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one create, got %d", len(repo.created))
	}
	created := repo.created[0]
	if created.ID == "" || created.Name != "Recuperacion primero" || created.SortOrder != 2 {
		t.Fatalf("unexpected created profile: %+v", created)
	}
}

func TestCreateProfile_HTTPRejectsUnknownDimension(t *testing.T) {
	r := newCatalogRouter(&stubCatalogRepo{})

	w := postJSON(r, "/profiles", `{
		"name": "Malo",
		"typical_combination": {"charisma": 5}
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown dimension key, got %d", w.Code)
	}
}

func TestCreateProfile_HTTPRejectsOutOfRangeValue(t *testing.T) {
	r := newCatalogRouter(&stubCatalogRepo{})

	w := postJSON(r, "/profiles", `{
		"name": "Malo",
		"typical_combination": {"discipline": 11}
	}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-range value, got %d", w.Code)
	}
}
