package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

// Client es un cliente de un entrenador. Los campos de perfil calculado son una
// copia desnormalizada del resultado del scoring; la fuente de verdad vive en
// la anamnesis.
type Client struct {
	ID                string          `json:"id"`
	TrainerID         string          `json:"trainer_id"`
	Name              string          `json:"name"`
	Email             string          `json:"email,omitempty"`
	CalculatedProfile string          `json:"calculated_profile,omitempty"`
	ProfileConfidence float64         `json:"profile_confidence,omitempty"`
	ScoreVector       pgvector.Vector `json:"-"`
	CalculatedAt      *time.Time      `json:"calculated_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// SimilarClient es un cliente cercano en el espacio de dimensiones.
type SimilarClient struct {
	Client   Client  `json:"client"`
	Distance float64 `json:"distance"`
}
