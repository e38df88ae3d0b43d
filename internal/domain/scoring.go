package domain

import (
	"fmt"
	"time"
)

// Etiquetas de las metricas derivadas.
const (
	BMIUnderweight = "Underweight"
	BMINormal      = "Normal weight"
	BMIOverweight  = "Overweight"
	BMIObesity     = "Obesity"

	ExperienceBeginner     = "Beginner"
	ExperienceBeginnerPlus = "Beginner+"
	ExperienceIntermediate = "Intermediate"
)

// DefaultProfileName es el perfil que se reporta cuando ninguna entrada del
// catalogo supera similitud 0.
const DefaultProfileName = "Perfil 1"

// DimensionKeys fija el orden canonico de las cinco dimensiones. El matcher y
// el vector persistido dependen de este orden.
var DimensionKeys = [5]string{"discipline", "resilience", "recovery", "constraints", "mobility"}

// DimensionScores son los cinco ejes del perfil, cada uno acotado a [0,10].
type DimensionScores struct {
	Discipline  float64 `json:"discipline"`
	Resilience  float64 `json:"resilience"`
	Recovery    float64 `json:"recovery"`
	Constraints float64 `json:"constraints"`
	Mobility    float64 `json:"mobility"`
}

// Vector devuelve los valores en el orden de DimensionKeys.
func (d DimensionScores) Vector() [5]float64 {
	return [5]float64{d.Discipline, d.Resilience, d.Recovery, d.Constraints, d.Mobility}
}

// BMI es el indice de masa corporal con su categoria. Un puntero nil significa
// "no disponible" (peso o altura ausentes), nunca un error.
type BMI struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// IMC es la vista serializada del BMI: valor con exactamente un decimal.
type IMC struct {
	Valor     string `json:"valor"`
	Categoria string `json:"categoria"`
}

// IMC convierte el BMI a su forma de salida. nil se propaga.
func (b *BMI) IMC() *IMC {
	if b == nil {
		return nil
	}
	return &IMC{
		Valor:     fmt.Sprintf("%.1f", b.Value),
		Categoria: b.Category,
	}
}

// ProfileMatch es el arquetipo mas cercano al vector de dimensiones.
type ProfileMatch struct {
	ProfileName     string  `json:"profile_name"`
	SimilarityScore float64 `json:"similarity_score"` // 0-100
	Confidence      float64 `json:"confidence"`       // 0-1
}

// ScoringResult es el registro que se persiste y se devuelve al caller.
type ScoringResult struct {
	Success          bool            `json:"success"`
	Profile          string          `json:"profile"`
	Confidence       float64         `json:"confidence"`
	SimilarityScore  float64         `json:"-"`
	DimensionScores  DimensionScores `json:"dimensionScores"`
	IMC              *IMC            `json:"imc"`
	NivelExperiencia string          `json:"nivelExperiencia"`
	CalculatedAt     time.Time       `json:"calculated_at"`
}
