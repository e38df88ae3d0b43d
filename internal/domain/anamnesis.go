package domain

import "time"

// Valores esperados en los campos de la anamnesis. Cualquier valor ausente o
// fuera de catalogo cae al nivel neutro: el calculo nunca falla por eso.
const (
	DietGood    = "Good"
	DietRegular = "Regular"

	WaterUnder1L = "<1L"
	Water1To2L   = "1-2L"
	Water2To3L   = "2-3L"
	WaterOver3L  = ">3L"

	Deadline1Month  = "1 month"
	Deadline3Months = "3 months"
	Deadline6Months = "6 months"

	Sleep6To7  = "6-7h"
	Sleep7To8  = "7-8h"
	SleepOver8 = ">8h"

	StressLow      = "Low"
	StressModerate = "Moderate"
	StressHigh     = "High"
	StressVeryHigh = "Very High"

	MotivationHealth     = "Health"
	MotivationAesthetics = "Aesthetics"

	FrequencyNone = "0x/week"

	TimeWithoutOverYear  = ">1 year"
	TimeWithout6MoToYear = "6mo-1yr"
)

// Anamnesis es el cuestionario de ingreso del cliente mas los campos calculados
// por el scoring. Los punteros marcan respuestas opcionales.
type Anamnesis struct {
	ClientID             string   `json:"client_id"`
	WeightKg             *float64 `json:"weight_kg,omitempty"`
	HeightCm             *float64 `json:"height_cm,omitempty"`
	DietQuality          string   `json:"diet_quality,omitempty"`
	WaterIntake          string   `json:"water_intake,omitempty"`
	Motivation           string   `json:"motivation,omitempty"`
	Priority             *int     `json:"priority,omitempty"`
	Deadline             string   `json:"deadline,omitempty"`
	SleepHours           string   `json:"sleep_hours,omitempty"`
	StressLevel          string   `json:"stress_level,omitempty"`
	DailySittingHours    *int     `json:"daily_sitting_hours,omitempty"`
	HasJointPain         bool     `json:"has_joint_pain"`
	PainScale            int      `json:"pain_scale,omitempty"`
	HasInjuryOrSurgery   bool     `json:"has_injury_or_surgery"`
	MedicalRestriction   string   `json:"medical_restriction,omitempty"`
	TrainingHistoryTypes []string `json:"training_history_types,omitempty"`
	CurrentFrequency     string   `json:"current_frequency,omitempty"`
	TimeWithoutTraining  string   `json:"time_without_training,omitempty"`

	// Resultado del ultimo calculo; se sobreescribe en cada invocacion.
	CalculatedProfile string     `json:"calculated_profile,omitempty"`
	CalculatedAt      *time.Time `json:"calculated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
