package service

import (
	"testing"

	"fitcoach/internal/domain"
)

func intp(v int) *int { return &v }

// Anamnesis favorable de referencia usada en varios tests.
func favorableAnamnesis() domain.Anamnesis {
	return domain.Anamnesis{
		ClientID:             "c1",
		WeightKg:             f64(70),
		HeightCm:             f64(175),
		DietQuality:          domain.DietGood,
		WaterIntake:          domain.WaterOver3L,
		Motivation:           domain.MotivationHealth,
		Priority:             intp(5),
		Deadline:             domain.Deadline1Month,
		SleepHours:           domain.SleepOver8,
		StressLevel:          domain.StressLow,
		HasJointPain:         false,
		HasInjuryOrSurgery:   false,
		MedicalRestriction:   "No",
		TrainingHistoryTypes: []string{"Strength training"},
		CurrentFrequency:     "3x/week",
		TimeWithoutTraining:  "none",
	}
}

func TestScoreDimensions_FavorableScenario(t *testing.T) {
	scores := ScoreDimensions(favorableAnamnesis())

	// discipline: dieta 3 + agua 2 + motivacion 2
	if scores.Discipline != 7 {
		t.Fatalf("discipline: expected 7, got %v", scores.Discipline)
	}
	// resilience: prioridad 5 + deadline 2 + motivacion 2
	if scores.Resilience != 9 {
		t.Fatalf("resilience: expected 9, got %v", scores.Resilience)
	}
	// recovery: 5 + sueno 3 + estres 2 + agua 1 = 11 -> clamp 10
	if scores.Recovery != 10 {
		t.Fatalf("recovery: expected 10 (clamped), got %v", scores.Recovery)
	}
	// constraints: sin penalizaciones
	if scores.Constraints != 10 {
		t.Fatalf("constraints: expected 10, got %v", scores.Constraints)
	}
	// mobility: 5 + intermedio 3
	if scores.Mobility != 8 {
		t.Fatalf("mobility: expected 8, got %v", scores.Mobility)
	}
}

func TestScoreDimensions_AdverseScenario(t *testing.T) {
	a := domain.Anamnesis{
		ClientID:             "c2",
		WeightKg:             f64(120),
		HeightCm:             f64(160), // BMI 46.9 -> Obesity
		DietQuality:          "Poor",
		WaterIntake:          domain.WaterUnder1L,
		Priority:             intp(1),
		SleepHours:           "<5h",
		StressLevel:          domain.StressVeryHigh,
		DailySittingHours:    intp(10),
		HasJointPain:         true,
		PainScale:            9,
		HasInjuryOrSurgery:   true,
		MedicalRestriction:   "Yes",
		TimeWithoutTraining:  domain.TimeWithoutOverYear,
	}

	scores := ScoreDimensions(a)

	// discipline: dieta 1 + agua 0 + motivacion 0
	if scores.Discipline != 1 {
		t.Fatalf("discipline: expected 1, got %v", scores.Discipline)
	}
	// resilience: prioridad 1, sin bonos
	if scores.Resilience != 1 {
		t.Fatalf("resilience: expected 1, got %v", scores.Resilience)
	}
	// recovery: 5 + sueno 1 - estres 2 - sentado 1
	if scores.Recovery != 3 {
		t.Fatalf("recovery: expected 3, got %v", scores.Recovery)
	}
	// constraints: 10 - obesidad 3 - dolor 3 - lesion 3 - restriccion 2 = -1 -> clamp 0
	if scores.Constraints != 0 {
		t.Fatalf("constraints: expected 0 (clamped), got %v", scores.Constraints)
	}
	// mobility: 5 + principiante 1 - frecuencia 1 - inactividad 2 - dolor 1
	if scores.Mobility != 2 {
		t.Fatalf("mobility: expected 2, got %v", scores.Mobility)
	}
}

func TestScoreDimensions_NeutralDefaults(t *testing.T) {
	// Anamnesis vacia: todos los campos en su nivel neutro, nunca un error.
	scores := ScoreDimensions(domain.Anamnesis{ClientID: "c3"})

	// discipline: dieta 1
	if scores.Discipline != 1 {
		t.Fatalf("discipline: expected 1, got %v", scores.Discipline)
	}
	// resilience: prioridad default 3
	if scores.Resilience != 3 {
		t.Fatalf("resilience: expected 3, got %v", scores.Resilience)
	}
	// recovery: 5 + sueno 1
	if scores.Recovery != 6 {
		t.Fatalf("recovery: expected 6, got %v", scores.Recovery)
	}
	// constraints: sin datos, sin penalizaciones
	if scores.Constraints != 10 {
		t.Fatalf("constraints: expected 10, got %v", scores.Constraints)
	}
	// mobility: 5 + principiante 1 - frecuencia ausente 1
	if scores.Mobility != 5 {
		t.Fatalf("mobility: expected 5, got %v", scores.Mobility)
	}
}

func TestScoreDimensions_Bounds(t *testing.T) {
	cases := []domain.Anamnesis{
		{},
		favorableAnamnesis(),
		{
			DietQuality:  domain.DietGood,
			WaterIntake:  domain.WaterOver3L,
			Motivation:   domain.MotivationAesthetics,
			Priority:     intp(5),
			Deadline:     domain.Deadline3Months,
			SleepHours:   domain.Sleep7To8,
			StressLevel:  domain.StressLow,
		},
		{
			Priority:           intp(1),
			HasJointPain:       true,
			PainScale:          10,
			HasInjuryOrSurgery: true,
			MedicalRestriction: "Yes",
			WeightKg:           f64(150),
			HeightCm:           f64(150),
			StressLevel:        domain.StressHigh,
			DailySittingHours:  intp(14),
			TimeWithoutTraining: domain.TimeWithoutOverYear,
			CurrentFrequency:   domain.FrequencyNone,
		},
	}

	for i, a := range cases {
		scores := ScoreDimensions(a)
		for j, v := range scores.Vector() {
			if v < 0 || v > 10 {
				t.Fatalf("case %d: dimension %s=%v out of [0,10]", i, domain.DimensionKeys[j], v)
			}
		}
	}
}

func TestScoreDimensions_Deterministic(t *testing.T) {
	a := favorableAnamnesis()
	first := ScoreDimensions(a)
	for i := 0; i < 10; i++ {
		if got := ScoreDimensions(a); got != first {
			t.Fatalf("iteration %d: expected %+v, got %+v", i, first, got)
		}
	}
}
