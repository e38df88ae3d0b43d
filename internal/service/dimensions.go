package service

import (
	"strings"

	"fitcoach/internal/domain"
)

// ScoreDimensions convierte la anamnesis en las cinco dimensiones del perfil.
// Cada dimension se calcula de forma independiente con reglas aditivas y se
// acota a [0,10]. Campos ausentes o fuera de catalogo aportan el nivel neutro;
// con una anamnesis presente el calculo nunca falla.
func ScoreDimensions(a domain.Anamnesis) domain.DimensionScores {
	return domain.DimensionScores{
		Discipline:  scoreDiscipline(a),
		Resilience:  scoreResilience(a),
		Recovery:    scoreRecovery(a),
		Constraints: scoreConstraints(a),
		Mobility:    scoreMobility(a),
	}
}

func scoreDiscipline(a domain.Anamnesis) float64 {
	score := 0.0

	// La dieta siempre aporta al menos +1.
	switch a.DietQuality {
	case domain.DietGood:
		score += 3
	case domain.DietRegular:
		score += 2
	default:
		score += 1
	}

	switch a.WaterIntake {
	case domain.Water2To3L, domain.WaterOver3L:
		score += 2
	case domain.Water1To2L:
		score += 1
	}

	if strings.TrimSpace(a.Motivation) != "" {
		score += 2
	}

	return clampScore(score)
}

func scoreResilience(a domain.Anamnesis) float64 {
	// La prioridad declarada (1-5) es la base; 3 cuando no respondio.
	score := 3.0
	if a.Priority != nil {
		score = float64(*a.Priority)
	}

	switch a.Deadline {
	case domain.Deadline1Month, domain.Deadline3Months:
		score += 2
	case domain.Deadline6Months:
		score += 1
	}

	if a.Motivation == domain.MotivationHealth || a.Motivation == domain.MotivationAesthetics {
		score += 2
	}

	return clampScore(score)
}

func scoreRecovery(a domain.Anamnesis) float64 {
	score := 5.0

	// El sueno siempre aporta al menos +1.
	switch a.SleepHours {
	case domain.Sleep7To8, domain.SleepOver8:
		score += 3
	case domain.Sleep6To7:
		score += 2
	default:
		score += 1
	}

	switch a.StressLevel {
	case domain.StressLow:
		score += 2
	case domain.StressHigh, domain.StressVeryHigh:
		score -= 2
	}

	switch a.WaterIntake {
	case domain.Water2To3L, domain.WaterOver3L:
		score += 1
	}

	if a.DailySittingHours != nil && *a.DailySittingHours >= 8 {
		score -= 1
	}

	return clampScore(score)
}

func scoreConstraints(a domain.Anamnesis) float64 {
	// Base 10: menos restricciones, mayor puntaje. Todos los ajustes restan.
	score := 10.0

	if bmi := ComputeBMI(a.WeightKg, a.HeightCm); bmi != nil {
		switch bmi.Category {
		case domain.BMIObesity:
			score -= 3
		case domain.BMIOverweight:
			score -= 1
		}
	}

	if a.HasJointPain {
		switch {
		case a.PainScale >= 7:
			score -= 3
		case a.PainScale >= 5:
			score -= 2
		default:
			score -= 1
		}
	}

	if a.HasInjuryOrSurgery {
		score -= 3
	}

	if a.MedicalRestriction == "Yes" {
		score -= 2
	}

	return clampScore(score)
}

func scoreMobility(a domain.Anamnesis) float64 {
	score := 5.0

	switch InferExperienceLevel(a.TrainingHistoryTypes, a.CurrentFrequency) {
	case domain.ExperienceIntermediate:
		score += 3
	case domain.ExperienceBeginnerPlus:
		score += 2
	default:
		score += 1
	}

	if a.CurrentFrequency == domain.FrequencyNone || a.CurrentFrequency == "" {
		score -= 1
	}

	switch a.TimeWithoutTraining {
	case domain.TimeWithoutOverYear:
		score -= 2
	case domain.TimeWithout6MoToYear:
		score -= 1
	}

	if a.HasJointPain {
		score -= 1
	}

	return clampScore(score)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}
