package service

import (
	"fitcoach/internal/domain"
)

// ComputeBMI calcula el indice de masa corporal y su categoria. Devuelve nil
// cuando falta peso o altura, o la altura no es positiva: "BMI no disponible"
// no es un error.
func ComputeBMI(weightKg, heightCm *float64) *domain.BMI {
	if weightKg == nil || heightCm == nil || *heightCm <= 0 {
		return nil
	}

	heightM := *heightCm / 100
	value := *weightKg / (heightM * heightM)

	category := domain.BMIObesity
	switch {
	case value < 18.5:
		category = domain.BMIUnderweight
	case value < 25:
		category = domain.BMINormal
	case value < 30:
		category = domain.BMIOverweight
	}

	return &domain.BMI{Value: value, Category: category}
}

// InferExperienceLevel deduce el nivel de experiencia a partir del historial de
// entrenamiento. currentFrequency se acepta por simetria con la firma original
// pero hoy no altera el resultado.
func InferExperienceLevel(trainingHistoryTypes []string, currentFrequency string) string {
	_ = currentFrequency

	if len(trainingHistoryTypes) == 0 {
		return domain.ExperienceBeginner
	}

	hasStrength := false
	hasLowImpact := false
	for _, t := range trainingHistoryTypes {
		switch t {
		case "Strength training", "Crossfit":
			hasStrength = true
		case "Pilates", "Yoga":
			hasLowImpact = true
		}
	}

	if hasStrength {
		return domain.ExperienceIntermediate
	}
	if hasLowImpact {
		return domain.ExperienceBeginnerPlus
	}
	return domain.ExperienceBeginner
}
