package service

import (
	"math"

	"fitcoach/internal/domain"
)

// maxDimensionDistance es la constante de normalizacion de similitud:
// aproximadamente sqrt(5 * 10^2), la distancia maxima posible con cinco
// dimensiones en [0,10]. Se usa el valor fijo historico, no se recalcula.
const maxDimensionDistance = 22.36

// MatchProfile compara el vector de dimensiones contra cada entrada del
// catalogo y devuelve la de mayor similitud. Los empates conservan la entrada
// anterior, por eso el orden de iteracion del catalogo importa. Con un catalogo
// vacio devuelve el estado inicial; el orquestador rechaza ese caso antes.
func MatchProfile(scores domain.DimensionScores, catalog []domain.ArchetypeProfile) domain.ProfileMatch {
	best := domain.ProfileMatch{
		ProfileName:     domain.DefaultProfileName,
		SimilarityScore: 0,
		Confidence:      0,
	}

	v := scores.Vector()
	for _, entry := range catalog {
		ref := entry.ReferenceVector()

		var sum float64
		for i := range v {
			d := v[i] - ref[i]
			sum += d * d
		}
		distance := math.Sqrt(sum)

		similarity := 100 - (distance/maxDimensionDistance)*100
		if similarity < 0 {
			similarity = 0
		}

		if similarity > best.SimilarityScore {
			best = domain.ProfileMatch{
				ProfileName:     entry.Name,
				SimilarityScore: similarity,
				Confidence:      similarity / 100,
			}
		}
	}

	return best
}
