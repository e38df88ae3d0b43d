package domain

import "time"

// ArchetypeProfile es una entrada del catalogo de perfiles: un punto de
// referencia en el espacio de cinco dimensiones.
type ArchetypeProfile struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	TypicalCombination map[string]float64 `json:"typical_combination"`
	SortOrder          int                `json:"sort_order"`
	CreatedAt          time.Time          `json:"created_at"`
}

// ReferenceVector arma el vector del arquetipo en el orden de DimensionKeys.
// Toda dimension ausente en typical_combination vale 5.
func (p ArchetypeProfile) ReferenceVector() [5]float64 {
	var v [5]float64
	for i, key := range DimensionKeys {
		val, ok := p.TypicalCombination[key]
		if !ok {
			val = 5
		}
		v[i] = val
	}
	return v
}
