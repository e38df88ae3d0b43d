package domain

// WorkoutSuggestion es el borrador de plan que genera el LLM a partir de un
// perfil ya calculado. No se persiste; el entrenador lo edita antes de asignar.
type WorkoutSuggestion struct {
	Title    string           `json:"title"`
	Focus    string           `json:"focus"`
	Notes    string           `json:"notes,omitempty"`
	Sessions []WorkoutSession `json:"sessions"`
}

type WorkoutSession struct {
	Name      string            `json:"name"`
	Exercises []WorkoutExercise `json:"exercises"`
}

type WorkoutExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest,omitempty"`
}
