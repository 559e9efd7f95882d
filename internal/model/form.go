package model

// Player position classifications as reported by the statistics provider.
const (
	PositionAttacker   = "Attacker"
	PositionForward    = "Forward"
	PositionDefender   = "Defender"
	PositionGoalkeeper = "Goalkeeper"
)

// PlayerStats is one player's season statistics line.
// Missing provider fields arrive as zero values.
type PlayerStats struct {
	Name     string
	Position string
	Rating   float64
	Shots    float64
	Saves    int
	Conceded int
}

// PlayerFormSummary is the per-team aggregate derived from a roster snapshot.
// Recomputed on every refresh, never mutated afterwards.
type PlayerFormSummary struct {
	AvgRating      float64 `json:"avg_rating"`
	AvgShots       float64 `json:"avg_shots"`
	OffensiveBoost float64 `json:"att_boost"`
	DefensiveBoost float64 `json:"def_boost"`
	Elite          bool    `json:"elite"`
	Saves          int     `json:"gk_saves"`
	CleanSheets    int     `json:"clean_sheets"`
}

// TeamRef is one team search result from the statistics provider.
type TeamRef struct {
	ID   int
	Name string
}
