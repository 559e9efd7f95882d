package model

// ValuationRow is the engine's output for one fixture. It is a pure function
// of the fixture, its quote, and the two form summaries; rows carry no state
// of their own and are recomputed whenever their inputs are.
type ValuationRow struct {
	League    string  `json:"league"`
	Match     string  `json:"match"` // "Home vs Away"
	StartTime string  `json:"start_time"`
	HomeOdds  float64 `json:"home_odds"`
	AwayOdds  float64 `json:"away_odds"`
	HomeProb  float64 `json:"home_prob"`
	AwayProb  float64 `json:"away_prob"`
	Over25    float64 `json:"over_2_5,omitempty"`
	BTTS      string  `json:"btts,omitempty"`

	ModelHome  float64 `json:"model_home"`
	ModelAway  float64 `json:"model_away"`
	HomeValue  float64 `json:"home_value"`
	AwayValue  float64 `json:"away_value"`
	Edge       float64 `json:"edge"`
	Confidence float64 `json:"confidence_index"`

	Saves         int  `json:"gk_saves"`
	CleanSheets   int  `json:"clean_sheets"`
	EliteAttacker bool `json:"elite_attacker"`
}

// HasOver25 reports whether the over-2.5 market was quoted.
func (r ValuationRow) HasOver25() bool { return r.Over25 > 0 }

// HasBTTS reports whether the both-teams-to-score market was quoted.
func (r ValuationRow) HasBTTS() bool { return r.BTTS != "" }
