package form

import (
	"OddsScout/internal/model"
	"OddsScout/internal/oddsmath"
)

// Thresholds for the sticky elite-attacker flag.
const (
	eliteRating = 7.5
	eliteShots  = 3
)

// Aggregate reduces a roster snapshot into a single PlayerFormSummary.
//
// Attackers and forwards feed the offensive boost (rating*1.5 + shots*0.5) and
// may set the elite flag; defenders and goalkeepers feed the defensive boost;
// goalkeepers additionally accumulate saves and clean sheets. Every player,
// whatever the position, counts toward the rating and shots averages.
// An empty roster yields the zero-valued summary.
func Aggregate(players []model.PlayerStats) model.PlayerFormSummary {
	var sum model.PlayerFormSummary
	var ratingSum, shotsSum float64

	for _, p := range players {
		switch p.Position {
		case model.PositionAttacker, model.PositionForward:
			sum.OffensiveBoost += p.Rating*1.5 + p.Shots*0.5
			if p.Rating >= eliteRating && p.Shots >= eliteShots {
				sum.Elite = true
			}
		case model.PositionDefender:
			sum.DefensiveBoost += p.Rating
		case model.PositionGoalkeeper:
			sum.DefensiveBoost += p.Rating
			sum.Saves += p.Saves
			if p.Conceded == 0 {
				sum.CleanSheets++
			}
		}
		ratingSum += p.Rating
		shotsSum += p.Shots
	}

	if n := len(players); n > 0 {
		sum.AvgRating = oddsmath.Round2(ratingSum / float64(n))
		sum.AvgShots = oddsmath.Round2(shotsSum / float64(n))
	}
	return sum
}
