package engine

import (
	"math"

	"OddsScout/internal/model"
	"OddsScout/internal/oddsmath"
)

// boostDamping keeps a single strong roster from dragging the model
// probability far away from market consensus.
const boostDamping = 0.5

// modelCap bounds model probabilities below 100: there is always
// irreducible uncertainty in a football match.
const modelCap = 99.9

// Valuation is the engine core output for one fixture.
type Valuation struct {
	HomeProb    float64
	AwayProb    float64
	ModelHome   float64
	ModelAway   float64
	HomeValue   float64
	AwayValue   float64
	Edge        float64
	Confidence  float64
	Saves       int
	CleanSheets int
	Elite       bool
}

// Value combines market prices with the two sides' form summaries.
//
// Implied probabilities come straight from the prices; each side's boost is
// its own offensive boost minus the opponent's defensive boost, dampened and
// added to the implied probability to form the model probability. Value is
// model minus implied, edge the larger absolute value, and the confidence
// index a fixed-weight blend of probability magnitude, raw defensive counts,
// and value magnitude. Absent prices contribute 0 to the arithmetic.
func Value(homePrice, awayPrice float64, home, away model.PlayerFormSummary) Valuation {
	homeProb, _ := oddsmath.ImpliedProbability(homePrice)
	awayProb, _ := oddsmath.ImpliedProbability(awayPrice)

	boostHome := home.OffensiveBoost - away.DefensiveBoost
	boostAway := away.OffensiveBoost - home.DefensiveBoost

	modelHome := oddsmath.Clamp(homeProb+boostDamping*boostHome, 0, modelCap)
	modelAway := oddsmath.Clamp(awayProb+boostDamping*boostAway, 0, modelCap)

	homeValue := modelHome - homeProb
	awayValue := modelAway - awayProb

	saves := home.Saves + away.Saves
	cleanSheets := home.CleanSheets + away.CleanSheets

	confidence := 0.4*math.Max(homeProb, awayProb) +
		0.2*float64(saves) +
		0.2*float64(cleanSheets) +
		0.1*math.Abs(homeValue) +
		0.1*math.Abs(awayValue)

	return Valuation{
		HomeProb:    homeProb,
		AwayProb:    awayProb,
		ModelHome:   oddsmath.Round2(modelHome),
		ModelAway:   oddsmath.Round2(modelAway),
		HomeValue:   oddsmath.Round2(homeValue),
		AwayValue:   oddsmath.Round2(awayValue),
		Edge:        oddsmath.Round2(math.Max(math.Abs(homeValue), math.Abs(awayValue))),
		Confidence:  oddsmath.Round2(confidence),
		Saves:       saves,
		CleanSheets: cleanSheets,
		Elite:       home.Elite || away.Elite,
	}
}
