package emissions

import "math"

// scoreTargetKg is the daily total at which the eco score reaches zero.
const scoreTargetKg = 10.0

// Tip strings emitted by the advice rules.
const (
	tipCarShortTrips = "Try walking or cycling for trips under 3 km when feasible."
	tipCarCarpool    = "Carpool or use public transport 2x/week to reduce travel emissions."
	tipEnergy        = "Switch to LED lighting and unplug idle devices to cut energy use ~15%."
	tipDiet          = "Swap one meat meal per day with plant-based options (~20% lower food emissions)."
	tipGoal          = "Set a weekly goal to reduce total emissions by 10%."
)

// Result is the output of a single footprint computation.
type Result struct {
	TravelKg      float64
	ElectricityKg float64
	FoodKg        float64
	TotalKg       float64
	EcoScore      int
	Tips          []string
}

// Engine turns raw travel/electricity/diet inputs into emission sub-totals, an
// eco score and advisory tips. It is pure: no state beyond the factor table,
// no I/O, no error conditions. Unrecognized travel modes and diets fall back
// to defaults rather than failing.
type Engine struct {
	factors Factors
}

func NewEngine(factors Factors) *Engine {
	return &Engine{factors: factors}
}

// Compute calculates emissions for the given inputs. Negative quantities are
// accepted and propagate through the arithmetic unchanged.
func (e *Engine) Compute(travelKm float64, travelMode string, electricityKwh float64, diet string) Result {
	travelKg := round2(travelKm * e.factors.travelFactor(travelMode))
	electricityKg := round2(electricityKwh * e.factors.ElectricityPerKwhKg)
	foodKg := e.factors.foodFactor(diet)
	totalKg := round2(travelKg + electricityKg + foodKg)

	return Result{
		TravelKg:      travelKg,
		ElectricityKg: electricityKg,
		FoodKg:        foodKg,
		TotalKg:       totalKg,
		EcoScore:      ecoScore(totalKg),
		Tips:          tips(travelKm, travelMode, electricityKwh, diet, totalKg),
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ecoScore maps a daily total to an integer score in [0,100]; higher is better.
func ecoScore(totalKg float64) int {
	score := int(math.Round(100 - (totalKg/scoreTargetKg)*100))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// tips runs the independent advice rules in fixed order. Rules never suppress
// one another.
func tips(travelKm float64, travelMode string, electricityKwh float64, diet string, totalKg float64) []string {
	var out []string
	if travelMode == "car" && travelKm > 0 {
		out = append(out, tipCarShortTrips, tipCarCarpool)
	}
	if electricityKwh > 0 {
		out = append(out, tipEnergy)
	}
	if diet == "nonveg" || diet == "mixed" {
		out = append(out, tipDiet)
	}
	if totalKg > 15 {
		out = append(out, tipGoal)
	}
	return out
}
