package emissions

// Factors holds the process-wide emission factors. It is built once at startup
// and passed to the engine explicitly; nothing mutates it afterwards.
type Factors struct {
	// TravelPerKmKg maps a travel mode to kilograms of CO2 per kilometer.
	TravelPerKmKg map[string]float64
	// ElectricityPerKwhKg is kilograms of CO2 per kWh consumed.
	ElectricityPerKwhKg float64
	// FoodPerDayKg maps a diet category to kilograms of CO2 per day.
	FoodPerDayKg map[string]float64
}

const (
	// FallbackTravelMode is used when a caller supplies an unrecognized mode.
	FallbackTravelMode = "car"
	// FallbackDiet is used when a caller supplies an unrecognized diet.
	FallbackDiet = "mixed"
)

// DefaultFactors returns the standard factor table.
func DefaultFactors() Factors {
	return Factors{
		TravelPerKmKg: map[string]float64{
			"car":   0.21,
			"bus":   0.10,
			"train": 0.05,
			"bike":  0.0,
			"walk":  0.0,
		},
		ElectricityPerKwhKg: 0.82,
		FoodPerDayKg: map[string]float64{
			"vegan":      1.5,
			"vegetarian": 2.0,
			"mixed":      3.0,
			"nonveg":     5.0,
		},
	}
}

func (f Factors) travelFactor(mode string) float64 {
	if v, ok := f.TravelPerKmKg[mode]; ok {
		return v
	}
	return f.TravelPerKmKg[FallbackTravelMode]
}

func (f Factors) foodFactor(diet string) float64 {
	if v, ok := f.FoodPerDayKg[diet]; ok {
		return v
	}
	return f.FoodPerDayKg[FallbackDiet]
}
