package emissions

import (
	"reflect"
	"testing"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultFactors())
}

func TestCompute_Examples(t *testing.T) {
	engine := newTestEngine()

	t.Run("car commute with mixed diet", func(t *testing.T) {
		got := engine.Compute(10, "car", 5, "mixed")

		if got.TravelKg != 2.10 {
			t.Fatalf("TravelKg = %v, want 2.10", got.TravelKg)
		}
		if got.ElectricityKg != 4.10 {
			t.Fatalf("ElectricityKg = %v, want 4.10", got.ElectricityKg)
		}
		if got.FoodKg != 3.0 {
			t.Fatalf("FoodKg = %v, want 3.0", got.FoodKg)
		}
		if got.TotalKg != 9.20 {
			t.Fatalf("TotalKg = %v, want 9.20", got.TotalKg)
		}
		if got.EcoScore != 8 {
			t.Fatalf("EcoScore = %d, want 8", got.EcoScore)
		}
		want := []string{tipCarShortTrips, tipCarCarpool, tipEnergy, tipDiet}
		if !reflect.DeepEqual(got.Tips, want) {
			t.Fatalf("Tips = %v, want %v", got.Tips, want)
		}
	})

	t.Run("vegan walker triggers nothing", func(t *testing.T) {
		got := engine.Compute(0, "walk", 0, "vegan")

		if got.TravelKg != 0 || got.ElectricityKg != 0 {
			t.Fatalf("expected zero travel and electricity, got %v / %v", got.TravelKg, got.ElectricityKg)
		}
		if got.FoodKg != 1.5 {
			t.Fatalf("FoodKg = %v, want 1.5", got.FoodKg)
		}
		if got.TotalKg != 1.5 {
			t.Fatalf("TotalKg = %v, want 1.5", got.TotalKg)
		}
		if got.EcoScore != 85 {
			t.Fatalf("EcoScore = %d, want 85", got.EcoScore)
		}
		if len(got.Tips) != 0 {
			t.Fatalf("Tips = %v, want none", got.Tips)
		}
	})
}

func TestCompute_Deterministic(t *testing.T) {
	engine := newTestEngine()

	first := engine.Compute(12.5, "bus", 3.3, "nonveg")
	second := engine.Compute(12.5, "bus", 3.3, "nonveg")

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different results: %+v vs %+v", first, second)
	}
}

func TestCompute_ScoreBounds(t *testing.T) {
	engine := newTestEngine()

	// a zero total scores a perfect 100
	if got := ecoScore(0); got != 100 {
		t.Fatalf("ecoScore(0) = %d, want 100", got)
	}
	if got := ecoScore(10); got != 0 {
		t.Fatalf("ecoScore(10) = %d, want 0", got)
	}
	if got := ecoScore(20); got != 0 {
		t.Fatalf("ecoScore(20) = %d, want 0 (clamped)", got)
	}

	// total exactly at the 10kg target scores zero
	atTarget := engine.Compute(85, "bus", 0, "vegan")
	if atTarget.TotalKg != 10.0 {
		t.Fatalf("TotalKg = %v, want 10.0", atTarget.TotalKg)
	}
	if atTarget.EcoScore != 0 {
		t.Fatalf("EcoScore = %d, want 0", atTarget.EcoScore)
	}

	// totals far past the target clamp to zero instead of going negative
	past := engine.Compute(100, "car", 10, "nonveg")
	if past.TotalKg < 20 {
		t.Fatalf("TotalKg = %v, want >= 20", past.TotalKg)
	}
	if past.EcoScore != 0 {
		t.Fatalf("EcoScore = %d, want clamped 0", past.EcoScore)
	}

	if got := engine.Compute(0, "walk", 0, "vegan"); got.EcoScore < 0 || got.EcoScore > 100 {
		t.Fatalf("EcoScore = %d, outside [0,100]", got.EcoScore)
	}
}

func TestCompute_Fallbacks(t *testing.T) {
	engine := newTestEngine()

	// unrecognized mode uses the car factor
	scooter := engine.Compute(10, "scooter", 0, "vegan")
	car := engine.Compute(10, "car", 0, "vegan")
	if scooter.TravelKg != car.TravelKg {
		t.Fatalf("scooter TravelKg = %v, want car's %v", scooter.TravelKg, car.TravelKg)
	}

	// unrecognized diet uses the mixed factor
	unknown := engine.Compute(0, "walk", 0, "fruitarian")
	if unknown.FoodKg != 3.0 {
		t.Fatalf("FoodKg = %v, want mixed fallback 3.0", unknown.FoodKg)
	}
}

func TestCompute_NegativeInputsPassThrough(t *testing.T) {
	engine := newTestEngine()

	got := engine.Compute(-10, "car", -5, "mixed")
	if got.TravelKg != -2.10 {
		t.Fatalf("TravelKg = %v, want -2.10", got.TravelKg)
	}
	if got.ElectricityKg != -4.10 {
		t.Fatalf("ElectricityKg = %v, want -4.10", got.ElectricityKg)
	}
	if got.TotalKg != -3.20 {
		t.Fatalf("TotalKg = %v, want -3.20", got.TotalKg)
	}
	// negative total pushes the score past 100, which clamps
	if got.EcoScore != 100 {
		t.Fatalf("EcoScore = %d, want 100", got.EcoScore)
	}
	// negative quantities do not trigger the car or energy tips
	want := []string{tipDiet}
	if !reflect.DeepEqual(got.Tips, want) {
		t.Fatalf("Tips = %v, want %v", got.Tips, want)
	}
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	engine := newTestEngine()

	// 1.25 kWh * 0.82 = 1.025, which rounds up to 1.03
	got := engine.Compute(0, "walk", 1.25, "vegan")
	if got.ElectricityKg != 1.03 {
		t.Fatalf("ElectricityKg = %v, want 1.03", got.ElectricityKg)
	}
}

func TestCompute_TipRules(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name     string
		travelKm float64
		mode     string
		kwh      float64
		diet     string
		want     []string
	}{
		{"car with distance", 5, "car", 0, "vegan", []string{tipCarShortTrips, tipCarCarpool}},
		{"car without distance", 0, "car", 0, "vegan", nil},
		{"energy only", 0, "walk", 2, "vegan", []string{tipEnergy}},
		{"nonveg diet", 0, "walk", 0, "nonveg", []string{tipDiet}},
		{"heavy total adds goal tip", 60, "car", 10, "nonveg", []string{tipCarShortTrips, tipCarCarpool, tipEnergy, tipDiet, tipGoal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Compute(tt.travelKm, tt.mode, tt.kwh, tt.diet)
			if !reflect.DeepEqual(got.Tips, tt.want) {
				t.Fatalf("Tips = %v, want %v", got.Tips, tt.want)
			}
		})
	}
}
