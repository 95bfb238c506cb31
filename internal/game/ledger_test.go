package game

import "testing"

func testResources() []Resource {
	return []Resource{
		{ID: "materials", Name: "Materials", Amount: 10, Discovered: true},
		{ID: "food", Name: "Food", Amount: 5},
		{ID: "herbs", Name: "Herbs", Amount: 0},
	}
}

func testNeeds() []SurvivalNeed {
	return []SurvivalNeed{
		{ID: "hunger", Name: "Hunger", Current: 80, Max: 100, DecayRate: 0.05, CriticalThreshold: 10},
		{ID: "warmth", Name: "Warmth", Current: 60, Max: 100, DecayRate: 0.1, CriticalThreshold: 15},
	}
}

func TestUpdateResourceAmount(t *testing.T) {
	in := testResources()
	out := UpdateResourceAmount(in, "food", 3, true)

	if in[1].Amount != 5 {
		t.Fatalf("input mutated: food=%v", in[1].Amount)
	}
	if out[1].Amount != 8 {
		t.Fatalf("food=%v want 8", out[1].Amount)
	}
	if !out[1].Discovered {
		t.Fatalf("food should be discovered after marked update")
	}
}

func TestUpdateResourceAmount_NoMarkKeepsDiscovery(t *testing.T) {
	in := testResources()
	out := UpdateResourceAmount(in, "materials", -4, false)

	if out[0].Amount != 6 {
		t.Fatalf("materials=%v want 6", out[0].Amount)
	}
	if !out[0].Discovered {
		t.Fatalf("discovery must never revert")
	}
	if out[1].Discovered {
		t.Fatalf("untouched resource must stay undiscovered")
	}
}

func TestUpdateResourceAmount_UnknownIDIsNoop(t *testing.T) {
	in := testResources()
	out := UpdateResourceAmount(in, "plutonium", 100, true)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("entry %d changed: %+v", i, out[i])
		}
	}
}

func TestUpdateMultipleResources_MarksAllTouched(t *testing.T) {
	out := UpdateMultipleResources(testResources(), []ResourceDelta{
		{ID: "food", Delta: 2},
		{ID: "herbs", Delta: 1},
	})
	if !out[1].Discovered || !out[2].Discovered {
		t.Fatalf("batched updates must discover touched resources")
	}
	if out[1].Amount != 7 || out[2].Amount != 1 {
		t.Fatalf("amounts: food=%v herbs=%v", out[1].Amount, out[2].Amount)
	}
}

func TestHasEnoughResource(t *testing.T) {
	res := testResources()
	cases := []struct {
		id     string
		amount float64
		want   bool
	}{
		{"materials", 10, true},
		{"materials", 10.01, false},
		{"food", 0, true},
		{"missing", 0, false}, // missing resource can never afford
	}
	for _, c := range cases {
		if got := HasEnoughResource(res, c.id, c.amount); got != c.want {
			t.Fatalf("HasEnoughResource(%q, %v)=%v want %v", c.id, c.amount, got, c.want)
		}
	}
}

func TestHasEnoughResources_AllLinesMustPass(t *testing.T) {
	res := testResources()
	if !HasEnoughResources(res, []CostSpec{{Resource: "materials", Amount: 5}, {Resource: "food", Amount: 5}}) {
		t.Fatalf("affordable cost list rejected")
	}
	if HasEnoughResources(res, []CostSpec{{Resource: "materials", Amount: 5}, {Resource: "food", Amount: 6}}) {
		t.Fatalf("unaffordable line must fail the whole list")
	}
}

func TestUpdateSurvivalNeed_Clamps(t *testing.T) {
	needs := testNeeds()

	up := UpdateSurvivalNeed(needs, "hunger", 500)
	if up[0].Current != 100 {
		t.Fatalf("over-max not clamped: %v", up[0].Current)
	}

	down := UpdateSurvivalNeed(needs, "warmth", -500)
	if down[1].Current != 0 {
		t.Fatalf("under-zero not clamped: %v", down[1].Current)
	}

	if needs[0].Current != 80 || needs[1].Current != 60 {
		t.Fatalf("inputs mutated")
	}
}

func TestUpdateSurvivalNeed_ClampHoldsOverSequences(t *testing.T) {
	needs := testNeeds()
	deltas := []float64{-30, 90, -200, 15, 400, -1}
	for _, d := range deltas {
		needs = UpdateSurvivalNeed(needs, "hunger", d)
		cur := needs[0].Current
		if cur < 0 || cur > needs[0].Max {
			t.Fatalf("clamp violated after delta %v: current=%v", d, cur)
		}
	}
}

func TestUpdateMultipleSurvivalNeeds(t *testing.T) {
	out := UpdateMultipleSurvivalNeeds(testNeeds(), []NeedDelta{
		{ID: "hunger", Delta: -10},
		{ID: "warmth", Delta: 10},
	})
	if out[0].Current != 70 || out[1].Current != 70 {
		t.Fatalf("hunger=%v warmth=%v, want 70/70", out[0].Current, out[1].Current)
	}
}
