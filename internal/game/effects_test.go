package game

import (
	"fmt"
	"testing"
)

func effectsTestData() *GameData {
	return &GameData{
		Upgrades: []Upgrade{
			{ID: "sharp_tools", Effect: Effect{Type: EffectMultiplier, Target: "miner", Value: 2}},
			{ID: "sharper_tools", Effect: Effect{Type: EffectMultiplier, Target: "miner", Value: 3}},
			{ID: "big_nets", Effect: Effect{Type: EffectMultiplier, Target: "trap_line", Value: 1.5}},
			{ID: "warm_coat", Effect: Effect{Type: EffectSurvivalModifier, Target: "warmth", Attribute: "decayRate", Value: 0.5}},
			{ID: "trail_maps", Effect: Effect{Type: EffectExplorationModifier, Attribute: "efficiency", Value: 0.8}},
			{ID: "compass", Effect: Effect{Type: EffectExplorationModifier, Attribute: "efficiency", Value: 0.9}},
		},
	}
}

func TestComputeMultipliers_Cumulative(t *testing.T) {
	cache := newEffectCache(effectsTestData())

	m := cache.ComputeMultipliers([]string{"sharp_tools", "sharper_tools", "big_nets"})
	if got := MultiplierFor(m, "miner"); got != 6 {
		t.Fatalf("miner multiplier=%v want 6", got)
	}
	if got := MultiplierFor(m, "trap_line"); got != 1.5 {
		t.Fatalf("trap_line multiplier=%v want 1.5", got)
	}
	if got := MultiplierFor(m, "unknown"); got != 1 {
		t.Fatalf("default multiplier=%v want 1", got)
	}
}

func TestComputeMultipliers_IgnoresNonMultiplierAndUnknown(t *testing.T) {
	cache := newEffectCache(effectsTestData())
	m := cache.ComputeMultipliers([]string{"warm_coat", "trail_maps", "no_such_upgrade"})
	if len(m) != 0 {
		t.Fatalf("expected empty multiplier map, got %v", m)
	}
}

func TestComputeMultipliers_CacheHit(t *testing.T) {
	cache := newEffectCache(effectsTestData())
	ids := []string{"sharp_tools"}

	cache.ComputeMultipliers(ids)
	second := cache.ComputeMultipliers(ids)
	if len(cache.entries) != 1 {
		t.Fatalf("expected single cache entry, got %d", len(cache.entries))
	}
	if MultiplierFor(second, "miner") != 2 {
		t.Fatalf("cached result wrong: %v", second)
	}
}

func TestComputeMultipliers_CacheBounded(t *testing.T) {
	cache := newEffectCache(effectsTestData())
	for i := 0; i < effectCacheSize*2; i++ {
		cache.ComputeMultipliers([]string{fmt.Sprintf("key_%d", i)})
	}
	if len(cache.entries) > effectCacheSize {
		t.Fatalf("cache grew past bound: %d entries", len(cache.entries))
	}
	if len(cache.order) != len(cache.entries) {
		t.Fatalf("order/entries out of sync: %d vs %d", len(cache.order), len(cache.entries))
	}
}

func TestSurvivalDecayRate(t *testing.T) {
	data := effectsTestData()
	warmth := SurvivalNeed{ID: "warmth", DecayRate: 0.1}

	if got := data.SurvivalDecayRate(warmth, nil); got != 0.1 {
		t.Fatalf("unmodified rate=%v want 0.1", got)
	}
	if got := data.SurvivalDecayRate(warmth, []string{"warm_coat"}); got != 0.05 {
		t.Fatalf("modified rate=%v want 0.05", got)
	}

	// Modifier for a different need must not leak over.
	hunger := SurvivalNeed{ID: "hunger", DecayRate: 0.2}
	if got := data.SurvivalDecayRate(hunger, []string{"warm_coat"}); got != 0.2 {
		t.Fatalf("hunger rate=%v want 0.2", got)
	}
}

func TestExplorationEfficiency_Stacks(t *testing.T) {
	data := effectsTestData()
	if got := data.ExplorationEfficiency(nil); got != 1 {
		t.Fatalf("base efficiency=%v want 1", got)
	}
	got := data.ExplorationEfficiency([]string{"trail_maps", "compass"})
	want := 0.8 * 0.9
	if got != want {
		t.Fatalf("stacked efficiency=%v want %v", got, want)
	}
}
