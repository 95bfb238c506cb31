package game

import (
	"reflect"
	"testing"
)

func unlocksTestData() *GameData {
	return &GameData{
		Upgrades: []Upgrade{
			{ID: "free_hint", Unlock: nil},
			{ID: "sharp_tools", Unlock: &UnlockCondition{Type: UnlockResource, ID: "materials", Amount: 50}},
			{ID: "exists_only", Unlock: &UnlockCondition{Type: UnlockResource, ID: "herbs"}},
			{ID: "baited_snares", Unlock: &UnlockCondition{Type: UnlockProducer, ID: "trap_line", Count: 3}},
			{ID: "trail_maps", Unlock: &UnlockCondition{Type: UnlockUpgrade, ID: "sharp_tools"}},
			{ID: "totem", Unlock: &UnlockCondition{Type: "colonist", ID: "elder"}},
		},
		Expeditions: []Expedition{
			{ID: "river_run", Unlock: &UnlockCondition{Type: UnlockResource, ID: "materials", Amount: 100}},
		},
	}
}

func TestEvaluateUpgradeUnlocks(t *testing.T) {
	data := unlocksTestData()
	resources := []Resource{
		{ID: "materials", Amount: 60},
		{ID: "herbs", Amount: 0},
	}
	producers := []Producer{{ID: "trap_line", Count: 2}}

	got := data.EvaluateUpgradeUnlocks(resources, producers, nil, nil)
	// free_hint: no condition; sharp_tools: 60 >= 50; exists_only: herbs
	// exists with zero threshold. trap_line count too low, trail_maps not
	// purchased, totem's condition kind is unsupported (always locked).
	want := []string{"free_hint", "sharp_tools", "exists_only"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("newly discovered=%v want %v", got, want)
	}
}

func TestEvaluateUpgradeUnlocks_ProducerAndUpgradeConditions(t *testing.T) {
	data := unlocksTestData()
	producers := []Producer{{ID: "trap_line", Count: 3}}

	got := data.EvaluateUpgradeUnlocks(nil, producers, []string{"free_hint", "exists_only"}, []string{"sharp_tools"})
	want := []string{"baited_snares", "trail_maps"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("newly discovered=%v want %v", got, want)
	}
}

func TestEvaluateUpgradeUnlocks_Idempotent(t *testing.T) {
	data := unlocksTestData()
	resources := []Resource{{ID: "materials", Amount: 60}, {ID: "herbs"}}

	first := data.EvaluateUpgradeUnlocks(resources, nil, nil, nil)
	discovered := mergeDiscovered(nil, first)

	second := data.EvaluateUpgradeUnlocks(resources, nil, discovered, nil)
	if len(second) != 0 {
		t.Fatalf("second evaluation must return nothing, got %v", second)
	}
}

func TestEvaluateUpgradeUnlocks_PurchasedNeverReturned(t *testing.T) {
	data := unlocksTestData()
	resources := []Resource{{ID: "materials", Amount: 1000}}

	got := data.EvaluateUpgradeUnlocks(resources, nil, nil, []string{"sharp_tools"})
	for _, id := range got {
		if id == "sharp_tools" {
			t.Fatalf("purchased upgrade re-discovered")
		}
	}
}

func TestEvaluateExpeditionUnlocks(t *testing.T) {
	data := unlocksTestData()
	expeditions := []Expedition{{ID: "river_run"}}

	if got := data.EvaluateExpeditionUnlocks([]Resource{{ID: "materials", Amount: 99}}, nil, nil, expeditions); len(got) != 0 {
		t.Fatalf("below threshold but unlocked: %v", got)
	}

	got := data.EvaluateExpeditionUnlocks([]Resource{{ID: "materials", Amount: 100}}, nil, nil, expeditions)
	if !reflect.DeepEqual(got, []string{"river_run"}) {
		t.Fatalf("got %v want [river_run]", got)
	}

	// Already discovered entries stay quiet.
	expeditions[0].Discovered = true
	if got := data.EvaluateExpeditionUnlocks([]Resource{{ID: "materials", Amount: 100}}, nil, nil, expeditions); len(got) != 0 {
		t.Fatalf("discovered expedition re-returned: %v", got)
	}
}

func TestMergeDiscovered_Unique(t *testing.T) {
	base := []string{"a", "b"}
	out := mergeDiscovered(base, []string{"b", "c"})
	if !reflect.DeepEqual(out, []string{"a", "b", "c"}) {
		t.Fatalf("merge=%v", out)
	}
	if len(base) != 2 {
		t.Fatalf("input mutated: %v", base)
	}
}
