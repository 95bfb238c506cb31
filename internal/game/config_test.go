package game

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game-data.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadGameData(t *testing.T) {
	path := writeConfig(t, `
resources:
  - id: materials
    name: Materials
    discovered: true
producers:
  - id: scavenger
    name: Scavenger
    resource: materials
    base_cost: 10
    growth: 1.15
    power: 1
upgrades:
  - id: sharp_tools
    cost: 100
    cost_resource: materials
    effect: { type: multiplier, target: scavenger, value: 2 }
    unlock: { type: resource, id: materials, amount: 50 }
survival:
  needs:
    - { id: hunger, current: 80, max: 100, decay_rate: 0.05, critical_threshold: 10 }
  campfire: { max_fuel: 100, warmth_per_tick: 2 }
settings:
  save_key: "save:test"
  max_offline_seconds: 3600
`)

	data, err := LoadGameData(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(data.Resources) != 1 || data.Resources[0].ID != "materials" {
		t.Fatalf("resources=%+v", data.Resources)
	}
	upg := data.UpgradeByID("sharp_tools")
	if upg == nil || upg.Effect.Type != EffectMultiplier || upg.Effect.Value != 2 {
		t.Fatalf("upgrade=%+v", upg)
	}
	if upg.Unlock == nil || upg.Unlock.Type != UnlockResource || upg.Unlock.Amount != 50 {
		t.Fatalf("unlock=%+v", upg.Unlock)
	}
	if data.Settings.SaveKey != "save:test" {
		t.Fatalf("saveKey=%q", data.Settings.SaveKey)
	}
	if data.Settings.MaxOfflineSeconds != 3600 {
		t.Fatalf("maxOffline=%d", data.Settings.MaxOfflineSeconds)
	}
}

func TestLoadGameData_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "resources: []\n")

	data, err := LoadGameData(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	s := data.Settings
	if s.SaveKey != defaultSaveKey {
		t.Fatalf("saveKey=%q want %q", s.SaveKey, defaultSaveKey)
	}
	if s.DefaultTickIntervalMs != defaultTickIntervalMs {
		t.Fatalf("tick=%d want %d", s.DefaultTickIntervalMs, defaultTickIntervalMs)
	}
	if s.AutosaveIntervalMs != defaultAutosaveMs {
		t.Fatalf("autosave=%d want %d", s.AutosaveIntervalMs, defaultAutosaveMs)
	}
	if s.MaxOfflineSeconds != defaultMaxOfflineSecs {
		t.Fatalf("maxOffline=%d want %d", s.MaxOfflineSeconds, defaultMaxOfflineSecs)
	}
	if s.OfflineSafetyPadding != defaultSafetyPadding {
		t.Fatalf("padding=%v want %v", s.OfflineSafetyPadding, defaultSafetyPadding)
	}
	if s.Campfire.FuelDrainPerTick != defaultFuelDrainPerTick {
		t.Fatalf("fuelDrain=%v want %v", s.Campfire.FuelDrainPerTick, defaultFuelDrainPerTick)
	}
	if s.Campfire.LightCostResource != defaultCostResource {
		t.Fatalf("lightCostResource=%q", s.Campfire.LightCostResource)
	}
	if s.Production.CostRounding != "ceil" {
		t.Fatalf("rounding=%q want ceil", s.Production.CostRounding)
	}
}

func TestLoadGameData_MissingFile(t *testing.T) {
	if _, err := LoadGameData(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("missing file must error")
	}
}

func TestLoadGameData_ParseError(t *testing.T) {
	path := writeConfig(t, "resources: [unterminated\n")
	if _, err := LoadGameData(path); err == nil {
		t.Fatalf("malformed yaml must error")
	}
}

func TestNearestID(t *testing.T) {
	known := []string{"materials", "food", "water"}
	cases := []struct {
		in   string
		want string
	}{
		{"materals", "materials"}, // one deletion
		{"fod", "food"},
		{"plutonium", ""}, // nothing close
		{"materials", "materials"},
	}
	for _, c := range cases {
		if got := nearestID(c.in, known); got != c.want {
			t.Fatalf("nearestID(%q)=%q want %q", c.in, got, c.want)
		}
	}
}
