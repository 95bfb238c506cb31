/*
Package game
File: config.go
Description:
    Loads and sanity-checks the static game configuration ('game-data.yaml').

    The config is read exactly once at startup and treated as immutable for
    the whole session. Missing settings fall back to built-in defaults;
    dangling ID references (an upgrade pointing at a producer that doesn't
    exist, etc.) are logged with a nearest-match suggestion but never fail
    the load — bad authoring degrades to a no-op at runtime.
*/

package game

import (
	"fmt"
	"log"
	"os"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"
)

// Built-in fallbacks applied when the YAML omits a setting.
const (
	defaultSaveKey          = "save:v2"
	defaultTickIntervalMs   = 1000
	defaultAutosaveMs       = 5000
	defaultMaxOfflineSecs   = 86400
	defaultSafetyPadding    = 5
	defaultCostResource     = "materials"
	defaultFuelDrainPerTick = 1
)

// LoadGameData reads the YAML config at path and returns the parsed,
// defaulted GameData.
func LoadGameData(path string) (*GameData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data GameData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("game data: %w", err)
	}

	applySettingsDefaults(&data.Settings)
	checkReferences(&data)

	return &data, nil
}

// applySettingsDefaults fills any zero-valued settings with the built-ins,
// so authors only need to write the values they want to change.
func applySettingsDefaults(s *Settings) {
	if s.SaveKey == "" {
		s.SaveKey = defaultSaveKey
	}
	if s.DefaultTickIntervalMs <= 0 {
		s.DefaultTickIntervalMs = defaultTickIntervalMs
	}
	if s.AutosaveIntervalMs <= 0 {
		s.AutosaveIntervalMs = defaultAutosaveMs
	}
	if s.MaxOfflineSeconds <= 0 {
		s.MaxOfflineSeconds = defaultMaxOfflineSecs
	}
	if s.OfflineSafetyPadding <= 0 {
		s.OfflineSafetyPadding = defaultSafetyPadding
	}
	if s.Campfire.FuelDrainPerTick <= 0 {
		s.Campfire.FuelDrainPerTick = defaultFuelDrainPerTick
	}
	if s.Campfire.LightCostResource == "" {
		s.Campfire.LightCostResource = defaultCostResource
	}
	if s.Production.CostRounding == "" {
		s.Production.CostRounding = "ceil"
	}
}

// checkReferences walks every cross-entity ID in the config and logs a
// warning for anything that doesn't resolve. Purely advisory.
func checkReferences(data *GameData) {
	resourceIDs := make([]string, 0, len(data.Resources))
	for _, r := range data.Resources {
		resourceIDs = append(resourceIDs, r.ID)
	}

	warn := func(owner, field, id string) {
		if suggestion := nearestID(id, resourceIDs); suggestion != "" {
			log.Printf("CONFIG: %s references unknown resource %q in %s (did you mean %q?)", owner, id, field, suggestion)
			return
		}
		log.Printf("CONFIG: %s references unknown resource %q in %s", owner, id, field)
	}

	for _, p := range data.Producers {
		if !hasID(resourceIDs, p.Resource) {
			warn("producer "+p.ID, "resource", p.Resource)
		}
		if p.CostResource != "" && !hasID(resourceIDs, p.CostResource) {
			warn("producer "+p.ID, "cost_resource", p.CostResource)
		}
	}
	for _, u := range data.Upgrades {
		if u.CostResource != "" && !hasID(resourceIDs, u.CostResource) {
			warn("upgrade "+u.ID, "cost_resource", u.CostResource)
		}
	}
	for _, e := range data.Expeditions {
		for _, c := range e.Costs {
			if !hasID(resourceIDs, c.Resource) {
				warn("expedition "+e.ID, "costs", c.Resource)
			}
		}
		for _, r := range e.Rewards {
			if !hasID(resourceIDs, r.Resource) {
				warn("expedition "+e.ID, "rewards", r.Resource)
			}
		}
	}
}

func hasID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// nearestID returns the known ID closest to the given one, or "" when
// nothing is plausibly close. Longer IDs tolerate more edits.
func nearestID(id string, known []string) string {
	best := ""
	bestDist := -1
	for _, candidate := range known {
		dist := levenshtein.ComputeDistance(id, candidate)
		if dist > editLimit(len(candidate)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}
	return best
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
