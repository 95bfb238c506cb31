/*
Package game
File: effects.go
Description:
    Resolves the cumulative effects of purchased upgrades.

    Producer multipliers are looked up every tick, so results are cached by
    the joined purchased-ID list. The cache is owned by the engine instance
    (no package globals) and bounded: a purchase run long enough to overflow
    it only costs a recompute, never memory.
*/

package game

import "strings"

// effectCacheSize bounds the memoization map. Purchases only ever append
// to the ID list, so old keys become unreachable quickly.
const effectCacheSize = 32

// effectCache memoizes ComputeMultipliers results keyed by the joined
// purchased-upgrade-ID list, evicting the oldest key once full.
type effectCache struct {
	data    *GameData
	entries map[string]map[string]float64
	order   []string // Insertion order, oldest first
}

func newEffectCache(data *GameData) *effectCache {
	return &effectCache{
		data:    data,
		entries: make(map[string]map[string]float64),
	}
}

// ComputeMultipliers returns the target -> multiplier mapping derived from
// the purchased upgrades. Each target starts at an implicit 1; only
// 'multiplier' effects contribute. Multiplication is commutative, so the
// purchase order never matters.
func (c *effectCache) ComputeMultipliers(purchased []string) map[string]float64 {
	key := strings.Join(purchased, ",")
	if cached, ok := c.entries[key]; ok {
		return cached
	}

	multipliers := make(map[string]float64)
	for _, id := range purchased {
		upg := c.data.UpgradeByID(id)
		if upg == nil || upg.Effect.Type != EffectMultiplier || upg.Effect.Target == "" {
			continue
		}
		current, ok := multipliers[upg.Effect.Target]
		if !ok {
			current = 1
		}
		multipliers[upg.Effect.Target] = current * upg.Effect.Value
	}

	if len(c.order) >= effectCacheSize {
		delete(c.entries, c.order[0])
		c.order = c.order[1:]
	}
	c.entries[key] = multipliers
	c.order = append(c.order, key)

	return multipliers
}

// MultiplierFor is a convenience lookup defaulting to 1.
func MultiplierFor(multipliers map[string]float64, target string) float64 {
	if m, ok := multipliers[target]; ok {
		return m
	}
	return 1
}

// SurvivalDecayRate returns the need's decay rate after applying every
// purchased 'survival_modifier' upgrade targeting it on the decayRate
// attribute. Used by the offline catch-up path.
func (d *GameData) SurvivalDecayRate(need SurvivalNeed, purchased []string) float64 {
	rate := need.DecayRate
	for _, id := range purchased {
		upg := d.UpgradeByID(id)
		if upg == nil || upg.Effect.Type != EffectSurvivalModifier {
			continue
		}
		if upg.Effect.Target == need.ID && upg.Effect.Attribute == "decayRate" && upg.Effect.Value != 0 {
			rate *= upg.Effect.Value
		}
	}
	return rate
}

// ExplorationEfficiency returns the cost multiplier for starting an
// expedition: the product of all purchased 'exploration_modifier'
// efficiency values (values below 1 make expeditions cheaper).
func (d *GameData) ExplorationEfficiency(purchased []string) float64 {
	efficiency := 1.0
	for _, id := range purchased {
		upg := d.UpgradeByID(id)
		if upg == nil || upg.Effect.Type != EffectExplorationModifier {
			continue
		}
		if upg.Effect.Attribute == "efficiency" && upg.Effect.Value != 0 {
			efficiency *= upg.Effect.Value
		}
	}
	return efficiency
}

// UpgradeByID retrieves an upgrade definition. Returns nil if not found.
func (d *GameData) UpgradeByID(id string) *Upgrade {
	for i := range d.Upgrades {
		if d.Upgrades[i].ID == id {
			return &d.Upgrades[i]
		}
	}
	return nil
}

// ExpeditionByID retrieves an expedition definition. Returns nil if not found.
func (d *GameData) ExpeditionByID(id string) *Expedition {
	for i := range d.Expeditions {
		if d.Expeditions[i].ID == id {
			return &d.Expeditions[i]
		}
	}
	return nil
}
