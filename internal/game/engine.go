/*
Package game
File: engine.go
Description:
    The simulation engine: the per-second tick and the one-shot offline
    catch-up applied at load time.

    A tick is one atomic transaction over the previous state snapshot. Each
    phase reads the output of the previous one, giving a fixed total order:

        expedition -> campfire -> production -> discovery

    The engine is the sole owner of the current GameState. Callers get
    clones and talk back through the action handlers (actions.go); nothing
    outside this package mutates state directly.
*/

package game

import (
	"math/rand"
	"sync"
	"time"
)

// Event is an observable game outcome pushed to the rendering layer.
// Failures are events, never errors (a dead expedition is gameplay).
type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Engine owns the authoritative GameState and applies all transitions.
// All exported methods are safe for concurrent use; internally everything
// runs strictly sequentially under one lock.
type Engine struct {
	mu      sync.RWMutex
	data    *GameData
	state   *GameState
	rng     *rand.Rand
	effects *effectCache
}

// NewEngine builds an engine around the given state. A nil state starts a
// new game from config defaults; a nil rng seeds from the wall clock
// (tests inject a fixed seed for deterministic reward rolls).
func NewEngine(data *GameData, state *GameState, rng *rand.Rand) *Engine {
	if state == nil {
		state = DefaultState(data)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		data:    data,
		state:   state,
		rng:     rng,
		effects: newEffectCache(data),
	}
}

// Data returns the immutable config the engine was built with.
func (e *Engine) Data() *GameData {
	return e.data
}

// State returns a snapshot clone of the current state.
func (e *Engine) State() *GameState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state.Clone()
}

// SnapshotForSave returns a clone stamped with the current time, ready to
// hand to the persistence adapter.
func (e *Engine) SnapshotForSave() *GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.LastSaved = time.Now().UnixMilli()
	return e.state.Clone()
}

// ReplaceState swaps in an arbitrary state, bypassing every validation.
// Exists solely for debug tooling; not part of the supported surface.
func (e *Engine) ReplaceState(state *GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = state.Clone()
}

// Tick advances the simulation by one step and returns the game events the
// step produced. With no producers configured at all the previous state is
// kept verbatim (still a valid no-op tick).
func (e *Engine) Tick() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.state.Producers) == 0 {
		return nil
	}

	next := e.state.Clone()
	multipliers := e.effects.ComputeMultipliers(next.UpgradesPurchased)
	var events []Event

	// 1. Expedition progression (one tick = one second of trip time).
	events = append(events, e.tickExpedition(next)...)

	// 2. Campfire burn.
	events = append(events, e.tickCampfire(next)...)

	// 3. Production.
	e.tickProduction(next, multipliers)

	// 4. Discovery evaluation against the post-production snapshot.
	events = append(events, e.applyDiscoveries(next)...)

	e.state = next
	return events
}

// tickExpedition decrements the active expedition, applies survival drain,
// and resolves failure or completion. Failure is checked first and
// short-circuits completion for the tick.
func (e *Engine) tickExpedition(next *GameState) []Event {
	active := next.Survival.ActiveExpedition
	if active == nil || active.TimeRemaining <= 0 {
		return nil
	}

	active.TimeRemaining--

	// Drain: prefer the expedition's own rates, else the global default.
	drain := e.data.Settings.ExpeditionDrain
	def := e.data.ExpeditionByID(active.ExpeditionID)
	if def != nil && def.Drain != nil {
		drain = *def.Drain
	}
	next.Survival.Needs = UpdateMultipleSurvivalNeeds(next.Survival.Needs, []NeedDelta{
		{ID: "hunger", Delta: -drain.Hunger},
		{ID: "thirst", Delta: -drain.Thirst},
		{ID: "warmth", Delta: -drain.Warmth},
	})

	// Failure: any need at zero aborts the trip with no rewards.
	for _, need := range next.Survival.Needs {
		if need.Current <= 0 {
			next.Survival.ActiveExpedition = nil
			return []Event{{
				Type: "expedition_failed",
				Payload: map[string]any{
					"expeditionId": active.ExpeditionID,
					"need":         need.ID,
				},
			}}
		}
	}

	// Completion: roll each reward independently on the final tick.
	if active.TimeRemaining <= 0 {
		rewards := map[string]int{}
		if def != nil {
			var updates []ResourceDelta
			for _, r := range def.Rewards {
				amount := e.rollReward(r)
				if amount > 0 {
					updates = append(updates, ResourceDelta{ID: r.Resource, Delta: float64(amount)})
					rewards[r.Resource] += amount
				}
			}
			next.Resources = UpdateMultipleResources(next.Resources, updates)
		}
		next.Survival.ActiveExpedition = nil
		return []Event{{
			Type: "expedition_complete",
			Payload: map[string]any{
				"expeditionId": active.ExpeditionID,
				"rewards":      rewards,
			},
		}}
	}

	return nil
}

// rollReward draws a uniform amount in [min, max].
func (e *Engine) rollReward(r RewardSpec) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return e.rng.Intn(r.Max-r.Min+1) + r.Min
}

// tickCampfire drains fuel and radiates warmth. The fire goes out on the
// very tick its fuel hits zero — no grace tick with lit=true and fuel=0.
func (e *Engine) tickCampfire(next *GameState) []Event {
	fire := &next.Survival.Campfire
	if !fire.Lit || fire.Fuel <= 0 {
		return nil
	}

	fire.Fuel -= e.data.Settings.Campfire.FuelDrainPerTick
	if fire.Fuel < 0 {
		fire.Fuel = 0
	}
	next.Survival.Needs = UpdateSurvivalNeed(next.Survival.Needs, "warmth", fire.WarmthPerTick)

	if fire.Fuel <= 0 {
		fire.Lit = false
		return []Event{{Type: "campfire_extinguished"}}
	}
	return nil
}

// tickProduction credits every owned producer's output. A zero-or-negative
// effective output neither mutates nor discovers the target resource, so a
// nullifying multiplier can't phantom-discover anything.
func (e *Engine) tickProduction(next *GameState, multipliers map[string]float64) {
	var updates []ResourceDelta
	for _, p := range next.Producers {
		if p.Count <= 0 {
			continue
		}
		output := float64(p.Count) * p.Power * MultiplierFor(multipliers, p.ID)
		if output > 0 {
			updates = append(updates, ResourceDelta{ID: p.Resource, Delta: output})
		}
	}
	next.Resources = UpdateMultipleResources(next.Resources, updates)
}

// applyDiscoveries runs the unlock evaluator and merges the results into
// the state. Discovery is one-way; merges only ever add.
func (e *Engine) applyDiscoveries(next *GameState) []Event {
	var events []Event

	newUpgrades := e.data.EvaluateUpgradeUnlocks(next.Resources, next.Producers, next.UpgradesDiscovered, next.UpgradesPurchased)
	if len(newUpgrades) > 0 {
		next.UpgradesDiscovered = mergeDiscovered(next.UpgradesDiscovered, newUpgrades)
		events = append(events, Event{
			Type:    "upgrades_discovered",
			Payload: map[string]any{"ids": newUpgrades},
		})
	}

	newExpeditions := e.data.EvaluateExpeditionUnlocks(next.Resources, next.Producers, next.UpgradesPurchased, next.Expeditions)
	if len(newExpeditions) > 0 {
		for _, id := range newExpeditions {
			if exp := next.ExpeditionByID(id); exp != nil {
				exp.Discovered = true
			}
		}
		events = append(events, Event{
			Type:    "expeditions_discovered",
			Payload: map[string]any{"ids": newExpeditions},
		})
	}

	return events
}

// CatchUp fast-forwards production and survival decay for the real time
// elapsed since the save was written. Runs exactly once, before the first
// live tick. Returns the applied seconds (post-clamp) and any events.
//
// Expedition and campfire timers are deliberately NOT fast-forwarded:
// reward and failure rolls only ever happen on the live per-second
// cadence, never retroactively in bulk.
func (e *Engine) CatchUp(now time.Time) (int64, []Event) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dt := (now.UnixMilli() - e.state.LastSaved) / 1000
	if dt > e.data.Settings.MaxOfflineSeconds {
		dt = e.data.Settings.MaxOfflineSeconds
	}
	if dt <= 0 {
		return 0, nil
	}

	next := e.state.Clone()
	multipliers := e.effects.ComputeMultipliers(next.UpgradesPurchased)

	// 1. Survival decay, floored above the critical threshold: offline time
	// alone can never hand the player a game over.
	floorPad := e.data.Settings.OfflineSafetyPadding
	for i := range next.Survival.Needs {
		need := &next.Survival.Needs[i]
		rate := e.data.SurvivalDecayRate(*need, next.UpgradesPurchased)
		drained := need.Current - rate*float64(dt)
		floor := need.CriticalThreshold + floorPad
		if drained < floor {
			drained = floor
		}
		need.Current = drained
	}

	// 2. Production, scaled by the elapsed seconds.
	var updates []ResourceDelta
	for _, p := range next.Producers {
		if p.Count <= 0 {
			continue
		}
		output := float64(p.Count) * p.Power * MultiplierFor(multipliers, p.ID) * float64(dt)
		if output > 0 {
			updates = append(updates, ResourceDelta{ID: p.Resource, Delta: output})
		}
	}
	next.Resources = UpdateMultipleResources(next.Resources, updates)

	// 3. Re-evaluate discovery so thresholds crossed offline surface
	// immediately instead of one tick late.
	events := e.applyDiscoveries(next)

	e.state = next
	return dt, events
}
