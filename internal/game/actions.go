/*
Package game
File: actions.go
Description:
    Player-triggered state transitions. Every handler validates through the
    ledger first and either replaces the state or leaves it untouched — a
    rejected action is a pure no-op, signalled by the boolean return, never
    by an error.

    Handlers never write to storage; persistence happens on its own timer.
*/

package game

import "math"

// ClickGather adds a manually foraged amount and reveals the resource.
// Gathering has no precondition; it always applies.
func (e *Engine) ClickGather(resourceID string, amount float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.Clone()
	next.Resources = UpdateResourceAmount(next.Resources, resourceID, amount, true)
	e.state = next
}

// BuyProducer purchases one copy of a producer at its current marginal
// cost. Reports whether the purchase applied.
func (e *Engine) BuyProducer(producerID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.ProducerByID(producerID)
	if p == nil {
		return false
	}

	cost := e.producerCost(p)
	currency := p.CostResource
	if currency == "" {
		currency = defaultCostResource
	}
	if !HasEnoughResource(e.state.Resources, currency, cost) {
		return false
	}

	next := e.state.Clone()
	next.Resources = UpdateResourceAmount(next.Resources, currency, -cost, true)
	bought := next.ProducerByID(producerID)
	bought.Count++
	bought.Discovered = true
	e.applyDiscoveries(next)

	e.state = next
	return true
}

// ProducerCost quotes the next-copy cost for a producer, for display
// before the player commits. Zero when the producer is unknown.
func (e *Engine) ProducerCost(producerID string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	p := e.state.ProducerByID(producerID)
	if p == nil {
		return 0
	}
	return e.producerCost(p)
}

// producerCost applies the geometric cost curve: baseCost * growth^count,
// rounded per settings (ceiling by default, so growth > 1 keeps marginal
// cost strictly increasing).
func (e *Engine) producerCost(p *Producer) float64 {
	raw := p.BaseCost * math.Pow(p.Growth, float64(p.Count))
	if e.data.Settings.Production.CostRounding == "floor" {
		return math.Floor(raw)
	}
	return math.Ceil(raw)
}

// PurchaseUpgrade buys an upgrade, records it in the purchased set and
// re-evaluates unlocks (a purchase can itself satisfy another upgrade's
// condition). Reports whether the purchase applied.
func (e *Engine) PurchaseUpgrade(upgradeID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	upg := e.data.UpgradeByID(upgradeID)
	if upg == nil || upg.CostResource == "" {
		return false
	}
	if hasID(e.state.UpgradesPurchased, upgradeID) {
		return false
	}
	if !HasEnoughResource(e.state.Resources, upg.CostResource, upg.Cost) {
		return false
	}

	next := e.state.Clone()
	next.Resources = UpdateResourceAmount(next.Resources, upg.CostResource, -upg.Cost, true)
	next.UpgradesPurchased = append(next.UpgradesPurchased, upgradeID)
	e.applyDiscoveries(next)

	e.state = next
	return true
}

// LightCampfire spends the fixed material cost to light the fire and add
// fuel, capped at the fire's capacity. Reports whether it applied.
func (e *Engine) LightCampfire() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg := e.data.Settings.Campfire
	if !HasEnoughResource(e.state.Resources, cfg.LightCostResource, cfg.LightCostAmount) {
		return false
	}

	next := e.state.Clone()
	next.Resources = UpdateResourceAmount(next.Resources, cfg.LightCostResource, -cfg.LightCostAmount, false)

	fire := &next.Survival.Campfire
	fire.Lit = true
	fire.Fuel += cfg.FuelPerLight
	if fire.Fuel > fire.MaxFuel {
		fire.Fuel = fire.MaxFuel
	}

	e.state = next
	return true
}

// StartExpedition deducts the expedition's costs (scaled by any purchased
// exploration-efficiency upgrades) and installs the active-expedition
// timer. Rejected while another expedition is underway.
func (e *Engine) StartExpedition(expeditionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Survival.ActiveExpedition != nil {
		return false
	}
	def := e.data.ExpeditionByID(expeditionID)
	if def == nil || def.Duration <= 0 {
		return false
	}

	efficiency := e.data.ExplorationEfficiency(e.state.UpgradesPurchased)
	costs := make([]CostSpec, len(def.Costs))
	for i, c := range def.Costs {
		costs[i] = CostSpec{Resource: c.Resource, Amount: c.Amount * efficiency}
	}
	if !HasEnoughResources(e.state.Resources, costs) {
		return false
	}

	next := e.state.Clone()
	for _, c := range costs {
		next.Resources = UpdateResourceAmount(next.Resources, c.Resource, -c.Amount, false)
	}
	next.Survival.ActiveExpedition = &ActiveExpedition{
		ExpeditionID:  expeditionID,
		TimeRemaining: def.Duration,
		TotalTime:     def.Duration,
	}

	e.state = next
	return true
}

// ConsumeResource spends a resource; when a consumable rule links it to a
// need, the need is restored at the configured per-unit rate (clamped to
// the need's max by the ledger). Reports whether it applied.
func (e *Engine) ConsumeResource(resourceID string, amount float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount <= 0 {
		return false
	}
	if !HasEnoughResource(e.state.Resources, resourceID, amount) {
		return false
	}

	next := e.state.Clone()
	next.Resources = UpdateResourceAmount(next.Resources, resourceID, -amount, false)
	for _, rule := range e.data.Settings.Consumables {
		if rule.Resource == resourceID {
			next.Survival.Needs = UpdateSurvivalNeed(next.Survival.Needs, rule.Need, amount*rule.RestorePerUnit)
		}
	}

	e.state = next
	return true
}

// Reset replaces the state with fresh defaults. Clearing the persisted
// save is the caller's job (the engine never touches storage).
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = DefaultState(e.data)
}
