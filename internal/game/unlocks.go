/*
Package game
File: unlocks.go
Description:
    The discovery evaluator. Given the current resources, producers and
    purchase history, it computes which upgrades and expeditions newly
    qualify for discovery.

    Evaluation is pure and idempotent: nothing is mutated, and an ID already
    present in the discovered set is never returned again.
*/

package game

// EvaluateUpgradeUnlocks returns the IDs of upgrades that newly qualify for
// discovery, in config order.
func (d *GameData) EvaluateUpgradeUnlocks(resources []Resource, producers []Producer, discovered, purchased []string) []string {
	var newly []string
	for _, upg := range d.Upgrades {
		if hasID(purchased, upg.ID) || hasID(discovered, upg.ID) {
			continue
		}
		if unlockSatisfied(upg.Unlock, resources, producers, purchased) {
			newly = append(newly, upg.ID)
		}
	}
	return newly
}

// EvaluateExpeditionUnlocks returns the IDs of expeditions (from the state's
// expedition list) that newly qualify for discovery.
func (d *GameData) EvaluateExpeditionUnlocks(resources []Resource, producers []Producer, purchased []string, expeditions []Expedition) []string {
	var newly []string
	for _, exp := range expeditions {
		if exp.Discovered {
			continue
		}
		def := d.ExpeditionByID(exp.ID)
		if def == nil {
			continue
		}
		if unlockSatisfied(def.Unlock, resources, producers, purchased) {
			newly = append(newly, exp.ID)
		}
	}
	return newly
}

// unlockSatisfied tests a single unlock condition.
//   - nil: discoverable immediately.
//   - resource: the resource exists and meets the amount threshold
//     (a zero threshold means existence alone suffices).
//   - producer: the producer exists and meets the count threshold.
//   - upgrade: the referenced upgrade has been purchased.
//   - anything else: locked. Unsupported condition kinds (colonist-based,
//     campfire-based) deliberately fail closed instead of erroring.
func unlockSatisfied(cond *UnlockCondition, resources []Resource, producers []Producer, purchased []string) bool {
	if cond == nil {
		return true
	}

	switch cond.Type {
	case UnlockResource:
		for _, r := range resources {
			if r.ID == cond.ID {
				return r.Amount >= cond.Amount
			}
		}
		return false

	case UnlockProducer:
		for _, p := range producers {
			if p.ID == cond.ID {
				return p.Count >= cond.Count
			}
		}
		return false

	case UnlockUpgrade:
		return hasID(purchased, cond.ID)

	default:
		return false
	}
}

// mergeDiscovered appends the newly discovered IDs, preserving order and
// uniqueness. Returns the input slice unchanged when nothing is new.
func mergeDiscovered(discovered, newly []string) []string {
	if len(newly) == 0 {
		return discovered
	}
	out := make([]string, len(discovered), len(discovered)+len(newly))
	copy(out, discovered)
	for _, id := range newly {
		if !hasID(out, id) {
			out = append(out, id)
		}
	}
	return out
}
