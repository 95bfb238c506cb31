/*
Package game
File: ledger.go
Description:
    Pure helper operations over resource and survival-need slices.

    These are the ONLY primitives through which the engine and the action
    handlers touch resources and needs, which keeps two invariants checkable
    by inspection:
      1. Need values are hard-clamped to [0, max] on every single write.
      2. Resource discovery is one-way: once a resource is marked discovered,
         nothing here ever clears the flag.

    Every function returns a fresh slice; inputs are never mutated.
*/

package game

// ResourceDelta is one entry in a batched resource update.
type ResourceDelta struct {
	ID    string
	Delta float64
}

// NeedDelta is one entry in a batched survival-need update.
type NeedDelta struct {
	ID    string
	Delta float64
}

// UpdateResourceAmount adds delta to the matching resource. When
// markDiscovered is set the resource becomes visible to the player.
// Unknown IDs are a silent no-op (the copy is still returned).
func UpdateResourceAmount(resources []Resource, id string, delta float64, markDiscovered bool) []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		out[i].Amount += delta
		if markDiscovered {
			out[i].Discovered = true
		}
		break
	}
	return out
}

// UpdateMultipleResources applies a batch of deltas. Every touched
// resource is marked discovered — batched updates come from production
// and rewards, both of which put the resource in the player's hands.
func UpdateMultipleResources(resources []Resource, updates []ResourceDelta) []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)
	for _, u := range updates {
		for i := range out {
			if out[i].ID != u.ID {
				continue
			}
			out[i].Amount += u.Delta
			out[i].Discovered = true
			break
		}
	}
	return out
}

// HasEnoughResource reports whether the resource exists and holds at
// least the requested amount. A missing resource can never afford anything.
func HasEnoughResource(resources []Resource, id string, amount float64) bool {
	for _, r := range resources {
		if r.ID == id {
			return r.Amount >= amount
		}
	}
	return false
}

// HasEnoughResources checks a full cost list; all lines must be affordable.
func HasEnoughResources(resources []Resource, costs []CostSpec) bool {
	for _, c := range costs {
		if !HasEnoughResource(resources, c.Resource, c.Amount) {
			return false
		}
	}
	return true
}

// UpdateSurvivalNeed applies delta to the matching need, clamped to [0, max].
func UpdateSurvivalNeed(needs []SurvivalNeed, id string, delta float64) []SurvivalNeed {
	return UpdateMultipleSurvivalNeeds(needs, []NeedDelta{{ID: id, Delta: delta}})
}

// UpdateMultipleSurvivalNeeds applies a batch of need deltas with clamping.
func UpdateMultipleSurvivalNeeds(needs []SurvivalNeed, updates []NeedDelta) []SurvivalNeed {
	out := make([]SurvivalNeed, len(needs))
	copy(out, needs)
	for _, u := range updates {
		for i := range out {
			if out[i].ID != u.ID {
				continue
			}
			out[i].Current = clamp(out[i].Current+u.Delta, 0, out[i].Max)
			break
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
