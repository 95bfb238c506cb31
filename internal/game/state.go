/*
Package game
File: state.go
Description:
    Builds fresh game states from config defaults and reconciles persisted
    saves against the current config.

    Reconciliation is what lets us ship new content without invalidating old
    saves: anything present in config but missing from the save (by ID) is
    appended with its default definition. Nothing the save already contains
    is ever removed, even if the config no longer mentions it.
*/

package game

import "time"

// DefaultState creates the new-game state from config defaults.
func DefaultState(data *GameData) *GameState {
	state := &GameState{
		Resources:          append([]Resource(nil), data.Resources...),
		Producers:          append([]Producer(nil), data.Producers...),
		Expeditions:        append([]Expedition(nil), data.Expeditions...),
		UpgradesPurchased:  []string{},
		UpgradesDiscovered: []string{},
		Survival: SurvivalState{
			Needs:            append([]SurvivalNeed(nil), data.Survival.Needs...),
			Colonists:        cloneColonists(data.Survival.Colonists),
			Campfire:         data.Survival.Campfire,
			ActiveExpedition: nil,
		},
		LastSaved: time.Now().UnixMilli(),
	}
	return state
}

// ReconcileState merges a loaded save with the current config defaults.
// The saved values always win for entities that exist in both; config
// supplies defaults for everything the save predates.
func ReconcileState(data *GameData, saved *GameState) *GameState {
	state := saved.Clone()

	// 1. Ensure every top-level collection exists (old saves may omit them).
	if state.UpgradesPurchased == nil {
		state.UpgradesPurchased = []string{}
	}
	if state.UpgradesDiscovered == nil {
		state.UpgradesDiscovered = []string{}
	}

	// 2. Union by ID: append config entries the save doesn't know about.
	for _, def := range data.Resources {
		if !resourceExists(state.Resources, def.ID) {
			state.Resources = append(state.Resources, def)
		}
	}
	for _, def := range data.Producers {
		if !producerExists(state.Producers, def.ID) {
			state.Producers = append(state.Producers, def)
		}
	}
	for _, def := range data.Expeditions {
		if state.ExpeditionByID(def.ID) == nil {
			state.Expeditions = append(state.Expeditions, def)
		}
	}
	for _, def := range data.Survival.Needs {
		if !needExists(state.Survival.Needs, def.ID) {
			state.Survival.Needs = append(state.Survival.Needs, def)
		}
	}
	for _, def := range data.Survival.Colonists {
		if !colonistExists(state.Survival.Colonists, def.ID) {
			state.Survival.Colonists = append(state.Survival.Colonists, def)
		}
	}

	// 3. Default the campfire when the save predates it entirely.
	if state.Survival.Campfire.MaxFuel == 0 {
		state.Survival.Campfire = data.Survival.Campfire
	}

	return state
}

// Clone deep-copies the state so the engine can update functionally.
func (s *GameState) Clone() *GameState {
	out := &GameState{
		Resources:          append([]Resource(nil), s.Resources...),
		Producers:          append([]Producer(nil), s.Producers...),
		Expeditions:        append([]Expedition(nil), s.Expeditions...),
		UpgradesPurchased:  append([]string(nil), s.UpgradesPurchased...),
		UpgradesDiscovered: append([]string(nil), s.UpgradesDiscovered...),
		Survival: SurvivalState{
			Needs:     append([]SurvivalNeed(nil), s.Survival.Needs...),
			Colonists: cloneColonists(s.Survival.Colonists),
			Campfire:  s.Survival.Campfire,
		},
		LastSaved: s.LastSaved,
	}
	if s.Survival.ActiveExpedition != nil {
		active := *s.Survival.ActiveExpedition
		out.Survival.ActiveExpedition = &active
	}
	return out
}

// ResourceByID retrieves a resource from the state. Returns nil if not found.
func (s *GameState) ResourceByID(id string) *Resource {
	for i := range s.Resources {
		if s.Resources[i].ID == id {
			return &s.Resources[i]
		}
	}
	return nil
}

// ProducerByID retrieves a producer from the state. Returns nil if not found.
func (s *GameState) ProducerByID(id string) *Producer {
	for i := range s.Producers {
		if s.Producers[i].ID == id {
			return &s.Producers[i]
		}
	}
	return nil
}

// ExpeditionByID retrieves an expedition from the state. Returns nil if not found.
func (s *GameState) ExpeditionByID(id string) *Expedition {
	for i := range s.Expeditions {
		if s.Expeditions[i].ID == id {
			return &s.Expeditions[i]
		}
	}
	return nil
}

// NeedByID retrieves a survival need from the state. Returns nil if not found.
func (s *GameState) NeedByID(id string) *SurvivalNeed {
	for i := range s.Survival.Needs {
		if s.Survival.Needs[i].ID == id {
			return &s.Survival.Needs[i]
		}
	}
	return nil
}

func cloneColonists(colonists []Colonist) []Colonist {
	out := make([]Colonist, len(colonists))
	for i, c := range colonists {
		out[i] = c
		if c.Skills != nil {
			skills := make(map[string]float64, len(c.Skills))
			for k, v := range c.Skills {
				skills[k] = v
			}
			out[i].Skills = skills
		}
		out[i].Conditions = append([]string(nil), c.Conditions...)
	}
	return out
}

func resourceExists(resources []Resource, id string) bool {
	for _, r := range resources {
		if r.ID == id {
			return true
		}
	}
	return false
}

func producerExists(producers []Producer, id string) bool {
	for _, p := range producers {
		if p.ID == id {
			return true
		}
	}
	return false
}

func needExists(needs []SurvivalNeed, id string) bool {
	for _, n := range needs {
		if n.ID == id {
			return true
		}
	}
	return false
}

func colonistExists(colonists []Colonist, id string) bool {
	for _, c := range colonists {
		if c.ID == id {
			return true
		}
	}
	return false
}
