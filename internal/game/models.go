/*
Package game
File: models.go
Description:
    Defines all data structures (Structs) used throughout the Emberwild simulation.
    This file serves as the "schema" for the application, mapping directly to
    the 'game-data.yaml' configuration file, the JSON API responses, and the
    persisted save document.

    No logic is performed here; this file is strictly for type definitions.
*/

package game

// EffectType enumerates the recognized upgrade effect kinds.
// Anything outside this closed set is carried through config untouched
// and simply never applies.
type EffectType string

const (
	EffectMultiplier          EffectType = "multiplier"           // Scales a producer's output
	EffectSurvivalModifier    EffectType = "survival_modifier"    // Scales a survival need attribute (e.g. decayRate)
	EffectExplorationModifier EffectType = "exploration_modifier" // Scales expedition economics (e.g. efficiency)
)

// UnlockType enumerates the recognized unlock condition kinds.
// Unrecognized types evaluate to "locked" rather than erroring.
type UnlockType string

const (
	UnlockResource UnlockType = "resource" // Requires a resource amount threshold
	UnlockProducer UnlockType = "producer" // Requires an owned-producer count
	UnlockUpgrade  UnlockType = "upgrade"  // Requires another upgrade to be purchased
)

// Resource is a countable good the player accumulates and spends.
// Appears both in config (the default definition) and in the mutable state.
type Resource struct {
	ID          string  `yaml:"id" json:"id"`                                       // Unique ID (e.g., "materials")
	Name        string  `yaml:"name" json:"name"`                                   // Display name
	Amount      float64 `yaml:"amount" json:"amount"`                               // Current stock (fractional production accumulates)
	Discovered  bool    `yaml:"discovered" json:"discovered"`                       // One-way visibility flag (never reverts)
	Category    string  `yaml:"category,omitempty" json:"category,omitempty"`       // Grouping hint for the client
	Description string  `yaml:"description,omitempty" json:"description,omitempty"` // Flavor text
}

// Producer converts ticks into resources automatically once owned.
type Producer struct {
	ID           string  `yaml:"id" json:"id"`
	Name         string  `yaml:"name" json:"name"`
	Resource     string  `yaml:"resource" json:"resource"`                              // Output Resource ID
	Count        int     `yaml:"count" json:"count"`                                    // Owned copies
	BaseCost     float64 `yaml:"base_cost" json:"baseCost"`                             // Cost of the first copy
	CostResource string  `yaml:"cost_resource,omitempty" json:"costResource,omitempty"` // Currency Resource ID (defaults to "materials")
	Growth       float64 `yaml:"growth" json:"growth"`                                  // Marginal cost multiplier per copy (> 1)
	Power        float64 `yaml:"power" json:"power"`                                    // Output per copy per tick, before multipliers
	Discovered   bool    `yaml:"discovered" json:"discovered"`
	Description  string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// Effect describes what a purchased upgrade does.
type Effect struct {
	Type      EffectType `yaml:"type" json:"type"`
	Target    string     `yaml:"target" json:"target"`                           // Producer ID or Need ID the effect applies to
	Attribute string     `yaml:"attribute,omitempty" json:"attribute,omitempty"` // Named attribute for modifier effects (e.g. "decayRate", "efficiency")
	Value     float64    `yaml:"value" json:"value"`                             // Multiplicative factor
}

// UnlockCondition gates the discovery of an upgrade or expedition.
// A nil condition means the entry is discoverable immediately.
type UnlockCondition struct {
	Type   UnlockType `yaml:"type" json:"type"`
	ID     string     `yaml:"id,omitempty" json:"id,omitempty"`         // Referenced entity ID
	Amount float64    `yaml:"amount,omitempty" json:"amount,omitempty"` // Resource threshold (0 = existence alone suffices)
	Count  int        `yaml:"count,omitempty" json:"count,omitempty"`   // Producer count threshold
}

// Upgrade is config-only; purchases are recorded as IDs in the state.
type Upgrade struct {
	ID           string           `yaml:"id" json:"id"`
	Name         string           `yaml:"name" json:"name"`
	Desc         string           `yaml:"desc,omitempty" json:"desc,omitempty"`
	Cost         float64          `yaml:"cost" json:"cost"`
	CostResource string           `yaml:"cost_resource" json:"costResource"`
	Effect       Effect           `yaml:"effect" json:"effect"`
	Unlock       *UnlockCondition `yaml:"unlock,omitempty" json:"unlock,omitempty"`
}

// CostSpec is one line item of an expedition's up-front price.
type CostSpec struct {
	Resource string  `yaml:"resource" json:"resourceId"`
	Amount   float64 `yaml:"amount" json:"amount"`
}

// RewardSpec is one randomized payout line of a completed expedition.
// The rolled amount is uniform over [Min, Max].
type RewardSpec struct {
	Resource string `yaml:"resource" json:"resourceId"`
	Min      int    `yaml:"min" json:"min"`
	Max      int    `yaml:"max" json:"max"`
}

// DrainSpec holds per-tick survival drain while an expedition runs.
type DrainSpec struct {
	Hunger float64 `yaml:"hunger" json:"hunger"`
	Thirst float64 `yaml:"thirst" json:"thirst"`
	Warmth float64 `yaml:"warmth" json:"warmth"`
}

// Expedition is a timed, risky action defined in config. The Discovered
// flag lives on the state copy and is monotonic.
type Expedition struct {
	ID         string           `yaml:"id" json:"id"`
	Name       string           `yaml:"name" json:"name"`
	Desc       string           `yaml:"desc,omitempty" json:"desc,omitempty"`
	Duration   int              `yaml:"duration" json:"duration"` // Seconds (= ticks at the nominal interval)
	Costs      []CostSpec       `yaml:"costs,omitempty" json:"costs,omitempty"`
	Drain      *DrainSpec       `yaml:"drain,omitempty" json:"drain,omitempty"` // Overrides the global default drain
	Rewards    []RewardSpec     `yaml:"rewards,omitempty" json:"rewards,omitempty"`
	Unlock     *UnlockCondition `yaml:"unlock,omitempty" json:"unlock,omitempty"`
	Discovered bool             `yaml:"discovered" json:"discovered"`
}

// ActiveExpedition tracks the single expedition currently in progress.
// Nil in the state means no expedition is running.
type ActiveExpedition struct {
	ExpeditionID  string `json:"expeditionId"`
	TimeRemaining int    `json:"timeRemaining"` // Ticks left; completion fires when this hits 0
	TotalTime     int    `json:"totalTime"`
}

// SurvivalNeed is a decaying meter the player must keep above its
// critical threshold. Current is hard-clamped to [0, Max] on every write.
type SurvivalNeed struct {
	ID                string  `yaml:"id" json:"id"`
	Name              string  `yaml:"name" json:"name"`
	Current           float64 `yaml:"current" json:"current"`
	Max               float64 `yaml:"max" json:"max"`
	DecayRate         float64 `yaml:"decay_rate" json:"decayRate"` // Per-second drain; applies offline only (live drain comes from expeditions)
	CriticalThreshold float64 `yaml:"critical_threshold" json:"criticalThreshold"`
}

// Campfire is the heat source. The engine extinguishes it on the same
// tick its fuel reaches zero.
type Campfire struct {
	Lit           bool    `yaml:"lit" json:"lit"`
	Fuel          float64 `yaml:"fuel" json:"fuel"`
	MaxFuel       float64 `yaml:"max_fuel" json:"maxFuel"`
	WarmthPerTick float64 `yaml:"warmth_per_tick" json:"warmthPerTick"`
}

// Colonist is carried through saves for forward compatibility; the
// current simulation does not tick colonists.
type Colonist struct {
	ID         string             `yaml:"id" json:"id"`
	Name       string             `yaml:"name" json:"name"`
	Health     float64            `yaml:"health" json:"health"`
	Morale     float64            `yaml:"morale" json:"morale"`
	Skills     map[string]float64 `yaml:"skills,omitempty" json:"skills,omitempty"`
	Conditions []string           `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}

// SurvivalState groups the survival sub-systems inside the game state.
type SurvivalState struct {
	Needs            []SurvivalNeed    `json:"needs"`
	Colonists        []Colonist        `json:"colonists"`
	Campfire         Campfire          `json:"campfire"`
	ActiveExpedition *ActiveExpedition `json:"activeExpedition"`
}

// GameState is the root aggregate. It is replaced wholesale on every
// tick and action, never mutated in place by callers.
type GameState struct {
	Resources          []Resource    `json:"resources"`
	Producers          []Producer    `json:"producers"`
	Expeditions        []Expedition  `json:"expeditions"`
	UpgradesPurchased  []string      `json:"upgradesPurchased"`
	UpgradesDiscovered []string      `json:"upgradesDiscovered"`
	Survival           SurvivalState `json:"survival"`
	LastSaved          int64         `json:"lastSaved"` // Unix milliseconds, stamped at save time
}

// CampfireSettings tunes the campfire economy.
type CampfireSettings struct {
	FuelDrainPerTick  float64 `yaml:"fuel_drain_per_tick" json:"fuelDrainPerTick"`
	LightCostResource string  `yaml:"light_cost_resource" json:"lightCostResource"`
	LightCostAmount   float64 `yaml:"light_cost_amount" json:"lightCostAmount"`
	FuelPerLight      float64 `yaml:"fuel_per_light" json:"fuelPerLight"`
}

// ProductionSettings tunes producer cost math.
type ProductionSettings struct {
	CostRounding string `yaml:"cost_rounding" json:"costRounding"` // "ceil" (default) or "floor"
}

// ConsumableRule links an edible/drinkable resource to the need it restores.
type ConsumableRule struct {
	Resource       string  `yaml:"resource" json:"resource"`
	Need           string  `yaml:"need" json:"need"`
	RestorePerUnit float64 `yaml:"restore_per_unit" json:"restorePerUnit"`
}

// Settings stores global tuning variables loaded from 'game-data.yaml'.
type Settings struct {
	SaveKey               string             `yaml:"save_key" json:"saveKey"`
	DefaultTickIntervalMs int                `yaml:"default_tick_interval_ms" json:"defaultTickIntervalMs"`
	AutosaveIntervalMs    int                `yaml:"autosave_interval_ms" json:"autosaveIntervalMs"`
	MaxOfflineSeconds     int64              `yaml:"max_offline_seconds" json:"maxOfflineSeconds"`
	OfflineSafetyPadding  float64            `yaml:"offline_safety_padding" json:"offlineSafetyPadding"`
	ExpeditionDrain       DrainSpec          `yaml:"expedition_drain" json:"expeditionDrain"`
	Campfire              CampfireSettings   `yaml:"campfire" json:"campfire"`
	Production            ProductionSettings `yaml:"production" json:"production"`
	Consumables           []ConsumableRule   `yaml:"consumables" json:"consumables"`
}

// SurvivalConfig is the survival section of the config document.
type SurvivalConfig struct {
	Needs     []SurvivalNeed `yaml:"needs"`
	Colonists []Colonist     `yaml:"colonists"`
	Campfire  Campfire       `yaml:"campfire"`
}

// GameData is the root configuration struct, mapping to the entire
// 'game-data.yaml' file. Immutable for the life of a session.
type GameData struct {
	Resources   []Resource     `yaml:"resources"`
	Producers   []Producer     `yaml:"producers"`
	Upgrades    []Upgrade      `yaml:"upgrades"`
	Expeditions []Expedition   `yaml:"expeditions"`
	Survival    SurvivalConfig `yaml:"survival"`
	Settings    Settings       `yaml:"settings"`
}
