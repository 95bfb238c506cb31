/*
Package persistence
File: adapter.go
Description:
    The save/load adapter between the game core and the key-value store.

    Saving serializes the full GameState as one JSON document under a
    versioned key. Loading validates the document against an embedded JSON
    Schema before trusting it, then reconciles it against current config so
    newly shipped content appears in old saves. A missing, unreadable or
    structurally invalid save never crashes startup — the caller just
    starts a fresh game.
*/

package persistence

import (
	_ "embed"
	"encoding/json"
	"log"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/everforgeworks/emberwild-server/internal/game"
)

//go:embed save_schema.json
var saveSchemaJSON string

// Adapter persists GameState documents under a single versioned key.
type Adapter struct {
	store  *Store
	key    string
	data   *game.GameData
	schema *jsonschema.Schema
}

// NewAdapter wires the adapter to a store and the current game config.
func NewAdapter(store *Store, key string, data *game.GameData) (*Adapter, error) {
	schema, err := jsonschema.CompileString("save_schema.json", saveSchemaJSON)
	if err != nil {
		return nil, err
	}
	return &Adapter{store: store, key: key, data: data, schema: schema}, nil
}

// Save writes the state document. The caller is expected to pass a
// snapshot already stamped with its save time (Engine.SnapshotForSave).
func (a *Adapter) Save(state *game.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return a.store.Put(a.key, raw)
}

// Load reads, validates and reconciles the persisted state. The boolean
// reports whether a usable save existed; false means "start fresh" and is
// returned for both missing and malformed documents (malformed ones are
// logged, never fatal).
func (a *Adapter) Load() (*game.GameState, bool, error) {
	raw, found, err := a.store.Get(a.key)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	// Structural validation first: a corrupt document must not take the
	// process down or half-populate a state.
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("SAVE: discarding unparseable save under %q: %v", a.key, err)
		return nil, false, nil
	}
	if err := a.schema.Validate(doc); err != nil {
		log.Printf("SAVE: discarding invalid save under %q: %v", a.key, err)
		return nil, false, nil
	}

	var saved game.GameState
	if err := json.Unmarshal(raw, &saved); err != nil {
		log.Printf("SAVE: discarding undecodable save under %q: %v", a.key, err)
		return nil, false, nil
	}

	return game.ReconcileState(a.data, &saved), true, nil
}

// Clear removes the persisted save (used by the reset action).
func (a *Adapter) Clear() error {
	return a.store.Delete(a.key)
}
