/*
Package main
File: main.go
Description: Server entry point. Loads the game data, restores the save (with
offline catch-up), and runs the two heartbeats that keep the colony alive:
the simulation tick and the autosave timer. A WebSocket hub pushes game
events to the rendering client as they happen.
*/

package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/everforgeworks/emberwild-server/internal/api"
	"github.com/everforgeworks/emberwild-server/internal/game"
	"github.com/everforgeworks/emberwild-server/internal/persistence"
)

const (
	gameDataPath = "game-data.yaml"
	saveDBPath   = "data/emberwild.db"
	listenAddr   = ":8081"
)

func main() {
	// 1. Load the static game configuration from YAML.
	data, err := game.LoadGameData(gameDataPath)
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 2. Open the save store and restore the previous session (if any).
	store, err := persistence.Open(saveDBPath)
	if err != nil {
		log.Fatalf("Store Fail: %v", err)
	}
	saves, err := persistence.NewAdapter(store, data.Settings.SaveKey, data)
	if err != nil {
		log.Fatalf("Save Adapter Fail: %v", err)
	}

	state, restored, err := saves.Load()
	if err != nil {
		log.Fatalf("Load Fail: %v", err)
	}
	engine := game.NewEngine(data, state, nil)

	hub := api.NewHub()
	go hub.Run()

	// 3. Offline catch-up: run exactly once, before the first live tick.
	if restored {
		if dt, events := engine.CatchUp(time.Now()); dt > 0 {
			log.Printf("CATCHUP: applied %d offline seconds", dt)
			broadcast(hub, api.Message{Type: "offline_progress", Payload: map[string]any{"seconds": dt}})
			for _, ev := range events {
				broadcast(hub, api.Message{Type: ev.Type, Payload: ev.Payload})
			}
		}
	} else {
		log.Println("Starting a fresh colony")
	}

	stop := make(chan struct{})

	// 4. THE SIMULATION HEARTBEAT
	// One tick per interval while the server is up; events go to the hub.
	go func() {
		ticker := time.NewTicker(time.Duration(data.Settings.DefaultTickIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				for _, ev := range engine.Tick() {
					log.Printf("EVENT: %s", ev.Type)
					broadcast(hub, api.Message{Type: ev.Type, Payload: ev.Payload})
				}
			case <-stop:
				return
			}
		}
	}()

	// 5. THE AUTOSAVE HEARTBEAT
	go func() {
		ticker := time.NewTicker(time.Duration(data.Settings.AutosaveIntervalMs) * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := saves.Save(engine.SnapshotForSave()); err != nil {
					log.Printf("SAVE: autosave failed: %v", err)
				}
			case <-stop:
				return
			}
		}
	}()

	// 6. Router and handlers.
	mux := http.NewServeMux()
	server := &api.Server{Engine: engine, Saves: saves}
	server.Routes(mux)
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		api.ServeWs(hub, w, r)
	})

	srv := &http.Server{Addr: listenAddr, Handler: corsMiddleware(mux)}
	go func() {
		log.Printf("EMBERWILD Server live on %s", listenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// 7. Teardown: stop both timers, flush one final save, close everything.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	log.Println("SIGNAL: Shutting down...")

	close(stop)
	hub.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)

	if err := saves.Save(engine.SnapshotForSave()); err != nil {
		log.Printf("SAVE: final save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		log.Printf("STORE: close failed: %v", err)
	}
	log.Println("Goodbye")
}

// broadcast marshals an envelope onto the hub.
func broadcast(hub *api.Hub, msg api.Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Broadcast marshal error: %v", err)
		return
	}
	hub.Broadcast <- raw
}

// corsMiddleware lets the rendering client talk to us across ports/domains.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
