package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"

	httpadapter "horsekeep/internal/adapter/http"
	metricsinmem "horsekeep/internal/adapter/metrics/inmemory"
	"horsekeep/internal/adapter/save/filestore"
	"horsekeep/internal/adapter/save/gormstore"
	"horsekeep/internal/adapter/save/memstore"
	"horsekeep/internal/adapter/sched"
	"horsekeep/internal/adapter/stream"
	"horsekeep/internal/app/events"
	"horsekeep/internal/app/game"
	"horsekeep/internal/app/persist"
	"horsekeep/internal/app/ports"
	"horsekeep/internal/app/state"
	"horsekeep/internal/config"
	"horsekeep/internal/domain/horse"
)

func main() {
	cfg := config.Load()

	saveStore := mustBuildSaveStore(cfg)
	bus := events.NewBus()
	kpiRecorder := metricsinmem.NewRecorder()
	store := state.NewStore(horse.NewGameState(time.Now()))

	orchestrator := &game.Orchestrator{
		Store:   store,
		Saves:   persist.NewGateway(saveStore),
		Bus:     bus,
		Metrics: kpiRecorder,
		Sched:   sched.Real{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := orchestrator.Bootstrap(ctx); err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	unsubscribe := bus.Subscribe(func(evt events.Event) {
		log.Printf("event %s", evt.Type)
	})
	defer unsubscribe()

	hub := stream.NewHub()
	go hub.Run(ctx)
	hub.StartStatePusher(ctx, time.Second, func() any { return orchestrator.View() })
	go runStreamListener(cfg.StreamAddr, hub)

	go runGameLoop(ctx, orchestrator)

	h := httpadapter.Handler{Game: orchestrator, KPI: kpiRecorder}
	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("horsekeep listening on %s (stream on %s)", cfg.HTTPAddr, cfg.StreamAddr)
	s.Spin()
}

func mustBuildSaveStore(cfg config.Config) ports.SaveStore {
	switch cfg.SaveBackend {
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("HORSEKEEP_DB_DSN is required for the postgres backend")
		}
		db, err := gormstore.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("open postgres: %v", err)
		}
		if err := gormstore.Migrate(db); err != nil {
			log.Fatalf("migrate save slots: %v", err)
		}
		return gormstore.New(db)
	case "memory":
		return memstore.New()
	case "file":
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			log.Fatalf("open data dir: %v", err)
		}
		return store
	default:
		log.Fatalf("unknown save backend %q", cfg.SaveBackend)
		return nil
	}
}

// runGameLoop drives the time-initiated transitions: the decay tick, the
// gift spawn check and the auto-save.
func runGameLoop(ctx context.Context, orchestrator *game.Orchestrator) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	lastTick := time.Now()
	lastSave := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			orchestrator.ApplyDecay(ctx, now.Sub(lastTick))
			lastTick = now
			orchestrator.CheckGiftSpawns(ctx)
			if now.Sub(lastSave) >= horse.AutoSaveInterval {
				orchestrator.AutoSave(ctx)
				lastSave = now
			}
		}
	}
}

func runStreamListener(addr string, hub *stream.Hub) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.ServeWS)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("stream listener stopped: %v", err)
	}
}
