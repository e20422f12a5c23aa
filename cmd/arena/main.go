package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arenasim/arena/internal/config"
	"github.com/arenasim/arena/internal/core/event"
	"github.com/arenasim/arena/internal/data"
	"github.com/arenasim/arena/internal/metrics"
	"github.com/arenasim/arena/internal/persist"
	"github.com/arenasim/arena/internal/scripting"
	"github.com/arenasim/arena/internal/system"
	"github.com/arenasim/arena/internal/world"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/arena.toml"
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	runID := uuid.New()
	log = log.With(zap.Stringer("run", runID))

	// 3. Optional database
	var store persist.RunStore = persist.NewMemoryStore()
	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()

		version, err := persist.RunMigrations(ctx, db)
		if err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		log.Info("database ready", zap.Int64("schema_version", version))
		store = persist.NewRunRepo(db)
	}

	// 4. Rules
	rules, err := scripting.NewEngine(cfg.Scripts.Dir, log)
	if err != nil {
		return fmt.Errorf("scripting: %w", err)
	}
	defer rules.Close()

	// 5. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		stop := m.Serve(cfg.Metrics.BindAddress, log)
		defer stop()
	}

	// 6. World and pipeline
	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ws := world.NewState()
	pipe := system.NewPipeline(system.Deps{
		World:   ws,
		Bus:     event.NewBus(),
		Config:  cfg,
		Rules:   rules,
		Maps:    data.NewMapStorage(cfg.Level.MapsDir, cfg.Sim.CellSize),
		Metrics: m,
		Log:     log,
		Rand:    rand.New(rand.NewSource(seed)),
		Intents: newAutopilot(ws),
		Store:   store,
		RunID:   runID,
	})
	defer pipe.Close()
	pipe.Start()

	// 7. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	log.Info("simulation started",
		zap.Duration("tick", cfg.Sim.TickRate),
		zap.Int64("seed", seed),
		zap.Int("max_level", cfg.Level.MaxLevel))

	for {
		select {
		case <-ticker.C:
			pipe.Step(cfg.Sim.TickRate)
			if ws.Outcome != world.Running {
				logSummary(log, ws)
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			logSummary(log, ws)
			return nil
		}
	}
}

func logSummary(log *zap.Logger, ws *world.State) {
	fields := []zap.Field{
		zap.Stringer("outcome", ws.Outcome),
		zap.Int("level", ws.Level),
		zap.Int64("ticks", ws.Tick),
	}
	for t, n := range ws.Score.Kills {
		if n > 0 {
			fields = append(fields, zap.Int("deaths_"+moveTypeName(t), n))
		}
	}
	log.Info("simulation finished", fields...)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
