package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/melnikovdev/hordego/internal/config"
	"github.com/melnikovdev/hordego/internal/db"
	"github.com/melnikovdev/hordego/internal/game/session"
	"github.com/melnikovdev/hordego/internal/game/skill"
	"github.com/melnikovdev/hordego/internal/game/skill/skills"
)

const ConfigPath = "config/hordeserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := ConfigPath
	if p := os.Getenv("HORDEGO_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("hordego server starting",
		"log_level", cfg.LogLevel,
		"tick_ms", cfg.TickMs,
		"offer_count", cfg.OfferCount,
	)

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()
	slog.Info("database connected")

	// Run migrations
	if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied")

	// Skill registry: register everything before the first session or
	// Combine call; read-only afterwards.
	reg := skill.NewRegistry()
	skills.RegisterAll(reg)

	loadouts := db.NewLoadoutRepository(database.Pool())
	sessions := session.NewManager()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting game tick loop", "interval_ms", cfg.TickMs)
		return runTickLoop(gctx, sessions, cfg.TickMs)
	})

	g.Go(func() error {
		slog.Info("starting loadout autosave loop", "interval_s", cfg.AutosaveSeconds)
		return runAutosaveLoop(gctx, sessions, loadouts, cfg.AutosaveSeconds)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// runTickLoop drives per-session skill hooks on a fixed interval.
func runTickLoop(ctx context.Context, sessions *session.Manager, tickMs int) error {
	ticker := time.NewTicker(time.Duration(tickMs) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			sessions.TickAll(int32(tickMs))
		}
	}
}

// runAutosaveLoop periodically flushes dirty loadouts. On shutdown it
// performs one final flush so level-ups close to the exit survive.
func runAutosaveLoop(ctx context.Context, sessions *session.Manager, loadouts *db.LoadoutRepository, intervalSeconds int) error {
	ticker := time.NewTicker(time.Duration(intervalSeconds) * time.Second)
	defer ticker.Stop()

	flush := func(flushCtx context.Context) {
		sessions.ForEach(func(s *session.Session) {
			if !s.Dirty() {
				return
			}
			if err := loadouts.Save(flushCtx, s.PlayerID(), s.ActiveSkills()); err != nil {
				slog.Error("autosave loadout", "player", s.PlayerID(), "err", err)
				return
			}
			s.MarkSaved()
		})
	}

	for {
		select {
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			flush(final)
			cancel()
			return nil
		case <-ticker.C:
			flush(ctx)
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
