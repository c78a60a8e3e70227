package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jwebster45206/albert/internal/config"
	"github.com/jwebster45206/albert/internal/logger"
	"github.com/jwebster45206/albert/internal/storage"
	"github.com/jwebster45206/albert/pkg/game"
	"github.com/jwebster45206/albert/pkg/state"
)

func main() {
	cfg := config.Load()

	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			_ = f.Close() // Ignore error in defer
		}()
		logOut = f
	}
	log := logger.SetupWriter(cfg, logOut)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	sto, err := openStorage(ctx, cfg, log)
	if err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = sto.Close() // Ignore error in defer
	}()

	plan, err := loadOrCreatePlan(ctx, sto, cfg.ResumeGameID)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}
	logger.WithGameID(log, plan.ID).Info("Game started", "resumed", cfg.ResumeGameID != "")

	g := game.New(plan, log)
	p := tea.NewProgram(NewConsoleUI(g, sto, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// openStorage connects to Redis when configured, otherwise games only live
// for the length of the process.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	if cfg.RedisURL == "" {
		log.Info("No REDIS_URL set, saved games will not outlive this process")
		return storage.NewMemoryStorage(), nil
	}

	rs, err := storage.NewRedisStorage(cfg.RedisURL, cfg.SessionTTL, log)
	if err != nil {
		return nil, err
	}
	if err := rs.WaitForConnection(ctx, 5, 2*time.Second); err != nil {
		_ = rs.Close()
		return nil, err
	}
	return rs, nil
}

func loadOrCreatePlan(ctx context.Context, sto storage.Storage, resumeID string) (*state.GamePlan, error) {
	if resumeID == "" {
		return state.NewGamePlan(), nil
	}

	id, err := uuid.Parse(resumeID)
	if err != nil {
		return nil, fmt.Errorf("invalid game id %q: %w", resumeID, err)
	}
	plan, err := sto.LoadGamePlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, fmt.Errorf("no saved game with id %s", id)
	}
	return plan, nil
}
