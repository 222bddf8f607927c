package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isaacjstriker/notris/games/tetris"
	"github.com/isaacjstriker/notris/internal/config"
	"github.com/isaacjstriker/notris/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	defer closeLog()

	tuning, err := tetris.LoadTuning(cfg.TuningScript)
	if err != nil {
		log.Printf("[ERROR] %v. Using default tuning.", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp(cfg, tuning).run(ctx); err != nil {
		log.Printf("[ERROR] %v", err)
		fmt.Fprintln(os.Stderr, err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging sends the log to cfg.LogFile, since the terminal belongs to
// the game while it runs.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", cfg.LogFile, err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

type app struct {
	cfg    *config.Config
	tuning tetris.Tuning
	rng    *rand.Rand
	player *ui.Player
}

func newApp(cfg *config.Config, tuning tetris.Tuning) *app {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if cfg.Debug {
		log.Printf("[DEBUG] seed %d, board %dx%d, tick %s", seed, tuning.BoardWidth, tuning.BoardHeight, cfg.TickInterval)
	}

	color := ui.SupportsColor() && !cfg.NoColor
	renderer := ui.NewRenderer(os.Stdout, color, tuning.Palette)

	return &app{
		cfg:    cfg,
		tuning: tuning,
		rng:    rand.New(rand.NewSource(seed)),
		player: ui.NewPlayer(renderer, cfg.TickInterval, cfg.Debug),
	}
}

func (a *app) run(ctx context.Context) error {
	cols, rows := ui.FrameSize(a.tuning.BoardWidth, a.tuning.BoardHeight)
	if !ui.FitsTerminal(cols, rows) {
		log.Printf("[INFO] terminal is smaller than %dx%d, the board may not fit", cols, rows)
	}

	menuItems := []ui.MenuItem{
		{Label: "▶ Start Game", Value: "start"},
		{Label: "Controls", Value: "controls"},
		{Label: "Quit", Value: "exit"},
	}

	for {
		switch ui.NewMenu(a.cfg.AppName, menuItems).Show() {
		case "start":
			quit, err := a.playRounds(ctx)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case "controls":
			ui.NewMenu("Controls", []ui.MenuItem{{Label: "Back", Value: "back"}}).
				WithLines(ui.ControlsText...).
				Show()
		default:
			return nil
		}

		if ctx.Err() != nil {
			return nil
		}
	}
}

// playRounds plays sessions until the player leaves the game-over screen.
// A restart carries the held piece into the next session.
func (a *app) playRounds(ctx context.Context) (quit bool, err error) {
	var carry *tetris.HeldPiece

	for {
		opts := append(a.tuning.Options(),
			tetris.WithRandomizer(a.rng),
			tetris.WithGameOver(func(r tetris.Result) {
				log.Printf("[INFO] Game over: score %d, lines %d, pieces %d, hard drops %d", r.Score, r.Lines, r.Pieces, r.HardDrops)
			}),
		)
		if carry != nil {
			opts = append(opts, tetris.WithHeld(carry.Shape, carry.Color))
		}

		game, err := tetris.NewTetris(opts...)
		if err != nil {
			return false, fmt.Errorf("failed to start game: %w", err)
		}

		res, over, err := a.player.Play(ctx, game)
		if err != nil {
			return false, err
		}
		if !over {
			return ctx.Err() != nil, nil
		}

		choice := ui.NewMenu("Game Over", []ui.MenuItem{
			{Label: "Restart", Value: "restart"},
			{Label: "Main Menu", Value: "menu"},
			{Label: "Quit", Value: "exit"},
		}).WithLines(
			"Score: "+ui.FormatNumber(res.Score),
			"Lines: "+ui.FormatNumber(res.Lines),
			fmt.Sprintf("Pieces: %s (%s hard drops)", ui.FormatNumber(res.Pieces), ui.FormatNumber(res.HardDrops)),
		).Show()

		switch choice {
		case "restart":
			carry = res.Held
		case "menu":
			return false, nil
		default:
			return true, nil
		}
	}
}
