package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/eiannone/keyboard"

	"github.com/isaacjstriker/notris/games/tetris"
)

// input is one key press translated for the game loop.
type input struct {
	cmd  tetris.Command
	quit bool
}

// keyCommand maps a key press to a game command.
func keyCommand(char rune, key keyboard.Key) input {
	switch key {
	case keyboard.KeyArrowLeft:
		return input{cmd: tetris.CmdMoveLeft}
	case keyboard.KeyArrowRight:
		return input{cmd: tetris.CmdMoveRight}
	case keyboard.KeyArrowDown:
		return input{cmd: tetris.CmdSoftDrop}
	case keyboard.KeyArrowUp:
		return input{cmd: tetris.CmdRotate}
	case keyboard.KeySpace:
		return input{cmd: tetris.CmdHardDrop}
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return input{quit: true}
	}

	switch char {
	case 'a', 'A':
		return input{cmd: tetris.CmdMoveLeft}
	case 'd', 'D':
		return input{cmd: tetris.CmdMoveRight}
	case 's', 'S':
		return input{cmd: tetris.CmdSoftDrop}
	case 'w', 'W':
		return input{cmd: tetris.CmdRotate}
	case ' ':
		return input{cmd: tetris.CmdHardDrop}
	case 'c', 'C':
		return input{cmd: tetris.CmdHold}
	case 'q', 'Q':
		return input{quit: true}
	}
	return input{cmd: tetris.CmdNone}
}

// Player runs a session in the terminal: it owns the keyboard and the
// gravity ticker and redraws after every event.
type Player struct {
	renderer *Renderer
	interval time.Duration
	debug    bool
}

func NewPlayer(renderer *Renderer, interval time.Duration, debug bool) *Player {
	return &Player{
		renderer: renderer,
		interval: interval,
		debug:    debug,
	}
}

// Play runs game until it ends, the player quits or ctx is cancelled. The
// boolean is true only when the game reached game over.
func (p *Player) Play(ctx context.Context, game *tetris.Tetris) (tetris.Result, bool, error) {
	if err := keyboard.Open(); err != nil {
		return tetris.Result{}, false, fmt.Errorf("failed to open keyboard: %w", err)
	}
	defer keyboard.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputs := make(chan input)
	go readKeys(ctx, inputs)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	return p.run(ctx, game, inputs, ticker.C)
}

// readKeys forwards key presses until ctx is done.
func readKeys(ctx context.Context, inputs chan<- input) {
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			time.Sleep(10 * time.Millisecond) // Small delay to prevent busy waiting
			continue
		}

		select {
		case inputs <- keyCommand(char, key):
		case <-ctx.Done():
			return
		}
	}
}

// run is the single goroutine that mutates the session.
func (p *Player) run(ctx context.Context, game *tetris.Tetris, inputs <-chan input, ticks <-chan time.Time) (tetris.Result, bool, error) {
	if err := p.renderer.Render(game.GetState()); err != nil {
		return tetris.Result{}, false, fmt.Errorf("failed to render: %w", err)
	}

	for !game.IsGameOver() {
		var state tetris.GameState

		select {
		case <-ctx.Done():
			return tetris.Result{}, false, nil
		case in := <-inputs:
			if in.quit {
				return tetris.Result{}, false, nil
			}
			if in.cmd == tetris.CmdNone {
				continue
			}
			if p.debug {
				log.Printf("[DEBUG] command %d", in.cmd)
			}
			state = game.Handle(in.cmd)
		case <-ticks:
			state = game.Tick()
		}

		if err := p.renderer.Render(state); err != nil {
			return tetris.Result{}, false, fmt.Errorf("failed to render: %w", err)
		}
	}

	res, _ := game.Result()
	return res, true, nil
}
