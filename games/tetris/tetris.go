package tetris

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	BoardWidth  = 12
	BoardHeight = 20

	// minBoardSize fits the I piece in both orientations.
	minBoardSize = 4
	maxBoardSize = 100
)

// Phase is the state of a session.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game over"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ClearEvent describes the last lock that cleared lines.
type ClearEvent struct {
	Lines  int `json:"lines"`
	Points int `json:"points"`
	Combo  int `json:"combo"`
}

// GameState is the snapshot handed to the renderer after every command.
type GameState struct {
	Board     [][]Color   `json:"board"`
	Current   *Piece      `json:"current"`
	Held      *HeldPiece  `json:"held"`
	Score     int         `json:"score"`
	Combo     int         `json:"combo"`
	Lines     int         `json:"lines"`
	LastClear *ClearEvent `json:"lastClear,omitempty"`
	Phase     Phase       `json:"phase"`
	GameOver  bool        `json:"gameOver"`
}

// Result is delivered once when the session ends.
type Result struct {
	Score     int        `json:"score"`
	Lines     int        `json:"lines"`
	Pieces    int        `json:"pieces"`
	HardDrops int        `json:"hardDrops"`
	Held      *HeldPiece `json:"held"`
}

// Tetris is one game session. It is not safe for concurrent use; callers
// serialize commands and ticks.
type Tetris struct {
	board     *Board
	catalog   *Catalog
	current   *Piece
	held      *HeldPiece
	score     ScoreState
	lastClear *ClearEvent
	phase     Phase
	gameOver  bool

	locks     int
	hardDrops int

	result     *Result
	onGameOver func(Result)
}

type options struct {
	width, height int
	rng           Randomizer
	palette       Palette
	catalog       *Catalog
	held          *HeldPiece
	onGameOver    func(Result)
}

// Option configures a new session.
type Option func(*options)

// WithBoardSize overrides the default 12x20 board.
func WithBoardSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithRandomizer sets the random source used to pick pieces.
func WithRandomizer(rng Randomizer) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithPalette sets the piece colors.
func WithPalette(p Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithCatalog supplies a ready catalog; it wins over WithRandomizer and
// WithPalette.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithHeld carries a held piece over from a previous session. It is
// ignored unless both shape and color are set.
func WithHeld(shape Shape, color Color) Option {
	return func(o *options) {
		if len(shape) == 0 || color == Empty {
			return
		}
		o.held = &HeldPiece{Shape: shape.Clone(), Color: color}
	}
}

// WithGameOver registers a callback run once when the session ends.
func WithGameOver(fn func(Result)) Option {
	return func(o *options) {
		o.onGameOver = fn
	}
}

// NewTetris creates a session and spawns its first piece.
func NewTetris(opts ...Option) (*Tetris, error) {
	o := options{
		width:   BoardWidth,
		height:  BoardHeight,
		palette: DefaultPalette,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkBoardSize(o.width, o.height); err != nil {
		return nil, err
	}

	catalog := o.catalog
	if catalog == nil {
		rng := o.rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		var err error
		catalog, err = NewCatalog(rng, o.palette)
		if err != nil {
			return nil, fmt.Errorf("failed to build piece catalog: %w", err)
		}
	}

	t := &Tetris{
		board:      NewBoard(o.width, o.height),
		catalog:    catalog,
		onGameOver: o.onGameOver,
	}

	t.spawnPiece()
	t.held = o.held

	return t, nil
}

func checkBoardSize(width, height int) error {
	if width < minBoardSize || height < minBoardSize {
		return fmt.Errorf("board %dx%d is too small, need at least %dx%d",
			width, height, minBoardSize, minBoardSize)
	}
	if width > maxBoardSize || height > maxBoardSize {
		return fmt.Errorf("board %dx%d is too large, at most %dx%d",
			width, height, maxBoardSize, maxBoardSize)
	}
	return nil
}

// spawnX centers a shape horizontally.
func (t *Tetris) spawnX(shape Shape) int {
	return t.board.Width()/2 - shape.Width()/2
}

// spawnPiece puts a random piece at the top center and ends the game if it
// overlaps the stack.
func (t *Tetris) spawnPiece() {
	t.phase = PhaseSpawning
	shape, color := t.catalog.RandomPiece()
	t.current = &Piece{
		Shape: shape,
		Color: color,
		X:     t.spawnX(shape),
		Y:     0,
	}

	if t.board.Collides(t.current.Shape, t.current.X, t.current.Y) {
		t.endGame()
		return
	}
	t.phase = PhaseFalling
}

func (t *Tetris) endGame() {
	t.phase = PhaseGameOver
	t.gameOver = true
	t.result = &Result{
		Score:     t.score.Score,
		Lines:     t.score.Lines,
		Pieces:    t.locks,
		HardDrops: t.hardDrops,
		Held:      t.held.clone(),
	}
	if t.onGameOver != nil {
		t.onGameOver(*t.result)
	}
}

// Tick is the gravity step. It behaves like a soft drop.
func (t *Tetris) Tick() GameState {
	return t.SoftDropTick()
}

// Command is an input understood by Handle.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdHardDrop
	CmdHold
)

var commandNames = map[string]Command{
	"left":   CmdMoveLeft,
	"right":  CmdMoveRight,
	"down":   CmdSoftDrop,
	"rotate": CmdRotate,
	"drop":   CmdHardDrop,
	"hold":   CmdHold,
}

// ParseCommand maps an input name such as "left" or "hold" to a Command.
func ParseCommand(name string) (Command, bool) {
	cmd, ok := commandNames[name]
	return cmd, ok
}

// Handle applies one command and returns the resulting state.
func (t *Tetris) Handle(cmd Command) GameState {
	switch cmd {
	case CmdMoveLeft:
		return t.MoveLeft()
	case CmdMoveRight:
		return t.MoveRight()
	case CmdSoftDrop:
		return t.SoftDropTick()
	case CmdRotate:
		return t.Rotate()
	case CmdHardDrop:
		return t.HardDrop()
	case CmdHold:
		return t.HoldSwap()
	default:
		return t.GetState()
	}
}

// HandleInput processes a single named command. Unknown names are ignored.
func (t *Tetris) HandleInput(input string) GameState {
	cmd, _ := ParseCommand(input)
	return t.Handle(cmd)
}

// GetState returns a copy of the session state.
func (t *Tetris) GetState() GameState {
	var lastClear *ClearEvent
	if t.lastClear != nil {
		c := *t.lastClear
		lastClear = &c
	}

	return GameState{
		Board:     t.board.Rows(),
		Current:   t.current.clone(),
		Held:      t.held.clone(),
		Score:     t.score.Score,
		Combo:     t.score.Combo,
		Lines:     t.score.Lines,
		LastClear: lastClear,
		Phase:     t.phase,
		GameOver:  t.gameOver,
	}
}

// IsGameOver checks if the game has ended.
func (t *Tetris) IsGameOver() bool {
	return t.gameOver
}

// Result returns the end-of-game summary once the game is over.
func (t *Tetris) Result() (Result, bool) {
	if t.result == nil {
		return Result{}, false
	}
	r := *t.result
	r.Held = t.result.Held.clone()
	return r, true
}

// Board exposes the playfield.
func (t *Tetris) Board() *Board {
	return t.board
}
