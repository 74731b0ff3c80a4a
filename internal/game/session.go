package game

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/cyborg-feline/internal/core"
	"github.com/vovakirdan/cyborg-feline/internal/world"
)

// DefaultDecoys is the number of decoys placed besides the feline.
const DefaultDecoys = 18

// Options configures world generation for a session.
type Options struct {
	Grid       core.Grid
	Decoys     int
	Treasures  [][]string // Description pool; every regeneration draws from a fresh copy
	Appearance world.Appearance
	Seed       int64 // 0 means derive from the clock
	Logger     *log.Logger
}

// DefaultOptions returns options for a standard 40x40 world with 18 decoys.
// Treasures must still be supplied.
func DefaultOptions() Options {
	return Options{
		Grid:       core.DefaultGrid(),
		Decoys:     DefaultDecoys,
		Appearance: world.DefaultAppearance(),
	}
}

// Board is one generated world: the grid, the items on it and the cyborg.
type Board struct {
	Grid     core.Grid
	Registry *world.Registry
	Actor    *world.Actor
}

// Stats are per-world counters shown on the win screen.
type Stats struct {
	Moves    int // Successful steps
	Bumps    int // Collisions with decoys
	Examined int // Distinct decoys bumped into
}

// StepResult reports what a frame did.
type StepResult struct {
	Mode      Mode              // Mode after the frame
	Outcome   world.MoveOutcome // Result of the frame's move attempt, NoMove outside Play
	Quit      bool              // The session should terminate
	Restarted bool              // A fresh world was generated
}

// Session owns one running game. It is not safe for concurrent use.
type Session struct {
	id       string
	opts     Options
	rng      *rand.Rand
	logger   *log.Logger
	ctrl     *Controller
	board    Board
	stats    Stats
	examined map[core.Coord]bool
	message  []string
}

// Start generates a world and returns a session in the initial mode.
func Start(initial Mode, opts Options) (*Session, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	board, err := Generate(rng, opts)
	if err != nil {
		return nil, err
	}

	s := newSession(initial, board, opts, rng)
	s.logger.Info("session started",
		"seed", seed,
		"grid", fmt.Sprintf("%dx%d", board.Grid.Width(), board.Grid.Height()),
		"items", board.Registry.Len(),
		"actor", board.Actor.Pos,
		"mode", s.ctrl.Mode())
	return s, nil
}

// NewSession is the entry point for hand-built boards: fixed layouts,
// replays and the terminal adapter's tests. It skips generation and starts
// on board as given. Restarts from the win screen still generate worlds from
// opts.
func NewSession(initial Mode, board Board, opts Options) *Session {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return newSession(initial, board, opts, rand.New(rand.NewSource(seed)))
}

func newSession(initial Mode, board Board, opts Options, rng *rand.Rand) *Session {
	s := &Session{
		opts: opts,
		rng:  rng,
		ctrl: NewController(initial),
	}
	if opts.Logger != nil {
		s.logger = opts.Logger
	} else {
		s.logger = log.New(io.Discard)
	}
	s.install(board)
	return s
}

// install makes board the current world with fresh counters and ID.
func (s *Session) install(board Board) {
	s.id = uuid.NewString()
	s.board = board
	s.stats = Stats{}
	s.examined = make(map[core.Coord]bool)
	s.message = nil
}

// Generate builds a world: items from a fresh text bank, then the cyborg on
// a free cell.
func Generate(rng *rand.Rand, opts Options) (Board, error) {
	bank := world.NewTextBank(rng)
	bank.Load(opts.Treasures)

	reg, err := world.Populate(rng, opts.Grid, opts.Decoys, bank, opts.Appearance)
	if err != nil {
		return Board{}, fmt.Errorf("game: generating world: %w", err)
	}

	pos, err := world.FreeCoord(rng, opts.Grid, reg)
	if err != nil {
		return Board{}, fmt.Errorf("game: placing cyborg: %w", err)
	}

	return Board{Grid: opts.Grid, Registry: reg, Actor: world.NewActor(pos)}, nil
}

// ID identifies the current world. It changes on every restart.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.ctrl.Mode()
}

// Board returns the current world.
func (s *Session) Board() Board {
	return s.board
}

// Stats returns the counters for the current world.
func (s *Session) Stats() Stats {
	return s.stats
}

// Step processes one frame. Each event is handled by the mode current when
// it arrives; afterwards, if the session is in Play, exactly one move is
// attempted. A quit event ends processing immediately.
func (s *Session) Step(events []core.Event) StepResult {
	var res StepResult

	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			s.logger.Info("quit requested", "session", s.id, "mode", s.ctrl.Mode())
			res.Quit = true
			res.Mode = s.ctrl.Mode()
			return res
		}
		s.dispatch(ev, &res)
		if res.Quit {
			res.Mode = s.ctrl.Mode()
			return res
		}
	}

	if s.ctrl.Mode() == ModePlay {
		res.Outcome = s.move()
	}
	res.Mode = s.ctrl.Mode()
	return res
}

// dispatch applies one non-quit event according to the current mode.
func (s *Session) dispatch(ev core.Event, res *StepResult) {
	mode := s.ctrl.Mode()

	if mode == ModePlay {
		if ev.Key.IsDirection() {
			s.board.Actor.SetIntent(ev.Key, ev.Kind == core.EventKeyDown)
		}
		return
	}

	// Outside Play only fresh key presses matter. A repeat of the key that
	// caused a collision must not dismiss the message or restart the world.
	if ev.Kind != core.EventKeyDown || ev.Repeat {
		return
	}

	switch mode {
	case ModeSplash:
		if ev.Key == "i" {
			s.changeMode(ModeInstructions)
		} else {
			s.changeMode(ModePlay)
		}
	case ModeInstructions:
		s.changeMode(ModePlay)
	case ModeMessage:
		s.message = nil
		s.changeMode(ModePlay)
	case ModeWin:
		switch ev.Key {
		case "c":
			s.changeMode(ModeCredits)
		case "q":
			s.logger.Info("quit from win screen", "session", s.id)
			res.Quit = true
		default:
			if err := s.restart(); err != nil {
				s.logger.Error("restart failed", "session", s.id, "error", err)
				return
			}
			res.Restarted = true
		}
	case ModeCredits:
		s.changeMode(ModeWin)
	}
}

// move runs one collision-resolved move attempt and applies its transition.
func (s *Session) move() world.MoveOutcome {
	actor := s.board.Actor
	outcome := world.AttemptMove(actor, s.board.Grid, s.board.Registry)

	switch outcome {
	case world.Moved:
		s.stats.Moves++
		s.logger.Debug("moved", "session", s.id, "pos", actor.Pos)
	case world.CollidedWithDecoy:
		item := actor.LastCollision
		s.stats.Bumps++
		s.examined[item.Coord] = true
		s.stats.Examined = len(s.examined)
		s.message = item.Description
		s.logger.Debug("examined decoy", "session", s.id, "at", item.Coord, "symbol", string(item.Symbol))
		s.changeMode(ModeMessage)
	case world.CollidedWithTarget:
		s.message = actor.LastCollision.Description
		s.logger.Info("feline found", "session", s.id, "moves", s.stats.Moves, "examined", s.stats.Examined)
		s.changeMode(ModeWin)
	}
	return outcome
}

// restart replaces the world with a freshly generated one and resumes play.
// The text bank is refilled from the loaded pool.
func (s *Session) restart() error {
	board, err := Generate(s.rng, s.opts)
	if err != nil {
		return err
	}
	old := s.id
	s.install(board)
	s.changeMode(ModePlay)
	s.logger.Info("world regenerated", "previous", old, "session", s.id, "actor", board.Actor.Pos)
	return nil
}

func (s *Session) changeMode(m Mode) {
	from := s.ctrl.Mode()
	if s.ctrl.ChangeMode(m) && from != m {
		s.logger.Debug("mode changed", "session", s.id, "from", from, "to", m)
	}
}
