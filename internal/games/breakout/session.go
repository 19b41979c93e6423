package breakout

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
)

// ErrNotStarted is returned by operations that need a session that has
// been reset at least once.
var ErrNotStarted = errors.New("breakout: session not started")

// HighScoreStore persists the best score across processes.
type HighScoreStore interface {
	// LoadHighScore returns the stored best score, or 0 when none exists.
	LoadHighScore() (int, error)
	// SaveHighScore records a new best score.
	SaveHighScore(score int) error
}

// TerminalResult is reported by Step on the tick a session ends.
type TerminalResult struct {
	Phase        Phase
	Score        int
	HighScore    int
	NewHighScore bool // HighScore was raised during this session
}

// Session owns the state of one game and the collaborators around it.
// It is not safe for concurrent use; one frame loop drives it.
type Session struct {
	store  HighScoreStore
	logger *log.Logger

	runtime core.RuntimeConfig
	cfg     config.BreakoutConfig
	rng     *SimpleRNG
	seed    int64

	state       State
	started     bool
	err         error // Last reset failure, shown instead of the playfield
	startingTop int   // High score when the current session began
}

// NewSession creates a session. store and logger may be nil.
func NewSession(store HighScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		store:  store,
		logger: logger,
	}
}

// Reset starts a new session with the given screen and configuration.
// The high score carries over from earlier sessions and from the store.
// An invalid configuration or a screen too small to hold the layout is
// rejected; the previous state is kept in that case.
func (s *Session) Reset(runtime core.RuntimeConfig, cfg config.BreakoutConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	mode, err := ParseHitWidth(cfg.Collision.HitWidth)
	if err != nil {
		return err
	}

	if s.rng == nil || runtime.Seed != s.seed {
		s.rng = NewSimpleRNG(runtime.Seed)
		s.seed = runtime.Seed
	}

	high := s.state.HighScore
	if s.store != nil {
		stored, loadErr := s.store.LoadHighScore()
		if loadErr != nil {
			s.logger.Warn("could not load high score", "error", loadErr)
		}
		high = max(high, stored)
	}

	w, h := runtime.CanvasSize()
	state, err := NewState(Canvas{Width: w, Height: h}, cfg.Session, mode, high, s.rng)
	if err != nil {
		s.err = err
		s.runtime = runtime
		s.cfg = cfg
		return fmt.Errorf("reset %dx%d: %w", runtime.ScreenW, runtime.ScreenH, err)
	}

	s.runtime = runtime
	s.cfg = cfg
	s.state = state
	s.started = true
	s.err = nil
	s.startingTop = high

	s.logger.Debug("session reset",
		"canvas", fmt.Sprintf("%gx%g", w, h),
		"rows", cfg.Session.Rows,
		"columns", cfg.Session.Columns,
		"ball_speed", cfg.Session.BallSpeed,
		"hit_width", cfg.Collision.HitWidth,
	)
	return nil
}

// Restart starts a new session with the last accepted configuration.
func (s *Session) Restart() error {
	if !s.started && s.err == nil {
		return ErrNotStarted
	}
	return s.Reset(s.runtime, s.cfg)
}

// Resize resets the session for a new screen size. A running game is
// restarted because the canvas is fixed for the lifetime of a session;
// a finished game keeps its final state until the player restarts.
func (s *Session) Resize(width, height int) error {
	runtime := s.runtime
	runtime.ScreenW = width
	runtime.ScreenH = height
	if !s.started && s.err == nil {
		s.runtime = runtime
		return ErrNotStarted
	}
	if s.err == nil && s.state.Phase.Terminal() {
		s.runtime = runtime
		return nil
	}
	return s.Reset(runtime, s.cfg)
}

// Step advances the session by one tick with the given input. It returns
// a result on the tick the session ends and nil otherwise, including on
// every call after the end.
func (s *Session) Step(in core.InputFrame) *TerminalResult {
	if !s.started || s.err != nil || s.state.Phase.Terminal() {
		return nil
	}

	prevHigh := s.state.HighScore
	s.state = Step(s.state, InputFromFrame(in))

	if s.state.HighScore > prevHigh && s.store != nil {
		if err := s.store.SaveHighScore(s.state.HighScore); err != nil {
			s.logger.Error("could not save high score", "score", s.state.HighScore, "error", err)
		}
	}

	if !s.state.Phase.Terminal() {
		return nil
	}

	res := &TerminalResult{
		Phase:        s.state.Phase,
		Score:        s.state.Score,
		HighScore:    s.state.HighScore,
		NewHighScore: s.state.HighScore > s.startingTop,
	}
	s.logger.Info("session ended",
		"phase", res.Phase,
		"score", res.Score,
		"high_score", res.HighScore,
		"ticks", s.state.Tick,
	)
	return res
}

// State returns a copy of the current simulation state.
func (s *Session) State() State {
	return s.state.Clone()
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.state.Phase
}

// Config returns the configuration of the current session.
func (s *Session) Config() config.BreakoutConfig {
	return s.cfg
}

// Err returns the error of the last failed reset, or nil.
func (s *Session) Err() error {
	return s.err
}

// Snapshot returns a read-only view of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	return NewSnapshot(s.state)
}

// Render draws the session to the screen.
func (s *Session) Render(dst *core.Screen) {
	if s.err != nil {
		RenderError(dst, s.err)
		return
	}
	if !s.started {
		dst.Clear()
		return
	}
	Render(dst, s.Snapshot())
}
