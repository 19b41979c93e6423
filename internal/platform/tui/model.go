package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout/internal/config"
	"github.com/vovakirdan/breakout/internal/core"
	"github.com/vovakirdan/breakout/internal/games/breakout"
)

// view selects which screen the app shows.
type view int

const (
	viewForm view = iota
	viewGame
	viewScores
)

// Options configures an App.
type Options struct {
	Store   breakout.HighScoreStore // Best score of the current player; may be nil
	Scores  ScoreLister             // All players' scores; nil hides the scoreboard
	Player  string
	Runtime core.RuntimeConfig
	Config  config.BreakoutConfig
	Logger  *log.Logger

	// SkipForm starts the game directly with Config.
	SkipForm bool
	// HoldTicks is how long a key press keeps the paddle moving.
	HoldTicks int
	// ScreenshotDir is where ctrl+s writes screen dumps.
	ScreenshotDir string
}

// App is the Bubble Tea model for a breakout session: a settings form,
// the game screen and an optional scoreboard.
type App struct {
	session  *breakout.Session
	screen   *core.Screen
	hold     *core.KeyHold
	keys     GameKeyMap
	help     help.Model
	form     SettingsForm
	scores   Scoreboard
	opts     Options
	logger   *log.Logger
	runtime  core.RuntimeConfig
	view     view
	ticking  bool // A tick command is in flight
	status   string
	quitting bool
}

// NewApp creates the model.
func NewApp(opts Options) App {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	a := App{
		session: breakout.NewSession(opts.Store, opts.Logger),
		screen:  core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		hold:    core.NewKeyHold(opts.HoldTicks),
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		form:    NewSettingsForm(opts.Config.Session, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:    opts,
		logger:  opts.Logger,
		runtime: opts.Runtime,
		view:    viewForm,
	}
	a.help.Width = opts.Runtime.ScreenW
	if opts.SkipForm {
		a.view = viewGame
	}
	return a
}

// startMsg starts the game without going through the form.
type startMsg struct{}

// Init starts the form cursor or, when the form is skipped, the game.
func (a App) Init() tea.Cmd {
	if a.view == viewGame {
		return func() tea.Msg { return startMsg{} }
	}
	return a.form.Init()
}

// Update handles messages and updates the model state.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleResize(msg)
	case startMsg:
		cmd := a.startGame(a.opts.Config)
		return a, cmd
	case TickMsg:
		return a.handleTick()
	}

	switch a.view {
	case viewForm:
		return a.updateForm(msg)
	case viewScores:
		return a.updateScores(msg)
	default:
		return a.updateGame(msg)
	}
}

// handleResize resizes every screen. A running game restarts because the
// canvas is fixed for the lifetime of a session.
func (a App) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.runtime.ScreenW = msg.Width
	a.runtime.ScreenH = msg.Height
	a.screen.Resize(msg.Width, msg.Height)
	a.help.Width = msg.Width

	a.form, _, _ = a.form.Update(msg)
	a.scores, _, _ = a.scores.Update(msg)

	if err := a.session.Resize(msg.Width, msg.Height); err != nil && !errors.Is(err, breakout.ErrNotStarted) {
		a.logger.Debug("resize rejected", "width", msg.Width, "height", msg.Height, "error", err)
	}
	if a.view == viewGame {
		cmd := a.ensureTicking()
		return a, cmd
	}
	return a, nil
}

// updateForm routes messages to the settings form.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, outcome, cmd := a.form.Update(msg)
	a.form = form

	switch outcome {
	case formQuit:
		a.quitting = true
		return a, tea.Quit
	case formShowScores:
		if a.opts.Scores == nil {
			return a, nil
		}
		a.scores = NewScoreboard(a.opts.Scores, a.opts.Player, a.runtime.ScreenW, a.runtime.ScreenH)
		a.view = viewScores
		return a, nil
	case formCancelled:
		a.view = viewGame
		return a, nil
	case formSubmitted:
		session, err := a.form.Value()
		if err != nil {
			return a, nil
		}
		cfg := a.session.Config()
		if !a.sessionConfigured() {
			cfg = a.opts.Config
		}
		cfg.Session = session
		a.view = viewGame
		cmd := a.startGame(cfg)
		return a, cmd
	}
	return a, cmd
}

// updateScores routes messages to the scoreboard.
func (a App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	scores, outcome, cmd := a.scores.Update(msg)
	a.scores = scores

	switch outcome {
	case scoreboardQuit:
		a.quitting = true
		return a, tea.Quit
	case scoreboardBack:
		a.view = viewForm
		return a, nil
	}
	return a, cmd
}

// updateGame handles keys on the game screen.
func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return a.handleKey(msg)
	}
	return a, nil
}

// handleKey processes keyboard input on the game screen.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Screenshot) {
		a.status = a.saveScreenshot()
		return a, nil
	}

	switch a.keys.MapKey(msg) {
	case core.ActionQuit:
		a.quitting = true
		return a, tea.Quit
	case core.ActionLeft:
		a.hold.Press(core.ActionLeft)
	case core.ActionRight:
		a.hold.Press(core.ActionRight)
	case core.ActionRestart:
		// Restart and settings are only offered once the game is over.
		if a.acceptsCommands() && a.session.Err() == nil {
			cmd := a.startGame(a.session.Config())
			return a, cmd
		}
	case core.ActionConfig:
		if a.acceptsCommands() {
			a.hold.ReleaseAll()
			a.form = NewSettingsForm(a.session.Config().Session, a.runtime.ScreenW, a.runtime.ScreenH)
			a.form.canBack = a.session.Err() == nil
			a.view = viewForm
			return a, a.form.Init()
		}
	}
	return a, nil
}

// acceptsCommands reports whether restart and settings keys apply.
func (a App) acceptsCommands() bool {
	return a.session.Err() != nil || a.session.Phase().Terminal()
}

// sessionConfigured reports whether the session has a configuration yet.
func (a App) sessionConfigured() bool {
	return a.session.Config().Session.Rows > 0
}

// startGame resets the session and starts ticking.
func (a *App) startGame(cfg config.BreakoutConfig) tea.Cmd {
	a.hold.ReleaseAll()
	a.status = ""
	if err := a.session.Reset(a.runtime, cfg); err != nil {
		a.logger.Warn("cannot start game", "error", err)
		return nil
	}
	a.logger.Info("game started",
		"player", a.opts.Player,
		"rows", cfg.Session.Rows,
		"columns", cfg.Session.Columns,
		"ball_speed", cfg.Session.BallSpeed,
	)
	return a.ensureTicking()
}

// ensureTicking starts the tick loop unless one is already running or the
// session cannot advance.
func (a *App) ensureTicking() tea.Cmd {
	if a.ticking || a.session.Err() != nil || a.session.Phase().Terminal() {
		return nil
	}
	a.ticking = true
	return tickCmd(a.runtime.TickRate)
}

// handleTick advances the simulation. The loop stops when the session
// ends and starts again on restart.
func (a App) handleTick() (tea.Model, tea.Cmd) {
	a.ticking = false
	if a.view != viewGame || a.session.Err() != nil || a.session.Phase().Terminal() {
		return a, nil
	}

	frame := core.NewInputFrame()
	a.hold.Apply(&frame)

	if res := a.session.Step(frame); res != nil {
		a.hold.ReleaseAll()
		return a, nil
	}

	a.ticking = true
	return a, tickCmd(a.runtime.TickRate)
}

// saveScreenshot writes the current screen to a text file and returns a
// status line for the user.
func (a *App) saveScreenshot() string {
	a.session.Render(a.screen)

	dir := a.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "screenshot failed: " + err.Error()
		}
		dir = filepath.Join(home, ".breakout", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "screenshot failed: " + err.Error()
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(a.screen.String()), 0o600); err != nil {
		a.logger.Error("screenshot failed", "path", path, "error", err)
		return "screenshot failed: " + err.Error()
	}
	a.logger.Info("screenshot saved", "path", path)
	return "saved " + path
}

// View renders the current state to a string for display.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewForm:
		return a.form.View()
	case viewScores:
		return a.scores.View()
	}

	a.session.Render(a.screen)
	if a.status != "" && a.screen.Height() > 0 {
		a.screen.DrawText(1, 0, a.status)
	}
	out := RenderScreen(a.screen)

	// Once the game is over the bottom row shows the key help.
	if a.acceptsCommands() && a.screen.Height() > 1 {
		lines := strings.Split(out, "\n")
		lines[len(lines)-1] = a.help.View(a.keys)
		out = strings.Join(lines, "\n")
	}
	return out
}

// Session exposes the underlying session, mainly for tests.
func (a App) Session() *breakout.Session {
	return a.session
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewApp(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
