package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout/internal/config"
)

// Form field indexes.
const (
	fieldRows = iota
	fieldColumns
	fieldBallSpeed
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldRows:      "Brick rows",
	fieldColumns:   "Brick columns",
	fieldBallSpeed: "Ball speed",
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	labelStyle = lipgloss.NewStyle().Width(16).Foreground(lipgloss.Color("245"))
	focusStyle = labelStyle.Foreground(lipgloss.Color("12"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// formOutcome tells the app what the last key did to the form.
type formOutcome int

const (
	formEditing formOutcome = iota
	formSubmitted
	formCancelled
	formShowScores
	formQuit
)

// SettingsForm edits the session configuration: rows, columns and ball
// speed. Input is checked here, so the game only ever sees valid values.
type SettingsForm struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	err     string
	keys    FormKeyMap
	help    help.Model
	canBack bool // A finished game is waiting behind the form
	width   int
	height  int
}

// NewSettingsForm creates a form prefilled with cfg.
func NewSettingsForm(cfg config.SessionConfig, width, height int) SettingsForm {
	f := SettingsForm{
		keys:   DefaultFormKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	values := [fieldCount]string{
		fieldRows:      strconv.Itoa(cfg.Rows),
		fieldColumns:   strconv.Itoa(cfg.Columns),
		fieldBallSpeed: config.FormatSpeed(cfg.BallSpeed),
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.CharLimit = 6
		ti.Width = 8
		ti.SetValue(values[i])
		f.inputs[i] = ti
	}
	f.inputs[fieldRows].Focus()
	return f
}

// Init starts the cursor blinking.
func (f SettingsForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message and reports what the user asked for.
func (f SettingsForm) Update(msg tea.Msg) (SettingsForm, formOutcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height
		return f, formEditing, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, f.keys.Quit):
			return f, formQuit, nil
		case key.Matches(msg, f.keys.Scores):
			return f, formShowScores, nil
		case key.Matches(msg, f.keys.Back):
			if f.canBack {
				return f, formCancelled, nil
			}
			return f, formEditing, nil
		case key.Matches(msg, f.keys.Next):
			cmd := f.setFocus((f.focus + 1) % fieldCount)
			return f, formEditing, cmd
		case key.Matches(msg, f.keys.Prev):
			cmd := f.setFocus((f.focus + fieldCount - 1) % fieldCount)
			return f, formEditing, cmd
		case key.Matches(msg, f.keys.Submit):
			if _, err := f.Value(); err != nil {
				f.err = strings.TrimPrefix(err.Error(), config.ErrInvalidConfig.Error()+": ")
				return f, formEditing, nil
			}
			f.err = ""
			return f, formSubmitted, nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, formEditing, cmd
}

// setFocus moves the cursor to field i.
func (f *SettingsForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Value parses and validates the current field contents.
func (f SettingsForm) Value() (config.SessionConfig, error) {
	return config.ParseSessionFields(
		f.inputs[fieldRows].Value(),
		f.inputs[fieldColumns].Value(),
		f.inputs[fieldBallSpeed].Value(),
	)
}

// View renders the form.
func (f SettingsForm) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("B R E A K O U T"))
	b.WriteString("\n\n")
	b.WriteString("Game settings\n\n")

	for i, in := range f.inputs {
		style := labelStyle
		if i == f.focus {
			style = focusStyle
		}
		b.WriteString(style.Render(fieldLabels[i]))
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.err != "" {
		b.WriteString(errorStyle.Render("✗ " + f.err))
	} else {
		b.WriteString(hintStyle.Render("Use the arrow keys to move the paddle."))
	}
	b.WriteString("\n\n")
	b.WriteString(f.help.View(f.keys))

	return lipgloss.Place(f.width, f.height, lipgloss.Center, lipgloss.Center, b.String())
}
