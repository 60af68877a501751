// Package tui provides the Bubble Tea front-end for the minesweeper board.
// It maps keys to game actions, renders the game screen with lipgloss and
// shows the key bindings with the bubbles help view.
package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/mines"
)

// Model is the Bubble Tea model for a minesweeper session.
type Model struct {
	game     *mines.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	state    core.GameState
	width    int
	height   int
	quitting bool
}

// NewModel deals the first board from cfg. A nil logger discards log output.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := mines.NewGame()
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		state:  game.State(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.layout()
	return m, nil
}

// Init implements tea.Model. The board is dealt in NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.logger.Info("quit", "moves", m.state.Moves)
		m.quitting = true
		return m, tea.Quit
	}

	prev := m.state
	m.state = m.game.Step(core.NewInputFrame(action))
	m.logger.Debug("action", "action", action, "cursor", m.game.Cursor(), "moves", m.state.Moves)

	switch {
	case !prev.GameOver && m.state.GameOver:
		m.logger.Info("game over", "won", m.state.Won, "moves", m.state.Moves)
	case prev.GameOver && !m.state.GameOver:
		m.logger.Info("new game")
	}
	if err := m.game.LastError(); err != nil {
		m.logger.Debug("action rejected", "err", err)
	}

	return m, nil
}

// layout splits the window between the game screen and the help view.
func (m *Model) layout() {
	m.help.Width = m.width
	h := core.Max(0, m.height-lipgloss.Height(m.help.View(m.keys)))
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game exposes the running game.
func (m Model) Game() *mines.Game {
	return m.game
}

// Run starts the Bubble Tea program for cfg.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
