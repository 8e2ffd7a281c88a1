package model

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kittyfont/kittyfont/internal/application/usecase"
	"github.com/kittyfont/kittyfont/internal/cli/styles"
	"github.com/kittyfont/kittyfont/internal/logging"
	"github.com/kittyfont/kittyfont/internal/nav"
)

// Dispatcher executes actions and keystrokes against the shared
// application state, one call at a time.
type Dispatcher interface {
	Dispatch(ctx context.Context, action, arg string) (string, error)
	HandleKey(ctx context.Context, key string) (string, error)
	State() nav.State
}

// SessionModel is the Bubble Tea model for a panel session. It opens with
// an initial action, forwards keystrokes to the navigation engine, and
// quits as soon as the engine reports no open panel.
type SessionModel struct {
	// UI components
	help     help.Model
	renderer *styles.PanelRenderer

	// State
	notice string
	width  int
	err    error

	// Dependencies
	ctx        context.Context
	dispatcher Dispatcher
	surface    *Surface
	browser    *usecase.BrowseFontsUseCase
	theme      *styles.Theme
	action     string
	arg        string
}

// NewSessionModel creates a session that starts by dispatching the given
// action.
func NewSessionModel(
	ctx context.Context,
	theme *styles.Theme,
	dispatcher Dispatcher,
	surface *Surface,
	browser *usecase.BrowseFontsUseCase,
	action, arg string,
) SessionModel {
	ctx = logging.WithComponent(ctx, "session")
	log := logging.FromContext(ctx)
	log.Debug().Str("action", action).Msg("creating panel session")

	return SessionModel{
		help:       styles.NewStyledHelp(theme),
		renderer:   styles.NewPanelRenderer(theme),
		ctx:        ctx,
		dispatcher: dispatcher,
		surface:    surface,
		browser:    browser,
		theme:      theme,
		action:     action,
		arg:        arg,
		width:      80,
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return tea.Batch(
		m.dispatchInitial,
		m.warmCatalog,
	)
}

// actionDoneMsg carries the outcome of the opening dispatch.
type actionDoneMsg struct {
	notice string
	err    error
}

// catalogWarmedMsg reports the background catalog warm-up.
type catalogWarmedMsg struct {
	err error
}

// dispatchInitial runs the action this session was started for.
func (m SessionModel) dispatchInitial() tea.Msg {
	notice, err := m.dispatcher.Dispatch(m.ctx, m.action, m.arg)
	return actionDoneMsg{notice: notice, err: err}
}

// warmCatalog resolves the font catalog in the background so that opening
// the family picker from the menu does not block on enumeration.
func (m SessionModel) warmCatalog() tea.Msg {
	log := logging.FromContext(m.ctx)
	if _, err := m.browser.Catalog(m.ctx); err != nil {
		log.Warn().Err(err).Msg("catalog warm-up failed")
		return catalogWarmedMsg{err: err}
	}
	log.Debug().Msg("catalog warmed")
	return catalogWarmedMsg{}
}

// forceQuit ends the session regardless of panel state.
var forceQuit = key.NewBinding(key.WithKeys("ctrl+c"))

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case catalogWarmedMsg:
		return m, nil
	}

	return m, nil
}

func (m SessionModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, forceQuit) {
		return m, tea.Quit
	}

	notice, err := m.dispatcher.HandleKey(m.ctx, msg.String())
	if err != nil {
		m.err = err
		return m, tea.Quit
	}
	if notice != "" {
		m.notice = notice
	}

	if m.dispatcher.State() == nav.StateClosed {
		return m, tea.Quit
	}
	return m, nil
}

func (m SessionModel) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, tea.Quit
	}
	if msg.notice != "" {
		m.notice = msg.notice
	}

	if m.dispatcher.State() == nav.StateClosed {
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m SessionModel) View() string {
	if m.err != nil {
		return ""
	}

	spec, ok := m.surface.Snapshot()
	if !ok {
		return ""
	}

	parts := []string{m.renderer.Render(spec)}
	if m.notice != "" {
		parts = append(parts, m.theme.Notice.Render(m.notice))
	}
	parts = append(parts, m.help.View(styles.KeyMapFor(spec.Kind)))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Notice returns the last notice shown, for printing after the session.
func (m SessionModel) Notice() string {
	return m.notice
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*SessionModel)(nil)
