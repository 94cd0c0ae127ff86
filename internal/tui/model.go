package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/goddevils777/tgbot3-0-sub001/internal/core/apiclient"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/config"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/history"
	"github.com/goddevils777/tgbot3-0-sub001/internal/core/notify"
	"github.com/goddevils777/tgbot3-0-sub001/internal/store/jsonfile"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateConfirming
	stateDetail
	stateStats
	stateLoading
	stateLoggingIn
)

// Key constants for event handling.
const (
	keyEnter = "enter"
	keyCtrlC = "ctrl+c"
)

// Options configures the TUI behavior.
type Options struct {
	Client *apiclient.Client  // backend client (required)
	Auth   *jsonfile.AuthStore // cached login session (required)
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	cfg     *config.Config
	store   history.Store
	center  *notify.Center
	client  *apiclient.Client
	auth    *jsonfile.AuthStore
	handler *KeybindingHandler

	list     list.Model
	histState history.State
	category int // index into history.Categories()

	state       UIState
	returnState UIState // state to restore after a confirm resolves
	modal       Modal
	afterResolve tea.Cmd // runs after the pending confirm resolves positively

	detail    DetailView
	stats     StatsView
	loginForm *LoginForm

	spinner        spinner.Model
	loadingMessage string

	user     *apiclient.User // nil = guest presentation
	width    int
	height   int
	quitting bool
}

// historyLoadedMsg is sent when the activity log is (re)loaded.
type historyLoadedMsg struct {
	state history.State
}

// sessionCheckedMsg is sent when the backend session query completes.
type sessionCheckedMsg struct {
	user apiclient.User
	err  error
}

// statsLoadedMsg is sent when the admin stats query completes.
type statsLoadedMsg struct {
	report apiclient.StatsReport
	err    error
}

// statsResetMsg is sent when the stats reset mutation completes.
type statsResetMsg struct {
	message string
	err     error
}

// loginResultMsg is sent when a login or register request completes.
type loginResultMsg struct {
	username string
	token    string
	register bool
	err      error
}

// notifyChangedMsg is sent by the notification center whenever a toast or
// confirmation changes phase, forcing a repaint.
type notifyChangedMsg struct{}

// NotifyChanged builds the repaint message the notification center's change
// hook sends into the program.
func NotifyChanged() tea.Msg {
	return notifyChangedMsg{}
}

// New creates the TUI model.
func New(cfg *config.Config, store history.Store, center *notify.Center, opts Options) Model {
	delegate := EntryDelegate{}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		cfg:     cfg,
		store:   store,
		center:  center,
		client:  opts.Client,
		auth:    opts.Auth,
		handler: NewKeybindingHandler(cfg.Keybindings),
		list:    l,
		spinner: sp,
		histState: history.DefaultState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistory(), m.checkSession(), m.spinner.Tick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-chromeHeight)
		return m, nil

	case historyLoadedMsg:
		m.histState = msg.state
		m.applyCategory()
		return m, nil

	case sessionCheckedMsg:
		if msg.err != nil {
			m.user = nil
			if !errors.Is(msg.err, apiclient.ErrUnauthenticated) {
				m.center.Error("Session check failed: " + msg.err.Error())
			}
			return m, nil
		}
		user := msg.user
		m.user = &user
		return m, nil

	case statsLoadedMsg:
		if msg.err != nil {
			m.state = stateNormal
			m.center.Error("Could not load statistics: " + msg.err.Error())
			return m, nil
		}
		m.stats = NewStatsView(msg.report, m.width)
		m.state = stateStats
		return m, nil

	case statsResetMsg:
		if msg.err != nil {
			m.center.Error("Stats reset failed: " + msg.err.Error())
			return m, nil
		}
		message := msg.message
		if message == "" {
			message = "Statistics reset"
		}
		m.center.Success(message)
		m.loadingMessage = "Reloading statistics"
		m.state = stateLoading
		return m, m.loadStats()

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case notifyChangedMsg:
		// Repaint only; the center already holds the new toast state.
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Route all other messages to the form while logging in
	if m.state == stateLoggingIn && m.loginForm != nil {
		return m.updateLoginForm(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKey processes key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// Handle modal states first
	if m.state == stateConfirming {
		return m.handleConfirmKey(keyStr)
	}
	if m.state == stateLoggingIn {
		return m.handleLoginKey(msg, keyStr)
	}
	if m.state == stateDetail {
		return m.handleDetailKey(keyStr)
	}
	if m.state == stateStats {
		return m.handleStatsKey(keyStr)
	}
	if m.state == stateLoading {
		if keyStr == keyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// When filtering, pass most keys to the list
	if m.list.SettingFilter() {
		if keyStr == keyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m.handleNormalKey(msg, keyStr)
}

// handleNormalKey handles keys in the history browser.
func (m Model) handleNormalKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC, "q":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		m.category = (m.category + 1) % len(history.Categories())
		m.applyCategory()
		return m, nil

	case "shift+tab":
		m.category = (m.category + len(history.Categories()) - 1) % len(history.Categories())
		m.applyCategory()
		return m, nil

	case "1", "2", "3":
		m.category = int(keyStr[0] - '1')
		m.applyCategory()
		return m, nil

	case keyEnter:
		if entry := m.selectedEntry(); entry != nil {
			m.detail = NewDetailView(*entry, m.width)
			m.state = stateDetail
		}
		return m, nil

	case "s":
		m.loadingMessage = "Loading statistics"
		m.state = stateLoading
		return m, m.loadStats()

	case "i":
		m.loginForm = NewLoginForm(false)
		m.state = stateLoggingIn
		return m, m.loginForm.Form().Init()

	case "R":
		m.loginForm = NewLoginForm(true)
		m.state = stateLoggingIn
		return m, m.loginForm.Form().Init()

	case "r":
		return m, tea.Batch(m.loadHistory(), m.checkSession())
	}

	if action, ok := m.handler.Resolve(keyStr, m.currentCategory(), m.selectedEntry()); ok {
		return m.startAction(action)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// startAction runs a keybinding action, routing it through a confirmation
// modal when one is configured.
func (m Model) startAction(action Action) (tea.Model, tea.Cmd) {
	if !action.NeedsConfirm() {
		m.executeAction(action)
		return m, m.loadHistory()
	}

	request := m.center.Confirm(action.Confirm, func() { m.executeAction(action) }, nil)
	m.modal = NewModal(request)
	m.returnState = stateNormal
	m.afterResolve = m.loadHistory()
	m.state = stateConfirming
	return m, nil
}

// executeAction applies a resolved action to the store and reports the
// outcome as a toast. The next render re-reads the persisted state, so a
// failed write leaves the list unchanged.
func (m Model) executeAction(action Action) {
	ctx := context.Background()

	switch action.Type {
	case ActionTypeDelete:
		if err := m.store.Remove(ctx, action.Category, action.EntryID); err != nil {
			m.center.Error("Delete failed: " + err.Error())
			return
		}
		m.center.Success("Entry deleted")

	case ActionTypeClear:
		if err := m.store.Clear(ctx, action.Category); err != nil {
			m.center.Error("Clear failed: " + err.Error())
			return
		}
		m.center.Success(action.Category.Title() + " history cleared")
	}
}

// handleConfirmKey handles keys while the confirmation modal is shown.
func (m Model) handleConfirmKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyEnter:
		confirmed := m.modal.ConfirmSelected()
		m.modal.Resolve()
		m.state = m.returnState
		after := m.afterResolve
		m.afterResolve = nil
		if confirmed {
			return m, after
		}
		return m, nil
	case "esc":
		m.modal.Cancel()
		m.state = m.returnState
		m.afterResolve = nil
		return m, nil
	case "left", "right", "h", "l", "tab":
		m.modal.ToggleSelection()
		return m, nil
	case keyCtrlC:
		m.modal.Cancel()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleDetailKey handles keys in the detail view.
func (m Model) handleDetailKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case "esc", "q", keyEnter:
		m.state = stateNormal
		return m, m.loadHistory()
	}
	return m, nil
}

// handleStatsKey handles keys in the stats view.
func (m Model) handleStatsKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case keyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case "esc", "q":
		m.state = stateNormal
		return m, nil
	case "r":
		request := m.center.Confirm("Reset all API usage statistics?", nil, nil)
		m.modal = NewModal(request)
		m.returnState = stateStats
		m.afterResolve = m.resetStats()
		m.state = stateConfirming
		return m, nil
	}
	return m, nil
}

// handleLoginKey handles keys while the login form is shown.
func (m Model) handleLoginKey(msg tea.KeyMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == keyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if keyStr == "esc" {
		m.loginForm = nil
		m.state = stateNormal
		return m, nil
	}

	return m.updateLoginForm(msg)
}

// updateLoginForm routes a message to the form and reacts to completion.
func (m Model) updateLoginForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.loginForm.Form().Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.loginForm.SetForm(f)

		if f.State == huh.StateCompleted {
			username, password := m.loginForm.Credentials()
			register := m.loginForm.Register()
			m.loginForm = nil
			m.loadingMessage = "Signing in"
			m.state = stateLoading
			return m, m.submitLogin(username, password, register)
		}
		if f.State == huh.StateAborted {
			m.loginForm = nil
			m.state = stateNormal
			return m, nil
		}
	}
	return m, cmd
}

// handleLoginResult applies the outcome of a login or register request.
func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.state = stateNormal

	if msg.err != nil {
		verb := "Sign in"
		if msg.register {
			verb = "Registration"
		}
		m.user = nil
		m.center.Error(verb + " failed: " + msg.err.Error())
		return m, nil
	}

	if err := m.auth.Set(context.Background(), msg.token, msg.username); err != nil {
		m.center.Warning("Signed in, but saving the session failed: " + err.Error())
	} else {
		m.center.Success("Signed in as " + msg.username)
	}

	return m, m.checkSession()
}

// currentCategory returns the active category.
func (m Model) currentCategory() history.Category {
	return history.Categories()[m.category]
}

// selectedEntry returns the selected entry, or nil for an empty list.
func (m Model) selectedEntry() *history.Entry {
	item, ok := m.list.SelectedItem().(EntryItem)
	if !ok {
		return nil
	}
	entry := item.Entry
	return &entry
}

// applyCategory swaps the list contents to the active category.
func (m *Model) applyCategory() {
	entries := m.histState.Entries(m.currentCategory())
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, EntryItem{Entry: e})
	}
	m.list.SetItems(items)
	m.list.ResetSelected()
}

// loadHistory re-reads the full store. Every mutation is followed by one of
// these; the view never trusts in-memory state after a write.
func (m Model) loadHistory() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		return historyLoadedMsg{state: store.Load(context.Background())}
	}
}

// checkSession queries the backend for the authenticated user.
func (m Model) checkSession() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		user, err := client.Session(context.Background())
		return sessionCheckedMsg{user: user, err: err}
	}
}

// loadStats fetches the admin usage report.
func (m Model) loadStats() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		report, err := client.Stats(context.Background())
		return statsLoadedMsg{report: report, err: err}
	}
}

// resetStats clears the backend usage counters.
func (m Model) resetStats() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		message, err := client.ResetStats(context.Background())
		return statsResetMsg{message: message, err: err}
	}
}

// submitLogin sends the entered credentials to the backend.
func (m Model) submitLogin(username, password string, register bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var (
			token string
			err   error
		)
		if register {
			token, err = client.Register(context.Background(), username, password)
		} else {
			token, err = client.Login(context.Background(), username, password)
		}
		return loginResultMsg{username: username, token: token, register: register, err: err}
	}
}
