package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/garg116611-debug/ai-playlist-generator/internal/formatter"
	"github.com/garg116611-debug/ai-playlist-generator/internal/player"
	"github.com/garg116611-debug/ai-playlist-generator/internal/services"
	"github.com/garg116611-debug/ai-playlist-generator/internal/session"
	"github.com/garg116611-debug/ai-playlist-generator/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	InputView ViewState = iota
	LoadingView
	ResultsView
	HistoryView
)

// Model represents the TUI application state.
type Model struct {
	ctx         context.Context
	view        ViewState
	api         *services.Client
	player      *player.Controller
	session     *session.Session
	width       int
	height      int
	input       textinput.Model
	spin        spinner.Model
	songList    list.Model
	historyList list.Model
	history     []services.HistoryEntry
	inFlight    bool
	status      string
	err         error
	help        help.Model
	keys        keyMap
	playingID   string

	// openURL launches the system browser; swapped out in tests.
	openURL func(url string) error
}

type generatedMsg struct {
	resp *services.PlaylistResponse
	err  error
}

type historyMsg struct {
	entries []services.HistoryEntry
}

type authMsg struct {
	state services.AuthState
}

type clearedMsg struct {
	err error
}

type savedMsg struct {
	result *services.SaveResult
	err    error
}

type playbackTickMsg time.Time

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, api *services.Client, ctrl *player.Controller, sess *session.Session) *Model {
	input := textinput.New()
	input.Placeholder = "Describe your mood or activity..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styles.title

	songList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	songList.SetShowHelp(false)
	historyList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	historyList.Title = "Recent Searches"
	historyList.SetShowHelp(false)

	return &Model{
		ctx:         ctx,
		view:        InputView,
		api:         api,
		player:      ctrl,
		session:     sess,
		input:       input,
		spin:        spin,
		songList:    songList,
		historyList: historyList,
		help:        help.New(),
		keys:        newKeyMap(),
		openURL:     shared.OpenBrowser,
	}
}

// Init probes auth state and loads the search history in the background.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.probeAuth(), m.fetchHistory())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.songList.SetSize(msg.Width-4, msg.Height-10)
		m.historyList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.player.Stop()
			return m, tea.Quit
		}
		switch m.view {
		case InputView:
			return m.handleInputKeys(msg)
		case ResultsView:
			return m.handleResultsKeys(msg)
		case HistoryView:
			return m.handleHistoryKeys(msg)
		}
		return m, nil

	case spinner.TickMsg:
		if m.view != LoadingView {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case generatedMsg:
		return m.handleGenerated(msg)

	case historyMsg:
		m.history = msg.entries
		m.rebuildHistoryList()
		return m, nil

	case authMsg:
		m.session.ResolveAuth(msg.state)
		return m, nil

	case clearedMsg:
		m.history = nil
		m.rebuildHistoryList()
		m.status = "History cleared"
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("Save failed: %v", msg.err))
		} else if msg.result != nil && msg.result.PlaylistURL != "" {
			m.status = styles.ok.Render(fmt.Sprintf("Playlist saved: %s", msg.result.PlaylistURL))
		} else {
			m.status = styles.ok.Render("Playlist saved to Spotify")
		}
		return m, nil

	case playbackTickMsg:
		m.playingID = m.player.Now()
		m.rebuildSongList()
		if m.playingID != "" {
			return m, m.playbackTick()
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case InputView:
		body = m.renderInput()
	case LoadingView:
		body = m.renderLoading()
	case ResultsView:
		body = m.renderResults()
	case HistoryView:
		body = m.renderHistory()
	}

	header := styles.title.Render("🎵 MoodTunes")
	badge := m.renderBadge()

	out := fmt.Sprintf("%s  %s\n\n%s", header, badge, body)
	if m.status != "" {
		out = fmt.Sprintf("%s\n\n%s", out, m.status)
	}
	return out
}

func (m *Model) renderBadge() string {
	state, resolved := m.session.Auth()
	if !resolved {
		return ""
	}
	if state.LoggedIn {
		name := state.DisplayName
		if name == "" {
			name = state.UserID
		}
		return styles.ok.Render(fmt.Sprintf("logged in as %s", name))
	}
	return styles.help.Render("not logged in")
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.enter):
		return m.submit(m.input.Value())
	case key.Matches(msg, m.keys.history):
		m.view = HistoryView
		return m, nil
	case key.Matches(msg, m.keys.back):
		if m.session.HasResults() {
			m.view = ResultsView
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = InputView
		return m, nil
	case key.Matches(msg, m.keys.history):
		m.view = HistoryView
		return m, nil
	case key.Matches(msg, m.keys.play):
		return m.togglePreview()
	case key.Matches(msg, m.keys.open):
		return m.openInSpotify()
	case key.Matches(msg, m.keys.copy):
		return m.copyPlaylist()
	case key.Matches(msg, m.keys.save):
		return m.savePlaylist()
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleHistoryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.history):
		m.view = InputView
		return m, nil
	case key.Matches(msg, m.keys.clear):
		return m, m.clearHistory()
	case key.Matches(msg, m.keys.enter):
		selected := m.historyList.SelectedItem()
		if item, ok := selected.(historyItem); ok {
			m.input.SetValue(item.entry.Query)
			return m.submit(item.entry.Query)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.historyList, cmd = m.historyList.Update(msg)
	return m, cmd
}

// submit dispatches one generation request. Re-entry while a request is in
// flight is a no-op so a query never fires twice.
func (m *Model) submit(text string) (tea.Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}
	if strings.TrimSpace(text) == "" {
		m.status = styles.warn.Render("Describe your mood first")
		return m, nil
	}

	m.inFlight = true
	m.status = ""
	m.err = nil
	m.view = LoadingView
	return m, tea.Batch(m.spin.Tick, m.generate(text))
}

func (m *Model) handleGenerated(msg generatedMsg) (tea.Model, tea.Cmd) {
	m.inFlight = false
	if msg.err != nil {
		m.err = msg.err
		m.status = styles.err.Render(fmt.Sprintf("Error: %v", msg.err))
		m.view = InputView
		return m, nil
	}

	m.player.Stop()
	m.playingID = ""
	m.session.SetResults(msg.resp.Query, msg.resp.Songs)
	m.rebuildSongList()
	m.view = ResultsView
	return m, m.fetchHistory()
}

func (m *Model) togglePreview() (tea.Model, tea.Cmd) {
	selected := m.songList.SelectedItem()
	item, ok := selected.(songItem)
	if !ok {
		return m, nil
	}
	if !item.song.HasPreview() {
		m.status = styles.warn.Render("No preview available for this song")
		return m, nil
	}

	m.status = ""
	m.player.Toggle(m.ctx, item.song.ID, item.song.PreviewURL)
	m.playingID = m.player.Now()
	m.rebuildSongList()
	if m.playingID != "" {
		return m, m.playbackTick()
	}
	return m, nil
}

func (m *Model) openInSpotify() (tea.Model, tea.Cmd) {
	selected := m.songList.SelectedItem()
	item, ok := selected.(songItem)
	if !ok {
		return m, nil
	}
	if item.song.SpotifyURL == "" {
		m.status = styles.warn.Render("No Spotify link for this song")
		return m, nil
	}

	if err := m.openURL(item.song.SpotifyURL); err != nil {
		m.status = styles.err.Render(fmt.Sprintf("Open failed: %v", err))
		return m, nil
	}
	m.status = styles.ok.Render("Opened in Spotify")
	return m, nil
}

func (m *Model) copyPlaylist() (tea.Model, tea.Cmd) {
	text := formatter.ClipboardText(m.session.Songs())
	if err := clipboard.WriteAll(text); err != nil {
		m.status = styles.err.Render(fmt.Sprintf("Copy failed: %v", err))
		return m, nil
	}
	m.status = styles.ok.Render("Playlist copied to clipboard")
	return m, nil
}

func (m *Model) savePlaylist() (tea.Model, tea.Cmd) {
	if !m.session.ShowSave() {
		m.status = styles.warn.Render("Log in with Spotify to save playlists")
		return m, nil
	}

	query := m.session.Query()
	trackIDs := m.session.TrackIDs()
	return m, func() tea.Msg {
		result, err := m.api.SavePlaylist(m.ctx, "MoodTunes: "+query, trackIDs)
		return savedMsg{result: result, err: err}
	}
}

func (m *Model) rebuildSongList() {
	songs := m.session.Songs()
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{song: song, ordinal: i + 1, playing: song.ID == m.playingID}
	}

	selected := m.songList.Index()
	m.songList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
	m.songList.Title = fmt.Sprintf("Search: %q", m.session.Query())
	m.songList.SetShowHelp(false)
	if selected < len(items) {
		m.songList.Select(selected)
	}
}

func (m *Model) rebuildHistoryList() {
	items := make([]list.Item, len(m.history))
	for i, entry := range m.history {
		items[i] = historyItem{entry: entry}
	}
	m.historyList = list.New(items, list.NewDefaultDelegate(), m.width-4, m.height-10)
	m.historyList.Title = "Recent Searches"
	m.historyList.SetShowHelp(false)
}

func (m *Model) probeAuth() tea.Cmd {
	return func() tea.Msg {
		state := m.api.Me(m.ctx)
		return authMsg{state: state}
	}
}

func (m *Model) fetchHistory() tea.Cmd {
	return func() tea.Msg {
		entries := m.api.History(m.ctx)
		return historyMsg{entries: entries}
	}
}

func (m *Model) generate(text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.api.GenerateFromText(m.ctx, text, services.Filters{})
		return generatedMsg{resp: resp, err: err}
	}
}

// clearHistory wipes the local view immediately; the backend delete is best
// effort and any failure only surfaces in the next fetch.
func (m *Model) clearHistory() tea.Cmd {
	return func() tea.Msg {
		err := m.api.ClearHistory(m.ctx)
		return clearedMsg{err: err}
	}
}

func (m *Model) playbackTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return playbackTickMsg(t)
	})
}

func (m *Model) renderInput() string {
	prompt := styles.warn.Render("How are you feeling? What are you up to?")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.history, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s\n\n%s", prompt, m.input.View(), helpView)
}

func (m *Model) renderLoading() string {
	return fmt.Sprintf("%s Generating your playlist...", m.spin.View())
}

func (m *Model) renderResults() string {
	helpKeys := []key.Binding{m.keys.play, m.keys.copy, m.keys.save, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.songList.View(), helpView)
}

func (m *Model) renderHistory() string {
	if len(m.history) == 0 {
		empty := styles.help.Render("No recent searches")
		helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
		return fmt.Sprintf("%s\n\n%s", empty, helpView)
	}
	helpKeys := []key.Binding{m.keys.enter, m.keys.clear, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s", m.historyList.View(), helpView)
}
