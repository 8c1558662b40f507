package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pulse/internal/formatter"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/desertthunder/pulse/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	LyricsView
)

const (
	searchDebounce = 280 * time.Millisecond
	searchLimit    = 12
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	catalog services.Catalog
	engine  *tasks.Engine
	width   int
	height  int

	input     textinput.Model
	results   list.Model
	seq       int
	searching bool
	searchErr error

	viewport viewport.Model
	track    *models.Track
	analysis *tasks.TrackAnalysis
	loading  bool
	err      error

	help help.Model
	keys keyMap
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, catalog services.Catalog, engine *tasks.Engine) *Model {
	input := textinput.New()
	input.Placeholder = "Search for a song"
	input.Prompt = "› "
	input.CharLimit = 120
	input.Focus()

	results := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	results.Title = "Results"
	results.SetFilteringEnabled(false)
	results.SetShowHelp(false)

	return &Model{
		ctx:      ctx,
		view:     SearchView,
		catalog:  catalog,
		engine:   engine,
		input:    input,
		results:  results,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init starts the cursor blinking in the search input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case LyricsView:
			return m.handleLyricsKeys(msg)
		}

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	if m.view == SearchView {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgSearchDebounced:
		data := msg.data.(searchDebounced)
		if data.seq != m.seq {
			return m, nil
		}
		if strings.TrimSpace(data.query) == "" {
			m.searching = false
			m.searchErr = nil
			return m, m.results.SetItems(nil)
		}
		m.searching = true
		return m, m.search(data.seq, data.query)

	case MsgSearchResults:
		data := msg.data.(searchResults)
		if data.seq != m.seq {
			return m, nil
		}
		m.searching = false
		m.searchErr = data.err
		if data.err != nil {
			return m, nil
		}
		m.results.Title = fmt.Sprintf("Results for %q", data.query)
		return m, m.results.SetItems(trackItems(data.tracks))

	case MsgTrackAnalyzed:
		data := msg.data.(trackAnalyzed)
		if m.track == nil || m.track.ID != data.track.ID {
			return m, nil
		}
		m.loading = false
		m.analysis = data.result
		m.err = data.err
		m.viewport.SetContent(m.renderLyrics())
		m.viewport.GotoTop()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.back):
			m.input.SetValue("")
			return m, m.debounce("")
		case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown, msg.Type == tea.KeyEnter:
			if len(m.results.Items()) > 0 {
				m.input.Blur()
			}
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() == before {
			return m, cmd
		}
		return m, tea.Batch(cmd, m.debounce(m.input.Value()))
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.focus), key.Matches(msg, m.keys.back):
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.results.SelectedItem().(trackItem); ok {
			return m, m.open(item.track)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *Model) handleLyricsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.view = SearchView
		m.track = nil
		m.analysis = nil
		m.err = nil
		m.loading = false
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// debounce bumps the request sequence and schedules a search for query.
// Any earlier pending search is superseded.
func (m *Model) debounce(query string) tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchDebouncedMsg(seq, query)
	})
}

func (m *Model) search(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		if m.catalog == nil {
			return searchResultsMsg(seq, query, nil, shared.ErrMissingCredentials)
		}
		tracks, err := m.catalog.SearchTracks(m.ctx, query, searchLimit)
		return searchResultsMsg(seq, query, tracks, err)
	}
}

func (m *Model) open(track models.Track) tea.Cmd {
	m.view = LyricsView
	m.track = &track
	m.analysis = nil
	m.err = nil
	m.loading = true
	return m.analyze(track)
}

func (m *Model) analyze(track models.Track) tea.Cmd {
	return func() tea.Msg {
		q := lyrics.Query{Artist: track.PrimaryArtist(), Title: track.Name}
		result, err := m.engine.AnalyzeQuery(m.ctx, nil, q)
		return trackAnalyzedMsg(track, result, err)
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.input.Width = max(width-8, 10)
	m.results.SetSize(max(width-4, 0), max(height-8, 0))
	m.viewport.Width = max(width-4, 0)
	m.viewport.Height = max(height-6, 0)
	if m.view == LyricsView && !m.loading {
		m.viewport.SetContent(m.renderLyrics())
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SearchView:
		return m.renderSearch()
	case LyricsView:
		return m.renderLyricsView()
	default:
		return ""
	}
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("pulse · lyrics search")

	var status string
	switch {
	case m.searching:
		status = styles.help.Render("Searching...")
	case m.searchErr != nil:
		status = styles.err.Render(fmt.Sprintf("Search failed: %v", m.searchErr))
	case len(m.results.Items()) > 0:
		status = styles.ok.Render(fmt.Sprintf("%d tracks", len(m.results.Items())))
	}

	var helpKeys []key.Binding
	if m.input.Focused() {
		helpKeys = []key.Binding{m.keys.focus, m.keys.back}
	} else {
		helpKeys = []key.Binding{m.keys.up, m.keys.down, m.keys.enter, m.keys.focus, m.keys.quit}
	}

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n\n%s", title, m.input.View(), status, m.results.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderLyricsView() string {
	helpKeys := []key.Binding{m.keys.up, m.keys.down, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	if m.loading && m.track != nil {
		msg := styles.help.Render(fmt.Sprintf("Resolving lyrics for %s by %s...", m.track.Name, m.track.PrimaryArtist()))
		return fmt.Sprintf("%s\n\n%s", msg, helpView)
	}
	return fmt.Sprintf("%s\n\n%s", m.viewport.View(), helpView)
}

// renderLyrics builds the scrollable content of the lyrics view.
func (m *Model) renderLyrics() string {
	var b strings.Builder
	if m.track != nil {
		b.WriteString(styles.title.Render(fmt.Sprintf("%s · %s", m.track.Name, m.track.Artists)))
		b.WriteString("\n")
	}

	if m.analysis == nil || m.analysis.Lyrics == nil {
		if m.err != nil {
			b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		return b.String()
	}

	res := m.analysis.Lyrics
	if !res.Found() {
		b.WriteString(styles.warn.Render(formatter.NotFoundMessage(res)))
		return b.String()
	}

	if m.analysis.Analysis != nil {
		if mood := styles.Mood(m.analysis.Analysis); mood != "" {
			b.WriteString(mood)
			b.WriteString("\n\n")
		}
		b.WriteString(styles.ok.Render("Emotions"))
		b.WriteString("\n")
		b.Write(formatter.AnalysisToText(m.analysis.Analysis))
		b.WriteString("\n")
	} else if m.err != nil {
		b.WriteString(styles.warn.Render(fmt.Sprintf("Analysis unavailable: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(res.Text())
	b.WriteString("\n")
	return b.String()
}
