package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/systop/internal/system"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// frameInterval is the redraw cadence. It is decoupled from the sampling
// interval so the "updated Ns ago" header and cursor stay responsive even
// with slow refresh rates.
const frameInterval = 500 * time.Millisecond

// Model is the Bubble Tea model for the system dashboard. It reads shared
// state from the Store; selection and sort order live here, owned by the
// single-threaded update loop.
type Model struct {
	store      *system.Store
	terminator system.Terminator
	selection  system.Selection
	sortOrder  system.SortOrder
	interval   time.Duration

	width  int
	height int

	quitting bool
	viewMode ViewMode
	showHelp bool
	debug    bool

	// PID pinned when entering the detail view, so the detail pane keeps
	// following the same process as the table resorts underneath it.
	detailPID int32

	detailViewport viewport.Model
	viewportReady  bool
}

// frameMsg signals a periodic redraw.
type frameMsg time.Time

// NewModel creates a dashboard model reading from the given store.
func NewModel(store *system.Store, terminator system.Terminator, sortOrder system.SortOrder, interval time.Duration, debug bool) Model {
	return Model{
		store:      store,
		terminator: terminator,
		sortOrder:  sortOrder,
		interval:   interval,
		debug:      debug,
	}
}

// Init starts the frame timer.
func (m Model) Init() tea.Cmd {
	return m.frameCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case frameMsg:
		// The refresher may have shrunk the process table since the last
		// frame; keep the cursor in range.
		m.selection.Clamp(m.store.ProcessCount())

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.frameCmd()
	}

	if m.viewMode == ViewDetail && m.viewportReady {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderDashboard()
}

// frameCmd returns a command that sends a frame tick.
func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// SelectedProcess returns the process under the cursor in the current
// sort order, or false when the table is empty.
func (m Model) SelectedProcess() (system.Process, bool) {
	procs := m.store.Processes(m.sortOrder)
	if len(procs) == 0 {
		return system.Process{}, false
	}

	cursor := m.selection.Cursor()
	if cursor >= len(procs) {
		cursor = len(procs) - 1
	}
	return procs[cursor], true
}

// SecondsSinceUpdate returns how many seconds have passed since the store
// last applied a snapshot.
func (m Model) SecondsSinceUpdate() int {
	last := m.store.LastUpdate()
	if last.IsZero() {
		return 0
	}
	return int(time.Since(last).Seconds())
}
