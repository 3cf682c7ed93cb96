package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/systop/internal/system"
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeySortCPU     = "c"
	KeySortMemory  = "m"
	KeySortPID     = "p"
	KeySortName    = "n"
	KeyKill        = "K"
	KeyExpand      = "enter"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	// Help toggle takes priority
	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	// Detail view: Esc returns to list, q quits. Everything else
	// (arrows, pgup/pgdown) falls through to the viewport so the
	// detail pane can scroll.
	if m.viewMode == ViewDetail {
		switch key {
		case KeyCollapse:
			m.viewMode = ViewList
			return true, nil
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			return true, tea.Quit
		}
		return false, nil
	}

	switch key {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeySelectPrev, KeySelectPrevK:
		m.selection.MoveUp()
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		m.selection.MoveDown(m.store.ProcessCount())
		return true, nil

	case KeySelectFirst:
		m.selection.Reset()
		return true, nil

	case KeySelectLast:
		m.selection.MoveToEnd(m.store.ProcessCount())
		return true, nil

	case KeySortCPU:
		m.setSortOrder(system.SortByCPU)
		return true, nil

	case KeySortMemory:
		m.setSortOrder(system.SortByMemory)
		return true, nil

	case KeySortPID:
		m.setSortOrder(system.SortByPID)
		return true, nil

	case KeySortName:
		m.setSortOrder(system.SortByName)
		return true, nil

	case KeyKill:
		return true, m.killSelectedCmd()

	case KeyExpand:
		if m.viewMode == ViewList {
			if proc, ok := m.SelectedProcess(); ok {
				m.detailPID = proc.PID
				m.viewMode = ViewDetail
				m.updateDetailViewportContent()
			}
		}
		return true, nil

	case KeyCollapse:
		m.viewMode = ViewList
		return true, nil
	}

	return false, nil
}

// setSortOrder switches the process table sort. The cursor resets to the
// top on an actual change so the highlight doesn't silently jump to a
// different process.
func (m *Model) setSortOrder(order system.SortOrder) {
	if m.sortOrder == order {
		return
	}
	m.sortOrder = order
	m.selection.Reset()
}

// killSelectedCmd returns a command that sends SIGKILL to the process
// under the cursor. Fire-and-forget: the result shows up in the process
// table on the next refresh. No-op when the table is empty.
func (m *Model) killSelectedCmd() tea.Cmd {
	proc, ok := m.SelectedProcess()
	if !ok {
		return nil
	}

	terminator := m.terminator
	return func() tea.Msg {
		_ = terminator.Terminate(context.Background(), proc.PID)
		return nil
	}
}
