package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/systop/internal/system"
)

// recordingTerminator records every Terminate call.
type recordingTerminator struct {
	mu   sync.Mutex
	pids []int32
	err  error
}

func (r *recordingTerminator) Terminate(ctx context.Context, pid int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pids = append(r.pids, pid)
	return r.err
}

func (r *recordingTerminator) killed() []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int32(nil), r.pids...)
}

func testStore(procs ...system.Process) *system.Store {
	return system.NewStore(&system.Snapshot{
		PerCoreCPU:       []float64{10, 90},
		MemoryTotalBytes: 1 << 30,
		MemoryUsedBytes:  1 << 29,
		Host:             system.HostInfo{Hostname: "testhost", UptimeSeconds: 3600},
		Processes:        procs,
	}, system.DefaultHistorySize)
}

func testModel(procs ...system.Process) (Model, *recordingTerminator) {
	term := &recordingTerminator{}
	m := NewModel(testStore(procs...), term, system.SortByCPU, time.Second, false)
	return m, term
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m, _ := testModel()

			handled, cmd := m.HandleKeyMsg(keyMsg(key))
			assert.True(t, handled)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestNavigationKeys(t *testing.T) {
	procs := []system.Process{
		{PID: 1, Name: "a", CPUPercent: 90},
		{PID: 2, Name: "b", CPUPercent: 50},
		{PID: 3, Name: "c", CPUPercent: 10},
	}

	m, _ := testModel(procs...)
	assert.Equal(t, 0, m.selection.Cursor())

	m.HandleKeyMsg(keyMsg("j"))
	m.HandleKeyMsg(keyMsg("down"))
	assert.Equal(t, 2, m.selection.Cursor())

	// Stops at the bottom
	m.HandleKeyMsg(keyMsg("j"))
	assert.Equal(t, 2, m.selection.Cursor())

	m.HandleKeyMsg(keyMsg("k"))
	assert.Equal(t, 1, m.selection.Cursor())

	m.HandleKeyMsg(keyMsg("home"))
	assert.Equal(t, 0, m.selection.Cursor())

	// Stops at the top
	m.HandleKeyMsg(keyMsg("up"))
	assert.Equal(t, 0, m.selection.Cursor())

	m.HandleKeyMsg(keyMsg("end"))
	assert.Equal(t, 2, m.selection.Cursor())
}

func TestSortKeysResetCursor(t *testing.T) {
	tests := []struct {
		key  string
		want system.SortOrder
	}{
		{key: "c", want: system.SortByCPU},
		{key: "m", want: system.SortByMemory},
		{key: "p", want: system.SortByPID},
		{key: "n", want: system.SortByName},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, _ := testModel(
				system.Process{PID: 1, Name: "a", CPUPercent: 90},
				system.Process{PID: 2, Name: "b", CPUPercent: 50},
			)
			m.sortOrder = system.SortByName
			if tt.want == system.SortByName {
				m.sortOrder = system.SortByPID
			}
			m.HandleKeyMsg(keyMsg("j"))
			require.Equal(t, 1, m.selection.Cursor())

			handled, _ := m.HandleKeyMsg(keyMsg(tt.key))
			assert.True(t, handled)
			assert.Equal(t, tt.want, m.sortOrder)
			assert.Equal(t, 0, m.selection.Cursor())
		})
	}
}

func TestSortKeySameOrderKeepsCursor(t *testing.T) {
	m, _ := testModel(
		system.Process{PID: 1, Name: "a", CPUPercent: 90},
		system.Process{PID: 2, Name: "b", CPUPercent: 50},
	)
	m.HandleKeyMsg(keyMsg("j"))

	m.HandleKeyMsg(keyMsg("c"))
	assert.Equal(t, system.SortByCPU, m.sortOrder)
	assert.Equal(t, 1, m.selection.Cursor())
}

func TestKillKey(t *testing.T) {
	m, term := testModel(
		system.Process{PID: 10, Name: "hog", CPUPercent: 95},
		system.Process{PID: 20, Name: "idle", CPUPercent: 1},
	)

	handled, cmd := m.HandleKeyMsg(keyMsg("K"))
	assert.True(t, handled)
	require.NotNil(t, cmd)

	assert.Nil(t, cmd())
	assert.Equal(t, []int32{10}, term.killed())
}

func TestKillKeySwallowsErrors(t *testing.T) {
	m, term := testModel(system.Process{PID: 10, Name: "hog", CPUPercent: 95})
	term.err = context.DeadlineExceeded

	_, cmd := m.HandleKeyMsg(keyMsg("K"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.Equal(t, []int32{10}, term.killed())
}

func TestKillKeyEmptyTable(t *testing.T) {
	m, term := testModel()

	handled, cmd := m.HandleKeyMsg(keyMsg("K"))
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Empty(t, term.killed())
}

func TestDetailViewKeys(t *testing.T) {
	m, _ := testModel(system.Process{PID: 7, Name: "svc", CPUPercent: 40})

	m.HandleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ViewDetail, m.viewMode)
	assert.Equal(t, int32(7), m.detailPID)

	m.HandleKeyMsg(keyMsg("esc"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestDetailViewPassesScrollKeysThrough(t *testing.T) {
	m, _ := testModel(
		system.Process{PID: 7, Name: "svc", CPUPercent: 40},
		system.Process{PID: 8, Name: "db", CPUPercent: 10},
	)

	m.HandleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ViewDetail, m.viewMode)

	handled, _ := m.HandleKeyMsg(keyMsg("down"))
	assert.False(t, handled)
	assert.Equal(t, 0, m.selection.Cursor())
}

func TestDetailViewEmptyTable(t *testing.T) {
	m, _ := testModel()

	m.HandleKeyMsg(keyMsg("enter"))
	assert.Equal(t, ViewList, m.viewMode)
}

func TestHelpToggle(t *testing.T) {
	m, _ := testModel()

	m.HandleKeyMsg(keyMsg("?"))
	assert.True(t, m.showHelp)

	m.HandleKeyMsg(keyMsg("esc"))
	assert.False(t, m.showHelp)

	m.HandleKeyMsg(keyMsg("?"))
	m.HandleKeyMsg(keyMsg("?"))
	assert.False(t, m.showHelp)
}

func TestViewModeConstants(t *testing.T) {
	assert.Equal(t, ViewMode(0), ViewList)
	assert.Equal(t, ViewMode(1), ViewDetail)
}
