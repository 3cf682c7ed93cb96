package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/systop/internal/system"
)

var detailContainerStyle = lipgloss.NewStyle().Padding(1, 2)

// renderDetailView renders the expanded single-process view. The body is a
// viewport so core lists longer than the terminal stay scrollable.
func (m Model) renderDetailView() string {
	var b strings.Builder

	b.WriteString(m.renderDetailHeader())
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.detailViewport.View())
	} else {
		b.WriteString(m.detailContent())
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetailFooter())

	return detailContainerStyle.Render(b.String())
}

// renderDetailHeader shows which process is pinned.
func (m Model) renderDetailHeader() string {
	title := TitleStyle.Render("process detail")

	if p, ok := m.pinnedProcess(); ok {
		return title + LabelStyle.Render(fmt.Sprintf("  %s (pid %d)", p.Name, p.PID))
	}
	return title + MutedStyle.Render(fmt.Sprintf("  pid %d (exited)", m.detailPID))
}

// updateDetailViewportContent refreshes the viewport body. Called on frame
// ticks and resizes while the detail view is open.
func (m *Model) updateDetailViewportContent() {
	if m.viewportReady {
		m.detailViewport.SetContent(m.detailContent())
	}
}

// detailContent renders the pinned process plus full per-core breakdown.
func (m Model) detailContent() string {
	width := m.contentWidth()

	var sections []string

	if proc, ok := m.pinnedProcess(); ok {
		var lines []string
		lines = append(lines, TitleStyle.Render(proc.Name))
		lines = append(lines, "")
		lines = append(lines, LabelStyle.Render(fmt.Sprintf("  PID:    %d", proc.PID)))

		cpuText := MetricStyle(proc.CPUPercent).Render(fmt.Sprintf("%.1f%%", proc.CPUPercent))
		lines = append(lines, fmt.Sprintf("  %s %s", LabelStyle.Render("CPU:   "), cpuText))

		memText := fmt.Sprintf("%s (%.1f%%)", formatBytes(proc.MemoryBytes), proc.MemoryPercent)
		lines = append(lines, fmt.Sprintf("  %s %s", LabelStyle.Render("Memory:"), ValueStyle.Render(memText)))

		sections = append(sections, SectionStyle.Width(width).Render(strings.Join(lines, "\n")))
	} else {
		msg := MutedStyle.Render(fmt.Sprintf("process %d is gone", m.detailPID))
		sections = append(sections, SectionStyle.Width(width).Render(msg))
	}

	// Full core list, not capped like the dashboard.
	cores := m.store.Cores()
	if len(cores) > 0 {
		var lines []string
		lines = append(lines, TitleStyle.Render("All cores"))

		barWidth := width - 30
		if barWidth < 10 {
			barWidth = 10
		}

		for _, core := range cores {
			bar := ProgressBar(barWidth, core.Current)
			pct := MetricStyle(core.Current).Render(fmt.Sprintf("%5.1f%%", core.Current))
			spark := RenderSparkline(core.History, 12)
			lines = append(lines, fmt.Sprintf("  %-5s %s %s %s",
				LabelStyle.Render(core.Label), bar, pct, spark))
		}

		sections = append(sections, SectionStyle.Width(width).Render(strings.Join(lines, "\n")))
	}

	return strings.Join(sections, "\n")
}

// pinnedProcess finds the detail-pinned process in the current snapshot.
func (m Model) pinnedProcess() (system.Process, bool) {
	for _, proc := range m.store.Processes(m.sortOrder) {
		if proc.PID == m.detailPID {
			return proc, true
		}
	}
	return system.Process{}, false
}

// renderDetailFooter renders navigation hints for the detail view.
func (m Model) renderDetailFooter() string {
	hints := []string{"esc back", "↑↓ scroll", "q quit"}
	return FooterStyle.Render(strings.Join(hints, " | "))
}
