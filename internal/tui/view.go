package tui

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/systop/internal/system"
)

// maxCoreGauges is the number of per-core gauges shown in the list view.
// Machines with more cores get the remainder summarized on one line; the
// detail view is not core-bound.
const maxCoreGauges = 4

// renderDashboard renders the complete list view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(m.renderCPUSection())
	b.WriteString("\n")

	b.WriteString(m.renderMemorySection())
	b.WriteString("\n")

	b.WriteString(m.renderProcessTable())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	if m.debug {
		b.WriteString("\n")
		b.WriteString(m.renderDebugLine())
	}

	return b.String()
}

// renderHeader renders the title bar with host identity and staleness.
func (m Model) renderHeader() string {
	host := m.store.Host()

	title := TitleStyle.Render("systop")

	var updateText string
	switch secs := m.SecondsSinceUpdate(); secs {
	case 0:
		updateText = "just now"
	case 1:
		updateText = "1s ago"
	default:
		updateText = fmt.Sprintf("%ds ago", secs)
	}

	stats := LabelStyle.Render(fmt.Sprintf(" | %s | up %s | updated %s",
		host.Hostname, formatUptime(host.UptimeSeconds), updateText))

	return HeaderStyle.Render(title + stats)
}

// renderCPUSection renders per-core gauges with a shared history sparkline.
func (m Model) renderCPUSection() string {
	cores := m.store.Cores()
	width := m.contentWidth()

	var lines []string
	lines = append(lines, TitleStyle.Render("CPU"))

	if len(cores) == 0 {
		lines = append(lines, MutedStyle.Render("  waiting for samples..."))
		return SectionStyle.Width(width).Render(strings.Join(lines, "\n"))
	}

	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	sparkWidth := 12

	shown := len(cores)
	if shown > maxCoreGauges {
		shown = maxCoreGauges
	}

	for _, core := range cores[:shown] {
		bar := ProgressBar(barWidth, core.Current)
		pct := MetricStyle(core.Current).Render(fmt.Sprintf("%5.1f%%", core.Current))
		spark := RenderSparkline(core.History, sparkWidth)
		lines = append(lines, fmt.Sprintf("  %-5s %s %s %s",
			LabelStyle.Render(core.Label), bar, pct, spark))
	}

	if len(cores) > shown {
		rest := cores[shown:]
		var sum float64
		for _, core := range rest {
			sum += core.Current
		}
		avg := sum / float64(len(rest))
		lines = append(lines, MutedStyle.Render(
			fmt.Sprintf("  +%d more cores, avg %.1f%%", len(rest), avg)))
	}

	return SectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderMemorySection renders the memory gauge with usage breakdown and history.
func (m Model) renderMemorySection() string {
	width := m.contentWidth()
	percent := m.store.MemoryPercent()

	var lines []string
	lines = append(lines, TitleStyle.Render("Memory"))

	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}

	bar := ProgressBar(barWidth, percent)
	pct := MetricStyle(percent).Render(fmt.Sprintf("%5.1f%%", percent))
	spark := RenderCleanSparkline(m.store.MemoryHistory(), 12, ColorGraph)
	lines = append(lines, fmt.Sprintf("  %-5s %s %s %s", LabelStyle.Render("mem"), bar, pct, spark))

	usage := fmt.Sprintf("  %s / %s",
		formatBytes(m.store.UsedMemory()), formatBytes(m.store.TotalMemory()))
	lines = append(lines, LabelStyle.Render(usage))

	return SectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderProcessTable renders the sorted process table with the cursor row
// highlighted and the active sort column marked.
func (m Model) renderProcessTable() string {
	width := m.contentWidth()
	procs := m.store.Processes(m.sortOrder)

	var lines []string
	title := TitleStyle.Render("Processes") +
		MutedStyle.Render(fmt.Sprintf(" (%d, sorted by %s)", len(procs), m.sortOrder))
	lines = append(lines, title)

	if len(procs) == 0 {
		lines = append(lines, MutedStyle.Render("  no processes"))
		return SectionStyle.Width(width).Render(strings.Join(lines, "\n"))
	}

	nameWidth := width - 36
	if nameWidth < 12 {
		nameWidth = 12
	}

	lines = append(lines, m.renderTableHeader(nameWidth))

	cursor := m.selection.Cursor()
	if cursor >= len(procs) {
		cursor = len(procs) - 1
	}

	visible := m.visibleRows()
	start, end := tableWindow(len(procs), visible, cursor)

	for i := start; i < end; i++ {
		p := procs[i]
		row := fmt.Sprintf("  %7d  %-*s %6.1f  %9s  %5.1f",
			p.PID, nameWidth, truncate(p.Name, nameWidth), p.CPUPercent,
			formatBytes(p.MemoryBytes), p.MemoryPercent)

		if i == cursor {
			lines = append(lines, SelectedRowStyle.Render(row))
		} else {
			lines = append(lines, ValueStyle.Render(row))
		}
	}

	if end < len(procs) {
		lines = append(lines, MutedStyle.Render(fmt.Sprintf("  ... %d more", len(procs)-end)))
	}

	return SectionStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// renderTableHeader renders column titles, highlighting the sort column.
func (m Model) renderTableHeader(nameWidth int) string {
	col := func(label string, active bool) string {
		if active {
			return SortColumnStyle.Render(label)
		}
		return TableHeaderStyle.Render(label)
	}

	return fmt.Sprintf("  %s  %s %s  %s  %s",
		col(fmt.Sprintf("%7s", "PID"), m.sortOrder == system.SortByPID),
		col(fmt.Sprintf("%-*s", nameWidth, "NAME"), m.sortOrder == system.SortByName),
		col(fmt.Sprintf("%6s", "CPU%"), m.sortOrder == system.SortByCPU),
		col(fmt.Sprintf("%9s", "MEM"), m.sortOrder == system.SortByMemory),
		col(fmt.Sprintf("%5s", "MEM%"), m.sortOrder == system.SortByMemory))
}

// renderFooter renders the keyboard hints.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"↑↓/jk select",
		"c/m/p/n sort",
		"K kill",
		"enter detail",
		"? help",
	}
	return FooterStyle.Render(strings.Join(hints, " | "))
}

// renderDebugLine renders internals useful when chasing refresh problems.
func (m Model) renderDebugLine() string {
	return MutedStyle.Render(fmt.Sprintf(
		"interval=%s cursor=%d procs=%d sort=%s size=%dx%d",
		m.interval, m.selection.Cursor(), m.store.ProcessCount(),
		m.sortOrder, m.width, m.height))
}

// contentWidth is the inner width available to sections.
func (m Model) contentWidth() int {
	if m.width == 0 {
		return 80
	}
	w := m.width - 2
	if w < 40 {
		w = 40
	}
	return w
}

// visibleRows is how many process rows fit under the metric sections.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return 15
	}

	// Header, CPU and memory sections, table chrome, footer.
	overhead := 16
	if m.debug {
		overhead++
	}

	rows := m.height - overhead
	if rows < 3 {
		rows = 3
	}
	return rows
}

// tableWindow computes the [start, end) slice of rows to display so the
// cursor stays visible as it moves through a long table.
func tableWindow(total, visible, cursor int) (int, int) {
	if total <= visible {
		return 0, total
	}

	start := cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > total {
		end = total
		start = end - visible
	}
	return start, end
}

// truncate shortens a string to maxLen, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 3 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// formatBytes formats a byte count as a human-readable string.
func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// formatUptime renders seconds as a compact d/h/m string.
func formatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}
