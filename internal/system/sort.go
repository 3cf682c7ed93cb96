package system

import (
	"math"
	"sort"
	"strings"
)

// SortOrder defines how the process table is ordered.
type SortOrder int

const (
	SortByCPU SortOrder = iota
	SortByMemory
	SortByPID
	SortByName
)

// String returns a human-readable label for the sort order.
func (s SortOrder) String() string {
	switch s {
	case SortByCPU:
		return "CPU"
	case SortByMemory:
		return "memory"
	case SortByPID:
		return "PID"
	case SortByName:
		return "name"
	default:
		return "CPU"
	}
}

// ParseSortOrder converts a config/flag value to a SortOrder.
// Unrecognized values fall back to CPU, matching the default view.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory", "mem", "ram":
		return SortByMemory
	case "pid":
		return SortByPID
	case "name":
		return SortByName
	default:
		return SortByCPU
	}
}

// sortProcesses orders procs in place according to order.
//
// CPU sorts descending and must not panic on NaN usage values: NaN compares
// as equal so the sort stays well-defined. Memory sorts descending by exact
// byte count, PID ascending, name ascending case-insensitively. Ties keep no
// guaranteed relative order.
func sortProcesses(procs []Process, order SortOrder) {
	switch order {
	case SortByCPU:
		sort.Slice(procs, func(i, j int) bool {
			a, b := procs[i].CPUPercent, procs[j].CPUPercent
			if math.IsNaN(a) || math.IsNaN(b) {
				return false
			}
			return a > b
		})

	case SortByMemory:
		sort.Slice(procs, func(i, j int) bool {
			return procs[i].MemoryBytes > procs[j].MemoryBytes
		})

	case SortByPID:
		sort.Slice(procs, func(i, j int) bool {
			return procs[i].PID < procs[j].PID
		})

	case SortByName:
		sort.Slice(procs, func(i, j int) bool {
			return strings.ToLower(procs[i].Name) < strings.ToLower(procs[j].Name)
		})
	}
}
