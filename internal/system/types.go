package system

// Process is one row of the process table, rebuilt from scratch on every
// refresh. A pid may vanish or be reused between snapshots; no identity
// continuity is guaranteed beyond pid equality within one snapshot.
type Process struct {
	PID           int32
	Name          string
	CPUPercent    float64
	MemoryBytes   uint64
	MemoryPercent float64
}

// HostInfo contains general host identification, refreshed alongside
// samples but effectively static.
type HostInfo struct {
	Hostname      string
	Kernel        string
	OS            string
	UptimeSeconds uint64
}

// Snapshot is the raw result of one Sampler call: everything the Store
// needs for a single refresh cycle.
type Snapshot struct {
	// PerCoreCPU holds usage percentages in a stable core order.
	// The count is expected to match across calls; see Store.Apply.
	PerCoreCPU []float64

	MemoryTotalBytes uint64
	MemoryUsedBytes  uint64

	Host HostInfo

	// Processes is unordered; the Store sorts on demand.
	Processes []Process
}

// MemoryPercent returns used memory as a percentage of total.
// Returns 0 when total is unknown to avoid dividing by zero.
func (s *Snapshot) MemoryPercent() float64 {
	if s.MemoryTotalBytes == 0 {
		return 0
	}
	return float64(s.MemoryUsedBytes) / float64(s.MemoryTotalBytes) * 100
}
