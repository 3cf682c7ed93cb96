package system

import (
	"strconv"
	"sync"
	"time"
)

// coreSeries tracks one logical core: its label, latest usage, and bounded
// usage history. Mutated only under the Store's write lock.
type coreSeries struct {
	label   string
	history *ringBuffer
}

// CoreStat is the read-only view of one core series handed to renderers.
type CoreStat struct {
	Label   string
	Current float64
	History []float64 // oldest first, length <= history capacity
}

// Store is the system of record shared between the Refresher (sole writer)
// and the TUI loop (sole reader). All fields are replaced as a unit per
// Apply call; accessors return copies so callers never hold references into
// guarded state.
type Store struct {
	mu sync.RWMutex

	host       HostInfo
	memTotal   uint64
	memUsed    uint64
	cores      []coreSeries
	memHistory *ringBuffer
	procs      []Process
	lastUpdate time.Time
}

// NewStore creates a Store initialized from the first snapshot. The core
// count is frozen here for the process lifetime.
func NewStore(initial *Snapshot, historySize int) *Store {
	s := &Store{
		cores:      make([]coreSeries, len(initial.PerCoreCPU)),
		memHistory: newRingBuffer(historySize),
	}
	for i := range s.cores {
		s.cores[i] = coreSeries{
			label:   coreLabel(i),
			history: newRingBuffer(historySize),
		}
	}
	s.Apply(initial)
	return s
}

// coreLabel names a core series by index, matching /proc/stat conventions.
func coreLabel(i int) string {
	return "cpu" + strconv.Itoa(i)
}

// Apply replaces the Store's state with a new snapshot and appends one value
// to each history series. This is the only mutating method; it requires
// exclusive access and excludes all readers while active.
//
// The core series count was frozen at construction: extra per-core values in
// the snapshot are dropped, missing ones leave that series stale.
func (s *Store) Apply(snap *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.host = snap.Host
	s.memTotal = snap.MemoryTotalBytes
	s.memUsed = snap.MemoryUsedBytes

	for i := range s.cores {
		if i >= len(snap.PerCoreCPU) {
			break
		}
		s.cores[i].history.push(snap.PerCoreCPU[i])
	}

	s.memHistory.push(snap.MemoryPercent())

	s.procs = make([]Process, len(snap.Processes))
	copy(s.procs, snap.Processes)

	s.lastUpdate = time.Now()
}

// Processes returns a freshly sorted copy of the current process table.
// An empty table yields an empty (nil) slice, never an error.
func (s *Store) Processes(order SortOrder) []Process {
	s.mu.RLock()
	procs := make([]Process, len(s.procs))
	copy(procs, s.procs)
	s.mu.RUnlock()

	sortProcesses(procs, order)
	return procs
}

// ProcessCount returns the number of processes in the current snapshot.
func (s *Store) ProcessCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.procs)
}

// Cores returns a read-only view of every core series, oldest history first.
func (s *Store) Cores() []CoreStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]CoreStat, len(s.cores))
	for i, c := range s.cores {
		stats[i] = CoreStat{
			Label:   c.label,
			Current: c.history.last(),
			History: c.history.values(),
		}
	}
	return stats
}

// MemoryHistory returns the memory used-percent series, oldest first.
func (s *Store) MemoryHistory() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memHistory.values()
}

// Host returns the most recently sampled host identification.
func (s *Store) Host() HostInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.host
}

// TotalMemory returns total physical memory in bytes.
func (s *Store) TotalMemory() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memTotal
}

// UsedMemory returns used physical memory in bytes.
func (s *Store) UsedMemory() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.memUsed
}

// MemoryPercent returns current memory usage as a percentage of total.
func (s *Store) MemoryPercent() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.memTotal == 0 {
		return 0
	}
	return float64(s.memUsed) / float64(s.memTotal) * 100
}

// LastUpdate returns when the last snapshot was applied. The TUI header
// derives its staleness indicator from this.
func (s *Store) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}
