// Package system owns the authoritative host state shown by the dashboard.
//
// It has exactly two concurrent actors:
//
//   - Refresher: a background goroutine that calls the Sampler on a fixed
//     interval and writes the result into the Store (sole writer).
//   - The TUI loop: reads the Store's accessors once per frame (sole reader).
//
// The Store is guarded by a sync.RWMutex; Apply takes the write lock and
// replaces all fields as a unit, so a reader never sees a half-applied
// snapshot. Reads in separate calls may straddle a refresh - the rendering
// layer tolerates that skew between panels.
//
// # Key Components
//
//	Sampler     - One-shot capability returning a full Snapshot (gopsutil)
//	Store       - Lock-guarded system of record: current values + history
//	ringBuffer  - Fixed-capacity FIFO series for sparkline history
//	Refresher   - Timed write loop feeding the Store
//	Selection   - Cursor into the sorted process view, clamped each frame
//	Terminator  - Narrow kill(pid) capability, fire-and-forget
//
// Per-core CPU series are created once at construction and their count is
// frozen for the process lifetime; snapshots with a different core count
// have extra cores ignored and missing cores left stale.
package system
