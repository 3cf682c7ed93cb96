// Package tui renders the live system dashboard.
//
// The Bubble Tea model here is a pure reader: all system state lives in
// the store owned by internal/system, and the refresher goroutine updates
// it behind the model's back. A frame tick every 500ms re-renders the
// current state and clamps the cursor against whatever the refresher left
// in the store. Selection and sort order are model-local and never need
// locking.
package tui
