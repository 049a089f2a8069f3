package model

import "slices"

const defaultHistoryWindow = 5

// History keeps the hashes of recent generations to spot boards stuck in a short cycle.
// A still life is already caught by Engine.IsStable, History also catches oscillators.
type History struct {
	window int
	hashes []string
}

// NewHistory keeps up to window hashes. Non-positive values use the default of 5.
func NewHistory(window int) *History {
	if window <= 0 {
		window = defaultHistoryWindow
	}
	return &History{window: window}
}

// Record appends a generation hash, dropping the oldest beyond the window
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.window {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether hash matches one of the recorded generations
func (h *History) IsStagnant(hash string) bool {
	return slices.Contains(h.hashes, hash)
}

// Len returns the number of recorded hashes
func (h *History) Len() int {
	return len(h.hashes)
}

// Clear forgets all recorded hashes
func (h *History) Clear() {
	h.hashes = nil
}
