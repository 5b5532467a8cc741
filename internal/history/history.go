// Package history keeps committed input lines and a recall cursor over them.
package history

// notNavigating marks the cursor as detached from the entries.
const notNavigating = -1

// History is an append-only list of committed lines with a recall cursor.
// The zero value is not usable; call New.
type History struct {
	entries []string
	cursor  int
}

// New returns an empty History.
func New() *History {
	return &History{cursor: notNavigating}
}

// Commit appends line and stops navigation.
func (h *History) Commit(line string) {
	h.entries = append(h.entries, line)
	h.cursor = notNavigating
}

// Previous moves the cursor one entry back and returns that entry.
// Starting from outside navigation it selects the newest entry; at the oldest
// entry it stays put. It reports false only when the history is empty.
func (h *History) Previous() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == notNavigating:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next moves the cursor one entry forward and returns that entry. Stepping
// past the newest entry ends navigation and returns the empty input.
// It reports false when no navigation is in progress.
func (h *History) Next() (string, bool) {
	if h.cursor == notNavigating {
		return "", false
	}
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor], true
	}
	h.cursor = notNavigating
	return "", true
}

// Navigating reports whether the cursor points at an entry.
func (h *History) Navigating() bool {
	return h.cursor != notNavigating
}

// Len returns the number of committed entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
