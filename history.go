package docview

// HistoryEntry is the state the navigation controller records with the
// host history once per forward navigation. Session identifies the engine
// instance that recorded the entry; entries from a dead instance must not
// be replayed as stack positions.
type HistoryEntry struct {
	Session  string `json:"session"`
	Position int    `json:"position"`
	PageID   string `json:"pageId"`
}

// PopEvent is delivered when the host history moves back or forward.
// Entry is nil when the reached state was not recorded by the engine; the
// fragment then carries whatever identifier the location holds.
type PopEvent struct {
	Entry    *HistoryEntry
	Fragment string
}

// History bridges the engine to the host's back/forward mechanism. The
// host history is the single source of truth for stepping: the controller
// never moves its own position directly in response to a button, it asks
// the History to step and reacts to the resulting PopEvent.
type History interface {
	// Push records an entry and sets the location fragment. Any forward
	// entries beyond the current position are discarded, mirroring the
	// branching rule of the engine's own stack.
	Push(entry HistoryEntry, fragment string)

	// Back steps to the previous entry, delivering a PopEvent.
	// No-op at the oldest entry.
	Back()

	// Forward steps to the next entry, delivering a PopEvent.
	// No-op at the newest entry.
	Forward()

	// Fragment returns the identifier currently encoded in the location.
	Fragment() string

	// SetPopHandler registers the single handler for PopEvents.
	SetPopHandler(fn func(PopEvent))
}
