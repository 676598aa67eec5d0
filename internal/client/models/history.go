package models

// HistoryEntry is a saved generation intent. Two entries are duplicates when
// both fields match exactly.
type HistoryEntry struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt"`
}

// Same reports whether e and other hold the same (prompt, negativePrompt) pair.
func (e HistoryEntry) Same(other HistoryEntry) bool {
	return e.Prompt == other.Prompt && e.NegativePrompt == other.NegativePrompt
}
