package docview

import "encoding/json"

// Record is one manifest entry: the plain-text distillation of a page that
// the search index is built from. The manifest is produced by the corpus
// build step and is immutable for the session.
type Record struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ParseManifest decodes a manifest payload into its ordered records.
// Records without an identifier are unusable for lookup and are dropped.
// A malformed payload returns EPARSE.
func ParseManifest(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, Errorf(EPARSE, "malformed search manifest: %v", err)
	}

	out := records[:0]
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// NewLookup builds the id→record table used to resolve search hits.
func NewLookup(records []Record) map[string]Record {
	lookup := make(map[string]Record, len(records))
	for _, r := range records {
		lookup[r.ID] = r
	}
	return lookup
}
