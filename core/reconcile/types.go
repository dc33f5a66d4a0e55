package reconcile

// Item is a row that can take part in a snapshot comparison.
type Item interface {
	// Key identifies the entity across snapshots.
	Key() string
	// Fingerprint encodes every compared field. Two rows with equal
	// fingerprints are the same row.
	Fingerprint() string
}

// ChangeKind classifies a row of the current snapshot.
type ChangeKind string

const (
	// ChangeAdded marks a row whose key is absent from the previous snapshot.
	ChangeAdded ChangeKind = "added"
	// ChangeModified marks a row whose key exists but whose fields differ.
	ChangeModified ChangeKind = "modified"
)

// Plan holds the rows of the current snapshot that are absent from the
// previous one, together with aggregate counts.
type Plan[T Item] struct {
	// Items are the changed rows in the order they appear in the current snapshot.
	Items []T `json:"items"`

	// Kinds maps each changed key to its classification. Snapshots are
	// expected to hold one row per key (the roster loader enforces this);
	// if a key repeats with different fields, the last changed row's kind wins.
	Kinds map[string]ChangeKind `json:"kinds"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a snapshot comparison.
type PlanSummary struct {
	// Current is the number of distinct rows in the current snapshot.
	Current int `json:"current"`

	// Previous is the number of distinct rows in the previous snapshot.
	Previous int `json:"previous"`

	// Added counts changed rows whose key is new.
	Added int `json:"added"`

	// Modified counts changed rows whose key already existed.
	Modified int `json:"modified"`

	// Unchanged counts current rows found verbatim in the previous snapshot.
	Unchanged int `json:"unchanged"`
}

// Changed returns the total number of changed rows.
func (s PlanSummary) Changed() int {
	return s.Added + s.Modified
}
