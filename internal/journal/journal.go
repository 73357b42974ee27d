// Package journal records submitted documents and their last known
// gateway status.
package journal

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rezonia/alanube-ecf/internal/model"
)

// ErrNotFound is returned when no entry exists for a key
var ErrNotFound = errors.New("journal: entry not found")

// Entry is one submitted document
type Entry struct {
	// Key is the e-NCF, or "cancellation:<id>" for cancellations
	Key         string             `json:"key"`
	Kind        string             `json:"kind"`
	Type        model.DocumentType `json:"type,omitempty"`
	ID          string             `json:"id"`
	CompanyID   string             `json:"companyId,omitempty"`
	Status      model.Status       `json:"status"`
	LegalStatus model.LegalStatus  `json:"legalStatus,omitempty"`
	Messages    []string           `json:"messages,omitempty"`
	SubmittedAt time.Time          `json:"submittedAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// CancellationKey is the key of a cancellation entry
func CancellationKey(id string) string {
	return "cancellation:" + id
}

// Done reports whether the gateway finished with the document
func (e Entry) Done() bool {
	return e.Status.Terminal()
}

// Store persists journal entries. Save replaces the entry with the same key.
type Store interface {
	Save(ctx context.Context, e Entry) error
	Get(ctx context.Context, key string) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

// sortEntries orders by submission time, then key
func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].SubmittedAt.Equal(entries[j].SubmittedAt) {
			return entries[i].SubmittedAt.Before(entries[j].SubmittedAt)
		}
		return entries[i].Key < entries[j].Key
	})
}

func validKey(e Entry) error {
	if e.Key == "" {
		return model.Invalid(nil, "required", "journal entry key is required")
	}
	return nil
}
