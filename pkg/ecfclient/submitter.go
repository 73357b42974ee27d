package ecfclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rezonia/alanube-ecf/internal/alanube"
	"github.com/rezonia/alanube-ecf/internal/ecf"
	"github.com/rezonia/alanube-ecf/internal/journal"
)

// DefaultConcurrency bounds parallel gateway calls in batch operations
const DefaultConcurrency = 4

// Sender is the part of the gateway client the submitter needs
type Sender interface {
	Send(ctx context.Context, doc ecf.Document) (*alanube.DocumentResponse, error)
	Status(ctx context.Context, ep alanube.Endpoint, id, companyID string) (*alanube.DocumentResponse, error)
}

// Submitter sends documents and records every submission in a journal
type Submitter struct {
	sender      Sender
	store       journal.Store
	logger      *slog.Logger
	concurrency int
	now         func() time.Time
}

// SubmitterOption configures a Submitter
type SubmitterOption func(*Submitter)

// WithJournal sets the journal store; the default keeps entries in memory
func WithJournal(store journal.Store) SubmitterOption {
	return func(s *Submitter) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *slog.Logger) SubmitterOption {
	return func(s *Submitter) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConcurrency bounds parallel gateway calls in batch operations
func WithConcurrency(n int) SubmitterOption {
	return func(s *Submitter) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithClock sets the time source of journal timestamps
func WithClock(now func() time.Time) SubmitterOption {
	return func(s *Submitter) {
		if now != nil {
			s.now = now
		}
	}
}

// NewSubmitter creates a Submitter around a gateway client
func NewSubmitter(sender Sender, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		sender:      sender,
		store:       journal.NewMemoryStore(),
		logger:      slog.Default(),
		concurrency: DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Journal returns the store submissions are recorded in
func (s *Submitter) Journal() journal.Store {
	return s.store
}

// Submit sends doc and journals the gateway's answer. When only the journal
// write fails, the response is returned together with the error.
func (s *Submitter) Submit(ctx context.Context, doc ecf.Document) (*alanube.DocumentResponse, error) {
	resp, err := s.sender.Send(ctx, doc)
	if err != nil {
		return nil, err
	}

	entry := s.entryFor(doc, resp)
	if err := s.store.Save(ctx, entry); err != nil {
		return resp, fmt.Errorf("document %s submitted but not journaled: %w", entry.Key, err)
	}
	s.logger.DebugContext(ctx, "journaled submission", "key", entry.Key, "id", entry.ID)
	return resp, nil
}

// Result is the outcome of one document of a batch
type Result struct {
	Index    int
	Document ecf.Document
	Response *alanube.DocumentResponse
	Err      error
}

// SubmitBatch submits docs concurrently. One document failing does not stop
// the others; the returned error joins every failure.
func (s *Submitter) SubmitBatch(ctx context.Context, docs []ecf.Document) ([]Result, error) {
	results := make([]Result, len(docs))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, doc := range docs {
		results[i] = Result{Index: i, Document: doc}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].Response, results[i].Err = s.Submit(ctx, doc)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("document %d: %w", r.Index, r.Err))
		}
	}
	s.logger.InfoContext(ctx, "batch submitted", "documents", len(docs), "failed", len(errs))
	return results, errors.Join(errs...)
}

// Refresh asks the gateway for the current status of a journaled document
// and records it. Finished entries are returned without a gateway call.
func (s *Submitter) Refresh(ctx context.Context, key string) (journal.Entry, error) {
	entry, err := s.store.Get(ctx, key)
	if err != nil {
		return journal.Entry{}, err
	}
	if entry.Done() {
		return entry, nil
	}

	ep := alanube.EndpointCancellations
	if entry.Kind != string(ecf.KindCancellation) {
		if ep, err = alanube.EndpointFor(entry.Type); err != nil {
			return entry, err
		}
	}

	resp, err := s.sender.Status(ctx, ep, entry.ID, entry.CompanyID)
	if err != nil {
		return entry, fmt.Errorf("failed to refresh %s: %w", key, err)
	}

	entry.Status = resp.Status
	entry.LegalStatus = resp.LegalStatus
	entry.Messages = messages(resp)
	entry.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, entry); err != nil {
		return entry, fmt.Errorf("failed to journal %s: %w", key, err)
	}

	s.logger.InfoContext(ctx, "status refreshed",
		"key", key,
		"status", entry.Status,
		"legal_status", entry.LegalStatus)
	return entry, nil
}

// RefreshPending refreshes every journaled entry the gateway has not
// finished with
func (s *Submitter) RefreshPending(ctx context.Context) ([]journal.Entry, error) {
	entries, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	var pending []journal.Entry
	for _, e := range entries {
		if !e.Done() {
			pending = append(pending, e)
		}
	}

	refreshed := make([]journal.Entry, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, e := range pending {
		g.Go(func() error {
			updated, err := s.Refresh(gctx, e.Key)
			if err != nil {
				return err
			}
			refreshed[i] = updated
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return refreshed, nil
}

func (s *Submitter) entryFor(doc ecf.Document, resp *alanube.DocumentResponse) journal.Entry {
	now := s.now().UTC()
	entry := journal.Entry{
		Key:         doc.Number(),
		Kind:        string(doc.Kind()),
		Type:        doc.Type(),
		ID:          resp.ID,
		Status:      resp.Status,
		LegalStatus: resp.LegalStatus,
		Messages:    messages(resp),
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if entry.Key == "" {
		entry.Key = resp.Number()
	}
	if doc.Kind() == ecf.KindCancellation {
		entry.Key = journal.CancellationKey(resp.ID)
	}
	if c, ok := doc.(interface{ CompanyID() string }); ok {
		entry.CompanyID = c.CompanyID()
	}
	return entry
}

func messages(resp *alanube.DocumentResponse) []string {
	if resp.GovernmentResponse == nil {
		return nil
	}
	out := make([]string, 0, len(resp.GovernmentResponse.Value))
	for _, v := range resp.GovernmentResponse.Value {
		out = append(out, v.Value)
	}
	return out
}
