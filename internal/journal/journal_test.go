package journal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/rezonia/alanube-ecf/internal/journal"
	"github.com/rezonia/alanube-ecf/internal/model"
)

// StoreSuite runs the Store contract against any implementation
type StoreSuite struct {
	suite.Suite
	newStore func() journal.Store
	store    journal.Store
	ctx      context.Context
}

func (s *StoreSuite) SetupTest() {
	s.store = s.newStore()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func() journal.Store { return journal.NewMemoryStore() }})
}

func entry(key string, submitted time.Time) journal.Entry {
	return journal.Entry{
		Key:         key,
		Kind:        "invoice",
		Type:        model.TypeFiscalInvoice,
		ID:          "doc-" + key,
		Status:      model.StatusRegistered,
		LegalStatus: model.LegalInProcess,
		SubmittedAt: submitted.UTC(),
		UpdatedAt:   submitted.UTC(),
	}
}

func (s *StoreSuite) TestSaveAndGet() {
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	s.Run("returns the saved entry", func() {
		e := entry("E310000000001", now)
		e.Messages = []string{"recibido"}
		s.Require().NoError(s.store.Save(s.ctx, e))

		got, err := s.store.Get(s.ctx, "E310000000001")
		s.Require().NoError(err)
		s.Equal(e.ID, got.ID)
		s.Equal(model.TypeFiscalInvoice, got.Type)
		s.Equal([]string{"recibido"}, got.Messages)
		s.True(e.SubmittedAt.Equal(got.SubmittedAt))
	})

	s.Run("replaces an entry with the same key", func() {
		e := entry("E310000000002", now)
		s.Require().NoError(s.store.Save(s.ctx, e))

		e.Status = model.StatusFinished
		e.LegalStatus = model.LegalAccepted
		s.Require().NoError(s.store.Save(s.ctx, e))

		got, err := s.store.Get(s.ctx, "E310000000002")
		s.Require().NoError(err)
		s.True(got.Done())
		s.True(got.LegalStatus.Accepted())
	})

	s.Run("returns ErrNotFound for unknown keys", func() {
		_, err := s.store.Get(s.ctx, "E319999999999")
		s.Require().ErrorIs(err, journal.ErrNotFound)
	})

	s.Run("rejects entries without key", func() {
		s.Require().Error(s.store.Save(s.ctx, journal.Entry{ID: "x"}))
	})
}

func (s *StoreSuite) TestList() {
	base := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	empty, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(empty)

	s.Require().NoError(s.store.Save(s.ctx, entry("E320000000002", base.Add(time.Minute))))
	s.Require().NoError(s.store.Save(s.ctx, entry(journal.CancellationKey("c1"), base)))
	s.Require().NoError(s.store.Save(s.ctx, entry("E320000000001", base.Add(time.Minute))))

	list, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("cancellation:c1", list[0].Key)
	s.Equal("E320000000001", list[1].Key)
	s.Equal("E320000000002", list[2].Key)
}
