// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/application/adapter"
	"github.com/bytebank/backend/internal/domain/entity"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/domain/ledger"
)

// fakeLedgerStore is an in-memory implementation of both the transaction
// and ledger repositories, applying deltas the same way the database
// implementation does.
type fakeLedgerStore struct {
	transactions map[uuid.UUID]*entity.Transaction
	balances     map[uuid.UUID]decimal.Decimal
	summaries    map[uuid.UUID]*entity.InvestmentSummary
}

func newFakeLedgerStore() *fakeLedgerStore {
	return &fakeLedgerStore{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		balances:     make(map[uuid.UUID]decimal.Decimal),
		summaries:    make(map[uuid.UUID]*entity.InvestmentSummary),
	}
}

func (s *fakeLedgerStore) applyDelta(userID uuid.UUID, delta ledger.Delta) {
	s.balances[userID] = s.balances[userID].Add(delta.Balance)
	if delta.HasCategory() {
		summary, ok := s.summaries[userID]
		if !ok {
			summary = entity.EmptyInvestmentSummary()
			s.summaries[userID] = summary
		}
		summary.ApplyDelta(delta.Category, delta.CategoryDelta)
	}
}

func (s *fakeLedgerStore) CreateWithDelta(_ context.Context, transaction *entity.Transaction, delta ledger.Delta) error {
	s.transactions[transaction.ID] = transaction
	s.applyDelta(transaction.UserID, delta)
	return nil
}

func (s *fakeLedgerStore) UpdateWithDelta(_ context.Context, transaction *entity.Transaction, delta ledger.Delta) error {
	s.transactions[transaction.ID] = transaction
	s.applyDelta(transaction.UserID, delta)
	return nil
}

func (s *fakeLedgerStore) DeleteWithDelta(_ context.Context, transaction *entity.Transaction, delta ledger.Delta) error {
	delete(s.transactions, transaction.ID)
	s.applyDelta(transaction.UserID, delta)
	return nil
}

func (s *fakeLedgerStore) GetBalance(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return s.balances[userID], nil
}

func (s *fakeLedgerStore) GetInvestmentSummary(_ context.Context, userID uuid.UUID) (*entity.InvestmentSummary, error) {
	if summary, ok := s.summaries[userID]; ok {
		return summary, nil
	}
	return entity.EmptyInvestmentSummary(), nil
}

func (s *fakeLedgerStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	if t, ok := s.transactions[id]; ok {
		return t, nil
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (s *fakeLedgerStore) FindByFilter(_ context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	var matched []*entity.Transaction
	for _, t := range s.transactions {
		if t.UserID != filter.UserID {
			continue
		}
		if len(filter.Types) > 0 && !containsType(filter.Types, t.Type) {
			continue
		}
		if filter.Date != nil && !sameDay(t.Date, *filter.Date) {
			continue
		}
		if filter.AmountSearch != "" && !strings.Contains(t.Amount.StringFixed(2), filter.AmountSearch) {
			continue
		}
		matched = append(matched, t)
	}

	total := int64(len(matched))
	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))

	start := (pagination.Page - 1) * pagination.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pagination.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return &entity.TransactionListResult{
		Transactions: matched[start:end],
		Total:        total,
		Page:         pagination.Page,
		Limit:        pagination.Limit,
		TotalPages:   totalPages,
	}, nil
}

func containsType(types []entity.TransactionType, t entity.TransactionType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// fakeFileStorage records deletes so tests can assert blob cleanup.
type fakeFileStorage struct {
	deleted []string
}

func (s *fakeFileStorage) Upload(_ context.Context, path, _ string, _ io.Reader) (*adapter.StoredFile, error) {
	return &adapter.StoredFile{Path: path, URL: "https://storage.example/" + path}, nil
}

func (s *fakeFileStorage) Delete(_ context.Context, path string) error {
	s.deleted = append(s.deleted, path)
	return nil
}
