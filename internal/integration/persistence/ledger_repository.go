package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bytebank/backend/internal/application/adapter"
	"github.com/bytebank/backend/internal/domain/entity"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/domain/ledger"
	"github.com/bytebank/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
// Every mutation runs the transaction row write and the aggregate updates
// inside one database transaction.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// CreateWithDelta inserts the transaction and applies delta atomically.
func (r *ledgerRepository) CreateWithDelta(ctx context.Context, transaction *entity.Transaction, delta ledger.Delta) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}
		return applyDelta(tx, transaction.UserID, delta)
	})
}

// UpdateWithDelta saves the transaction and applies delta atomically.
func (r *ledgerRepository) UpdateWithDelta(ctx context.Context, transaction *entity.Transaction, delta ledger.Delta) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		transactionModel := model.TransactionFromEntity(transaction)
		result := tx.Model(&model.TransactionModel{}).
			Where("id = ?", transaction.ID).
			Updates(map[string]interface{}{
				"amount":     transactionModel.Amount,
				"date":       transactionModel.Date,
				"updated_at": transactionModel.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return applyDelta(tx, transaction.UserID, delta)
	})
}

// DeleteWithDelta removes the transaction and applies delta atomically.
func (r *ledgerRepository) DeleteWithDelta(ctx context.Context, transaction *entity.Transaction, delta ledger.Delta) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.TransactionModel{}, "id = ?", transaction.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrTransactionNotFound
		}
		return applyDelta(tx, transaction.UserID, delta)
	})
}

// GetBalance returns the user's current account balance.
func (r *ledgerRepository) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var balanceModel model.BalanceModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&balanceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, result.Error
	}
	return balanceModel.Amount, nil
}

// GetInvestmentSummary returns the user's investment aggregate.
func (r *ledgerRepository) GetInvestmentSummary(ctx context.Context, userID uuid.UUID) (*entity.InvestmentSummary, error) {
	var summaryModel model.InvestmentSummaryModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&summaryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.EmptyInvestmentSummary(), nil
		}
		return nil, result.Error
	}
	return summaryModel.ToEntity(), nil
}

// categoryColumns maps investment categories to their summary columns.
var categoryColumns = map[entity.InvestmentCategory]string{
	entity.CategoryStockMarket:            "stock_market",
	entity.CategoryInvestmentFunds:        "investment_funds",
	entity.CategoryPrivatePensionFixed:    "private_pension_fixed",
	entity.CategoryPrivatePensionVariable: "private_pension_variable",
	entity.CategoryGovernmentBonds:        "government_bonds",
}

// applyDelta adjusts the user's balance row and, when the delta touches an
// investment category, the investment summary row. Both writes are upserts
// whose updates increment in SQL, so concurrent transactions for the same
// user cannot overwrite each other's deltas. Rows are created lazily on the
// user's first relevant movement.
func applyDelta(tx *gorm.DB, userID uuid.UUID, delta ledger.Delta) error {
	if err := applyBalanceDelta(tx, userID, delta.Balance); err != nil {
		return err
	}
	if delta.HasCategory() {
		return applyCategoryDelta(tx, userID, delta.Category, delta.CategoryDelta)
	}
	return nil
}

func applyBalanceDelta(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal) error {
	now := time.Now().UTC()
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"amount":     gorm.Expr("amount + ?", amount),
			"updated_at": now,
		}),
	}).Create(&model.BalanceModel{
		UserID:    userID,
		Amount:    amount,
		UpdatedAt: now,
	}).Error
}

func applyCategoryDelta(tx *gorm.DB, userID uuid.UUID, category entity.InvestmentCategory, amount decimal.Decimal) error {
	column, ok := categoryColumns[category]
	if !ok {
		return domainerror.ErrInvalidInvestmentCategory
	}

	fixedDelta, variableDelta := amount, decimal.Zero
	if category.Group() != entity.IncomeGroupFixed {
		fixedDelta, variableDelta = decimal.Zero, amount
	}

	firstMovement := entity.EmptyInvestmentSummary()
	firstMovement.ApplyDelta(category, amount)

	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			column:           gorm.Expr(column+" + ?", amount),
			"fixed_total":    gorm.Expr("fixed_total + ?", fixedDelta),
			"variable_total": gorm.Expr("variable_total + ?", variableDelta),
			"grand_total":    gorm.Expr("grand_total + ?", amount),
			"updated_at":     time.Now().UTC(),
		}),
	}).Create(model.InvestmentSummaryFromEntity(userID, firstMovement)).Error
}
