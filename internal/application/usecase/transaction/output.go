// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/domain/entity"
	"github.com/bytebank/backend/internal/domain/money"
)

// AttachmentOutput describes an uploaded receipt on a transaction.
type AttachmentOutput struct {
	Path string
	URL  string
}

// TransactionOutput is the use-case level view of a transaction. Amount is
// the numeric value; FormattedAmount carries the localized display string
// with the sign implied by the type.
type TransactionOutput struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Date            time.Time
	Amount          decimal.Decimal
	FormattedAmount string
	Type            entity.TransactionType
	Category        *entity.InvestmentCategory
	Attachment      *AttachmentOutput
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	out := &TransactionOutput{
		ID:              t.ID,
		UserID:          t.UserID,
		Date:            t.Date,
		Amount:          t.Amount,
		FormattedAmount: money.Format(t.Amount, t.Type.IsNegative()),
		Type:            t.Type,
		Category:        t.Category,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.Attachment != nil {
		out.Attachment = &AttachmentOutput{
			Path: t.Attachment.Path,
			URL:  t.Attachment.URL,
		}
	}
	return out
}
