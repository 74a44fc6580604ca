package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bytebank/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date           time.Time       `gorm:"type:date;not null;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type           string          `gorm:"type:varchar(10);not null;index"`
	Category       *string         `gorm:"type:varchar(30);index"`
	AttachmentPath *string         `gorm:"type:varchar(500)"`
	AttachmentURL  *string         `gorm:"type:varchar(1000)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var category *entity.InvestmentCategory
	if m.Category != nil {
		c := entity.InvestmentCategory(*m.Category)
		category = &c
	}

	var attachment *entity.Attachment
	if m.AttachmentPath != nil {
		attachment = &entity.Attachment{Path: *m.AttachmentPath}
		if m.AttachmentURL != nil {
			attachment.URL = *m.AttachmentURL
		}
	}

	return &entity.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Date:       m.Date,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		Category:   category,
		Attachment: attachment,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	var category *string
	if transaction.Category != nil {
		c := string(*transaction.Category)
		category = &c
	}

	var attachmentPath, attachmentURL *string
	if transaction.Attachment != nil {
		attachmentPath = &transaction.Attachment.Path
		attachmentURL = &transaction.Attachment.URL
	}

	return &TransactionModel{
		ID:             transaction.ID,
		UserID:         transaction.UserID,
		Date:           transaction.Date,
		Amount:         transaction.Amount,
		Type:           string(transaction.Type),
		Category:       category,
		AttachmentPath: attachmentPath,
		AttachmentURL:  attachmentURL,
		CreatedAt:      transaction.CreatedAt,
		UpdatedAt:      transaction.UpdatedAt,
	}
}
