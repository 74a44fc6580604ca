package dto

import (
	"time"

	"github.com/bytebank/backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount accepts either a plain decimal string ("1234.56") or the localized
// display form ("R$ 1.234,56").
type CreateTransactionRequest struct {
	Date           string  `json:"date" binding:"required"`
	Amount         string  `json:"amount" binding:"required"`
	Type           string  `json:"type" binding:"required,oneof=deposit transfer investment withdrawal"`
	Category       *string `json:"category,omitempty" binding:"omitempty,oneof=stock_market investment_funds private_pension_fixed private_pension_variable government_bonds"`
	AttachmentPath *string `json:"attachment_path,omitempty"`
	AttachmentURL  *string `json:"attachment_url,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
// Only the amount and date of a recorded movement can change.
type UpdateTransactionRequest struct {
	Date   string `json:"date" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// AttachmentResponse represents an uploaded receipt in API responses.
type AttachmentResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Date            string              `json:"date"`
	Amount          string              `json:"amount"`
	FormattedAmount string              `json:"formatted_amount"`
	Type            string              `json:"type"`
	Category        *string             `json:"category,omitempty"`
	Attachment      *AttachmentResponse `json:"attachment,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a TransactionOutput to a TransactionResponse DTO.
func ToTransactionResponse(txn *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:              txn.ID.String(),
		UserID:          txn.UserID.String(),
		Date:            txn.Date.Format("2006-01-02"),
		Amount:          txn.Amount.String(),
		FormattedAmount: txn.FormattedAmount,
		Type:            string(txn.Type),
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}

	if txn.Category != nil {
		category := string(*txn.Category)
		response.Category = &category
	}
	if txn.Attachment != nil {
		response.Attachment = &AttachmentResponse{
			Path: txn.Attachment.Path,
			URL:  txn.Attachment.URL,
		}
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
