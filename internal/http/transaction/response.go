package transaction

import (
	"time"

	"finanzas/internal/transaction"
)

type transactionResponse struct {
	ID            int64            `json:"id"`
	Description   string           `json:"description"`
	Amount        float64          `json:"amount"`
	CategoryID    *int64           `json:"category_id"`
	Type          transaction.Type `json:"type"`
	Date          string           `json:"date"`
	PaymentMethod string           `json:"payment_method,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	CategoryName  string           `json:"category_name,omitempty"`
	CategoryType  transaction.Type `json:"category_type,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

func toResponse(tx *transaction.Transaction) transactionResponse {
	resp := transactionResponse{
		ID:            tx.ID,
		Description:   tx.Description,
		Amount:        tx.Amount.InexactFloat64(),
		CategoryID:    tx.CategoryID,
		Type:          tx.Type,
		Date:          tx.Date.Format(time.DateOnly),
		PaymentMethod: tx.PaymentMethod,
		Notes:         tx.Notes,
		CreatedAt:     tx.CreatedAt,
	}

	if tx.Category != nil {
		resp.CategoryName = tx.Category.Name
		resp.CategoryType = tx.Category.Type
	}

	return resp
}

func toResponseList(txs []*transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}
