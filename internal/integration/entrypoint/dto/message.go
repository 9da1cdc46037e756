// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-chat/backend/internal/application/usecase/message"
)

// CreateMessageRequest represents the request body for message creation.
type CreateMessageRequest struct {
	InputText string `json:"inputText" binding:"required"`
}

// UpdateMessageRequest represents the request body for a partial
// message update. Absent fields keep their stored value; tags is a
// full-list replacement.
type UpdateMessageRequest struct {
	Amount     *float64  `json:"amount"`
	Category   *string   `json:"category"`
	Type       *string   `json:"transaction_type"`
	Tags       *[]string `json:"tags"`
	Sentiment  *float64  `json:"sentiment"`
	IsFavorite *bool     `json:"isFavorite"`
	Date       *string   `json:"date"` // "2006-01-02" or RFC3339
}

// CreateMessageResponse represents the response for message creation.
type CreateMessageResponse struct {
	Message *message.MessageOutput `json:"message"`
}

// ListMessagesResponse represents the response for the message list,
// in chat order with per-type totals over the page.
type ListMessagesResponse struct {
	Messages []*message.MessageOutput `json:"messages"`
	Totals   message.TotalsOutput     `json:"totals"`
}
