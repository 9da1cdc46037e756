// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/expense-chat/backend/internal/domain/entity"
)

// AnalyticsResponse represents the response for the analytics endpoint.
type AnalyticsResponse struct {
	Analytics *entity.Analytics `json:"analytics"`
}
