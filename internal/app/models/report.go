package models

import (
	"encoding/json"
	"time"
)

type Report struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Type              string          `json:"type"`
	Status            string          `json:"status"`
	Description       string          `json:"description"`
	Data              json.RawMessage `json:"data,omitempty"`
	CreatedBy         *int64          `json:"created_by"`
	CreatedByUsername string          `json:"created_by_username"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

var (
	ReportTypes    = []string{"inventory", "sales", "usage", "forecast"}
	ReportStatuses = []string{"pending", "completed", "failed"}
)
