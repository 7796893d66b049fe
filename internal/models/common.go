package models

import "time"

// AuditFields holds the audit timestamps persisted with every row.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
