package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
// This is a single-operator system, so there is no created-by/updated-by identity.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
