// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CostCenter groups expense categories under a named bucket.
type CostCenter struct {
	ID        uuid.UUID
	Name      string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCostCenter creates a new CostCenter entity.
func NewCostCenter(name string, userID uuid.UUID) *CostCenter {
	now := time.Now().UTC()
	return &CostCenter{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
