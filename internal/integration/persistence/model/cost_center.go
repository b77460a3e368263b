// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CostCenterModel represents the cost_centers table in the database.
type CostCenterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CostCenterModel.
func (CostCenterModel) TableName() string {
	return "cost_centers"
}

// ToEntity converts a CostCenterModel to a domain CostCenter entity.
func (m *CostCenterModel) ToEntity() *entity.CostCenter {
	return &entity.CostCenter{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CostCenterFromEntity creates a CostCenterModel from a domain CostCenter entity.
func CostCenterFromEntity(costCenter *entity.CostCenter) *CostCenterModel {
	return &CostCenterModel{
		ID:        costCenter.ID,
		Name:      costCenter.Name,
		UserID:    costCenter.UserID,
		CreatedAt: costCenter.CreatedAt,
		UpdatedAt: costCenter.UpdatedAt,
	}
}
