// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
type CategoryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name         string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name_type_user"`
	Type         string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_name_type_user"`
	CostCenterID *uuid.UUID `gorm:"type:uuid;index"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_name_type_user"`
	CreatedAt    time.Time  `gorm:"not null"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:           m.ID,
		Name:         m.Name,
		Type:         entity.CategoryType(m.Type),
		CostCenterID: m.CostCenterID,
		UserID:       m.UserID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:           category.ID,
		Name:         category.Name,
		Type:         string(category.Type),
		CostCenterID: category.CostCenterID,
		UserID:       category.UserID,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}
