package models

import (
	"time"
)

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Stock       *int     `json:"stock" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required,max=255"`
}

// UpdateProductRequest carries a partial update; nil fields are left untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Category    *string  `json:"category" binding:"omitempty,max=255"`
}

// ProductFilter narrows catalog reads. Every field is optional; set fields
// combine with AND. Substring matches are case-insensitive, bounds inclusive.
type ProductFilter struct {
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int
}

func (f ProductFilter) Validate() error {
	if len(f.Name) > 255 {
		return NewValidationError("name", "must be at most 255 characters")
	}
	if len(f.Category) > 255 {
		return NewValidationError("category", "must be at most 255 characters")
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return NewValidationError("min_price", "must be zero or positive")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return NewValidationError("max_price", "must be zero or positive")
	}
	if f.MinStock != nil && *f.MinStock < 0 {
		return NewValidationError("min_stock", "must be zero or positive")
	}
	if f.MaxStock != nil && *f.MaxStock < 0 {
		return NewValidationError("max_stock", "must be zero or positive")
	}
	return nil
}
