package services

import (
	"shop-service/models"
	"shop-service/repositories"
)

type Product interface {
	Create(req models.CreateProductRequest) (*models.Product, error)
	Get(id int) (*models.Product, error)
	Update(id int, req models.UpdateProductRequest) (*models.Product, error)
	Delete(id int) error
	List(f models.ProductFilter) ([]models.Product, error)
}

func NewProductService(repo repositories.ProductRepository) Product {
	return &productService{repo: repo}
}

type productService struct {
	repo repositories.ProductRepository
}

func (s *productService) Create(req models.CreateProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, models.NewValidationError("name", "is required")
	}
	if req.Price == nil || *req.Price < 0 {
		return nil, models.NewValidationError("price", "must be zero or positive")
	}
	if req.Stock == nil || *req.Stock < 0 {
		return nil, models.NewValidationError("stock", "must be zero or positive")
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(id int) (*models.Product, error) {
	return s.repo.GetByID(id)
}

func (s *productService) Update(id int, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, models.NewValidationError("name", "must not be empty")
		}
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, models.NewValidationError("price", "must be zero or positive")
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, models.NewValidationError("stock", "must be zero or positive")
		}
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(id int) error {
	return s.repo.Delete(id)
}

func (s *productService) List(f models.ProductFilter) ([]models.Product, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(f)
}
