package services

import (
	"shop-service/models"
	"shop-service/repositories"
)

type Order interface {
	Create(req models.CreateOrderRequest) (*models.Order, error)
	Get(id int) (*models.Order, error)
	Update(id int, req models.UpdateOrderRequest) (*models.Order, error)
	Delete(id int) error
	List(f models.OrderFilter) ([]models.Order, error)
}

func NewOrderService(orders repositories.OrderRepository, users repositories.UserRepository, pricing *PricingEngine) Order {
	return &orderService{orders: orders, users: users, pricing: pricing}
}

type orderService struct {
	orders  repositories.OrderRepository
	users   repositories.UserRepository
	pricing *PricingEngine
}

// Create prices the requested lines against the current catalog and persists
// the order with its lines atomically. An unresolvable product or user fails
// the whole call with nothing persisted.
func (s *orderService) Create(req models.CreateOrderRequest) (*models.Order, error) {
	if req.UserID < 1 {
		return nil, models.NewValidationError("user_id", "is required")
	}
	exists, err := s.users.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.ErrUserNotFound
	}

	lines, total, err := s.pricing.PriceLines(req.Products)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID: req.UserID,
		Status: models.StatusPending,
		Total:  total,
		Lines:  lines,
	}
	if err := s.orders.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Get(id int) (*models.Order, error) {
	return s.orders.GetByID(id)
}

// Update sets the status and/or replaces the whole line set. Replaced lines
// are re-priced from the live catalog and the total recomputed, so the stored
// order never disagrees with its own lines. An empty set detaches every line.
// Everything is validated and priced before the first write, so a rejected
// request leaves the order exactly as it was.
func (s *orderService) Update(id int, req models.UpdateOrderRequest) (*models.Order, error) {
	if _, err := s.orders.GetByID(id); err != nil {
		return nil, err
	}

	if req.Status != nil && !req.Status.Valid() {
		return nil, models.NewValidationError("status", "must be one of pending, completed, canceled")
	}

	var lines []models.OrderLine
	var total float64
	if len(req.Products) > 0 {
		var err error
		lines, total, err = s.pricing.PriceLines(req.Products)
		if err != nil {
			return nil, err
		}
	}

	if req.Status != nil {
		if err := s.orders.UpdateStatus(id, *req.Status); err != nil {
			return nil, err
		}
	}
	if req.Products != nil {
		if err := s.orders.ReplaceLines(id, lines, total); err != nil {
			return nil, err
		}
	}

	return s.orders.GetByID(id)
}

func (s *orderService) Delete(id int) error {
	return s.orders.Delete(id)
}

func (s *orderService) List(f models.OrderFilter) ([]models.Order, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return s.orders.List(f)
}
