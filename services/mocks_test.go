package services_test

import (
	"strings"
	"time"

	"shop-service/models"
	"shop-service/repositories"
)

var _ repositories.ProductRepository = (*mockProductRepository)(nil)

type mockProductRepository struct {
	products map[int]*models.Product
	nextID   int
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int]*models.Product)}
}

func (m *mockProductRepository) Create(p *models.Product) error {
	m.nextID++
	now := time.Now()
	p.ID = m.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	pCopy := *p
	m.products[p.ID] = &pCopy
	return nil
}

func (m *mockProductRepository) GetByID(id int) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	pCopy := *p
	return &pCopy, nil
}

func (m *mockProductRepository) Update(p *models.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return models.ErrProductNotFound
	}
	p.UpdatedAt = time.Now()
	pCopy := *p
	m.products[p.ID] = &pCopy
	return nil
}

func (m *mockProductRepository) Delete(id int) error {
	if _, ok := m.products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) List(f models.ProductFilter) ([]models.Product, error) {
	out := make([]models.Product, 0)
	for id := 1; id <= m.nextID; id++ {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if f.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Name)) {
			continue
		}
		if f.Category != "" && !strings.Contains(strings.ToLower(p.Category), strings.ToLower(f.Category)) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.MinStock != nil && p.Stock < *f.MinStock {
			continue
		}
		if f.MaxStock != nil && p.Stock > *f.MaxStock {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

var _ repositories.OrderRepository = (*mockOrderRepository)(nil)

type mockOrderRepository struct {
	orders map[int]*models.Order
	nextID int
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[int]*models.Order)}
}

func copyOrder(o *models.Order) *models.Order {
	oCopy := *o
	oCopy.Lines = make([]models.OrderLine, len(o.Lines))
	copy(oCopy.Lines, o.Lines)
	return &oCopy
}

func (m *mockOrderRepository) Create(o *models.Order) error {
	m.nextID++
	now := time.Now()
	o.ID = m.nextID
	o.CreatedAt = now
	o.UpdatedAt = now
	for i := range o.Lines {
		o.Lines[i].OrderID = o.ID
		o.Lines[i].CreatedAt = now
		o.Lines[i].UpdatedAt = now
	}
	m.orders[o.ID] = copyOrder(o)
	return nil
}

func (m *mockOrderRepository) GetByID(id int) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return copyOrder(o), nil
}

func (m *mockOrderRepository) UpdateStatus(id int, status models.OrderStatus) error {
	o, ok := m.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	return nil
}

func (m *mockOrderRepository) ReplaceLines(id int, lines []models.OrderLine, total float64) error {
	o, ok := m.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	now := time.Now()
	o.Lines = make([]models.OrderLine, len(lines))
	copy(o.Lines, lines)
	for i := range o.Lines {
		o.Lines[i].OrderID = id
		o.Lines[i].CreatedAt = now
		o.Lines[i].UpdatedAt = now
	}
	o.Total = total
	o.UpdatedAt = now
	return nil
}

func (m *mockOrderRepository) Delete(id int) error {
	if _, ok := m.orders[id]; !ok {
		return models.ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *mockOrderRepository) List(f models.OrderFilter) ([]models.Order, error) {
	out := make([]models.Order, 0)
	for id := 1; id <= m.nextID; id++ {
		o, ok := m.orders[id]
		if !ok {
			continue
		}
		if f.StartDate != nil && o.CreatedAt.Before(*f.StartDate) {
			continue
		}
		if f.EndDate != nil && o.CreatedAt.After(*f.EndDate) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.UserID > 0 && o.UserID != f.UserID {
			continue
		}
		out = append(out, *copyOrder(o))
	}
	return out, nil
}

var _ repositories.UserRepository = (*mockUserRepository)(nil)

type mockUserRepository struct {
	users map[int]*models.User
}

func newMockUserRepository(ids ...int) *mockUserRepository {
	m := &mockUserRepository{users: make(map[int]*models.User)}
	for _, id := range ids {
		m.users[id] = &models.User{ID: id}
	}
	return m
}

func (m *mockUserRepository) Exists(id int) (bool, error) {
	_, ok := m.users[id]
	return ok, nil
}

func (m *mockUserRepository) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}
