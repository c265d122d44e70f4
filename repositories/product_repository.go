package repositories

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"shop-service/models"
)

type ProductRepository interface {
	Create(p *models.Product) error
	GetByID(id int) (*models.Product, error)
	Update(p *models.Product) error
	Delete(id int) error
	List(f models.ProductFilter) ([]models.Product, error)
}

type mysqlProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &mysqlProductRepository{db: db}
}

func (r *mysqlProductRepository) Create(p *models.Product) error {
	now := time.Now()
	result, err := r.db.Exec(
		"INSERT INTO products (name, description, price, stock, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		p.Name, p.Description, p.Price, p.Stock, p.Category, now, now,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)
	p.CreatedAt = now
	p.UpdatedAt = now
	return nil
}

func (r *mysqlProductRepository) GetByID(id int) (*models.Product, error) {
	var p models.Product
	err := r.db.QueryRow(
		"SELECT id, name, description, price, stock, category, created_at, updated_at FROM products WHERE id = ?",
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mysqlProductRepository) Update(p *models.Product) error {
	p.UpdatedAt = time.Now()
	result, err := r.db.Exec(
		"UPDATE products SET name = ?, description = ?, price = ?, stock = ?, category = ?, updated_at = ? WHERE id = ?",
		p.Name, p.Description, p.Price, p.Stock, p.Category, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}
	if _, err := result.RowsAffected(); err != nil {
		return err
	}
	return nil
}

func (r *mysqlProductRepository) Delete(id int) error {
	result, err := r.db.Exec("DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

func (r *mysqlProductRepository) List(f models.ProductFilter) ([]models.Product, error) {
	where, args := buildProductWhere(f)
	rows, err := r.db.Query(
		"SELECT id, name, description, price, stock, category, created_at, updated_at FROM products"+where+" ORDER BY id",
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func buildProductWhere(f models.ProductFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.Name != "" {
		clauses = append(clauses, "LOWER(name) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Name)+"%")
	}
	if f.Category != "" {
		clauses = append(clauses, "LOWER(category) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Category)+"%")
	}
	if f.MinPrice != nil {
		clauses = append(clauses, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		clauses = append(clauses, "price <= ?")
		args = append(args, *f.MaxPrice)
	}
	if f.MinStock != nil {
		clauses = append(clauses, "stock >= ?")
		args = append(args, *f.MinStock)
	}
	if f.MaxStock != nil {
		clauses = append(clauses, "stock <= ?")
		args = append(args, *f.MaxStock)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
