package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop-service/models"
)

type OrderRepository interface {
	// Create persists the order and all its lines as one transaction.
	Create(o *models.Order) error
	GetByID(id int) (*models.Order, error)
	UpdateStatus(id int, status models.OrderStatus) error
	// ReplaceLines swaps the whole line set and writes the recomputed total
	// in the same transaction.
	ReplaceLines(id int, lines []models.OrderLine, total float64) error
	Delete(id int) error
	List(f models.OrderFilter) ([]models.Order, error)
}

type mysqlOrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &mysqlOrderRepository{db: db}
}

func (r *mysqlOrderRepository) Create(o *models.Order) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	result, err := tx.Exec(
		"INSERT INTO orders (user_id, status, total, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		o.UserID, o.Status, o.Total, now, now,
	)
	if err != nil {
		return err
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for i := range o.Lines {
		line := &o.Lines[i]
		_, err = tx.Exec(
			"INSERT INTO order_lines (order_id, product_id, product_name, quantity, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			orderID, line.ProductID, line.ProductName, line.Quantity, line.Price, now, now,
		)
		if err != nil {
			return err
		}
		line.OrderID = int(orderID)
		line.CreatedAt = now
		line.UpdatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	o.ID = int(orderID)
	o.CreatedAt = now
	o.UpdatedAt = now
	return nil
}

func (r *mysqlOrderRepository) GetByID(id int) (*models.Order, error) {
	var o models.Order
	err := r.db.QueryRow(
		"SELECT id, user_id, status, total, created_at, updated_at FROM orders WHERE id = ?",
		id,
	).Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, err
	}

	lines, err := r.linesFor([]int{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	if o.Lines == nil {
		o.Lines = []models.OrderLine{}
	}
	return &o, nil
}

func (r *mysqlOrderRepository) UpdateStatus(id int, status models.OrderStatus) error {
	result, err := r.db.Exec(
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *mysqlOrderRepository) ReplaceLines(id int, lines []models.OrderLine, total float64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	result, err := tx.Exec("UPDATE orders SET total = ?, updated_at = ? WHERE id = ?", total, now, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// total unchanged counts as zero affected rows on MySQL; make sure
		// the order really is absent before reporting not found
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM orders WHERE id = ?", id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return models.ErrOrderNotFound
		}
	}

	if _, err := tx.Exec("DELETE FROM order_lines WHERE order_id = ?", id); err != nil {
		return err
	}
	for i := range lines {
		line := &lines[i]
		_, err = tx.Exec(
			"INSERT INTO order_lines (order_id, product_id, product_name, quantity, price, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
			id, line.ProductID, line.ProductName, line.Quantity, line.Price, now, now,
		)
		if err != nil {
			return err
		}
		line.OrderID = id
	}

	return tx.Commit()
}

func (r *mysqlOrderRepository) Delete(id int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM order_lines WHERE order_id = ?", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM orders WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOrderNotFound
	}
	return tx.Commit()
}

func (r *mysqlOrderRepository) List(f models.OrderFilter) ([]models.Order, error) {
	where, args := buildOrderWhere(f)
	rows, err := r.db.Query(
		"SELECT id, user_id, status, total, created_at, updated_at FROM orders"+where+" ORDER BY id",
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	var ids []int
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Lines = []models.OrderLine{}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	lines, err := r.linesFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if ls, ok := lines[orders[i].ID]; ok {
			orders[i].Lines = ls
		}
	}
	return orders, nil
}

// linesFor loads the lines of the given orders in one query, keyed by order id.
func (r *mysqlOrderRepository) linesFor(orderIDs []int) (map[int][]models.OrderLine, error) {
	params := make([]string, len(orderIDs))
	args := make([]interface{}, len(orderIDs))
	for i, id := range orderIDs {
		params[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(
		"SELECT order_id, product_id, product_name, quantity, price, created_at, updated_at FROM order_lines WHERE order_id IN (%s) ORDER BY id",
		strings.Join(params, ","),
	)
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int][]models.OrderLine)
	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.ProductName, &line.Quantity, &line.Price, &line.CreatedAt, &line.UpdatedAt); err != nil {
			return nil, err
		}
		line.Subtotal = models.RoundCents(line.Price * float64(line.Quantity))
		out[line.OrderID] = append(out[line.OrderID], line)
	}
	return out, rows.Err()
}

func buildOrderWhere(f models.OrderFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	if f.StartDate != nil {
		clauses = append(clauses, "created_at >= ?")
		args = append(args, *f.StartDate)
	}
	if f.EndDate != nil {
		clauses = append(clauses, "created_at <= ?")
		args = append(args, *f.EndDate)
	}
	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, f.Status)
	}
	if f.UserID > 0 {
		clauses = append(clauses, "user_id = ?")
		args = append(args, f.UserID)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}
