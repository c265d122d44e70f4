package repositories

import (
	"database/sql"
	"errors"

	"shop-service/models"
)

type UserRepository interface {
	Exists(id int) (bool, error)
	GetByEmail(email string) (*models.User, error)
}

type mysqlUserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

func (r *mysqlUserRepository) Exists(id int) (bool, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM users WHERE id = ?", id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *mysqlUserRepository) GetByEmail(email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(
		"SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = ?",
		email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
