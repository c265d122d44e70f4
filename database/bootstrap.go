package database

import (
	"log"
	"shop-service/config"

	"golang.org/x/crypto/bcrypt"
)

// Bootstrap runs the one-time deployment setup. Both steps are guarded so
// repeated startups are no-ops.
func Bootstrap(cfg *config.Config) error {
	if err := ensureAdmin(); err != nil {
		return err
	}
	if cfg.SeedCatalog {
		if err := seedCatalog(); err != nil {
			return err
		}
	}
	return nil
}

func ensureAdmin() error {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = DB.Exec(
		"INSERT INTO users (name, email, password) VALUES (?, ?, ?)",
		"Admin", "admin@domain.com", string(hash),
	)
	if err != nil {
		return err
	}
	log.Println("Bootstrap: created admin user")
	return nil
}

func seedCatalog() error {
	var count int
	if err := DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name, description, category string
		price                       float64
		stock                       int
	}{
		{"Soccer Ball", "High quality soccer ball for training and matches.", "Soccer", 29.99, 100},
		{"Tennis Racket", "Light and durable racket for players of every level.", "Tennis", 79.50, 50},
		{"Running Shoes", "Comfortable and resistant shoes for long runs and training.", "Running", 120.00, 200},
		{"Hand Weights", "Hand weights for home or gym workouts.", "Gym", 15.99, 150},
	}

	for _, p := range seed {
		_, err := DB.Exec(
			"INSERT INTO products (name, description, price, stock, category) VALUES (?, ?, ?, ?, ?)",
			p.name, p.description, p.price, p.stock, p.category,
		)
		if err != nil {
			return err
		}
	}
	log.Printf("Bootstrap: seeded %d catalog products", len(seed))
	return nil
}
