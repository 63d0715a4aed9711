package store

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shop-api/internal/models"
)

type seedUser struct {
	id       int
	username string
	password string
	email    string
	name     string
}

var seedUsers = []seedUser{
	{1, "usuario1", "senha123", "usuario1@teste.com", "Usuário Teste 1"},
	{2, "admin", "admin456", "admin@teste.com", "Administrador"},
	{3, "teste", "teste789", "teste@teste.com", "Usuário Teste 2"},
	{4, "admim", "123", "admim@teste.com", "Usuário Admim"},
}

// SeedUsers hashes the fixed demo passwords and returns the user records the
// process starts with.
func SeedUsers() ([]*models.User, error) {
	users := make([]*models.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", su.username, err)
		}
		users = append(users, &models.User{
			ID:           su.id,
			Username:     su.username,
			PasswordHash: string(hash),
			Email:        su.email,
			Name:         su.name,
		})
	}
	return users, nil
}

// SeedProducts returns the demo catalog.
func SeedProducts() []*models.Product {
	return []*models.Product{
		{
			ID:          1,
			Name:        "Smartphone Galaxy S23",
			Description: "Smartphone Samsung Galaxy S23 128GB",
			Price:       2999.99,
			Category:    "Celular",
			Image:       "https://via.placeholder.com/300x300?text=Galaxy+S23",
			Stock:       50,
		},
		{
			ID:          2,
			Name:        "iPad Pro 11\"",
			Description: "Tablet Apple iPad Pro 11\" 128GB Wi-Fi",
			Price:       5499.99,
			Category:    "Tablet",
			Image:       "https://via.placeholder.com/300x300?text=iPad+Pro",
			Stock:       30,
		},
		{
			ID:          3,
			Name:        "iPhone 15 Pro",
			Description: "Smartphone Apple iPhone 15 Pro 128GB",
			Price:       6999.99,
			Category:    "Celular",
			Image:       "https://via.placeholder.com/300x300?text=iPhone+15+Pro",
			Stock:       25,
		},
		{
			ID:          4,
			Name:        "Samsung Galaxy Tab S9",
			Description: "Tablet Samsung Galaxy Tab S9 11\" 128GB",
			Price:       3999.99,
			Category:    "Tablet",
			Image:       "https://via.placeholder.com/300x300?text=Galaxy+Tab+S9",
			Stock:       20,
		},
	}
}
