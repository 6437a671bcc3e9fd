package repositories

import "github.com/Ishita1406/groceryApp/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	// GetByEmail matches the email exactly (case-sensitive). It is the only
	// read path that returns the password hash.
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
