package repositories

import (
	"poisar-hisap/internal/models"

	"github.com/google/uuid"
)

// ExpenseQuery shapes a window-bounded expense fetch. StartDate is the
// inclusive lower bound as a stored date string; nil means unbounded.
type ExpenseQuery struct {
	OwnerID   uuid.UUID
	StartDate *string
	Limit     int
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetByOwner(query ExpenseQuery) ([]models.Expense, error)
	Delete(id, ownerID uuid.UUID) (bool, error)
	CountByOwner(ownerID uuid.UUID) (int64, error)
}
