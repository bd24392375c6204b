package repositories

import (
	"errors"
	"fmt"

	"poisar-hisap/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new expense record
func (r *expenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetByOwner retrieves an owner's expenses newest-date first. Records
// sharing a date are ordered by insertion time so refetches are stable.
func (r *expenseRepository) GetByOwner(query ExpenseQuery) ([]models.Expense, error) {
	var expenses []models.Expense

	q := r.db.Where("owner_id = ?", query.OwnerID)
	if query.StartDate != nil {
		q = q.Where("date >= ?", *query.StartDate)
	}
	if query.Limit > 0 {
		q = q.Limit(query.Limit)
	}

	if err := q.Order("date DESC").
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, nil
}

// Delete removes an owner's expense. Deleting a row that is already gone is
// not an error; the bool reports whether a row was actually removed.
func (r *expenseRepository) Delete(id, ownerID uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND owner_id = ?", id, ownerID).Delete(&models.Expense{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CountByOwner returns the total number of records for an owner
func (r *expenseRepository) CountByOwner(ownerID uuid.UUID) (int64, error) {
	var total int64
	if err := r.db.Model(&models.Expense{}).
		Where("owner_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return total, nil
}
