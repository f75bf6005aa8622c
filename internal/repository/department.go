package repository

import (
	"errors"

	"instrument-tray-backend/internal/database/models"
	apperrors "instrument-tray-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

// Create creates a new department
func (r *DepartmentRepository) Create(department *models.Department) error {
	return r.db.Create(department).Error
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &department, nil
}

// GetByCode retrieves a department by its unique code
func (r *DepartmentRepository) GetByCode(code string) (*models.Department, error) {
	var department models.Department
	err := r.db.First(&department, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(limit, offset int) ([]models.Department, int64, error) {
	var departments []models.Department
	var total int64

	if err := r.db.Model(&models.Department{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&departments).Error
	return departments, total, err
}

// Update updates a department
func (r *DepartmentRepository) Update(department *models.Department) error {
	return r.db.Save(department).Error
}

// Delete deletes a department
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Department{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}
