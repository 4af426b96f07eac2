package services

import (
	"gorm.io/gorm"

	apperrors "moneywise/internal/errors"
	"moneywise/internal/models"
)

// categoryService serves static category reference data.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns all reference categories ordered by name.
func (s *categoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}
