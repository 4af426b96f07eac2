package services

import (
	"gorm.io/gorm"

	apperrors "moneywise/internal/errors"
	"moneywise/internal/models"
)

// labelService handles label-related business logic. Labels are read-only
// through the API; sets are provisioned out of band.
type labelService struct {
	db *gorm.DB
}

// NewLabelService creates a new LabelServicer.
func NewLabelService(db *gorm.DB) LabelServicer {
	return &labelService{db: db}
}

// GetUserTags returns the tag sequence of the label set the user belongs
// to. The contract is at most one set per user; if the membership query
// matches several documents the last match wins, with no merging.
func (s *labelService) GetUserTags(email string) (models.StringList, error) {
	var labels []models.Label
	if err := s.db.Find(&labels).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var tags models.StringList
	found := false
	for _, l := range labels {
		if l.Users.Contains(email) {
			tags = l.Tags
			found = true
		}
	}
	if !found {
		return nil, apperrors.ErrLabelNotFound
	}
	return tags, nil
}
