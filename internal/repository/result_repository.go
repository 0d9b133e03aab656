package repository

import (
	"github.com/sheetscan/omr-backend/internal/model"
	"gorm.io/gorm"
)

// ResultFilter narrows a result listing; empty fields match everything.
type ResultFilter struct {
	RollNumber      string
	QuestionPaperID string
}

type ResultRepository interface {
	Create(result *model.Result) error
	FindByID(id uint) (*model.Result, error)
	FindAll(filter ResultFilter, offset, limit int) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByID(id uint) (*model.Result, error) {
	var result model.Result
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAll(filter ResultFilter, offset, limit int) ([]model.Result, error) {
	query := r.db.Model(&model.Result{})
	if filter.RollNumber != "" {
		query = query.Where("roll_number = ?", filter.RollNumber)
	}
	if filter.QuestionPaperID != "" {
		query = query.Where("question_paper_id = ?", filter.QuestionPaperID)
	}

	var results []model.Result
	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
