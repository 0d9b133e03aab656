package repository

import (
	"github.com/sheetscan/omr-backend/internal/model"
	"gorm.io/gorm"
)

type QuestionPaperRepository interface {
	Create(paper *model.QuestionPaper) error
	FindByID(id string) (*model.QuestionPaper, error)
	FindAll(offset, limit int) ([]model.QuestionPaper, error)
	Update(paper *model.QuestionPaper) error
	DeleteWithResults(id string) error
}

type questionPaperRepository struct {
	db *gorm.DB
}

func NewQuestionPaperRepository(db *gorm.DB) QuestionPaperRepository {
	return &questionPaperRepository{db: db}
}

func (r *questionPaperRepository) Create(paper *model.QuestionPaper) error {
	return r.db.Create(paper).Error
}

func (r *questionPaperRepository) FindByID(id string) (*model.QuestionPaper, error) {
	var paper model.QuestionPaper
	if err := r.db.Where("id = ?", id).First(&paper).Error; err != nil {
		return nil, err
	}
	return &paper, nil
}

func (r *questionPaperRepository) FindAll(offset, limit int) ([]model.QuestionPaper, error) {
	var papers []model.QuestionPaper
	if err := r.db.Order("created_at ASC").Offset(offset).Limit(limit).Find(&papers).Error; err != nil {
		return nil, err
	}
	return papers, nil
}

func (r *questionPaperRepository) Update(paper *model.QuestionPaper) error {
	return r.db.Save(paper).Error
}

// DeleteWithResults removes a paper and all results that reference it in a
// single transaction. The delete is explicit rather than relying on the FK
// cascade because soft deletes never reach the database constraint.
func (r *questionPaperRepository) DeleteWithResults(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_paper_id = ?", id).Delete(&model.Result{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.QuestionPaper{}).Error
	})
}
