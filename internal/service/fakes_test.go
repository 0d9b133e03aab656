package service

import (
	"errors"

	"github.com/sheetscan/omr-backend/internal/model"
	"github.com/sheetscan/omr-backend/internal/repository"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests.

func resultFilter(rollNumber, paperID string) repository.ResultFilter {
	return repository.ResultFilter{RollNumber: rollNumber, QuestionPaperID: paperID}
}

type fakeResultRepo struct {
	nextID     uint
	results    map[uint]model.Result
	order      []uint
	failCreate bool
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[uint]model.Result)}
}

func (r *fakeResultRepo) Create(result *model.Result) error {
	if r.failCreate {
		return errors.New("connection reset")
	}
	r.nextID++
	result.ID = r.nextID
	r.results[result.ID] = *result
	r.order = append(r.order, result.ID)
	return nil
}

func (r *fakeResultRepo) FindByID(id uint) (*model.Result, error) {
	result, ok := r.results[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &result, nil
}

func (r *fakeResultRepo) FindAll(filter repository.ResultFilter, offset, limit int) ([]model.Result, error) {
	var matched []model.Result
	for _, id := range r.order {
		result := r.results[id]
		if filter.RollNumber != "" && result.RollNumber != filter.RollNumber {
			continue
		}
		if filter.QuestionPaperID != "" && result.QuestionPaperID != filter.QuestionPaperID {
			continue
		}
		matched = append(matched, result)
	}
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

type fakePaperRepo struct {
	papers  map[string]model.QuestionPaper
	order   []string
	results *fakeResultRepo
}

func newFakePaperRepo(results *fakeResultRepo) *fakePaperRepo {
	return &fakePaperRepo{papers: make(map[string]model.QuestionPaper), results: results}
}

func (r *fakePaperRepo) Create(paper *model.QuestionPaper) error {
	r.papers[paper.ID] = *paper
	r.order = append(r.order, paper.ID)
	return nil
}

func (r *fakePaperRepo) FindByID(id string) (*model.QuestionPaper, error) {
	paper, ok := r.papers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &paper, nil
}

func (r *fakePaperRepo) FindAll(offset, limit int) ([]model.QuestionPaper, error) {
	if offset >= len(r.order) {
		return nil, nil
	}
	ids := r.order[offset:]
	if limit < len(ids) {
		ids = ids[:limit]
	}
	papers := make([]model.QuestionPaper, 0, len(ids))
	for _, id := range ids {
		papers = append(papers, r.papers[id])
	}
	return papers, nil
}

func (r *fakePaperRepo) Update(paper *model.QuestionPaper) error {
	if _, ok := r.papers[paper.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.papers[paper.ID] = *paper
	return nil
}

func (r *fakePaperRepo) DeleteWithResults(id string) error {
	delete(r.papers, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.results != nil {
		for resultID, result := range r.results.results {
			if result.QuestionPaperID == id {
				delete(r.results.results, resultID)
			}
		}
	}
	return nil
}
