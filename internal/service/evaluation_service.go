package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/internal/dto"
	"github.com/sheetscan/omr-backend/internal/model"
	"github.com/sheetscan/omr-backend/internal/repository"
)

// EvaluationService runs the whole evaluate pipeline: stage the upload, score
// it, persist the result. The staged file is removed on every exit path.
type EvaluationService interface {
	Evaluate(req dto.EvaluationRequest, filename, contentType string, sheet io.Reader) (*dto.ResultResponse, error)
}

type evaluationService struct {
	resultRepo repository.ResultRepository
	scorer     SheetScorer
	storage    SheetStorageService
}

func NewEvaluationService(
	resultRepo repository.ResultRepository,
	scorer SheetScorer,
	storage SheetStorageService,
) EvaluationService {
	return &evaluationService{
		resultRepo: resultRepo,
		scorer:     scorer,
		storage:    storage,
	}
}

func (s *evaluationService) Evaluate(req dto.EvaluationRequest, filename, contentType string, sheet io.Reader) (*dto.ResultResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: file must be an image", ErrInvalidInput)
	}

	path, err := s.storage.Save(filename, sheet)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Failed to stage uploaded sheet")
		return nil, fmt.Errorf("error processing evaluation: %w", err)
	}
	defer s.storage.Remove(path)

	marks, err := s.scorer.Score(path, req.QuestionPaperID)
	if err != nil {
		return nil, err
	}

	result := model.Result{
		RollNumber:      req.RollNumber,
		QuestionPaperID: req.QuestionPaperID,
		Marks:           marks,
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Str("rollNumber", req.RollNumber).Str("paperID", req.QuestionPaperID).Msg("Failed to store evaluation result")
		return nil, fmt.Errorf("error processing evaluation: %w", err)
	}

	var resp dto.ResultResponse
	if err := copier.Copy(&resp, &result); err != nil {
		log.Error().Err(err).Msg("Failed to copy Result model to ResultResponse")
		return nil, fmt.Errorf("error preparing evaluation response: %w", err)
	}
	return &resp, nil
}
