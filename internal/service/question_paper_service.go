package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/internal/dto"
	"github.com/sheetscan/omr-backend/internal/model"
	"github.com/sheetscan/omr-backend/internal/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionPaperService interface {
	Create(req dto.QuestionPaperCreateRequest) (*dto.QuestionPaperResponse, error)
	Get(id string) (*dto.QuestionPaperResponse, error)
	List(skip, limit int) ([]dto.QuestionPaperResponse, error)
	Update(id string, req dto.QuestionPaperCreateRequest) (*dto.QuestionPaperResponse, error)
	Delete(id string) error
}

type questionPaperService struct {
	repo repository.QuestionPaperRepository
}

func NewQuestionPaperService(repo repository.QuestionPaperRepository) QuestionPaperService {
	return &questionPaperService{repo: repo}
}

// normalizeDetails accepts the details document either as a JSON object or as
// a JSON string wrapping one, and verifies the required keys are present.
func normalizeDetails(raw json.RawMessage) (datatypes.JSON, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON format for details", ErrInvalidInput)
	}
	if s, ok := v.(string); ok {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, fmt.Errorf("%w: invalid JSON format for details", ErrInvalidInput)
		}
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: details must be a JSON object", ErrInvalidInput)
	}
	for _, field := range []string{"questions", "answers"} {
		if _, ok := obj[field]; !ok {
			return nil, fmt.Errorf("%w: missing required field: %s", ErrInvalidInput, field)
		}
	}

	buf, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("error normalizing details: %w", err)
	}
	return datatypes.JSON(buf), nil
}

func paperToResponse(paper *model.QuestionPaper) *dto.QuestionPaperResponse {
	return &dto.QuestionPaperResponse{
		ID:        paper.ID,
		Details:   json.RawMessage(paper.Details),
		CreatedAt: paper.CreatedAt,
		UpdatedAt: paper.UpdatedAt,
	}
}

func (s *questionPaperService) Create(req dto.QuestionPaperCreateRequest) (*dto.QuestionPaperResponse, error) {
	details, err := normalizeDetails(req.Details)
	if err != nil {
		return nil, err
	}

	paper := model.QuestionPaper{
		ID:      uuid.NewString(),
		Details: details,
	}
	if err := s.repo.Create(&paper); err != nil {
		log.Error().Err(err).Msg("Failed to create question paper")
		return nil, fmt.Errorf("error creating question paper: %w", err)
	}
	return paperToResponse(&paper), nil
}

func (s *questionPaperService) Get(id string) (*dto.QuestionPaperResponse, error) {
	paper, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question paper with id %s %w", id, ErrNotFound)
		}
		log.Error().Err(err).Str("paperID", id).Msg("Failed to fetch question paper")
		return nil, fmt.Errorf("error fetching question paper: %w", err)
	}
	return paperToResponse(paper), nil
}

func (s *questionPaperService) List(skip, limit int) ([]dto.QuestionPaperResponse, error) {
	papers, err := s.repo.FindAll(skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list question papers")
		return nil, fmt.Errorf("error fetching question papers: %w", err)
	}

	resp := make([]dto.QuestionPaperResponse, 0, len(papers))
	for i := range papers {
		resp = append(resp, *paperToResponse(&papers[i]))
	}
	return resp, nil
}

func (s *questionPaperService) Update(id string, req dto.QuestionPaperCreateRequest) (*dto.QuestionPaperResponse, error) {
	paper, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question paper with id %s %w", id, ErrNotFound)
		}
		log.Error().Err(err).Str("paperID", id).Msg("Failed to fetch question paper for update")
		return nil, fmt.Errorf("error fetching question paper: %w", err)
	}

	details, err := normalizeDetails(req.Details)
	if err != nil {
		return nil, err
	}

	paper.Details = details
	if err := s.repo.Update(paper); err != nil {
		log.Error().Err(err).Str("paperID", id).Msg("Failed to update question paper")
		return nil, fmt.Errorf("error updating question paper: %w", err)
	}
	return paperToResponse(paper), nil
}

func (s *questionPaperService) Delete(id string) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("question paper with id %s %w", id, ErrNotFound)
		}
		log.Error().Err(err).Str("paperID", id).Msg("Failed to fetch question paper for delete")
		return fmt.Errorf("error fetching question paper: %w", err)
	}

	if err := s.repo.DeleteWithResults(id); err != nil {
		log.Error().Err(err).Str("paperID", id).Msg("Failed to delete question paper")
		return fmt.Errorf("error deleting question paper: %w", err)
	}
	log.Info().Str("paperID", id).Msg("Question paper deleted with its results")
	return nil
}
