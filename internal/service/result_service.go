package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/internal/dto"
	"github.com/sheetscan/omr-backend/internal/repository"
	"gorm.io/gorm"
)

type ResultService interface {
	Get(id uint) (*dto.ResultResponse, error)
	List(filter repository.ResultFilter, skip, limit int) ([]dto.ResultResponse, error)
}

type resultService struct {
	repo repository.ResultRepository
}

func NewResultService(repo repository.ResultRepository) ResultService {
	return &resultService{repo: repo}
}

func (s *resultService) Get(id uint) (*dto.ResultResponse, error) {
	result, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result with id %d %w", id, ErrNotFound)
		}
		log.Error().Err(err).Uint("resultID", id).Msg("Failed to fetch result")
		return nil, fmt.Errorf("error fetching result: %w", err)
	}

	var resp dto.ResultResponse
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Msg("Failed to copy Result model to ResultResponse")
		return nil, fmt.Errorf("error preparing result response: %w", err)
	}
	return &resp, nil
}

func (s *resultService) List(filter repository.ResultFilter, skip, limit int) ([]dto.ResultResponse, error) {
	results, err := s.repo.FindAll(filter, skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	resp := make([]dto.ResultResponse, 0, len(results))
	for i := range results {
		var item dto.ResultResponse
		if err := copier.Copy(&item, &results[i]); err != nil {
			log.Error().Err(err).Uint("resultID", results[i].ID).Msg("Failed to copy result to response DTO")
			continue
		}
		resp = append(resp, item)
	}
	return resp, nil
}
