package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"
	"github.com/sheetscan/omr-backend/internal/repository"
	"gorm.io/gorm"
)

// SheetScorer turns a staged sheet image into marks against a question paper.
type SheetScorer interface {
	Score(sheetPath string, questionPaperID string) (int, error)
}

// randomSheetScorer is a placeholder for the real OMR pipeline. It never opens
// the sheet image; it draws a uniform random score in [0, len(questions)].
type randomSheetScorer struct {
	paperRepo repository.QuestionPaperRepository
}

func NewRandomSheetScorer(paperRepo repository.QuestionPaperRepository) SheetScorer {
	return &randomSheetScorer{paperRepo: paperRepo}
}

func (s *randomSheetScorer) Score(sheetPath string, questionPaperID string) (int, error) {
	paper, err := s.paperRepo.FindByID(questionPaperID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("question paper with id %s %w", questionPaperID, ErrNotFound)
		}
		log.Error().Err(err).Str("paperID", questionPaperID).Msg("Failed to load question paper for scoring")
		return 0, fmt.Errorf("error processing OMR sheet: %w", err)
	}

	var details struct {
		Questions []any `json:"questions"`
	}
	if err := json.Unmarshal(paper.Details, &details); err != nil {
		// Details are validated at write time; a non-list questions entry
		// just yields zero scorable questions.
		log.Warn().Err(err).Str("paperID", questionPaperID).Msg("Question paper details have no readable questions list")
	}

	marks := rand.IntN(len(details.Questions) + 1)
	log.Info().Str("sheet", sheetPath).Str("paperID", questionPaperID).Int("marks", marks).Msg("Scored sheet with placeholder scorer")
	return marks, nil
}
