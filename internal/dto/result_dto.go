package dto

import "time"

// EvaluationRequest is the multipart form accompanying an uploaded sheet.
type EvaluationRequest struct {
	RollNumber      string `form:"roll_number" binding:"required"`
	QuestionPaperID string `form:"question_paper_id" binding:"required"`
}

type ResultResponse struct {
	ID              uint      `json:"id"`
	RollNumber      string    `json:"roll_number"`
	QuestionPaperID string    `json:"question_paper_id"`
	Marks           int       `json:"marks"`
	CreatedAt       time.Time `json:"created_at"`
}
