package dto

import (
	"encoding/json"
	"time"
)

// QuestionPaperCreateRequest carries the details document for create and
// update. Details may be a JSON object or a JSON string wrapping one; the
// service normalizes both forms.
type QuestionPaperCreateRequest struct {
	Details json.RawMessage `json:"details" binding:"required"`
}

type QuestionPaperResponse struct {
	ID        string          `json:"id"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
