package model

import (
	"time"

	"gorm.io/gorm"
)

// Result records the marks awarded to one scanned sheet. Results are written
// once by the evaluation workflow and never updated; they disappear only when
// their question paper is deleted.
type Result struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	RollNumber      string         `json:"roll_number" gorm:"not null;index"`
	QuestionPaperID string         `json:"question_paper_id" gorm:"type:text;not null;index"`
	QuestionPaper   QuestionPaper  `json:"question_paper,omitempty" gorm:"foreignKey:QuestionPaperID"`
	Marks           int            `json:"marks" gorm:"not null"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
