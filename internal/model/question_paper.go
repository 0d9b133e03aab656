package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionPaper stores an answer key. Details is an opaque document that is
// only guaranteed to contain "questions" and "answers" keys.
type QuestionPaper struct {
	ID        string         `gorm:"type:text;primarykey" json:"id"`
	Details   datatypes.JSON `json:"details" gorm:"type:jsonb;not null"`
	Results   []Result       `json:"results,omitempty" gorm:"foreignKey:QuestionPaperID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
