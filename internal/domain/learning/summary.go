package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Summary is either the shared cached row for a (subject, chapter) pair
// (IsCached) or a per-student delivery row carrying a copy of its content.
// The cached row keeps the student_id of whoever triggered generation.
type Summary struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID  uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	SubjectID  uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	Chapter    string    `gorm:"not null;column:chapter" json:"chapter"`
	AIResponse string    `gorm:"not null;column:ai_response" json:"ai_response"`
	IsCached   bool      `gorm:"not null;column:is_cached" json:"is_cached"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (Summary) TableName() string { return "summaries" }

func (s *Summary) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
