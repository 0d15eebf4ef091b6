package learning

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/domain/user"
)

// Subject is catalog data; Chapters is a JSON array of chapter titles.
type Subject struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string         `gorm:"not null;column:name;uniqueIndex:idx_subjects_name_stream" json:"name"`
	Stream    user.Stream    `gorm:"not null;column:stream;uniqueIndex:idx_subjects_name_stream" json:"stream"`
	Chapters  datatypes.JSON `gorm:"column:chapters" json:"chapters"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
}

func (Subject) TableName() string { return "subjects" }

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ChapterList decodes Chapters; malformed or empty JSON yields nil.
func (s *Subject) ChapterList() []string {
	if s == nil || len(s.Chapters) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(s.Chapters, &out); err != nil {
		return nil
	}
	return out
}
