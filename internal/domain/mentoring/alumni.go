package mentoring

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/bacprep-backend/internal/domain/user"
)

// Alumni is a former student's application to share advice. Rows start
// unapproved; approval happens out of band.
type Alumni struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	SubmittedBy uuid.UUID   `gorm:"type:uuid;not null;index;column:submitted_by" json:"-"`
	Name        string      `gorm:"not null;column:name" json:"name"`
	Stream      user.Stream `gorm:"not null;column:stream" json:"stream"`
	BacScore    float64     `gorm:"not null;column:bac_score" json:"bac_score"`
	AdviceText  string      `gorm:"not null;column:advice_text" json:"advice_text"`
	ResumeURL   *string     `gorm:"column:resume_url" json:"resume_url,omitempty"`
	Approved    bool        `gorm:"not null;column:approved;default:false" json:"approved"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
}

func (Alumni) TableName() string { return "alumni" }

func (a *Alumni) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
