package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Stream string

const (
	StreamScience    Stream = "science"
	StreamLiterature Stream = "literature"
	StreamMathTech   Stream = "math_tech"
	StreamEconomics  Stream = "economics"
	StreamLanguages  Stream = "languages"
)

var Streams = []Stream{StreamScience, StreamLiterature, StreamMathTech, StreamEconomics, StreamLanguages}

func (s Stream) Valid() bool {
	for _, v := range Streams {
		if s == v {
			return true
		}
	}
	return false
}

// Student is the profile row linked to an external identity (UserID is the
// identity provider's subject).
type Student struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:user_id" json:"user_id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Stream      Stream    `gorm:"not null;column:stream;index" json:"stream"`
	YearOfStudy int       `gorm:"not null;column:year_of_study" json:"year_of_study"`
	Whatsapp    *string   `gorm:"column:whatsapp" json:"whatsapp,omitempty"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Student) TableName() string { return "students" }

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
