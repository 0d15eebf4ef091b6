package learning

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// Question is one multiple-choice item. Options are labelled "A) ..." through
// "D) ..."; CorrectAnswer is the bare label.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuestionSet is the stored shape of quizzes.questions_json.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// Quiz is one attempt. Score and CompletedAt are set together, once.
type Quiz struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_quizzes_student_created,priority:1" json:"student_id"`
	SubjectID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"subject_id"`
	Chapter        string         `gorm:"not null;column:chapter" json:"chapter"`
	Difficulty     Difficulty     `gorm:"not null;column:difficulty" json:"difficulty"`
	QuestionsJSON  datatypes.JSON `gorm:"column:questions_json;not null" json:"-"`
	TotalQuestions int            `gorm:"not null;column:total_questions" json:"total_questions"`
	Score          *int           `gorm:"column:score" json:"score"`
	CompletedAt    *time.Time     `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt      time.Time      `gorm:"not null;index:idx_quizzes_student_created,priority:2" json:"created_at"`
}

func (Quiz) TableName() string { return "quizzes" }

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

func (q *Quiz) IsGraded() bool {
	return q != nil && q.CompletedAt != nil
}

func (q *Quiz) Questions() ([]Question, error) {
	if q == nil || len(q.QuestionsJSON) == 0 {
		return nil, nil
	}
	var set QuestionSet
	if err := json.Unmarshal(q.QuestionsJSON, &set); err != nil {
		return nil, fmt.Errorf("decode questions_json: %w", err)
	}
	return set.Questions, nil
}

func (q *Quiz) SetQuestions(qs []Question) error {
	raw, err := json.Marshal(QuestionSet{Questions: qs})
	if err != nil {
		return err
	}
	q.QuestionsJSON = datatypes.JSON(raw)
	q.TotalQuestions = len(qs)
	return nil
}
