package services

import (
	"math"

	"github.com/samber/lo"

	types "github.com/yungbote/bacprep-backend/internal/domain"
)

type QuestionResult struct {
	QuestionIndex int    `json:"question_index"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	Explanation   string `json:"explanation"`
}

type GradeResult struct {
	Score          int
	CorrectAnswers int
	TotalQuestions int
	Results        []QuestionResult
}

// ScoreAnswers compares answers[i] to questions[i].CorrectAnswer by exact
// label. Missing answers count as "" and are wrong; extra answers are ignored.
func ScoreAnswers(questions []types.Question, answers []string) GradeResult {
	results := lo.Map(questions, func(q types.Question, i int) QuestionResult {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		return QuestionResult{
			QuestionIndex: i,
			Question:      q.Question,
			UserAnswer:    answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     answer != "" && answer == q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	})
	correct := lo.CountBy(results, func(r QuestionResult) bool { return r.IsCorrect })
	return GradeResult{
		Score:          Percent(correct, len(questions)),
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		Results:        results,
	}
}

// Percent is round(100*correct/total), 0 when total is 0.
func Percent(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
