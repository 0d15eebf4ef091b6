package services

import (
	"encoding/json"
	"fmt"
)

// quizJSON renders a completion body with one question per correct label.
func quizJSON(correct ...string) string {
	type q struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	}
	qs := make([]q, 0, len(correct))
	for i, c := range correct {
		qs = append(qs, q{
			Question:      fmt.Sprintf("Question %d about functions", i+1),
			Options:       []string{"A) f(x)=x", "B) f(x)=x^2", "C) f(x)=e^x", "D) f(x)=ln x"},
			CorrectAnswer: c,
			Explanation:   "Explanation " + c,
		})
	}
	raw, _ := json.Marshal(map[string]any{"questions": qs})
	return string(raw)
}
